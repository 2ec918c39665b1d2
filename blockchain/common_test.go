// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// testBaseTime is the timestamp of the first block of generated test
	// chains.  It is after the pay-to-script-hash switch time.
	testBaseTime = 1400000000

	// testSpacing is the number of seconds between generated blocks.
	testSpacing = 600

	// noSignalVersion is a block version that does not use version bits.
	noSignalVersion = 4
)

// testChain is a single in-memory chain indexed by height.  It implements
// AncestorLookup for nodes that belong to it.
type testChain struct {
	nodes []*BlockNode
}

// Ancestor returns the node of the chain at height when node is part of the
// chain.
func (c *testChain) Ancestor(node *BlockNode, height int32) *BlockNode {
	if node == nil || height < 0 || height > node.Height ||
		int(node.Height) >= len(c.nodes) || c.nodes[node.Height] != node {

		return nil
	}
	return c.nodes[height]
}

// tip returns the last node of the chain or nil when the chain is empty.
func (c *testChain) tip() *BlockNode {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[len(c.nodes)-1]
}

// at returns the node at height, or nil for a negative height which stands
// for the parent of the genesis block.
func (c *testChain) at(height int32) *BlockNode {
	if height < 0 {
		return nil
	}
	return c.nodes[height]
}

// add appends a block with the given version and timestamp.  The hash
// commits to the parent hash so forks sharing a prefix share their hashes.
func (c *testChain) add(version int32, timestamp int64) *BlockNode {
	var buf [chainhash.HashSize + 16]byte
	height := int32(len(c.nodes))
	if tip := c.tip(); tip != nil {
		copy(buf[:], tip.Hash[:])
	}
	binary.LittleEndian.PutUint32(buf[chainhash.HashSize:], uint32(height))
	binary.LittleEndian.PutUint32(buf[chainhash.HashSize+4:], uint32(version))
	binary.LittleEndian.PutUint64(buf[chainhash.HashSize+8:], uint64(timestamp))

	node := &BlockNode{
		Hash:      chainhash.DoubleHashH(buf[:]),
		Height:    height,
		Version:   version,
		Timestamp: timestamp,
	}
	c.nodes = append(c.nodes, node)
	return node
}

// extend appends count blocks with the given version, spaced testSpacing
// seconds apart starting at testBaseTime for the genesis block.
func (c *testChain) extend(count int, version int32) {
	for i := 0; i < count; i++ {
		c.add(version, testBaseTime+int64(len(c.nodes))*testSpacing)
	}
}

// fork returns a new chain sharing the first height+1 blocks of c.
func (c *testChain) fork(height int32) *testChain {
	nodes := make([]*BlockNode, height+1)
	copy(nodes, c.nodes[:height+1])
	return &testChain{nodes: nodes}
}

// newTestChain returns a chain of count blocks with the given version.
func newTestChain(count int, version int32) *testChain {
	c := &testChain{}
	c.extend(count, version)
	return c
}

// chainFromTimes returns a chain with one block per timestamp.
func chainFromTimes(times ...int64) *testChain {
	c := &testChain{}
	for _, ts := range times {
		c.add(noSignalVersion, ts)
	}
	return c
}

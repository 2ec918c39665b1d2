// Copyright (c) 2016-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/lru"
)

// DefaultThresholdCacheSize is the number of (window, deployment) states a
// cache created with a zero limit retains.
const DefaultThresholdCacheSize = 4096

// thresholdKey identifies a state computed for the last block of a window.
// The state is part of the key since the underlying cache is a set.
type thresholdKey struct {
	hash         chainhash.Hash
	deploymentID uint32
	state        ThresholdState
}

// ThresholdCaches memoizes threshold states keyed by the hash of the last
// block of each confirmation window.  It is owned by the caller, bounded in
// size and safe for concurrent use.  A nil *ThresholdCaches disables caching.
//
// States are a function of the chain up to the keyed block, so entries never
// go stale on their own.  Invalidate drops the entries of a block that is
// removed from the block index.
type ThresholdCaches struct {
	mtx            sync.Mutex
	entries        lru.Cache
	numDeployments uint32
}

// NewThresholdCaches returns a cache for numDeployments deployments holding
// at most limit states.  A zero limit selects DefaultThresholdCacheSize.
func NewThresholdCaches(numDeployments uint32, limit uint) *ThresholdCaches {
	if limit == 0 {
		limit = DefaultThresholdCacheSize
	}
	return &ThresholdCaches{
		entries:        lru.NewCache(limit),
		numDeployments: numDeployments,
	}
}

// lookup returns the cached state of the deployment for the window ending at
// hash.
func (c *ThresholdCaches) lookup(hash *chainhash.Hash, deploymentID uint32) (ThresholdState, bool) {
	if c == nil {
		return ThresholdDefined, false
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	for state := ThresholdDefined; state < numThresholdsStates; state++ {
		key := thresholdKey{*hash, deploymentID, state}
		if c.entries.Contains(key) {
			return state, true
		}
	}
	return ThresholdDefined, false
}

// update records the state of the deployment for the window ending at hash.
func (c *ThresholdCaches) update(hash *chainhash.Hash, deploymentID uint32, state ThresholdState) {
	if c == nil {
		return
	}

	c.mtx.Lock()
	c.entries.Add(thresholdKey{*hash, deploymentID, state})
	c.mtx.Unlock()
}

// Invalidate removes every state cached for the window ending at hash.
func (c *ThresholdCaches) Invalidate(hash *chainhash.Hash) {
	if c == nil {
		return
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	for id := uint32(0); id < c.numDeployments; id++ {
		for state := ThresholdDefined; state < numThresholdsStates; state++ {
			c.entries.Delete(thresholdKey{*hash, id, state})
		}
	}
}

// State returns the cached state of the deployment for the window ending at
// hash, if any.
func (c *ThresholdCaches) State(hash *chainhash.Hash, deploymentID uint32) (ThresholdState, bool) {
	return c.lookup(hash, deploymentID)
}

// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/sat20-labs/lyokocore/blockchain"
)

// defaultProgressInterval is the number of nonces tried between two progress
// records.
const defaultProgressInterval = 10000

// miner searches for a genesis header whose hash satisfies the target
// encoded in its bits.  The search increments the nonce and bumps the
// timestamp each time the nonce wraps around.
type miner struct {
	header   wire.BlockHeader
	target   *big.Int
	store    *progressStore
	interval uint32
}

// newMiner returns a miner starting from header.  store may be nil, in
// which case progress is not persisted.
func newMiner(header *wire.BlockHeader, powLimit *big.Int,
	store *progressStore, interval uint32) (*miner, error) {

	target, err := blockchain.TargetFromCompact(header.Bits)
	if err != nil {
		return nil, fmt.Errorf("bits %08x: %w", header.Bits, err)
	}
	if target.Cmp(powLimit) > 0 {
		return nil, fmt.Errorf("bits %08x: %w", header.Bits,
			blockchain.ErrTargetAboveLimit)
	}
	if interval == 0 {
		interval = defaultProgressInterval
	}
	return &miner{
		header:   *header,
		target:   target,
		store:    store,
		interval: interval,
	}, nil
}

// resume moves the miner to the position saved for its search, or returns
// the header found by an earlier run.
func (m *miner) resume(key searchKey) (*wire.BlockHeader, error) {
	if m.store == nil {
		return nil, nil
	}

	found, err := m.store.LoadResult(key)
	if err != nil || found != nil {
		return found, err
	}

	state, err := m.store.LoadProgress(key)
	if errors.Is(err, errNoProgress) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	minrLog.Infof("Resuming search at time %d nonce %d", state.Timestamp,
		state.Nonce)
	m.header.Timestamp = time.Unix(int64(state.Timestamp), 0)
	m.header.Nonce = state.Nonce
	return nil, nil
}

// checkpoint saves the current position of the search.
func (m *miner) checkpoint(key searchKey) error {
	if m.store == nil {
		return nil
	}
	return m.store.SaveProgress(key, searchState{
		Timestamp: uint32(m.header.Timestamp.Unix()),
		Nonce:     m.header.Nonce,
	})
}

// run searches until a header meeting the target is found or ctx is done.
// The position is saved every interval nonces and when ctx is done.
func (m *miner) run(ctx context.Context) (*wire.BlockHeader, error) {
	key := newSearchKey(&m.header)
	found, err := m.resume(key)
	if err != nil {
		return nil, err
	}
	if found != nil {
		minrLog.Infof("Using header found by an earlier run: %v",
			found.BlockHash())
		return found, nil
	}

	start := time.Now()
	var tries uint64
	for {
		hash := m.header.BlockHash()
		if blockchain.HashMeetsTarget(&hash, m.target) {
			minrLog.Infof("Found nonce %d at time %d after %d tries "+
				"(%v): %v", m.header.Nonce, m.header.Timestamp.Unix(),
				tries+1, time.Since(start).Round(time.Millisecond), hash)
			header := m.header
			if m.store != nil {
				if err := m.store.SaveResult(key, &header); err != nil {
					return nil, err
				}
			}
			return &header, nil
		}

		m.header.Nonce++
		if m.header.Nonce == 0 {
			m.header.Timestamp = m.header.Timestamp.Add(time.Second)
			minrLog.Infof("Nonce space exhausted, moving to time %d",
				m.header.Timestamp.Unix())
		}
		tries++

		if tries%uint64(m.interval) != 0 {
			continue
		}
		minrLog.Debugf("Nonce %d: hash = %v", m.header.Nonce, hash)
		if err := m.checkpoint(key); err != nil {
			return nil, err
		}
		select {
		case <-ctx.Done():
			minrLog.Infof("Search interrupted at time %d nonce %d",
				m.header.Timestamp.Unix(), m.header.Nonce)
			return nil, ctx.Err()
		default:
		}
	}
}

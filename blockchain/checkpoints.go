// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/sat20-labs/lyokocore/chaincfg"
)

// findCheckpoint returns the index of the checkpoint at height, or -1.  The
// checkpoints are ordered by strictly increasing height.
func findCheckpoint(checkpoints []chaincfg.Checkpoint, height int32) int {
	i := sort.Search(len(checkpoints), func(i int) bool {
		return checkpoints[i].Height >= height
	})
	if i < len(checkpoints) && checkpoints[i].Height == height {
		return i
	}
	return -1
}

// CheckBlockCheckpoint returns whether a block with the given hash may appear
// at height.  Heights without a checkpoint accept any hash.
func CheckBlockCheckpoint(params *chaincfg.Params, height int32,
	hash *chainhash.Hash) bool {

	i := findCheckpoint(params.Checkpoints, height)
	if i < 0 {
		return true
	}
	if !params.Checkpoints[i].Hash.IsEqual(hash) {
		log.Warnf("Block %v at height %d does not match checkpoint %v",
			hash, height, params.Checkpoints[i].Hash)
		return false
	}
	return true
}

// IsCheckpointHeight returns whether there is a checkpoint at height.
func IsCheckpointHeight(params *chaincfg.Params, height int32) bool {
	return findCheckpoint(params.Checkpoints, height) >= 0
}

// LatestCheckpoint returns the most recent checkpoint of the network, or nil
// when it has none.
func LatestCheckpoint(params *chaincfg.Params) *chaincfg.Checkpoint {
	if len(params.Checkpoints) == 0 {
		return nil
	}
	return &params.Checkpoints[len(params.Checkpoints)-1]
}

// LastCheckpoint returns the highest checkpoint whose block isKnown reports
// as present in the caller's block index, or nil when none is.
func LastCheckpoint(params *chaincfg.Params,
	isKnown func(*chainhash.Hash) bool) *chaincfg.Checkpoint {

	for i := len(params.Checkpoints) - 1; i >= 0; i-- {
		if isKnown(params.Checkpoints[i].Hash) {
			return &params.Checkpoints[i]
		}
	}
	return nil
}

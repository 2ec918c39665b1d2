// Copyright (c) 2016-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/sat20-labs/lyokocore/chaincfg"
)

// ComputeBlockVersion returns the block version a miner building on top of
// prevNode should use.  It carries the version bits top marker plus the bit
// of every deployment that is started or locked in.
func ComputeBlockVersion(params *chaincfg.Params, prevNode *BlockNode,
	lookup AncestorLookup, cache *ThresholdCaches) (int32, error) {

	expectedVersion := uint32(vbTopBits)
	for id := 0; id < len(params.Deployments); id++ {
		deployment := &params.Deployments[id]
		if deployment.BitNumber >= vbNumBits {
			return 0, fmt.Errorf("deployment %d uses bit %d outside the "+
				"version bits range", id, deployment.BitNumber)
		}

		state, err := CalcThresholdState(params, uint32(id), prevNode,
			lookup, cache)
		if err != nil {
			return 0, err
		}
		if state == ThresholdStarted || state == ThresholdLockedIn {
			expectedVersion |= uint32(1) << deployment.BitNumber
		}
	}
	return int32(expectedVersion), nil
}

// Copyright (c) 2016-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/sat20-labs/lyokocore/chaincfg"
)

// ThresholdState define the various threshold states used when voting on
// consensus changes.
type ThresholdState byte

// These constants are used to identify specific threshold states.
const (
	// ThresholdDefined is the first state for each deployment and is the
	// state for the genesis block has by definition for all deployments.
	ThresholdDefined ThresholdState = iota

	// ThresholdStarted is the state for a deployment once its start time
	// has been reached.
	ThresholdStarted

	// ThresholdLockedIn is the state for a deployment during the retarget
	// period which is after the ThresholdStarted state period and the
	// number of blocks that have voted for the deployment equal or exceed
	// the required number of votes for the deployment.
	ThresholdLockedIn

	// ThresholdActive is the state for a deployment for all blocks after a
	// retarget period in which the deployment was in the ThresholdLockedIn
	// state.
	ThresholdActive

	// ThresholdFailed is the state for a deployment once its expiration
	// time has been reached and it did not reach the ThresholdLockedIn
	// state.
	ThresholdFailed

	// numThresholdsStates is the number of threshold states.
	numThresholdsStates
)

// thresholdStateStrings is a map of ThresholdState values back to their
// constant names for pretty printing.
var thresholdStateStrings = map[ThresholdState]string{
	ThresholdDefined:  "ThresholdDefined",
	ThresholdStarted:  "ThresholdStarted",
	ThresholdLockedIn: "ThresholdLockedIn",
	ThresholdActive:   "ThresholdActive",
	ThresholdFailed:   "ThresholdFailed",
}

// String returns the ThresholdState as a human-readable name.
func (t ThresholdState) String() string {
	if s := thresholdStateStrings[t]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ThresholdState (%d)", int(t))
}

const (
	// vbTopBits is the top bits a block version must carry for its
	// remaining bits to be read as deployment signals.
	vbTopBits = 0x20000000

	// vbTopMask is the bitmask to use to determine whether or not the
	// top bits of a block version signal deployments.
	vbTopMask = 0xe0000000

	// vbNumBits is the total number of bits available for use with the
	// version bits scheme.
	vbNumBits = 29
)

// BlockNode holds the header fields of a block that rule selection reads.
// The caller owns the block index these values come from.
type BlockNode struct {
	Hash      chainhash.Hash
	Height    int32
	Version   int32
	Timestamp int64
}

// AncestorLookup provides access to the ancestors of a block on the chain the
// caller is validating.
type AncestorLookup interface {
	// Ancestor returns the ancestor of node at the given height, or nil
	// when height is negative or above the height of node.
	Ancestor(node *BlockNode, height int32) *BlockNode
}

// ErrUnknownDeployment describes a deployment ID that is not defined by the
// network parameters.
type ErrUnknownDeployment uint32

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e ErrUnknownDeployment) Error() string {
	return fmt.Sprintf("deployment ID %d does not exist", uint32(e))
}

// signals reports whether version signals for the deployment using bit.
func signals(version int32, bit uint8) bool {
	return uint32(version)&vbTopMask == vbTopBits &&
		uint32(version)&(uint32(1)<<bit) != 0
}

// CalcThresholdState returns the state of the given deployment for the block
// AFTER prevNode.  A nil prevNode stands for the parent of the genesis block.
//
// State only changes at window boundaries, so the computation walks back to
// the last block of the previous complete window, then evaluates windows
// forward from the newest one with a known state.  cache may be nil.
func CalcThresholdState(params *chaincfg.Params, deploymentID uint32,
	prevNode *BlockNode, lookup AncestorLookup,
	cache *ThresholdCaches) (ThresholdState, error) {

	if deploymentID >= uint32(len(params.Deployments)) {
		return ThresholdFailed, ErrUnknownDeployment(deploymentID)
	}
	deployment := &params.Deployments[deploymentID]

	window := int32(params.MinerConfirmationWindow)
	threshold := params.RuleChangeActivationThreshold

	// The threshold state for the window that contains the genesis block
	// is defined by definition.
	if prevNode != nil {
		prevNode = lookup.Ancestor(prevNode,
			prevNode.Height-(prevNode.Height+1)%window)
	}

	// Walk backwards through the windows until a node with a known state
	// is found or the start time rules it out.
	var neededStates []*BlockNode
	state := ThresholdDefined
	for prevNode != nil {
		if cached, ok := cache.lookup(&prevNode.Hash, deploymentID); ok {
			state = cached
			break
		}

		// The start and expiration times are based on the median block
		// time, so calculate it now.
		medianTime := CalcPastMedianTime(prevNode, lookup)
		if uint64(medianTime) < deployment.StartTime {
			cache.update(&prevNode.Hash, deploymentID, ThresholdDefined)
			break
		}

		neededStates = append(neededStates, prevNode)
		prevNode = lookup.Ancestor(prevNode, prevNode.Height-window)
	}

	// Since each threshold state depends on the state of the previous
	// window, iterate starting from the oldest unknown window.
	for i := len(neededStates) - 1; i >= 0; i-- {
		prevNode := neededStates[i]
		medianTime := uint64(CalcPastMedianTime(prevNode, lookup))

		switch state {
		case ThresholdDefined:
			if medianTime >= deployment.ExpireTime {
				state = ThresholdFailed
			} else if medianTime >= deployment.StartTime {
				state = ThresholdStarted
			}

		case ThresholdStarted:
			if medianTime >= deployment.ExpireTime {
				state = ThresholdFailed
				break
			}

			// Count the number of blocks in the window that
			// signal for the deployment.
			var count uint32
			countNode := prevNode
			for j := int32(0); j < window && countNode != nil; j++ {
				if signals(countNode.Version, deployment.BitNumber) {
					count++
				}
				countNode = lookup.Ancestor(countNode,
					countNode.Height-1)
			}
			if count >= threshold {
				state = ThresholdLockedIn
			}

		case ThresholdLockedIn:
			// The new rule becomes active when its previous state
			// was locked in.
			state = ThresholdActive

		// Nothing to do if the previous state is active or failed since
		// they are both terminal states.
		case ThresholdActive:
		case ThresholdFailed:
		}

		log.Tracef("Deployment %d at height %d (%v): %v", deploymentID,
			prevNode.Height, prevNode.Hash, state)
		cache.update(&prevNode.Hash, deploymentID, state)
	}

	return state, nil
}

// IsDeploymentActive reports whether the given deployment is active for the
// block after prevNode.
func IsDeploymentActive(params *chaincfg.Params, deploymentID uint32,
	prevNode *BlockNode, lookup AncestorLookup,
	cache *ThresholdCaches) (bool, error) {

	state, err := CalcThresholdState(params, deploymentID, prevNode,
		lookup, cache)
	if err != nil {
		return false, err
	}
	return state == ThresholdActive, nil
}

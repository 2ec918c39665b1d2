// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/sat20-labs/lyokocore/chaincfg"
)

// IsUAHFEnabled reports whether the replay protected signature hash upgrade
// applies to the block after one at prevHeight.
func IsUAHFEnabled(params *chaincfg.Params, prevHeight int32) bool {
	return params.Upgrades[chaincfg.UpgradeUAHF].IsActive(prevHeight, 0)
}

// IsDAAEnabled reports whether the difficulty adjustment upgrade applies to
// the block after one at prevHeight.
func IsDAAEnabled(params *chaincfg.Params, prevHeight int32) bool {
	return params.Upgrades[chaincfg.UpgradeDAA].IsActive(prevHeight, 0)
}

// IsMonolithEnabled reports whether the monolith upgrade applies to the block
// after one whose median time past is prevMedianTime.
func IsMonolithEnabled(params *chaincfg.Params, prevMedianTime int64) bool {
	return params.Upgrades[chaincfg.UpgradeMonolith].IsActive(0, prevMedianTime)
}

// IsMagneticAnomalyEnabled reports whether the magnetic anomaly upgrade
// applies to the block after one whose median time past is prevMedianTime.
func IsMagneticAnomalyEnabled(params *chaincfg.Params, prevMedianTime int64) bool {
	return params.Upgrades[chaincfg.UpgradeMagneticAnomaly].IsActive(0,
		prevMedianTime)
}

// ActiveUpgrades returns the names of the upgrades that apply to the block
// after prevNode.  A nil prevNode stands for the parent of the genesis block,
// for which no upgrade applies.
func ActiveUpgrades(params *chaincfg.Params, prevNode *BlockNode,
	lookup AncestorLookup) []string {

	if prevNode == nil {
		return nil
	}

	medianTime := CalcPastMedianTime(prevNode, lookup)
	var names []string
	for i := range params.Upgrades {
		upgrade := &params.Upgrades[i]
		if upgrade.IsActive(prevNode.Height, medianTime) {
			names = append(names, upgrade.Name)
		}
	}
	return names
}

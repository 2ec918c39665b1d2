// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/sat20-labs/lyokocore/chaincfg"
	"github.com/sat20-labs/lyokocore/txscript"
)

// bip16SwitchTime is the block time from which pay-to-script-hash redeem
// scripts are evaluated (April 1st 2012).
const bip16SwitchTime = 1333238400

// BlockScriptFlags returns the script flags enforced for the transactions of
// a block with the given timestamp built on top of prevNode.
func BlockScriptFlags(params *chaincfg.Params, prevNode *BlockNode,
	blockTime int64, lookup AncestorLookup,
	cache *ThresholdCaches) (txscript.ScriptFlags, error) {

	var flags txscript.ScriptFlags
	if blockTime >= bip16SwitchTime {
		flags |= txscript.ScriptBip16
	}

	// The genesis block is subject to no other rule.
	if prevNode == nil {
		return flags, nil
	}

	height := prevNode.Height + 1
	if height >= params.BIP0066Height {
		flags |= txscript.ScriptVerifyDERSignatures
	}
	if height >= params.BIP0065Height {
		flags |= txscript.ScriptVerifyCheckLockTimeVerify
	}

	csvActive, err := IsDeploymentActive(params, chaincfg.DeploymentCSV,
		prevNode, lookup, cache)
	if err != nil {
		return 0, err
	}
	if csvActive {
		flags |= txscript.ScriptVerifyCheckSequenceVerify
	}

	if IsUAHFEnabled(params, prevNode.Height) {
		flags |= txscript.ScriptVerifyStrictEncoding |
			txscript.ScriptEnableSigHashForkID
	}
	if IsDAAEnabled(params, prevNode.Height) {
		flags |= txscript.ScriptVerifyLowS | txscript.ScriptVerifyNullFail
	}

	medianTime := CalcPastMedianTime(prevNode, lookup)
	if IsMonolithEnabled(params, medianTime) {
		flags |= txscript.ScriptEnableMonolithOpcodes
	}
	if IsMagneticAnomalyEnabled(params, medianTime) {
		flags |= txscript.ScriptEnableCheckDataSig |
			txscript.ScriptVerifySigPushOnly |
			txscript.ScriptVerifyCleanStack
	}

	log.Debugf("Script flags for block at height %d: %v", height, flags)
	return flags, nil
}

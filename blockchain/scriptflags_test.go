// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/sat20-labs/lyokocore/chaincfg"
	"github.com/sat20-labs/lyokocore/txscript"
	"github.com/stretchr/testify/require"
)

// TestBlockScriptFlags walks a regtest chain with the rule change heights
// and times moved close together.
func TestBlockScriptFlags(t *testing.T) {
	t.Parallel()

	params := chaincfg.RegressionNetParams
	params.BIP0066Height = 100
	params.BIP0065Height = 200
	params.Upgrades[chaincfg.UpgradeUAHF].Height = 300
	params.Upgrades[chaincfg.UpgradeDAA].Height = 400
	params.Upgrades[chaincfg.UpgradeMonolith].Time = testBaseTime + 500*testSpacing
	params.Upgrades[chaincfg.UpgradeMagneticAnomaly].Time = testBaseTime + 600*testSpacing

	window := int(params.MinerConfirmationWindow)
	c := signalChain(window, window)
	c.extend(100, noSignalVersion)

	const (
		p2sh    = txscript.ScriptBip16
		der     = txscript.ScriptVerifyDERSignatures
		cltv    = txscript.ScriptVerifyCheckLockTimeVerify
		csv     = txscript.ScriptVerifyCheckSequenceVerify
		uahf    = txscript.ScriptVerifyStrictEncoding | txscript.ScriptEnableSigHashForkID
		daa     = txscript.ScriptVerifyLowS | txscript.ScriptVerifyNullFail
		mono    = txscript.ScriptEnableMonolithOpcodes
		anomaly = txscript.ScriptEnableCheckDataSig |
			txscript.ScriptVerifySigPushOnly | txscript.ScriptVerifyCleanStack
	)

	tests := []struct {
		prevHeight int32
		want       txscript.ScriptFlags
	}{
		{-1, p2sh},
		{0, p2sh},
		{98, p2sh},
		{99, p2sh | der},
		{199, p2sh | der | cltv},
		{299, p2sh | der | cltv},
		{300, p2sh | der | cltv | uahf},
		{400, p2sh | der | cltv | uahf | daa},

		// The median time past lags the tip by five blocks.
		{504, p2sh | der | cltv | uahf | daa},
		{505, p2sh | der | cltv | uahf | daa | mono},
		{605, p2sh | der | cltv | uahf | daa | mono | anomaly},

		// CSV locks in at the end of the second window.
		{862, p2sh | der | cltv | uahf | daa | mono | anomaly},
		{863, p2sh | der | cltv | uahf | daa | mono | anomaly | csv},
	}

	cache := NewThresholdCaches(chaincfg.DefinedDeployments, 0)
	for _, test := range tests {
		blockTime := testBaseTime + int64(test.prevHeight+1)*testSpacing
		flags, err := BlockScriptFlags(&params, c.at(test.prevHeight),
			blockTime, c, cache)
		require.NoError(t, err)
		if flags != test.want {
			t.Errorf("prev height %d: got flags %v, want %v",
				test.prevHeight, flags, test.want)
		}
	}
}

// TestBlockScriptFlagsP2SHSwitch ensures pay-to-script-hash follows the
// block timestamp.
func TestBlockScriptFlagsP2SHSwitch(t *testing.T) {
	t.Parallel()

	params := &chaincfg.RegressionNetParams
	flags, err := BlockScriptFlags(params, nil, bip16SwitchTime-1, nil, nil)
	require.NoError(t, err)
	require.Equal(t, txscript.ScriptFlags(0), flags)

	flags, err = BlockScriptFlags(params, nil, bip16SwitchTime, nil, nil)
	require.NoError(t, err)
	require.Equal(t, txscript.ScriptBip16, flags)

	// The regtest genesis block predates the switch.
	c := newTestChain(0, noSignalVersion)
	c.add(1, params.GenesisBlock.Header.Timestamp.Unix())
	flags, err = BlockScriptFlags(params, c.tip(), bip16SwitchTime-1, c, nil)
	require.NoError(t, err)
	require.Equal(t, txscript.ScriptVerifyStrictEncoding|
		txscript.ScriptEnableSigHashForkID|txscript.ScriptVerifyLowS|
		txscript.ScriptVerifyNullFail, flags)
}

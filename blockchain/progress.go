// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/sat20-labs/lyokocore/chaincfg"
)

// GuessVerificationProgress estimates the fraction of all transactions that
// have been verified once the block with the given timestamp, carrying the
// chain up to chainTxCount transactions, is connected.  The estimate
// extrapolates the network's ChainTxData up to now.
func GuessVerificationProgress(params *chaincfg.Params, chainTxCount int64,
	blockTime int64, now time.Time) float64 {

	data := &params.ChainTxData
	var txTotal float64
	if chainTxCount <= data.TxCount {
		txTotal = float64(data.TxCount) +
			float64(now.Unix()-data.Time)*data.TxRate
	} else {
		txTotal = float64(chainTxCount) +
			float64(now.Unix()-blockTime)*data.TxRate
	}
	if txTotal <= 0 {
		return 0
	}
	return float64(chainTxCount) / txTotal
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	btcscript "github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/sirupsen/logrus"
)

// logMsgTx dumps the inputs and outputs of msg at trace level.
func logMsgTx(title string, msg *wire.MsgTx) {
	if log.Logger == nil || !log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	log.Tracef("		---------------------------------")
	log.Tracef("%s", title)
	log.Tracef("tx: %s version: %d locktime: %d", msg.TxHash(), msg.Version,
		msg.LockTime)
	log.Tracef("txin: %d", len(msg.TxIn))
	for index, txin := range msg.TxIn {
		log.Tracef("		txin index: %d", index)
		log.Tracef("		txin utxo: %v", txin.PreviousOutPoint)
		log.Tracef("		txin sequence: %08x", txin.Sequence)
		log.Tracef("		txin SignatureScript: %x", txin.SignatureScript)
	}

	log.Tracef("txout: %d", len(msg.TxOut))
	for index, txout := range msg.TxOut {
		log.Tracef("		txout index: %d", index)
		log.Tracef("		txout pkscript: %x (%v)", txout.PkScript,
			btcscript.GetScriptClass(txout.PkScript))
		log.Tracef("		txout value: %d", txout.Value)
	}
	log.Tracef("		---------------------------------")
}

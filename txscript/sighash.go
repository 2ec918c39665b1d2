// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/binary"

	btcscript "github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// SigHashType represents hash type bits at the end of a signature.
type SigHashType uint32

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashForkID       SigHashType = 0x40
	SigHashAnyOneCanPay SigHashType = 0x80

	// sigHashMask defines the number of bits of the hash type which is used
	// to identify which outputs are signed.
	sigHashMask = 0x1f
)

// baseType returns the hash type without the fork id and anyone-can-pay
// modifiers.
func (t SigHashType) baseType() SigHashType {
	return t &^ (SigHashAnyOneCanPay | SigHashForkID)
}

// isDefined reports whether the base type is one of all, none or single.
func (t SigHashType) isDefined() bool {
	base := t.baseType()
	return base >= SigHashAll && base <= SigHashSingle
}

// hasForkID reports whether the fork id bit is set.
func (t SigHashType) hasForkID() bool {
	return t&SigHashForkID != 0
}

// forkIDMidstate holds the hashes over all inputs and outputs shared by the
// replay protected signature hashes of one transaction.
type forkIDMidstate struct {
	hashPrevOuts chainhash.Hash
	hashSequence chainhash.Hash
	hashOutputs  chainhash.Hash
}

// newForkIDMidstate computes the shared hashes for tx.
func newForkIDMidstate(tx *wire.MsgTx) *forkIDMidstate {
	// The previous outputs are not needed for the hashes computed here, so
	// a fetcher returning an empty output is used.
	fetcher := btcscript.NewCannedPrevOutputFetcher(nil, 0)
	hashes := btcscript.NewTxSigHashes(tx, fetcher)
	return &forkIDMidstate{
		hashPrevOuts: hashes.HashPrevOutsV0,
		hashSequence: hashes.HashSequenceV0,
		hashOutputs:  hashes.HashOutputsV0,
	}
}

// calcForkIDSignatureHash computes the replay protected signature hash.  The
// digest follows the BIP0143 layout: the script code is serialized as given
// and the amount of the spent output is committed to.
func calcForkIDSignatureHash(scriptCode []byte, midstate *forkIDMidstate,
	hashType SigHashType, tx *wire.MsgTx, idx int, amount int64) []byte {

	var zeroHash chainhash.Hash
	var sigHash bytes.Buffer

	// First write out, then encode the transaction's version number.
	var bVersion [4]byte
	binary.LittleEndian.PutUint32(bVersion[:], uint32(tx.Version))
	sigHash.Write(bVersion[:])

	// Next write out the possibly pre-calculated hashes for the sequence
	// numbers of all inputs, and the hashes of the previous outs for all
	// outputs.
	if hashType&SigHashAnyOneCanPay == 0 {
		sigHash.Write(midstate.hashPrevOuts[:])
	} else {
		sigHash.Write(zeroHash[:])
	}

	// If the sighash isn't anyone can pay, single, or none, the use the
	// cached hash sequences, otherwise write all zeroes for the
	// hashSequence.
	if hashType&SigHashAnyOneCanPay == 0 &&
		hashType&sigHashMask != SigHashSingle &&
		hashType&sigHashMask != SigHashNone {

		sigHash.Write(midstate.hashSequence[:])
	} else {
		sigHash.Write(zeroHash[:])
	}

	txIn := tx.TxIn[idx]

	// Next, write the outpoint being spent.
	sigHash.Write(txIn.PreviousOutPoint.Hash[:])
	var bIndex [4]byte
	binary.LittleEndian.PutUint32(bIndex[:], txIn.PreviousOutPoint.Index)
	sigHash.Write(bIndex[:])

	// The script code is written out as is, including any code separators
	// located after the last executed one.
	wire.WriteVarBytes(&sigHash, 0, scriptCode)

	// Next, add the input amount, and sequence number of the input being
	// signed.
	var bAmount [8]byte
	binary.LittleEndian.PutUint64(bAmount[:], uint64(amount))
	sigHash.Write(bAmount[:])
	var bSequence [4]byte
	binary.LittleEndian.PutUint32(bSequence[:], txIn.Sequence)
	sigHash.Write(bSequence[:])

	// If the current signature mode isn't single, or none, then we can
	// re-use the pre-generated hashoutputs sighash fragment. Otherwise,
	// we'll serialize and add only the target output index to the signature
	// pre-image.
	if hashType&sigHashMask != SigHashSingle &&
		hashType&sigHashMask != SigHashNone {

		sigHash.Write(midstate.hashOutputs[:])
	} else if hashType&sigHashMask == SigHashSingle && idx < len(tx.TxOut) {
		var b bytes.Buffer
		wire.WriteTxOut(&b, 0, 0, tx.TxOut[idx])
		sigHash.Write(chainhash.DoubleHashB(b.Bytes()))
	} else {
		sigHash.Write(zeroHash[:])
	}

	// Finally, write out the transaction's locktime, and the sig hash
	// type.
	var bLockTime [4]byte
	binary.LittleEndian.PutUint32(bLockTime[:], tx.LockTime)
	sigHash.Write(bLockTime[:])
	var bHashType [4]byte
	binary.LittleEndian.PutUint32(bHashType[:], uint32(hashType))
	sigHash.Write(bHashType[:])

	return chainhash.DoubleHashB(sigHash.Bytes())
}

// calcLegacySignatureHash computes the original signature hash.  Code
// separators are removed from scriptCode; the caller is responsible for
// removing the signature itself.
func calcLegacySignatureHash(scriptCode []byte, hashType SigHashType,
	tx *wire.MsgTx, idx int) ([]byte, error) {

	return btcscript.CalcSignatureHash(scriptCode,
		btcscript.SigHashType(hashType), tx, idx)
}

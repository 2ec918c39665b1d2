// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/sat20-labs/lyokocore/txscript"
)

// APIVersion is the version of the script verification interface.
const APIVersion = 1

// ErrorCode identifies why a verification request could not be evaluated.
// The values are part of the external interface and never change.
type ErrorCode int

const (
	// ErrOK means the request was evaluated.  The verdict says whether
	// the input is valid.
	ErrOK ErrorCode = 0

	// ErrTxIndex means the input index is not below the number of inputs
	// of the transaction.
	ErrTxIndex ErrorCode = 1

	// ErrTxSizeMismatch means the transaction bytes carry trailing data
	// after the serialized transaction.
	ErrTxSizeMismatch ErrorCode = 2

	// ErrTxDeserialize means the transaction bytes could not be decoded.
	ErrTxDeserialize ErrorCode = 3

	// ErrAmountRequired means the flags enable the replay protected
	// signature hash, which commits to the spent amount, but no amount
	// was supplied.
	ErrAmountRequired ErrorCode = 4

	// ErrInvalidFlags means the flags contain bits outside of the
	// supported set.
	ErrInvalidFlags ErrorCode = 5

	// ErrScriptFailed means the scripts were evaluated and did not
	// succeed.
	ErrScriptFailed ErrorCode = 6
)

var errorCodeStrings = map[ErrorCode]string{
	ErrOK:             "ErrOK",
	ErrTxIndex:        "ErrTxIndex",
	ErrTxSizeMismatch: "ErrTxSizeMismatch",
	ErrTxDeserialize:  "ErrTxDeserialize",
	ErrAmountRequired: "ErrAmountRequired",
	ErrInvalidFlags:   "ErrInvalidFlags",
	ErrScriptFailed:   "ErrScriptFailed",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Verification flags.  Each bit matches the script engine flag of the same
// position.
const (
	VerifyNone uint32 = 0

	// VerifyP2SH evaluates pay-to-script-hash redeem scripts (BIP0016).
	VerifyP2SH uint32 = 1 << 0

	// VerifyDERSig enforces strict DER signatures (BIP0066).
	VerifyDERSig uint32 = 1 << 2

	// VerifyNullDummy requires the extra multisig stack item to be empty
	// (BIP0147).
	VerifyNullDummy uint32 = 1 << 4

	// VerifyCheckLockTimeVerify enables OP_CHECKLOCKTIMEVERIFY (BIP0065).
	VerifyCheckLockTimeVerify uint32 = 1 << 9

	// VerifyCheckSequenceVerify enables OP_CHECKSEQUENCEVERIFY (BIP0112).
	VerifyCheckSequenceVerify uint32 = 1 << 10

	// VerifyWitnessDeprecated is the retired segregated witness bit.  It is
	// rejected as an invalid flag.
	VerifyWitnessDeprecated uint32 = 1 << 11

	// EnableSigHashForkID enables the replay protected signature hash and
	// requires the spent amount.
	EnableSigHashForkID uint32 = 1 << 16

	// VerifyAll is every verification rule that can be requested.
	VerifyAll = VerifyP2SH | VerifyDERSig | VerifyNullDummy |
		VerifyCheckLockTimeVerify | VerifyCheckSequenceVerify
)

// supportedFlags is the set of flags a request may carry.
const supportedFlags = VerifyAll | EnableSigHashForkID

// Request is a single script verification request.
type Request struct {
	// ScriptPubKey is the output script being spent.
	ScriptPubKey []byte

	// Tx is the serialized spending transaction.
	Tx []byte

	// InputIndex selects the input of Tx that spends ScriptPubKey.
	InputIndex uint32

	// Flags is a combination of the Verify* and Enable* flags.
	Flags uint32

	// Amount is the value of the spent output in satoshi.  It is only
	// required with EnableSigHashForkID.
	Amount *int64
}

// Result is the outcome of a verification request.
type Result struct {
	// Valid is true when the input correctly spends the output.
	Valid bool

	// Err is ErrOK for a valid input and explains the failure otherwise.
	Err ErrorCode

	// ScriptErr is the script engine error for ErrScriptFailed.
	ScriptErr error
}

// Version returns the version of the verification interface.
func Version() uint32 {
	return APIVersion
}

// Verify checks whether input InputIndex of the transaction correctly spends
// ScriptPubKey under Flags.  It holds no state between calls and is safe for
// concurrent use.
func Verify(req *Request) Result {
	if req.Flags&EnableSigHashForkID != 0 && req.Amount == nil {
		return Result{Err: ErrAmountRequired}
	}
	if req.Flags&^supportedFlags != 0 {
		return Result{Err: ErrInvalidFlags}
	}

	var tx wire.MsgTx
	if err := tx.DeserializeNoWitness(bytes.NewReader(req.Tx)); err != nil {
		log.Tracef("Failed to decode transaction: %v", err)
		return Result{Err: ErrTxDeserialize}
	}
	if uint64(req.InputIndex) >= uint64(len(tx.TxIn)) {
		return Result{Err: ErrTxIndex}
	}
	if tx.SerializeSizeStripped() != len(req.Tx) {
		return Result{Err: ErrTxSizeMismatch}
	}

	var amount int64
	if req.Amount != nil {
		amount = *req.Amount
	}
	err := txscript.VerifyScript(req.ScriptPubKey, &tx,
		int(req.InputIndex), txscript.ScriptFlags(req.Flags), amount)
	if err != nil {
		log.Tracef("Input %d of %v failed: %v", req.InputIndex,
			tx.TxHash(), err)
		logMsgTx("Rejected spend", &tx)
		return Result{Err: ErrScriptFailed, ScriptErr: err}
	}
	return Result{Valid: true, Err: ErrOK}
}

// VerifyScript verifies input nIn of the serialized transaction txTo against
// scriptPubKey without an amount.  Requests enabling the replay protected
// signature hash fail with ErrAmountRequired.
func VerifyScript(scriptPubKey, txTo []byte, nIn, flags uint32) (bool, ErrorCode) {
	res := Verify(&Request{
		ScriptPubKey: scriptPubKey,
		Tx:           txTo,
		InputIndex:   nIn,
		Flags:        flags,
	})
	return res.Valid, res.Err
}

// VerifyScriptWithAmount is VerifyScript for a spent output of the given
// amount.
func VerifyScriptWithAmount(scriptPubKey []byte, amount int64, txTo []byte,
	nIn, flags uint32) (bool, ErrorCode) {

	res := Verify(&Request{
		ScriptPubKey: scriptPubKey,
		Tx:           txTo,
		InputIndex:   nIn,
		Flags:        flags,
		Amount:       &amount,
	})
	return res.Valid, res.Err
}

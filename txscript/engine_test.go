// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcscript "github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// noErr marks a test case that must execute successfully.
const noErr ErrorCode = -1

// script concatenates script fragments.
func script(parts ...[]byte) []byte {
	var s []byte
	for _, p := range parts {
		s = append(s, p...)
	}
	return s
}

// ops returns the opcodes as a script fragment.
func ops(o ...byte) []byte {
	return o
}

// push returns the canonical push of data as a script fragment.
func push(data []byte) []byte {
	return canonicalPush(data)
}

// newSpendTx returns a transaction spending the single output, paying to
// pkScript, of a coinbase like funding transaction.
func newSpendTx(sigScript, pkScript []byte, amount int64) *wire.MsgTx {
	funding := wire.NewMsgTx(1)
	funding.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, ^uint32(0)),
		SignatureScript:  []byte{btcscript.OP_0, btcscript.OP_0},
		Sequence:         wire.MaxTxInSequenceNum,
	})
	funding.AddTxOut(wire.NewTxOut(amount, pkScript))
	fundingHash := funding.TxHash()

	spend := wire.NewMsgTx(1)
	spend.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&fundingHash, 0),
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	spend.AddTxOut(wire.NewTxOut(amount, nil))
	return spend
}

// checkResult reports a mismatch between err and the expected error code.
func checkResult(t *testing.T, name string, err error, want ErrorCode) {
	t.Helper()
	if want == noErr {
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
		return
	}
	if !IsErrorCode(err, want) {
		t.Errorf("%s: got error %v, want %v", name, err, want)
	}
}

// TestScripts executes script pairs and checks the outcome.
func TestScripts(t *testing.T) {
	t.Parallel()

	redeem := ops(btcscript.OP_2, btcscript.OP_3, btcscript.OP_ADD,
		btcscript.OP_5, btcscript.OP_EQUAL)
	p2sh := script(ops(btcscript.OP_HASH160), push(btcutil.Hash160(redeem)),
		ops(btcscript.OP_EQUAL))
	falseRedeem := ops(btcscript.OP_0)
	p2shFalse := script(ops(btcscript.OP_HASH160),
		push(btcutil.Hash160(falseRedeem)), ops(btcscript.OP_EQUAL))

	const monolith = ScriptEnableMonolithOpcodes

	tests := []struct {
		name  string
		sig   []byte
		pk    []byte
		flags ScriptFlags
		err   ErrorCode
	}{
		{
			name: "true",
			pk:   ops(btcscript.OP_1),
			err:  noErr,
		},
		{
			name: "false",
			pk:   ops(btcscript.OP_0),
			err:  ErrEvalFalse,
		},
		{
			name: "empty",
			err:  ErrEvalFalse,
		},
		{
			name: "negative zero is false",
			pk:   push([]byte{0x80}),
			err:  ErrEvalFalse,
		},
		{
			name: "addition",
			sig:  ops(btcscript.OP_2),
			pk: ops(btcscript.OP_3, btcscript.OP_ADD, btcscript.OP_5,
				btcscript.OP_EQUAL),
			err: noErr,
		},
		{
			name: "op_return",
			pk:   ops(btcscript.OP_1, btcscript.OP_RETURN),
			err:  ErrEarlyReturn,
		},
		{
			name: "verif in unexecuted branch",
			pk: ops(btcscript.OP_0, btcscript.OP_IF, btcscript.OP_VERIF,
				btcscript.OP_ENDIF, btcscript.OP_1),
			err: ErrReservedOpcode,
		},
		{
			name: "vernotif in unexecuted branch",
			pk: ops(btcscript.OP_0, btcscript.OP_IF, btcscript.OP_VERNOTIF,
				btcscript.OP_ENDIF, btcscript.OP_1),
			err: ErrReservedOpcode,
		},
		{
			name: "ver in unexecuted branch",
			pk: ops(btcscript.OP_0, btcscript.OP_IF, btcscript.OP_VER,
				btcscript.OP_ENDIF, btcscript.OP_1),
			err: noErr,
		},
		{
			name: "ver executed",
			pk:   ops(btcscript.OP_1, btcscript.OP_VER),
			err:  ErrReservedOpcode,
		},
		{
			name: "disabled opcode in unexecuted branch",
			pk: ops(btcscript.OP_0, btcscript.OP_IF, btcscript.OP_MUL,
				btcscript.OP_ENDIF, btcscript.OP_1),
			err: ErrDisabledOpcode,
		},
		{
			name: "if else endif",
			pk: ops(btcscript.OP_0, btcscript.OP_IF, btcscript.OP_0,
				btcscript.OP_ELSE, btcscript.OP_1, btcscript.OP_ENDIF),
			err: noErr,
		},
		{
			name: "notif",
			pk: ops(btcscript.OP_0, btcscript.OP_NOTIF, btcscript.OP_1,
				btcscript.OP_ENDIF),
			err: noErr,
		},
		{
			name: "unterminated if",
			pk:   ops(btcscript.OP_1, btcscript.OP_IF, btcscript.OP_1),
			err:  ErrUnbalancedConditional,
		},
		{
			name: "endif without if",
			pk:   ops(btcscript.OP_1, btcscript.OP_ENDIF),
			err:  ErrUnbalancedConditional,
		},
		{
			name: "if without operand",
			pk:   ops(btcscript.OP_IF, btcscript.OP_ENDIF),
			err:  ErrUnbalancedConditional,
		},
		{
			name: "conditional does not span scripts",
			sig:  ops(btcscript.OP_1, btcscript.OP_IF),
			pk:   ops(btcscript.OP_ENDIF, btcscript.OP_1),
			err:  ErrUnbalancedConditional,
		},
		{
			name:  "minimal if",
			pk:    script(push([]byte{2}), ops(btcscript.OP_IF, btcscript.OP_1, btcscript.OP_ENDIF)),
			flags: ScriptVerifyMinimalIf,
			err:   ErrMinimalIf,
		},
		{
			name: "non minimal if without flag",
			pk:   script(push([]byte{2}), ops(btcscript.OP_IF, btcscript.OP_1, btcscript.OP_ENDIF)),
			err:  noErr,
		},
		{
			name:  "non minimal push",
			pk:    ops(btcscript.OP_DATA_1, 0x05),
			flags: ScriptVerifyMinimalData,
			err:   ErrMinimalData,
		},
		{
			name: "non minimal push without flag",
			pk:   ops(btcscript.OP_DATA_1, 0x05),
			err:  noErr,
		},
		{
			name:  "non minimal number",
			pk:    script(push([]byte{0x01, 0x00}), ops(btcscript.OP_1ADD)),
			flags: ScriptVerifyMinimalData,
			err:   ErrMinimalData,
		},
		{
			name: "number too big",
			pk: script(push([]byte{1, 2, 3, 4, 5}),
				ops(btcscript.OP_1ADD)),
			err: ErrNumberTooBig,
		},
		{
			name: "malformed push",
			pk:   ops(btcscript.OP_1, btcscript.OP_DATA_2, 0x01),
			err:  ErrMalformedPush,
		},
		{
			name: "element too big",
			pk:   script(push(make([]byte, MaxScriptElementSize+1)), ops(btcscript.OP_1)),
			err:  ErrElementTooBig,
		},
		{
			name: "max element size",
			pk: script(push(make([]byte, MaxScriptElementSize)),
				ops(btcscript.OP_DROP, btcscript.OP_1)),
			err: noErr,
		},
		{
			name: "script too big",
			pk:   bytes.Repeat([]byte{btcscript.OP_1}, MaxScriptSize+1),
			err:  ErrScriptTooBig,
		},
		{
			name: "stack overflow",
			pk:   bytes.Repeat([]byte{btcscript.OP_1}, MaxStackSize+1),
			err:  ErrStackOverflow,
		},
		{
			name: "too many operations",
			pk: script(ops(btcscript.OP_1),
				bytes.Repeat([]byte{btcscript.OP_NOP}, MaxOpsPerScript+1)),
			err: ErrTooManyOperations,
		},
		{
			name: "max operations",
			pk: script(ops(btcscript.OP_1),
				bytes.Repeat([]byte{btcscript.OP_NOP}, MaxOpsPerScript)),
			err: noErr,
		},
		{
			name:  "discouraged nop",
			pk:    ops(btcscript.OP_1, btcscript.OP_NOP1),
			flags: ScriptDiscourageUpgradableNops,
			err:   ErrDiscourageUpgradableNOPs,
		},
		{
			name: "nop",
			pk:   ops(btcscript.OP_1, btcscript.OP_NOP1, btcscript.OP_NOP10),
			err:  noErr,
		},
		{
			name: "pick",
			pk: ops(btcscript.OP_1, btcscript.OP_2, btcscript.OP_3,
				btcscript.OP_2, btcscript.OP_PICK, btcscript.OP_1,
				btcscript.OP_EQUALVERIFY, btcscript.OP_DEPTH,
				btcscript.OP_3, btcscript.OP_EQUAL),
			err: noErr,
		},
		{
			name: "roll",
			pk: ops(btcscript.OP_1, btcscript.OP_2, btcscript.OP_3,
				btcscript.OP_2, btcscript.OP_ROLL, btcscript.OP_1,
				btcscript.OP_EQUALVERIFY, btcscript.OP_DEPTH,
				btcscript.OP_2, btcscript.OP_EQUAL),
			err: noErr,
		},
		{
			name: "pick out of range",
			pk:   ops(btcscript.OP_1, btcscript.OP_5, btcscript.OP_PICK),
			err:  ErrInvalidStackOperation,
		},
		{
			name: "within",
			pk: ops(btcscript.OP_2, btcscript.OP_1, btcscript.OP_3,
				btcscript.OP_WITHIN),
			err: noErr,
		},
		{
			name: "alt stack",
			pk: ops(btcscript.OP_1, btcscript.OP_TOALTSTACK,
				btcscript.OP_FROMALTSTACK),
			err: noErr,
		},
		{
			name: "empty alt stack",
			pk:   ops(btcscript.OP_1, btcscript.OP_FROMALTSTACK),
			err:  ErrInvalidAltStackOperation,
		},
		{
			name: "sha256",
			pk: script(ops(btcscript.OP_0, btcscript.OP_SHA256),
				push(chainhash.HashB(nil)), ops(btcscript.OP_EQUAL)),
			err: noErr,
		},
		{
			name: "hash160",
			pk: script(push([]byte("abc")), ops(btcscript.OP_HASH160),
				push(btcutil.Hash160([]byte("abc"))),
				ops(btcscript.OP_EQUAL)),
			err: noErr,
		},
		{
			name: "hash256",
			pk: script(push([]byte("abc")), ops(btcscript.OP_HASH256),
				push(chainhash.DoubleHashB([]byte("abc"))),
				ops(btcscript.OP_EQUAL)),
			err: noErr,
		},
		{
			name: "cat disabled",
			pk: script(push([]byte("ab")), push([]byte("cd")),
				ops(btcscript.OP_CAT)),
			err: ErrDisabledOpcode,
		},
		{
			name: "cat",
			pk: script(push([]byte("ab")), push([]byte("cd")),
				ops(btcscript.OP_CAT), push([]byte("abcd")),
				ops(btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "cat too big",
			pk: script(push(make([]byte, 300)), push(make([]byte, 300)),
				ops(btcscript.OP_CAT)),
			flags: monolith,
			err:   ErrElementTooBig,
		},
		{
			name: "split",
			pk: script(push([]byte("abcd")), ops(btcscript.OP_2, OP_SPLIT),
				push([]byte("cd")), ops(btcscript.OP_EQUALVERIFY),
				push([]byte("ab")), ops(btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "split at end",
			pk: script(push([]byte("ab")), ops(btcscript.OP_2, OP_SPLIT,
				btcscript.OP_SIZE, btcscript.OP_0, btcscript.OP_EQUALVERIFY,
				btcscript.OP_DROP), push([]byte("ab")),
				ops(btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name:  "split out of range",
			pk:    script(push([]byte("ab")), ops(btcscript.OP_3, OP_SPLIT)),
			flags: monolith,
			err:   ErrInvalidSplitRange,
		},
		{
			name: "and",
			pk: script(push([]byte{0x0f, 0xf0}), push([]byte{0xff, 0x10}),
				ops(btcscript.OP_AND), push([]byte{0x0f, 0x10}),
				ops(btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "xor",
			pk: script(push([]byte{0x0f, 0xf0}), push([]byte{0xff, 0x10}),
				ops(btcscript.OP_XOR), push([]byte{0xf0, 0xe0}),
				ops(btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "or operand size",
			pk: script(push([]byte{0x0f}), push([]byte{0xff, 0x10}),
				ops(btcscript.OP_OR)),
			flags: monolith,
			err:   ErrInvalidOperandSize,
		},
		{
			name: "num2bin",
			pk: script(ops(btcscript.OP_1, btcscript.OP_4, OP_NUM2BIN),
				push([]byte{0x01, 0x00, 0x00, 0x00}),
				ops(btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "num2bin negative",
			pk: script(ops(btcscript.OP_1NEGATE, btcscript.OP_4, OP_NUM2BIN),
				push([]byte{0x01, 0x00, 0x00, 0x80}),
				ops(btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "num2bin impossible",
			pk: script(push([]byte{0x01, 0x02}),
				ops(btcscript.OP_1, OP_NUM2BIN)),
			flags: monolith,
			err:   ErrImpossibleEncoding,
		},
		{
			name: "num2bin too big",
			pk: script(ops(btcscript.OP_1),
				push(scriptNum(MaxScriptElementSize+1).Bytes()),
				ops(OP_NUM2BIN)),
			flags: monolith,
			err:   ErrElementTooBig,
		},
		{
			name: "bin2num",
			pk: script(push([]byte{0x01, 0x00, 0x00, 0x80}),
				ops(OP_BIN2NUM, btcscript.OP_1NEGATE, btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "bin2num too big",
			pk: script(push([]byte{1, 2, 3, 4, 5}),
				ops(OP_BIN2NUM)),
			flags: monolith,
			err:   ErrNumberTooBig,
		},
		{
			name: "div",
			pk: ops(btcscript.OP_7, btcscript.OP_2, btcscript.OP_DIV,
				btcscript.OP_3, btcscript.OP_EQUAL),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "div truncates toward zero",
			pk: script(push(scriptNum(-7).Bytes()), ops(btcscript.OP_2,
				btcscript.OP_DIV), push(scriptNum(-3).Bytes()),
				ops(btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "mod",
			pk: script(push(scriptNum(-7).Bytes()), ops(btcscript.OP_2,
				btcscript.OP_MOD, btcscript.OP_1NEGATE,
				btcscript.OP_EQUAL)),
			flags: monolith,
			err:   noErr,
		},
		{
			name: "div by zero",
			pk: ops(btcscript.OP_1, btcscript.OP_0, btcscript.OP_DIV,
				btcscript.OP_1),
			flags: monolith,
			err:   ErrDivByZero,
		},
		{
			name: "mod by zero",
			pk: ops(btcscript.OP_1, btcscript.OP_0, btcscript.OP_MOD,
				btcscript.OP_1),
			flags: monolith,
			err:   ErrModByZero,
		},
		{
			name: "mul always disabled",
			pk: ops(btcscript.OP_2, btcscript.OP_2, btcscript.OP_MUL,
				btcscript.OP_4, btcscript.OP_EQUAL),
			flags: monolith,
			err:   ErrDisabledOpcode,
		},
		{
			name: "checkdatasig reserved",
			pk: ops(btcscript.OP_0, btcscript.OP_0, btcscript.OP_0,
				OP_CHECKDATASIG),
			err: ErrReservedOpcode,
		},
		{
			name: "checkdatasig empty signature",
			pk: ops(btcscript.OP_0, btcscript.OP_0, btcscript.OP_0,
				OP_CHECKDATASIG, btcscript.OP_NOT),
			flags: ScriptEnableCheckDataSig,
			err:   noErr,
		},
		{
			name: "checkdatasig bad pubkey",
			pk: ops(btcscript.OP_0, btcscript.OP_0, btcscript.OP_0,
				OP_CHECKDATASIG, btcscript.OP_NOT),
			flags: ScriptEnableCheckDataSig | ScriptVerifyStrictEncoding,
			err:   ErrPubKeyType,
		},
		{
			name: "sig push only",
			sig:  ops(btcscript.OP_1, btcscript.OP_NOP),
			pk:   ops(btcscript.OP_1),
			flags: ScriptVerifySigPushOnly,
			err:   ErrNotPushOnly,
		},
		{
			name:  "clean stack",
			sig:   ops(btcscript.OP_1, btcscript.OP_1),
			pk:    ops(btcscript.OP_1),
			flags: ScriptBip16 | ScriptVerifyCleanStack,
			err:   ErrCleanStack,
		},
		{
			name:  "clean stack satisfied",
			sig:   ops(btcscript.OP_1),
			pk:    ops(btcscript.OP_NOP),
			flags: ScriptBip16 | ScriptVerifyCleanStack,
			err:   noErr,
		},
		{
			name:  "p2sh",
			sig:   push(redeem),
			pk:    p2sh,
			flags: ScriptBip16,
			err:   noErr,
		},
		{
			name:  "p2sh false redeem script",
			sig:   push(falseRedeem),
			pk:    p2shFalse,
			flags: ScriptBip16,
			err:   ErrEvalFalse,
		},
		{
			name: "p2sh false redeem script before bip16",
			sig:  push(falseRedeem),
			pk:   p2shFalse,
			err:  noErr,
		},
		{
			name:  "p2sh not push only",
			sig:   script(ops(btcscript.OP_NOP), push(redeem)),
			pk:    p2sh,
			flags: ScriptBip16,
			err:   ErrNotPushOnly,
		},
		{
			name:  "p2sh clean stack",
			sig:   script(ops(btcscript.OP_1), push(redeem)),
			pk:    p2sh,
			flags: ScriptBip16 | ScriptVerifyCleanStack,
			err:   ErrCleanStack,
		},
	}

	for _, test := range tests {
		tx := newSpendTx(test.sig, test.pk, 0)
		err := VerifyScript(test.pk, tx, 0, test.flags, 0)
		checkResult(t, test.name, err, test.err)
	}
}

// TestNewEngineErrors ensures invalid arguments are rejected.
func TestNewEngineErrors(t *testing.T) {
	t.Parallel()

	pk := ops(btcscript.OP_1)
	tx := newSpendTx(nil, pk, 0)

	_, err := NewEngine(pk, tx, 1, 0, 0)
	checkResult(t, "index too large", err, ErrInvalidIndex)

	_, err = NewEngine(pk, tx, -1, 0, 0)
	checkResult(t, "negative index", err, ErrInvalidIndex)

	_, err = NewEngine(pk, tx, 0, ScriptVerifyCleanStack, 0)
	checkResult(t, "clean stack without p2sh", err, ErrInvalidFlags)
}

// TestLockTimes exercises OP_CHECKLOCKTIMEVERIFY and OP_CHECKSEQUENCEVERIFY.
func TestLockTimes(t *testing.T) {
	t.Parallel()

	const (
		cltv = ScriptVerifyCheckLockTimeVerify
		csv  = ScriptVerifyCheckSequenceVerify
	)

	tests := []struct {
		name     string
		pk       []byte
		version  int32
		lockTime uint32
		sequence uint32
		flags    ScriptFlags
		err      ErrorCode
	}{
		{
			name:     "cltv satisfied",
			pk:       script(push([]byte{50}), ops(btcscript.OP_CHECKLOCKTIMEVERIFY)),
			lockTime: 100,
			flags:    cltv,
			err:      noErr,
		},
		{
			name:     "cltv unsatisfied",
			pk:       script(push([]byte{0x7f}), push([]byte{0x01}), ops(btcscript.OP_ADD, btcscript.OP_CHECKLOCKTIMEVERIFY)),
			lockTime: 100,
			flags:    cltv,
			err:      ErrUnsatisfiedLockTime,
		},
		{
			name:     "cltv as nop",
			pk:       script(push(scriptNum(200).Bytes()), ops(btcscript.OP_CHECKLOCKTIMEVERIFY)),
			lockTime: 100,
			err:      noErr,
		},
		{
			name:     "cltv finalized input",
			pk:       script(push([]byte{50}), ops(btcscript.OP_CHECKLOCKTIMEVERIFY)),
			lockTime: 100,
			sequence: wire.MaxTxInSequenceNum,
			flags:    cltv,
			err:      ErrUnsatisfiedLockTime,
		},
		{
			name:     "cltv type mismatch",
			pk:       script(push(scriptNum(lockTimeThreshold).Bytes()), ops(btcscript.OP_CHECKLOCKTIMEVERIFY)),
			lockTime: 100,
			flags:    cltv,
			err:      ErrUnsatisfiedLockTime,
		},
		{
			name:  "cltv negative",
			pk:    ops(btcscript.OP_1NEGATE, btcscript.OP_CHECKLOCKTIMEVERIFY),
			flags: cltv,
			err:   ErrNegativeLockTime,
		},
		{
			name:     "csv satisfied",
			pk:       ops(btcscript.OP_5, btcscript.OP_CHECKSEQUENCEVERIFY),
			version:  2,
			sequence: 10,
			flags:    csv,
			err:      noErr,
		},
		{
			name:     "csv unsatisfied",
			pk:       script(push([]byte{20}), ops(btcscript.OP_CHECKSEQUENCEVERIFY)),
			version:  2,
			sequence: 10,
			flags:    csv,
			err:      ErrUnsatisfiedLockTime,
		},
		{
			name:     "csv version 1",
			pk:       ops(btcscript.OP_5, btcscript.OP_CHECKSEQUENCEVERIFY),
			version:  1,
			sequence: 10,
			flags:    csv,
			err:      ErrUnsatisfiedLockTime,
		},
		{
			name:     "csv disabled operand",
			pk:       script(push([]byte{0x00, 0x00, 0x00, 0x80, 0x00}), ops(btcscript.OP_CHECKSEQUENCEVERIFY)),
			version:  1,
			sequence: 10,
			flags:    csv,
			err:      noErr,
		},
		{
			name:     "csv disabled input",
			pk:       ops(btcscript.OP_5, btcscript.OP_CHECKSEQUENCEVERIFY),
			version:  2,
			sequence: sequenceLockTimeDisabled | 10,
			flags:    csv,
			err:      ErrUnsatisfiedLockTime,
		},
		{
			name:     "csv as nop",
			pk:       script(push([]byte{20}), ops(btcscript.OP_CHECKSEQUENCEVERIFY)),
			version:  2,
			sequence: 10,
			err:      noErr,
		},
		{
			name:     "csv discouraged",
			pk:       script(push([]byte{20}), ops(btcscript.OP_CHECKSEQUENCEVERIFY)),
			version:  2,
			sequence: 10,
			flags:    ScriptDiscourageUpgradableNops,
			err:      ErrDiscourageUpgradableNOPs,
		},
	}

	for _, test := range tests {
		tx := newSpendTx(nil, test.pk, 0)
		tx.Version = test.version
		if tx.Version == 0 {
			tx.Version = 1
		}
		tx.LockTime = test.lockTime
		tx.TxIn[0].Sequence = test.sequence

		err := VerifyScript(test.pk, tx, 0, test.flags, 0)
		checkResult(t, test.name, err, test.err)
	}
}

// TestOpcodeName ensures the redefined opcodes carry their new names.
func TestOpcodeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opcode byte
		want   string
	}{
		{btcscript.OP_0, "OP_0"},
		{btcscript.OP_1, "OP_1"},
		{btcscript.OP_CAT, "OP_CAT"},
		{OP_SPLIT, "OP_SPLIT"},
		{OP_NUM2BIN, "OP_NUM2BIN"},
		{OP_BIN2NUM, "OP_BIN2NUM"},
		{OP_CHECKDATASIG, "OP_CHECKDATASIG"},
		{OP_CHECKDATASIGVERIFY, "OP_CHECKDATASIGVERIFY"},
		{btcscript.OP_CHECKSIG, "OP_CHECKSIG"},
	}
	for _, test := range tests {
		if got := opcodeName(test.opcode); got != test.want {
			t.Errorf("opcodeName(0x%02x): got %s, want %s", test.opcode,
				got, test.want)
		}
	}
}

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	btcscript "github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// MaxScriptSize is the maximum allowed length of a raw script.
	MaxScriptSize = 10000

	// MaxScriptElementSize is the max number of bytes allowed in a single
	// pushed stack element.
	MaxScriptElementSize = 520

	// MaxOpsPerScript is the maximum number of non-push operations.
	MaxOpsPerScript = 201

	// MaxPubKeysPerMultiSig is the maximum number of public keys allowed
	// in a multi-signature transaction output script.
	MaxPubKeysPerMultiSig = 20

	// MaxStackSize is the maximum combined height of stack and alt stack
	// during execution.
	MaxStackSize = 1000
)

// Engine is the virtual machine that executes scripts.
type Engine struct {
	flags        ScriptFlags
	tx           *wire.MsgTx
	txIdx        int
	amount       int64
	scriptPubKey []byte
	dstack       stack

	// midstate is computed on first use by a replay protected signature
	// check.
	midstate *forkIDMidstate
}

// hasFlag returns whether the script engine instance has the passed flag set.
func (vm *Engine) hasFlag(flag ScriptFlags) bool {
	return vm.flags&flag == flag
}

// NewEngine returns a new script engine for the provided public key script,
// transaction, and input index.  The flags modify the behavior of the script
// engine according to the description provided by each flag.  amount is the
// value of the output being spent; it is only read by replay protected
// signature checks.
func NewEngine(scriptPubKey []byte, tx *wire.MsgTx, txIdx int,
	flags ScriptFlags, amount int64) (*Engine, error) {

	// The provided transaction input index must refer to a valid input.
	if txIdx < 0 || txIdx >= len(tx.TxIn) {
		str := fmt.Sprintf("transaction input index %d is negative or "+
			">= %d", txIdx, len(tx.TxIn))
		return nil, scriptError(ErrInvalidIndex, str)
	}

	// The clean stack flag is not allowed without the pay-to-script-hash
	// flag since the stack of a redeemed script would otherwise never be
	// clean.
	if flags&ScriptVerifyCleanStack != 0 && flags&ScriptBip16 == 0 {
		return nil, scriptError(ErrInvalidFlags,
			"invalid flags combination")
	}

	vm := &Engine{
		flags:        flags,
		tx:           tx,
		txIdx:        txIdx,
		amount:       amount,
		scriptPubKey: scriptPubKey,
	}
	vm.dstack.verifyMinimalData = vm.hasFlag(ScriptVerifyMinimalData)
	return vm, nil
}

// Execute runs the signature script of the input followed by the public key
// script, and the redeem script for pay-to-script-hash outputs.  A nil
// return means the input is valid.
func (vm *Engine) Execute() error {
	scriptSig := vm.tx.TxIn[vm.txIdx].SignatureScript

	if vm.hasFlag(ScriptVerifySigPushOnly) && !isPushOnly(scriptSig) {
		return scriptError(ErrNotPushOnly,
			"signature script is not push only")
	}

	if err := vm.evalScript(scriptSig); err != nil {
		return err
	}

	var savedStack [][]byte
	bip16 := vm.hasFlag(ScriptBip16)
	if bip16 {
		savedStack = append([][]byte(nil), vm.dstack.stk...)
	}

	if err := vm.evalScript(vm.scriptPubKey); err != nil {
		return err
	}
	if err := vm.checkFinalStack(); err != nil {
		return err
	}

	// Additional validation for spend-to-script-hash transactions.
	if bip16 && isScriptHash(vm.scriptPubKey) {
		// The signature script must only contain data pushes for
		// pay-to-script-hash spends.
		if !isPushOnly(scriptSig) {
			return scriptError(ErrNotPushOnly,
				"pay to script hash is not push only")
		}

		vm.dstack.stk = savedStack
		redeemScript, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}

		log.Tracef("%v", newLogClosure(func() string {
			return fmt.Sprintf("input %d redeem script %x", vm.txIdx,
				redeemScript)
		}))

		if err := vm.evalScript(redeemScript); err != nil {
			return err
		}
		if err := vm.checkFinalStack(); err != nil {
			return err
		}
	}

	// The clean stack rule requires exactly one element to remain.
	if vm.hasFlag(ScriptVerifyCleanStack) && vm.dstack.Depth() != 1 {
		str := fmt.Sprintf("stack must contain exactly one item (contains "+
			"%d)", vm.dstack.Depth())
		return scriptError(ErrCleanStack, str)
	}

	return nil
}

// checkFinalStack returns an error unless the data stack is non-empty with a
// true top element.
func (vm *Engine) checkFinalStack() error {
	if vm.dstack.Depth() < 1 {
		return scriptError(ErrEvalFalse,
			"stack empty at end of script execution")
	}
	v, err := vm.dstack.PeekBool(0)
	if err != nil {
		return err
	}
	if !v {
		return scriptError(ErrEvalFalse,
			"false stack entry at end of script execution")
	}
	return nil
}

// evalState holds the state of the script being evaluated.  The data stack
// is shared between the scripts of an input while the rest is not.
type evalState struct {
	script     []byte
	condStack  []bool
	altStack   stack
	numOps     int
	codeSepIdx int32
	nextIdx    int32
}

// isBranchExecuting returns whether or not the current conditional branch is
// actively executing.  For example, when the data stack has an OP_FALSE on it
// and an OP_IF is encountered, the branch is inactive until an OP_ELSE or
// OP_ENDIF is encountered.  It properly handles nested conditionals.
func (s *evalState) isBranchExecuting() bool {
	for _, v := range s.condStack {
		if !v {
			return false
		}
	}
	return true
}

// scriptCode returns the part of the script after the last executed code
// separator.
func (s *evalState) scriptCode() []byte {
	return s.script[s.codeSepIdx:]
}

// evalScript executes script on the data stack of the engine.
func (vm *Engine) evalScript(script []byte) error {
	if len(script) > MaxScriptSize {
		str := fmt.Sprintf("script size %d is larger than max allowed "+
			"size %d", len(script), MaxScriptSize)
		return scriptError(ErrScriptTooBig, str)
	}

	st := &evalState{script: script}
	st.altStack.verifyMinimalData = vm.dstack.verifyMinimalData

	tokenizer := btcscript.MakeScriptTokenizer(0, script)
	for tokenizer.Next() {
		opcode := tokenizer.Opcode()
		data := tokenizer.Data()
		st.nextIdx = tokenizer.ByteIndex()
		exec := st.isBranchExecuting()

		if len(data) > MaxScriptElementSize {
			str := fmt.Sprintf("element size %d exceeds max allowed "+
				"size %d", len(data), MaxScriptElementSize)
			return scriptError(ErrElementTooBig, str)
		}

		// Note that this includes opcodes in branches that are not
		// executed.
		if opcode > btcscript.OP_16 {
			st.numOps++
			if st.numOps > MaxOpsPerScript {
				str := fmt.Sprintf("exceeded max operation limit "+
					"of %d", MaxOpsPerScript)
				return scriptError(ErrTooManyOperations, str)
			}
		}

		// Disabled opcodes fail even when not executed.
		if isOpcodeDisabled(opcode, vm.flags) {
			str := fmt.Sprintf("attempt to execute disabled opcode %s",
				opcodeName(opcode))
			return scriptError(ErrDisabledOpcode, str)
		}

		switch {
		case exec && opcode <= btcscript.OP_PUSHDATA4:
			if vm.hasFlag(ScriptVerifyMinimalData) &&
				!checkMinimalPush(data, opcode) {

				str := fmt.Sprintf("data push of %d bytes with "+
					"opcode %s is not minimal", len(data),
					opcodeName(opcode))
				return scriptError(ErrMinimalData, str)
			}
			vm.dstack.PushByteArray(data)

		case exec || isConditional(opcode):
			if err := vm.executeOpcode(st, opcode); err != nil {
				return err
			}
		}

		// The number of elements in the combination of the data and alt
		// stacks must not exceed the maximum number of stack elements
		// allowed.
		combinedStackSize := vm.dstack.Depth() + st.altStack.Depth()
		if combinedStackSize > MaxStackSize {
			str := fmt.Sprintf("combined stack size %d > max allowed %d",
				combinedStackSize, MaxStackSize)
			return scriptError(ErrStackOverflow, str)
		}
	}
	if err := tokenizer.Err(); err != nil {
		return scriptError(ErrMalformedPush, err.Error())
	}

	if len(st.condStack) != 0 {
		return scriptError(ErrUnbalancedConditional,
			"end of script reached in conditional execution")
	}
	return nil
}

// isConditional reports whether opcode lies in the range of opcodes that are
// processed even in unexecuted branches.  OP_VERIF and OP_VERNOTIF are part
// of this range and therefore always fail.
func isConditional(opcode byte) bool {
	return opcode >= btcscript.OP_IF && opcode <= btcscript.OP_ENDIF
}

// isOpcodeDisabled reports whether opcode fails the script even when it is
// not executed.
func isOpcodeDisabled(opcode byte, flags ScriptFlags) bool {
	switch opcode {
	case btcscript.OP_INVERT, btcscript.OP_2MUL, btcscript.OP_2DIV,
		btcscript.OP_MUL, btcscript.OP_LSHIFT, btcscript.OP_RSHIFT:

		return true

	case btcscript.OP_CAT, OP_SPLIT, btcscript.OP_AND, btcscript.OP_OR,
		btcscript.OP_XOR, OP_NUM2BIN, OP_BIN2NUM, btcscript.OP_DIV,
		btcscript.OP_MOD:

		return flags&ScriptEnableMonolithOpcodes == 0
	}
	return false
}

// checkMinimalPush reports whether data is pushed with the smallest possible
// opcode.
func checkMinimalPush(data []byte, opcode byte) bool {
	dataLen := len(data)
	switch {
	case dataLen == 0:
		return opcode == btcscript.OP_0
	case dataLen == 1 && data[0] >= 1 && data[0] <= 16:
		return opcode == btcscript.OP_1+data[0]-1
	case dataLen == 1 && data[0] == 0x81:
		return opcode == btcscript.OP_1NEGATE
	case dataLen <= 75:
		return int(opcode) == dataLen
	case dataLen <= 255:
		return opcode == btcscript.OP_PUSHDATA1
	case dataLen <= 65535:
		return opcode == btcscript.OP_PUSHDATA2
	}
	return true
}

// isPushOnly reports whether script only consists of push operations.  A
// script that fails to parse is not push only.  As with the reference rules
// OP_RESERVED counts as a push.
func isPushOnly(script []byte) bool {
	tokenizer := btcscript.MakeScriptTokenizer(0, script)
	for tokenizer.Next() {
		if tokenizer.Opcode() > btcscript.OP_16 {
			return false
		}
	}
	return tokenizer.Err() == nil
}

// isScriptHash reports whether script is a pay-to-script-hash output script.
func isScriptHash(script []byte) bool {
	return len(script) == 23 &&
		script[0] == btcscript.OP_HASH160 &&
		script[1] == btcscript.OP_DATA_20 &&
		script[22] == btcscript.OP_EQUAL
}

// VerifyScript executes the signature script of input txIdx of tx against
// scriptPubKey.  It is a convenience wrapper around NewEngine and Execute.
func VerifyScript(scriptPubKey []byte, tx *wire.MsgTx, txIdx int,
	flags ScriptFlags, amount int64) error {

	vm, err := NewEngine(scriptPubKey, tx, txIdx, flags, amount)
	if err != nil {
		return err
	}
	return vm.Execute()
}

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"crypto/sha1"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcscript "github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160"
)

// Opcodes whose meaning differs from the btcd opcode table.  The splice
// opcodes OP_SUBSTR, OP_LEFT and OP_RIGHT were redefined by the monolith
// upgrade and the data signature opcodes occupy the first unassigned values.
const (
	OP_SPLIT              = btcscript.OP_SUBSTR // 0x7f
	OP_NUM2BIN            = btcscript.OP_LEFT   // 0x80
	OP_BIN2NUM            = btcscript.OP_RIGHT  // 0x81
	OP_CHECKDATASIG       = 0xba
	OP_CHECKDATASIGVERIFY = 0xbb
)

// opcodeNames maps opcode values to their names.
var opcodeNames = func() map[byte]string {
	names := make(map[byte]string, len(btcscript.OpcodeByName))
	for name, op := range btcscript.OpcodeByName {
		// Prefer the canonical names over their aliases.
		if existing, ok := names[op]; ok && (len(existing) < len(name) ||
			(len(existing) == len(name) && existing < name)) {

			continue
		}
		names[op] = name
	}
	names[OP_SPLIT] = "OP_SPLIT"
	names[OP_NUM2BIN] = "OP_NUM2BIN"
	names[OP_BIN2NUM] = "OP_BIN2NUM"
	names[OP_CHECKDATASIG] = "OP_CHECKDATASIG"
	names[OP_CHECKDATASIGVERIFY] = "OP_CHECKDATASIGVERIFY"
	return names
}()

// opcodeName returns the name of opcode for error messages.
func opcodeName(opcode byte) string {
	if name, ok := opcodeNames[opcode]; ok {
		return name
	}
	return fmt.Sprintf("OP_UNKNOWN%d", opcode)
}

// executeOpcode executes a single non-push opcode.
func (vm *Engine) executeOpcode(st *evalState, opcode byte) error {
	switch opcode {
	// Small integers.
	case btcscript.OP_1NEGATE:
		vm.dstack.PushInt(scriptNum(-1))
	case btcscript.OP_1, btcscript.OP_2, btcscript.OP_3, btcscript.OP_4,
		btcscript.OP_5, btcscript.OP_6, btcscript.OP_7, btcscript.OP_8,
		btcscript.OP_9, btcscript.OP_10, btcscript.OP_11, btcscript.OP_12,
		btcscript.OP_13, btcscript.OP_14, btcscript.OP_15, btcscript.OP_16:

		vm.dstack.PushInt(scriptNum(opcode - (btcscript.OP_1 - 1)))

	// Control.
	case btcscript.OP_NOP:

	case btcscript.OP_CHECKLOCKTIMEVERIFY:
		if !vm.hasFlag(ScriptVerifyCheckLockTimeVerify) {
			return vm.upgradableNop(opcode)
		}
		return vm.opCheckLockTimeVerify()

	case btcscript.OP_CHECKSEQUENCEVERIFY:
		if !vm.hasFlag(ScriptVerifyCheckSequenceVerify) {
			return vm.upgradableNop(opcode)
		}
		return vm.opCheckSequenceVerify()

	case btcscript.OP_NOP1, btcscript.OP_NOP4, btcscript.OP_NOP5,
		btcscript.OP_NOP6, btcscript.OP_NOP7, btcscript.OP_NOP8,
		btcscript.OP_NOP9, btcscript.OP_NOP10:

		return vm.upgradableNop(opcode)

	case btcscript.OP_IF, btcscript.OP_NOTIF:
		condVal := false
		if st.isBranchExecuting() {
			so, err := vm.dstack.PopByteArray()
			if err != nil {
				return scriptError(ErrUnbalancedConditional,
					"conditional requires an operand")
			}
			if vm.hasFlag(ScriptVerifyMinimalIf) &&
				(len(so) > 1 || (len(so) == 1 && so[0] != 1)) {

				return scriptError(ErrMinimalIf,
					"conditional operand is not minimal")
			}
			condVal = asBool(so)
			if opcode == btcscript.OP_NOTIF {
				condVal = !condVal
			}
		}
		st.condStack = append(st.condStack, condVal)

	case btcscript.OP_ELSE:
		if len(st.condStack) == 0 {
			return scriptError(ErrUnbalancedConditional,
				"encountered opcode OP_ELSE with no matching opcode "+
					"to begin conditional execution")
		}
		top := len(st.condStack) - 1
		st.condStack[top] = !st.condStack[top]

	case btcscript.OP_ENDIF:
		if len(st.condStack) == 0 {
			return scriptError(ErrUnbalancedConditional,
				"encountered opcode OP_ENDIF with no matching opcode "+
					"to begin conditional execution")
		}
		st.condStack = st.condStack[:len(st.condStack)-1]

	case btcscript.OP_VERIFY:
		return vm.abstractVerify(ErrVerify)

	case btcscript.OP_RETURN:
		return scriptError(ErrEarlyReturn, "script returned early")

	// Stack operations.
	case btcscript.OP_TOALTSTACK:
		so, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		st.altStack.PushByteArray(so)

	case btcscript.OP_FROMALTSTACK:
		so, err := st.altStack.PopByteArray()
		if err != nil {
			return scriptError(ErrInvalidAltStackOperation,
				"alt stack is empty")
		}
		vm.dstack.PushByteArray(so)

	case btcscript.OP_2DROP:
		return vm.dstack.DropN(2)
	case btcscript.OP_2DUP:
		return vm.dstack.DupN(2)
	case btcscript.OP_3DUP:
		return vm.dstack.DupN(3)
	case btcscript.OP_2OVER:
		return vm.dstack.OverN(2)
	case btcscript.OP_2ROT:
		return vm.dstack.RotN(2)
	case btcscript.OP_2SWAP:
		return vm.dstack.SwapN(2)

	case btcscript.OP_IFDUP:
		so, err := vm.dstack.PeekByteArray(0)
		if err != nil {
			return err
		}
		if asBool(so) {
			vm.dstack.PushByteArray(so)
		}

	case btcscript.OP_DEPTH:
		vm.dstack.PushInt(scriptNum(vm.dstack.Depth()))
	case btcscript.OP_DROP:
		return vm.dstack.DropN(1)
	case btcscript.OP_DUP:
		return vm.dstack.DupN(1)
	case btcscript.OP_NIP:
		return vm.dstack.NipN(1)
	case btcscript.OP_OVER:
		return vm.dstack.OverN(1)

	case btcscript.OP_PICK, btcscript.OP_ROLL:
		val, err := vm.dstack.PopInt()
		if err != nil {
			return err
		}
		if opcode == btcscript.OP_PICK {
			return vm.dstack.PickN(val.Int32())
		}
		return vm.dstack.RollN(val.Int32())

	case btcscript.OP_ROT:
		return vm.dstack.RotN(1)
	case btcscript.OP_SWAP:
		return vm.dstack.SwapN(1)
	case btcscript.OP_TUCK:
		return vm.dstack.Tuck()

	// Splice operations.
	case btcscript.OP_CAT:
		return vm.opCat()
	case OP_SPLIT:
		return vm.opSplit()
	case OP_NUM2BIN:
		return vm.opNum2Bin()
	case OP_BIN2NUM:
		return vm.opBin2Num()

	case btcscript.OP_SIZE:
		so, err := vm.dstack.PeekByteArray(0)
		if err != nil {
			return err
		}
		vm.dstack.PushInt(scriptNum(len(so)))

	// Bitwise logic.
	case btcscript.OP_AND, btcscript.OP_OR, btcscript.OP_XOR:
		return vm.opBitwise(opcode)

	case btcscript.OP_EQUAL, btcscript.OP_EQUALVERIFY:
		a, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		b, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		vm.dstack.PushBool(bytes.Equal(a, b))
		if opcode == btcscript.OP_EQUALVERIFY {
			return vm.abstractVerify(ErrEqualVerify)
		}

	// Numeric.
	case btcscript.OP_1ADD, btcscript.OP_1SUB, btcscript.OP_NEGATE,
		btcscript.OP_ABS, btcscript.OP_NOT, btcscript.OP_0NOTEQUAL:

		return vm.opUnaryNum(opcode)

	case btcscript.OP_ADD, btcscript.OP_SUB, btcscript.OP_DIV,
		btcscript.OP_MOD, btcscript.OP_BOOLAND, btcscript.OP_BOOLOR,
		btcscript.OP_NUMEQUAL, btcscript.OP_NUMEQUALVERIFY,
		btcscript.OP_NUMNOTEQUAL, btcscript.OP_LESSTHAN,
		btcscript.OP_GREATERTHAN, btcscript.OP_LESSTHANOREQUAL,
		btcscript.OP_GREATERTHANOREQUAL, btcscript.OP_MIN,
		btcscript.OP_MAX:

		return vm.opBinaryNum(opcode)

	case btcscript.OP_WITHIN:
		maxVal, err := vm.dstack.PopInt()
		if err != nil {
			return err
		}
		minVal, err := vm.dstack.PopInt()
		if err != nil {
			return err
		}
		x, err := vm.dstack.PopInt()
		if err != nil {
			return err
		}
		vm.dstack.PushBool(x >= minVal && x < maxVal)

	// Crypto.
	case btcscript.OP_RIPEMD160:
		return vm.hashTop(func(b []byte) []byte {
			h := ripemd160.New()
			h.Write(b)
			return h.Sum(nil)
		})
	case btcscript.OP_SHA1:
		return vm.hashTop(func(b []byte) []byte {
			h := sha1.Sum(b)
			return h[:]
		})
	case btcscript.OP_SHA256:
		return vm.hashTop(chainhash.HashB)
	case btcscript.OP_HASH160:
		return vm.hashTop(btcutil.Hash160)
	case btcscript.OP_HASH256:
		return vm.hashTop(chainhash.DoubleHashB)

	case btcscript.OP_CODESEPARATOR:
		st.codeSepIdx = st.nextIdx

	case btcscript.OP_CHECKSIG, btcscript.OP_CHECKSIGVERIFY:
		return vm.opCheckSig(st, opcode == btcscript.OP_CHECKSIGVERIFY)

	case btcscript.OP_CHECKMULTISIG, btcscript.OP_CHECKMULTISIGVERIFY:
		return vm.opCheckMultiSig(st,
			opcode == btcscript.OP_CHECKMULTISIGVERIFY)

	case OP_CHECKDATASIG, OP_CHECKDATASIGVERIFY:
		if !vm.hasFlag(ScriptEnableCheckDataSig) {
			return reservedOpcode(opcode)
		}
		return vm.opCheckDataSig(opcode == OP_CHECKDATASIGVERIFY)

	default:
		return reservedOpcode(opcode)
	}

	return nil
}

// reservedOpcode returns the error for executing an opcode that has no
// meaning, including OP_VERIF and OP_VERNOTIF in any branch.
func reservedOpcode(opcode byte) error {
	str := fmt.Sprintf("attempt to execute reserved opcode %s",
		opcodeName(opcode))
	return scriptError(ErrReservedOpcode, str)
}

// upgradableNop handles the opcodes reserved for soft-forks.
func (vm *Engine) upgradableNop(opcode byte) error {
	if vm.hasFlag(ScriptDiscourageUpgradableNops) {
		str := fmt.Sprintf("%s reserved for soft-fork upgrades",
			opcodeName(opcode))
		return scriptError(ErrDiscourageUpgradableNOPs, str)
	}
	return nil
}

// abstractVerify examines the top item on the data stack as a boolean value
// and verifies it evaluates to true.  An error is returned either when there
// is no item on the stack or when that item evaluates to false.  In the latter
// case where the verification fails specifically due to the top item
// evaluating to false, the returned error will use the passed error code.
func (vm *Engine) abstractVerify(c ErrorCode) error {
	verified, err := vm.dstack.PopBool()
	if err != nil {
		return err
	}

	if !verified {
		str := fmt.Sprintf("%s failed", c)
		return scriptError(c, str)
	}
	return nil
}

// hashTop replaces the top stack item with its hash.
func (vm *Engine) hashTop(hash func([]byte) []byte) error {
	buf, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	vm.dstack.PushByteArray(hash(buf))
	return nil
}

// opCat concatenates the top two stack items.
//
// Stack transformation: [... x1 x2] -> [... x1||x2]
func (vm *Engine) opCat() error {
	b, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	a, err := vm.dstack.PeekByteArray(1)
	if err != nil {
		return err
	}
	if len(a)+len(b) > MaxScriptElementSize {
		str := fmt.Sprintf("concatenated size %d exceeds max allowed "+
			"size %d", len(a)+len(b), MaxScriptElementSize)
		return scriptError(ErrElementTooBig, str)
	}

	cat := make([]byte, 0, len(a)+len(b))
	cat = append(cat, a...)
	cat = append(cat, b...)
	_ = vm.dstack.DropN(2)
	vm.dstack.PushByteArray(cat)
	return nil
}

// opSplit splits the second stack item at the position given by the top item.
//
// Stack transformation: [... x n] -> [... x[:n] x[n:]]
func (vm *Engine) opSplit() error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation,
			"OP_SPLIT requires two stack items")
	}
	data, _ := vm.dstack.PeekByteArray(1)
	pos, err := vm.dstack.PeekInt(0)
	if err != nil {
		return err
	}
	if pos < 0 || int64(pos) > int64(len(data)) {
		str := fmt.Sprintf("split position %d outside of %d bytes", pos,
			len(data))
		return scriptError(ErrInvalidSplitRange, str)
	}

	first := append([]byte(nil), data[:pos]...)
	second := append([]byte(nil), data[pos:]...)
	_ = vm.dstack.DropN(2)
	vm.dstack.PushByteArray(first)
	vm.dstack.PushByteArray(second)
	return nil
}

// opNum2Bin converts a number to a byte string of the requested size.
//
// Stack transformation: [... num size] -> [... bin]
func (vm *Engine) opNum2Bin() error {
	if vm.dstack.Depth() < 2 {
		return scriptError(ErrInvalidStackOperation,
			"OP_NUM2BIN requires two stack items")
	}
	size, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}
	if size < 0 || size > MaxScriptElementSize {
		str := fmt.Sprintf("requested size %d exceeds max allowed "+
			"size %d", size, MaxScriptElementSize)
		return scriptError(ErrElementTooBig, str)
	}

	num, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	rawNum := minimallyEncode(num)
	if int64(len(rawNum)) > int64(size) {
		str := fmt.Sprintf("number of %d bytes does not fit in %d bytes",
			len(rawNum), size)
		return scriptError(ErrImpossibleEncoding, str)
	}

	if int64(len(rawNum)) == int64(size) {
		vm.dstack.PushByteArray(rawNum)
		return nil
	}

	// Move the sign bit to the new most significant byte.
	out := make([]byte, size)
	copy(out, rawNum)
	var signBit byte
	if len(rawNum) > 0 {
		signBit = rawNum[len(rawNum)-1] & 0x80
		out[len(rawNum)-1] &= 0x7f
	}
	out[size-1] = signBit
	vm.dstack.PushByteArray(out)
	return nil
}

// opBin2Num converts a byte string to a minimally encoded number.
//
// Stack transformation: [... bin] -> [... num]
func (vm *Engine) opBin2Num() error {
	bin, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	num := minimallyEncode(bin)
	if !isMinimallyEncoded(num, maxScriptNumLen) {
		str := fmt.Sprintf("value %x does not fit in a number", bin)
		return scriptError(ErrNumberTooBig, str)
	}
	vm.dstack.PushByteArray(num)
	return nil
}

// opBitwise applies a bitwise operation to two stack items of equal size.
//
// Stack transformation: [... x1 x2] -> [... x1 op x2]
func (vm *Engine) opBitwise(opcode byte) error {
	b, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	a, err := vm.dstack.PeekByteArray(1)
	if err != nil {
		return err
	}
	if len(a) != len(b) {
		str := fmt.Sprintf("%s operands differ in size (%d != %d)",
			opcodeName(opcode), len(a), len(b))
		return scriptError(ErrInvalidOperandSize, str)
	}

	out := make([]byte, len(a))
	for i := range a {
		switch opcode {
		case btcscript.OP_AND:
			out[i] = a[i] & b[i]
		case btcscript.OP_OR:
			out[i] = a[i] | b[i]
		case btcscript.OP_XOR:
			out[i] = a[i] ^ b[i]
		}
	}
	_ = vm.dstack.DropN(2)
	vm.dstack.PushByteArray(out)
	return nil
}

// opUnaryNum applies a numeric operation to the top stack item.
func (vm *Engine) opUnaryNum(opcode byte) error {
	m, err := vm.dstack.PopInt()
	if err != nil {
		return err
	}

	switch opcode {
	case btcscript.OP_1ADD:
		m++
	case btcscript.OP_1SUB:
		m--
	case btcscript.OP_NEGATE:
		m = -m
	case btcscript.OP_ABS:
		if m < 0 {
			m = -m
		}
	case btcscript.OP_NOT:
		vm.dstack.PushBool(m == 0)
		return nil
	case btcscript.OP_0NOTEQUAL:
		vm.dstack.PushBool(m != 0)
		return nil
	}
	vm.dstack.PushInt(m)
	return nil
}

// opBinaryNum applies a numeric operation to the top two stack items.  The
// second item is the left operand.
func (vm *Engine) opBinaryNum(opcode byte) error {
	v1, err := vm.dstack.PeekInt(0)
	if err != nil {
		return err
	}
	v0, err := vm.dstack.PeekInt(1)
	if err != nil {
		return err
	}

	switch opcode {
	case btcscript.OP_DIV:
		if v1 == 0 {
			return scriptError(ErrDivByZero, "division by zero")
		}
	case btcscript.OP_MOD:
		if v1 == 0 {
			return scriptError(ErrModByZero, "modulo by zero")
		}
	}
	_ = vm.dstack.DropN(2)

	switch opcode {
	case btcscript.OP_ADD:
		vm.dstack.PushInt(v0 + v1)
	case btcscript.OP_SUB:
		vm.dstack.PushInt(v0 - v1)
	case btcscript.OP_DIV:
		vm.dstack.PushInt(v0 / v1)
	case btcscript.OP_MOD:
		vm.dstack.PushInt(v0 % v1)
	case btcscript.OP_BOOLAND:
		vm.dstack.PushBool(v0 != 0 && v1 != 0)
	case btcscript.OP_BOOLOR:
		vm.dstack.PushBool(v0 != 0 || v1 != 0)
	case btcscript.OP_NUMEQUAL:
		vm.dstack.PushBool(v0 == v1)
	case btcscript.OP_NUMEQUALVERIFY:
		vm.dstack.PushBool(v0 == v1)
		return vm.abstractVerify(ErrNumEqualVerify)
	case btcscript.OP_NUMNOTEQUAL:
		vm.dstack.PushBool(v0 != v1)
	case btcscript.OP_LESSTHAN:
		vm.dstack.PushBool(v0 < v1)
	case btcscript.OP_GREATERTHAN:
		vm.dstack.PushBool(v0 > v1)
	case btcscript.OP_LESSTHANOREQUAL:
		vm.dstack.PushBool(v0 <= v1)
	case btcscript.OP_GREATERTHANOREQUAL:
		vm.dstack.PushBool(v0 >= v1)
	case btcscript.OP_MIN:
		if v0 < v1 {
			vm.dstack.PushInt(v0)
		} else {
			vm.dstack.PushInt(v1)
		}
	case btcscript.OP_MAX:
		if v0 > v1 {
			vm.dstack.PushInt(v0)
		} else {
			vm.dstack.PushInt(v1)
		}
	}
	return nil
}

// Lock time constants shared by OP_CHECKLOCKTIMEVERIFY and
// OP_CHECKSEQUENCEVERIFY.
const (
	// lockTimeThreshold is the number below which a lock time is
	// interpreted to be a block number.
	lockTimeThreshold = 5e8

	// sequenceLockTimeDisabled is the flag that disables relative lock
	// time for an input.
	sequenceLockTimeDisabled = 1 << 31

	// sequenceLockTimeIsSeconds is the flag that selects time based
	// relative lock times.
	sequenceLockTimeIsSeconds = 1 << 22

	// sequenceLockTimeMask is the mask extracting the relative lock time.
	sequenceLockTimeMask = 0x0000ffff

	// maxTxInSequenceNum is the sequence number of a final input.
	maxTxInSequenceNum = 0xffffffff
)

// verifyLockTime is a helper function used to validate locktimes.
func verifyLockTime(txLockTime, threshold, lockTime int64) error {
	// The lockTimes in both the script and transaction must be of the same
	// type.
	if !((txLockTime < threshold && lockTime < threshold) ||
		(txLockTime >= threshold && lockTime >= threshold)) {
		str := fmt.Sprintf("mismatched locktime types -- tx locktime "+
			"%d, stack locktime %d", txLockTime, lockTime)
		return scriptError(ErrUnsatisfiedLockTime, str)
	}

	if lockTime > txLockTime {
		str := fmt.Sprintf("locktime requirement not satisfied -- "+
			"locktime is greater than the transaction locktime: "+
			"%d > %d", lockTime, txLockTime)
		return scriptError(ErrUnsatisfiedLockTime, str)
	}

	return nil
}

// opCheckLockTimeVerify compares the top item on the data stack to the
// LockTime field of the transaction containing the script signature
// validating if the transaction outputs are spendable yet.  The top item is
// left on the stack.
func (vm *Engine) opCheckLockTimeVerify() error {
	// The current transaction locktime is a uint32 resulting in a maximum
	// locktime of 2^32-1 (the year 2106).  However, scriptNums are signed
	// and therefore a standard 4-byte scriptNum would only support up to a
	// maximum of 2^31-1 (the year 2038).  Thus, a 5-byte scriptNum is used
	// here since it will support up to 2^39-1 which allows dates beyond the
	// current locktime limit.
	so, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	lockTime, err := makeScriptNum(so, vm.dstack.verifyMinimalData,
		cltvMaxScriptNumLen)
	if err != nil {
		return err
	}

	// In the rare event that the argument needs to be < 0 due to some
	// arithmetic being done first, you can always use
	// 0 OP_MAX OP_CHECKLOCKTIMEVERIFY.
	if lockTime < 0 {
		str := fmt.Sprintf("negative lock time: %d", lockTime)
		return scriptError(ErrNegativeLockTime, str)
	}

	// The lock time field of a transaction is either a block height at
	// which the transaction is finalized or a timestamp depending on if the
	// value is before the txscript.LockTimeThreshold.  When it is under the
	// threshold it is a block height.
	err = verifyLockTime(int64(vm.tx.LockTime), lockTimeThreshold,
		int64(lockTime))
	if err != nil {
		return err
	}

	// The lock time feature can also be disabled, thereby bypassing
	// OP_CHECKLOCKTIMEVERIFY, if every transaction input has been finalized by
	// setting its sequence to the maximum value (wire.MaxTxInSequenceNum).
	// This condition would result in the transaction being allowed into the
	// blockchain making the opcode ineffective.
	//
	// This condition is prevented by enforcing that the input being used by
	// the opcode is unlocked (its sequence number is less than the max
	// value).  This is sufficient to prove correctness without having to
	// check every input.
	if vm.tx.TxIn[vm.txIdx].Sequence == maxTxInSequenceNum {
		return scriptError(ErrUnsatisfiedLockTime,
			"transaction input is finalized")
	}

	return nil
}

// opCheckSequenceVerify compares the top item on the data stack to the
// sequence field of the input being validated.  The top item is left on the
// stack.
func (vm *Engine) opCheckSequenceVerify() error {
	so, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	stackSequence, err := makeScriptNum(so, vm.dstack.verifyMinimalData,
		cltvMaxScriptNumLen)
	if err != nil {
		return err
	}

	// In the rare event that the argument needs to be < 0 due to some
	// arithmetic being done first, you can always use
	// 0 OP_MAX OP_CHECKSEQUENCEVERIFY.
	if stackSequence < 0 {
		str := fmt.Sprintf("negative sequence: %d", stackSequence)
		return scriptError(ErrNegativeLockTime, str)
	}

	sequence := int64(stackSequence)

	// To provide for future soft-fork extensibility, if the
	// operand has the disabled lock-time flag set,
	// CHECKSEQUENCEVERIFY behaves as a NOP.
	if sequence&int64(sequenceLockTimeDisabled) != 0 {
		return nil
	}

	// Transaction version numbers not high enough to trigger CSV rules must
	// fail.
	if uint32(vm.tx.Version) < 2 {
		str := fmt.Sprintf("invalid transaction version: %d",
			vm.tx.Version)
		return scriptError(ErrUnsatisfiedLockTime, str)
	}

	// Sequence numbers with their most significant bit set are not
	// consensus constrained. Testing that the transaction's sequence
	// number does not have this bit set prevents using this property
	// to get around a CHECKSEQUENCEVERIFY check.
	txSequence := int64(vm.tx.TxIn[vm.txIdx].Sequence)
	if txSequence&int64(sequenceLockTimeDisabled) != 0 {
		str := fmt.Sprintf("transaction sequence has sequence "+
			"locktime disabled bit set: 0x%x", txSequence)
		return scriptError(ErrUnsatisfiedLockTime, str)
	}

	// Mask off non-consensus bits before doing comparisons.
	lockTimeMask := int64(sequenceLockTimeIsSeconds |
		sequenceLockTimeMask)
	return verifyLockTime(txSequence&lockTimeMask,
		sequenceLockTimeIsSeconds, sequence&lockTimeMask)
}

// cleanupScriptCode removes the signature from the script code unless it is
// a replay protected signature, which commits to the script code as is.
func (vm *Engine) cleanupScriptCode(scriptCode, sig []byte) []byte {
	if len(sig) > 0 && vm.hasFlag(ScriptEnableSigHashForkID) &&
		SigHashType(sig[len(sig)-1]).hasForkID() {

		return scriptCode
	}
	return findAndDelete(scriptCode, canonicalPush(sig))
}

// checkSig verifies a transaction signature with trailing hash type against
// the public key.  Any parse failure is a failed check.
func (vm *Engine) checkSig(sig, pubKey, scriptCode []byte) bool {
	if len(sig) == 0 {
		return false
	}
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}

	hashType := SigHashType(sig[len(sig)-1])
	sigBytes := sig[:len(sig)-1]

	var hash []byte
	if hashType.hasForkID() && vm.hasFlag(ScriptEnableSigHashForkID) {
		if vm.midstate == nil {
			vm.midstate = newForkIDMidstate(vm.tx)
		}
		hash = calcForkIDSignatureHash(scriptCode, vm.midstate, hashType,
			vm.tx, vm.txIdx, vm.amount)
	} else {
		hash, err = calcLegacySignatureHash(scriptCode, hashType, vm.tx,
			vm.txIdx)
		if err != nil {
			return false
		}
	}

	signature, err := ecdsa.ParseSignature(sigBytes)
	if err != nil {
		return false
	}
	return signature.Verify(hash, pk)
}

// opCheckSig verifies the signature on the stack against the public key on
// the stack.
//
// Stack transformation: [... signature pubkey] -> [... bool]
func (vm *Engine) opCheckSig(st *evalState, verify bool) error {
	pubKey, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	sig, err := vm.dstack.PeekByteArray(1)
	if err != nil {
		return err
	}

	if err := checkSignatureEncoding(sig, vm.flags); err != nil {
		return err
	}
	if err := checkPubKeyEncoding(pubKey, vm.flags); err != nil {
		return err
	}

	scriptCode := vm.cleanupScriptCode(st.scriptCode(), sig)
	valid := vm.checkSig(sig, pubKey, scriptCode)
	if !valid && vm.hasFlag(ScriptVerifyNullFail) && len(sig) > 0 {
		return scriptError(ErrNullFail,
			"signature not empty on failed checksig")
	}

	_ = vm.dstack.DropN(2)
	vm.dstack.PushBool(valid)
	if verify {
		return vm.abstractVerify(ErrCheckSigVerify)
	}
	return nil
}

// opCheckMultiSig verifies m of the signatures on the stack against n public
// keys in order.  An extra dummy item is consumed.
//
// Stack transformation:
// [... dummy [sig ...] numsigs [pubkey ...] numpubkeys] -> [... bool]
func (vm *Engine) opCheckMultiSig(st *evalState, verify bool) error {
	// top returns the i-th item from the top, starting at 1.
	top := func(i int) []byte {
		return vm.dstack.stk[len(vm.dstack.stk)-i]
	}
	depth := func() int {
		return len(vm.dstack.stk)
	}

	i := 1
	if depth() < i {
		return scriptError(ErrInvalidStackOperation,
			"multisig requires the number of public keys")
	}
	num, err := makeScriptNum(top(i), vm.dstack.verifyMinimalData,
		maxScriptNumLen)
	if err != nil {
		return err
	}
	numKeys := int(num.Int32())
	if numKeys < 0 || numKeys > MaxPubKeysPerMultiSig {
		str := fmt.Sprintf("number of pubkeys %d is out of range",
			numKeys)
		return scriptError(ErrInvalidPubKeyCount, str)
	}
	st.numOps += numKeys
	if st.numOps > MaxOpsPerScript {
		str := fmt.Sprintf("exceeded max operation limit of %d",
			MaxOpsPerScript)
		return scriptError(ErrTooManyOperations, str)
	}

	i++
	keyIdx := i
	// keysLeft counts the items to pop before the signatures are reached.
	keysLeft := numKeys + 2
	i += numKeys
	if depth() < i {
		return scriptError(ErrInvalidStackOperation,
			"multisig requires the number of signatures")
	}

	num, err = makeScriptNum(top(i), vm.dstack.verifyMinimalData,
		maxScriptNumLen)
	if err != nil {
		return err
	}
	numSigs := int(num.Int32())
	if numSigs < 0 || numSigs > numKeys {
		str := fmt.Sprintf("number of signatures %d is out of range",
			numSigs)
		return scriptError(ErrInvalidSignatureCount, str)
	}

	i++
	sigIdx := i
	i += numSigs
	if depth() < i {
		return scriptError(ErrInvalidStackOperation,
			"multisig requires a dummy item")
	}

	scriptCode := st.scriptCode()
	for k := 0; k < numSigs; k++ {
		scriptCode = vm.cleanupScriptCode(scriptCode, top(sigIdx+k))
	}

	success := true
	for success && numSigs > 0 {
		sig := top(sigIdx)
		pubKey := top(keyIdx)

		if err := checkSignatureEncoding(sig, vm.flags); err != nil {
			return err
		}
		if err := checkPubKeyEncoding(pubKey, vm.flags); err != nil {
			return err
		}

		if vm.checkSig(sig, pubKey, scriptCode) {
			sigIdx++
			numSigs--
		}
		keyIdx++
		numKeys--

		// There are not enough keys left for the remaining signatures.
		if numSigs > numKeys {
			success = false
		}
	}

	// Pop the arguments, requiring the signatures to be empty on failure.
	for ; i > 1; i-- {
		if !success && vm.hasFlag(ScriptVerifyNullFail) &&
			keysLeft == 0 && len(top(1)) > 0 {

			return scriptError(ErrNullFail,
				"not all signatures empty on failed checkmultisig")
		}
		if keysLeft > 0 {
			keysLeft--
		}
		_ = vm.dstack.DropN(1)
	}

	dummy, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	if vm.hasFlag(ScriptStrictMultiSig) && len(dummy) != 0 {
		str := fmt.Sprintf("multisig dummy argument has length %d "+
			"instead of 0", len(dummy))
		return scriptError(ErrSigNullDummy, str)
	}

	vm.dstack.PushBool(success)
	if verify {
		return vm.abstractVerify(ErrCheckMultiSigVerify)
	}
	return nil
}

// opCheckDataSig verifies a signature over the single SHA256 of a message.
//
// Stack transformation: [... signature message pubkey] -> [... bool]
func (vm *Engine) opCheckDataSig(verify bool) error {
	if vm.dstack.Depth() < 3 {
		return scriptError(ErrInvalidStackOperation,
			"OP_CHECKDATASIG requires three stack items")
	}
	pubKey, _ := vm.dstack.PeekByteArray(0)
	message, _ := vm.dstack.PeekByteArray(1)
	sig, _ := vm.dstack.PeekByteArray(2)

	if err := checkDataSignatureEncoding(sig, vm.flags); err != nil {
		return err
	}
	if err := checkPubKeyEncoding(pubKey, vm.flags); err != nil {
		return err
	}

	valid := false
	if len(sig) > 0 {
		pk, err := secp256k1.ParsePubKey(pubKey)
		if err == nil {
			signature, err := ecdsa.ParseSignature(sig)
			if err == nil {
				valid = signature.Verify(chainhash.HashB(message), pk)
			}
		}
	}
	if !valid && vm.hasFlag(ScriptVerifyNullFail) && len(sig) > 0 {
		return scriptError(ErrNullFail,
			"signature not empty on failed checkdatasig")
	}

	_ = vm.dstack.DropN(3)
	vm.dstack.PushBool(valid)
	if verify {
		return vm.abstractVerify(ErrCheckDataSigVerify)
	}
	return nil
}

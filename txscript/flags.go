// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"strings"
)

// ScriptFlags is a bitmask defining additional operations or tests that will
// be done when executing a script pair.  The bit positions are part of the
// external verification interface and never change.
type ScriptFlags uint32

const (
	// ScriptBip16 defines whether the bip16 threshold has passed and thus
	// pay-to-script hash transactions will be fully validated.
	ScriptBip16 ScriptFlags = 1 << 0

	// ScriptVerifyStrictEncoding defines that signature scripts and
	// public keys must follow the strict encoding requirements.
	ScriptVerifyStrictEncoding ScriptFlags = 1 << 1

	// ScriptVerifyDERSignatures defines that signatures are required
	// to comply with the DER format.
	ScriptVerifyDERSignatures ScriptFlags = 1 << 2

	// ScriptVerifyLowS defines that signatures are required to comply with
	// the DER format and whose S value is <= order / 2.  This is rule 5
	// of BIP0062.
	ScriptVerifyLowS ScriptFlags = 1 << 3

	// ScriptStrictMultiSig defines whether to verify the stack item
	// used by CHECKMULTISIG is zero length.
	ScriptStrictMultiSig ScriptFlags = 1 << 4

	// ScriptVerifySigPushOnly defines that signature scripts must contain
	// only pushed data.  This is rule 2 of BIP0062.
	ScriptVerifySigPushOnly ScriptFlags = 1 << 5

	// ScriptVerifyMinimalData defines that signatures must use the smallest
	// push operator. This is both rules 3 and 4 of BIP0062.
	ScriptVerifyMinimalData ScriptFlags = 1 << 6

	// ScriptDiscourageUpgradableNops defines whether to verify that
	// NOP1 through NOP10 are reserved for future soft-fork upgrades.  This
	// flag must not be used for consensus critical code nor applied to
	// blocks as this flag is only for stricter standard transaction
	// checks.  This flag is only applied when the above opcodes are
	// executed.
	ScriptDiscourageUpgradableNops ScriptFlags = 1 << 7

	// ScriptVerifyCleanStack defines that the stack must contain only
	// one stack element after evaluation and that the element must be
	// true if interpreted as a boolean.  This is rule 6 of BIP0062.
	// This flag should never be used without the ScriptBip16 flag.
	ScriptVerifyCleanStack ScriptFlags = 1 << 8

	// ScriptVerifyCheckLockTimeVerify defines whether to verify that
	// a transaction output is spendable based on the locktime.
	// This is BIP0065.
	ScriptVerifyCheckLockTimeVerify ScriptFlags = 1 << 9

	// ScriptVerifyCheckSequenceVerify defines whether to allow execution
	// pathways of a script to be restricted based on the age of the output
	// being spent.  This is BIP0112.
	ScriptVerifyCheckSequenceVerify ScriptFlags = 1 << 10

	// ScriptVerifyMinimalIf makes a script with an OP_IF/OP_NOTIF whose
	// operand is anything other than empty vector or [0x01] non-standard.
	ScriptVerifyMinimalIf ScriptFlags = 1 << 13

	// ScriptVerifyNullFail defines that signatures must be empty if
	// a CHECKSIG or CHECKMULTISIG operation fails.
	ScriptVerifyNullFail ScriptFlags = 1 << 14

	// ScriptEnableSigHashForkID enables the replay protected signature
	// hash and requires every signature to use it.
	ScriptEnableSigHashForkID ScriptFlags = 1 << 16

	// ScriptEnableMonolithOpcodes re-enables OP_CAT, OP_SPLIT, OP_AND,
	// OP_OR, OP_XOR, OP_NUM2BIN, OP_BIN2NUM, OP_DIV and OP_MOD.
	ScriptEnableMonolithOpcodes ScriptFlags = 1 << 18

	// ScriptEnableCheckDataSig enables OP_CHECKDATASIG and
	// OP_CHECKDATASIGVERIFY.
	ScriptEnableCheckDataSig ScriptFlags = 1 << 19
)

// flagNames is used to print the set flags.
var flagNames = []struct {
	flag ScriptFlags
	name string
}{
	{ScriptBip16, "P2SH"},
	{ScriptVerifyStrictEncoding, "STRICTENC"},
	{ScriptVerifyDERSignatures, "DERSIG"},
	{ScriptVerifyLowS, "LOW_S"},
	{ScriptStrictMultiSig, "NULLDUMMY"},
	{ScriptVerifySigPushOnly, "SIGPUSHONLY"},
	{ScriptVerifyMinimalData, "MINIMALDATA"},
	{ScriptDiscourageUpgradableNops, "DISCOURAGE_UPGRADABLE_NOPS"},
	{ScriptVerifyCleanStack, "CLEANSTACK"},
	{ScriptVerifyCheckLockTimeVerify, "CHECKLOCKTIMEVERIFY"},
	{ScriptVerifyCheckSequenceVerify, "CHECKSEQUENCEVERIFY"},
	{ScriptVerifyMinimalIf, "MINIMALIF"},
	{ScriptVerifyNullFail, "NULLFAIL"},
	{ScriptEnableSigHashForkID, "SIGHASH_FORKID"},
	{ScriptEnableMonolithOpcodes, "MONOLITH_OPCODES"},
	{ScriptEnableCheckDataSig, "CHECKDATASIG"},
}

// String returns the set flags separated by commas.
func (f ScriptFlags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag == fn.flag {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, ",")
}

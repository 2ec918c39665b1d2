// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestCanonicalPush ensures data is pushed with the smallest opcode.
func TestCanonicalPush(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size   int
		prefix []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{75, []byte{0x4b}},
		{76, []byte{0x4c, 0x4c}},
		{255, []byte{0x4c, 0xff}},
		{256, []byte{0x4d, 0x00, 0x01}},
		{65535, []byte{0x4d, 0xff, 0xff}},
		{65536, []byte{0x4e, 0x00, 0x00, 0x01, 0x00}},
	}

	for _, test := range tests {
		data := bytes.Repeat([]byte{0xab}, test.size)
		got := canonicalPush(data)
		want := append(append([]byte(nil), test.prefix...), data...)
		if !bytes.Equal(got, want) {
			t.Errorf("canonicalPush(%d bytes): got prefix %x, want %x",
				test.size, got[:len(test.prefix)], test.prefix)
		}
	}
}

// TestFindAndDelete ensures only whole operations are removed.
func TestFindAndDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		target string
		want   string
	}{
		{"empty target", "0302ff03", "", "0302ff03"},
		{"not found", "0302ff03", "0302fe03", "0302ff03"},
		{"whole script", "0302ff03", "0302ff03", ""},
		{"consecutive", "0302ff030302ff03", "0302ff03", ""},
		{"partial opcode", "0302ff030302ff03", "02", "0302ff030302ff03"},
		{"inside push", "0302ff030302ff03", "ff", "0302ff030302ff03"},
		{"op boundary", "0003feed", "03feed", "00"},
		{"not on boundary", "0003feed", "00", "03feed"},
		{"push data", "00040302ff03", "0302ff03", "00040302ff03"},
		{"leading op", "ab0302ff03", "0302ff03", "ab"},
		{"truncated tail", "0302ff034c", "0302ff03", "4c"},
		{"after truncated push", "4c050302ff03", "0302ff03", "4c050302ff03"},
	}

	for _, test := range tests {
		got := findAndDelete(hexToBytes(test.script),
			hexToBytes(test.target))
		if !bytes.Equal(got, hexToBytes(test.want)) {
			t.Errorf("%s: got %x, want %s", test.name, got, test.want)
		}
	}
}

// TestCleanupScriptCode ensures signatures are only removed when they are not
// replay protected.
func TestCleanupScriptCode(t *testing.T) {
	t.Parallel()

	legacySig := []byte{0x30, 0x01, byte(SigHashAll)}
	forkIDSig := []byte{0x30, 0x01, byte(SigHashAll | SigHashForkID)}
	scriptCode := func(sig []byte) []byte {
		return script(push(sig), ops(0xac))
	}

	tests := []struct {
		name  string
		sig   []byte
		flags ScriptFlags
		want  []byte
	}{
		{"legacy", legacySig, 0, []byte{0xac}},
		{"legacy after fork id", legacySig, ScriptEnableSigHashForkID,
			[]byte{0xac}},
		{"fork id before fork id", forkIDSig, 0, []byte{0xac}},
		{"fork id", forkIDSig, ScriptEnableSigHashForkID,
			scriptCode(forkIDSig)},
	}

	for _, test := range tests {
		vm := &Engine{flags: test.flags}
		got := vm.cleanupScriptCode(scriptCode(test.sig), test.sig)
		if !bytes.Equal(got, test.want) {
			t.Errorf("%s: got %x, want %x", test.name, got, test.want)
		}
	}
}

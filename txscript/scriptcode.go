// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/binary"

	btcscript "github.com/btcsuite/btcd/txscript"
)

// canonicalPush returns the smallest push data operation for data.  Empty
// data encodes as OP_0.
func canonicalPush(data []byte) []byte {
	n := len(data)
	var push []byte
	switch {
	case n < btcscript.OP_PUSHDATA1:
		push = make([]byte, 0, 1+n)
		push = append(push, byte(n))
	case n <= 0xff:
		push = make([]byte, 0, 2+n)
		push = append(push, btcscript.OP_PUSHDATA1, byte(n))
	case n <= 0xffff:
		push = make([]byte, 3, 3+n)
		push[0] = btcscript.OP_PUSHDATA2
		binary.LittleEndian.PutUint16(push[1:], uint16(n))
	default:
		push = make([]byte, 5, 5+n)
		push[0] = btcscript.OP_PUSHDATA4
		binary.LittleEndian.PutUint32(push[1:], uint32(n))
	}
	return append(push, data...)
}

// nextOpOffset returns the offset just past the operation starting at pc.  It
// returns false when pc is at the end of the script or the operation is
// truncated.
func nextOpOffset(script []byte, pc int) (int, bool) {
	if pc >= len(script) {
		return pc, false
	}
	op := script[pc]
	pc++

	var dataLen uint64
	switch {
	case op < btcscript.OP_PUSHDATA1:
		dataLen = uint64(op)
	case op == btcscript.OP_PUSHDATA1:
		if len(script)-pc < 1 {
			return pc, false
		}
		dataLen = uint64(script[pc])
		pc++
	case op == btcscript.OP_PUSHDATA2:
		if len(script)-pc < 2 {
			return pc, false
		}
		dataLen = uint64(binary.LittleEndian.Uint16(script[pc:]))
		pc += 2
	case op == btcscript.OP_PUSHDATA4:
		if len(script)-pc < 4 {
			return pc, false
		}
		dataLen = uint64(binary.LittleEndian.Uint32(script[pc:]))
		pc += 4
	default:
		return pc, true
	}

	if uint64(len(script)-pc) < dataLen {
		return pc, false
	}
	return pc + int(dataLen), true
}

// findAndDelete removes every occurrence of target that starts on an
// operation boundary of script.  Consecutive occurrences are all removed and
// bytes after an unparsable operation are kept as is.  The script is returned
// unchanged when nothing matches.
func findAndDelete(script, target []byte) []byte {
	if len(target) == 0 {
		return script
	}

	var result []byte
	found := false
	pc, pc2 := 0, 0
	for {
		result = append(result, script[pc2:pc]...)
		for len(script)-pc >= len(target) &&
			bytes.Equal(script[pc:pc+len(target)], target) {

			pc += len(target)
			found = true
		}
		pc2 = pc

		next, ok := nextOpOffset(script, pc)
		if !ok {
			break
		}
		pc = next
	}

	if !found {
		return script
	}
	return append(result, script[pc2:]...)
}

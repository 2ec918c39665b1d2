// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// libconsensus exports the script verification of the consensus package to
// C callers.  Build it with:
//
//	go build -buildmode=c-shared -o liblyokocoinconsensus.so ./cmd/libconsensus
//
// Every buffer is passed with an explicit length and the functions return 1
// when the input is valid and 0 otherwise.  When err is not NULL it receives
// the error code of the request.
package main

/*
#include <stdint.h>

typedef enum lyokocoinconsensus_error_t {
	lyokocoinconsensus_ERR_OK = 0,
	lyokocoinconsensus_ERR_TX_INDEX,
	lyokocoinconsensus_ERR_TX_SIZE_MISMATCH,
	lyokocoinconsensus_ERR_TX_DESERIALIZE,
	lyokocoinconsensus_ERR_AMOUNT_REQUIRED,
	lyokocoinconsensus_ERR_INVALID_FLAGS,
	lyokocoinconsensus_ERR_SCRIPT_FAILED,
} lyokocoinconsensus_error;
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/sat20-labs/lyokocore/consensus"
)

// validLength reports whether a buffer of n bytes can be copied into Go.
// C.GoBytes takes a C int, so larger lengths would wrap negative.
func validLength(n uint32) bool {
	return uint64(n) <= math.MaxInt32
}

// goBytes copies n bytes at p into a Go slice.  A NULL pointer is read as an
// empty buffer.  It returns false for lengths C.GoBytes cannot copy.
func goBytes(p *C.uchar, n C.uint) ([]byte, bool) {
	if !validLength(uint32(n)) {
		return nil, false
	}
	if p == nil || n == 0 {
		return nil, true
	}
	return C.GoBytes(unsafe.Pointer(p), C.int(n)), true
}

// requestBytes copies the script and transaction buffers of a request.
func requestBytes(scriptPubKey *C.uchar, scriptPubKeyLen C.uint, txTo *C.uchar,
	txToLen C.uint) ([]byte, []byte, bool) {

	script, ok := goBytes(scriptPubKey, scriptPubKeyLen)
	if !ok {
		return nil, nil, false
	}
	tx, ok := goBytes(txTo, txToLen)
	if !ok {
		return nil, nil, false
	}
	return script, tx, true
}

// report stores code in err when the caller asked for it and converts valid
// into the C return value.
func report(valid bool, code consensus.ErrorCode,
	err *C.lyokocoinconsensus_error) C.int {

	if err != nil {
		*err = C.lyokocoinconsensus_error(code)
	}
	if valid {
		return 1
	}
	return 0
}

//export lyokocoinconsensus_verify_script
func lyokocoinconsensus_verify_script(scriptPubKey *C.uchar,
	scriptPubKeyLen C.uint, txTo *C.uchar, txToLen C.uint, nIn C.uint,
	flags C.uint, err *C.lyokocoinconsensus_error) C.int {

	script, tx, ok := requestBytes(scriptPubKey, scriptPubKeyLen, txTo, txToLen)
	if !ok {
		return report(false, consensus.ErrTxDeserialize, err)
	}
	valid, code := consensus.VerifyScript(script, tx, uint32(nIn),
		uint32(flags))
	return report(valid, code, err)
}

//export lyokocoinconsensus_verify_script_with_amount
func lyokocoinconsensus_verify_script_with_amount(scriptPubKey *C.uchar,
	scriptPubKeyLen C.uint, amount C.int64_t, txTo *C.uchar, txToLen C.uint,
	nIn C.uint, flags C.uint, err *C.lyokocoinconsensus_error) C.int {

	script, tx, ok := requestBytes(scriptPubKey, scriptPubKeyLen, txTo, txToLen)
	if !ok {
		return report(false, consensus.ErrTxDeserialize, err)
	}
	valid, code := consensus.VerifyScriptWithAmount(script, int64(amount),
		tx, uint32(nIn), uint32(flags))
	return report(valid, code, err)
}

//export lyokocoinconsensus_version
func lyokocoinconsensus_version() C.uint {
	return C.uint(consensus.Version())
}

func main() {}

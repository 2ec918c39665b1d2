// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"fmt"
)

// halfOrder is half the secp256k1 group order, big-endian.  Low S
// signatures have an S value less than or equal to it.
var halfOrder = []byte{
	0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0x5d, 0x57, 0x6e, 0x73, 0x57, 0xa4, 0x50, 0x1d,
	0xdf, 0xe9, 0x2f, 0x46, 0x68, 0x1b, 0x20, 0xa0,
}

// isValidDEREncoding reports whether sig is a strictly DER encoded ECDSA
// signature without a trailing hash type.  This is the check of BIP0066.
//
// The format of a DER encoded signature is as follows:
//
//	0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//	  - 0x30 is the ASN.1 identifier for a sequence
//	  - Total length is 1 byte and specifies length of all remaining data
//	  - 0x02 is the ASN.1 identifier that specifies an integer follows
//	  - Length of R is 1 byte and specifies how many bytes R occupies
//	  - R is the arbitrary length big-endian encoded number which
//	    represents the R value of the signature.  DER encoding dictates
//	    that the value must be encoded using the minimum possible number
//	    of bytes.  This implies the first byte can only be null if the
//	    highest bit of the next byte is set in order to prevent it from
//	    being interpreted as a negative number.
//	  - 0x02 is once again the ASN.1 integer identifier
//	  - Length of S is 1 byte and specifies how many bytes S occupies
//	  - S is the arbitrary length big-endian encoded number which
//	    represents the S value of the signature.  The encoding rules are
//	    identical as those for R.
func isValidDEREncoding(sig []byte) bool {
	// Minimum and maximum size constraints.
	if len(sig) < 8 || len(sig) > 72 {
		return false
	}

	// A signature is of type 0x30 (compound).
	if sig[0] != 0x30 {
		return false
	}

	// Make sure the length covers the entire signature.
	if int(sig[1]) != len(sig)-2 {
		return false
	}

	// Extract the length of the R element.
	lenR := int(sig[3])

	// Make sure the length of the S element is still inside the signature.
	if 5+lenR >= len(sig) {
		return false
	}

	// Extract the length of the S element.
	lenS := int(sig[5+lenR])

	// Verify that the length of the signature matches the sum of the
	// length of the elements.
	if lenR+lenS+6 != len(sig) {
		return false
	}

	// Check whether the R element is an integer.
	if sig[2] != 0x02 {
		return false
	}

	// Zero-length integers are not allowed for R.
	if lenR == 0 {
		return false
	}

	// Negative numbers are not allowed for R.
	if sig[4]&0x80 != 0 {
		return false
	}

	// Null bytes at the start of R are not allowed, unless R would
	// otherwise be interpreted as a negative number.
	if lenR > 1 && sig[4] == 0x00 && sig[5]&0x80 == 0 {
		return false
	}

	// Check whether the S element is an integer.
	if sig[lenR+4] != 0x02 {
		return false
	}

	// Zero-length integers are not allowed for S.
	if lenS == 0 {
		return false
	}

	// Negative numbers are not allowed for S.
	if sig[lenR+6]&0x80 != 0 {
		return false
	}

	// Null bytes at the start of S are not allowed, unless S would otherwise
	// be interpreted as a negative number.
	if lenS > 1 && sig[lenR+6] == 0x00 && sig[lenR+7]&0x80 == 0 {
		return false
	}

	return true
}

// isLowS reports whether the S value of the strictly DER encoded sig is at
// most half the group order.
func isLowS(sig []byte) bool {
	lenR := int(sig[3])
	s := sig[lenR+6:]

	// Strip the sign padding.
	for len(s) > 0 && s[0] == 0x00 {
		s = s[1:]
	}
	if len(s) != len(halfOrder) {
		return len(s) < len(halfOrder)
	}
	return bytes.Compare(s, halfOrder) <= 0
}

// checkDEREncoding applies the DER and low S rules selected by flags to a
// signature without hash type.
func checkDEREncoding(sig []byte, flags ScriptFlags) error {
	strict := ScriptVerifyDERSignatures | ScriptVerifyLowS |
		ScriptVerifyStrictEncoding
	if flags&strict != 0 && !isValidDEREncoding(sig) {
		return scriptError(ErrSigDER, "signature is not canonically encoded")
	}
	if flags&ScriptVerifyLowS != 0 && !isLowS(sig) {
		return scriptError(ErrSigHighS, "signature is not canonical due "+
			"to unnecessarily high S value")
	}
	return nil
}

// checkSignatureEncoding returns an error if the transaction signature, with
// its trailing hash type byte, violates the encoding rules selected by flags.
// An empty signature is always accepted and simply fails verification.
func checkSignatureEncoding(sig []byte, flags ScriptFlags) error {
	if len(sig) == 0 {
		return nil
	}

	if err := checkDEREncoding(sig[:len(sig)-1], flags); err != nil {
		return err
	}

	if flags&ScriptVerifyStrictEncoding != 0 {
		hashType := SigHashType(sig[len(sig)-1])
		if !hashType.isDefined() {
			str := fmt.Sprintf("invalid hash type 0x%x", uint32(hashType))
			return scriptError(ErrInvalidSigHashType, str)
		}

		forkIDEnabled := flags&ScriptEnableSigHashForkID != 0
		if !forkIDEnabled && hashType.hasForkID() {
			return scriptError(ErrIllegalForkID,
				"fork id hash type used before it is enabled")
		}
		if forkIDEnabled && !hashType.hasForkID() {
			return scriptError(ErrMustUseForkID,
				"signature must use the fork id hash type")
		}
	}

	return nil
}

// checkDataSignatureEncoding returns an error if the data signature violates
// the encoding rules selected by flags.  Data signatures carry no hash type.
func checkDataSignatureEncoding(sig []byte, flags ScriptFlags) error {
	if len(sig) == 0 {
		return nil
	}
	return checkDEREncoding(sig, flags)
}

// checkPubKeyEncoding returns an error if the public key is not a compressed
// or uncompressed key while strict encoding is enforced.
func checkPubKeyEncoding(pubKey []byte, flags ScriptFlags) error {
	if flags&ScriptVerifyStrictEncoding == 0 {
		return nil
	}

	if len(pubKey) == 33 && (pubKey[0] == 0x02 || pubKey[0] == 0x03) {
		// Compressed
		return nil
	}
	if len(pubKey) == 65 && pubKey[0] == 0x04 {
		// Uncompressed
		return nil
	}

	return scriptError(ErrPubKeyType, "unsupported public key type")
}

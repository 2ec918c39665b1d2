// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"errors"
	"fmt"
	"math/big"

	btcdchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits.  It is defined here to avoid
	// the overhead of creating it multiple times.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
)

var (
	// ErrNegativeTarget describes a compact value with the sign bit set
	// and a non-zero mantissa.
	ErrNegativeTarget = errors.New("compact target is negative")

	// ErrTargetOverflow describes a compact value that does not fit in 256
	// bits.
	ErrTargetOverflow = errors.New("compact target overflows 256 bits")

	// ErrZeroTarget describes a compact value that decodes to zero.
	ErrZeroTarget = errors.New("compact target is zero")

	// ErrTargetAboveLimit describes a target which is easier than the
	// proof-of-work limit of the network.
	ErrTargetAboveLimit = errors.New("target is higher than the proof of work limit")

	// ErrHighHash describes a block hash that does not satisfy its target.
	ErrHighHash = errors.New("block hash is higher than its target")
)

// HashToBig converts a chainhash.Hash, read as a little-endian number, into
// a big.Int that can be used to perform math comparisons.
func HashToBig(hash *chainhash.Hash) *big.Int {
	return btcdchain.HashToBig(hash)
}

// CompactToBig converts the compact representation used for block targets
// into a big.Int.  Encodings that TargetFromCompact rejects are decoded
// without complaint, so consensus checks must go through TargetFromCompact.
func CompactToBig(compact uint32) *big.Int {
	return btcdchain.CompactToBig(compact)
}

// BigToCompact converts a whole number N to the compact representation
// described by CompactToBig.
func BigToCompact(n *big.Int) uint32 {
	return btcdchain.BigToCompact(n)
}

// TargetFromCompact decodes bits into a proof-of-work target.  Unlike
// CompactToBig it rejects encodings that are negative, exceed 256 bits or
// decode to zero, none of which can be satisfied by a block hash.
func TargetFromCompact(bits uint32) (*big.Int, error) {
	mantissa := bits & 0x007fffff
	exponent := bits >> 24
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
	}

	if mantissa != 0 && bits&0x00800000 != 0 {
		return nil, ErrNegativeTarget
	}
	if mantissa != 0 && (exponent > 34 ||
		(mantissa > 0xff && exponent > 33) ||
		(mantissa > 0xffff && exponent > 32)) {

		return nil, ErrTargetOverflow
	}

	target := CompactToBig(bits)
	if target.Sign() <= 0 {
		return nil, ErrZeroTarget
	}
	return target, nil
}

// HashMeetsTarget reports whether hash, read as a 256-bit little-endian
// number, is less than or equal to target.
func HashMeetsTarget(hash *chainhash.Hash, target *big.Int) bool {
	return HashToBig(hash).Cmp(target) <= 0
}

// CheckProofOfWork ensures the target encoded by bits is valid and within
// powLimit and that hash satisfies it.
func CheckProofOfWork(hash *chainhash.Hash, bits uint32, powLimit *big.Int) error {
	target, err := TargetFromCompact(bits)
	if err != nil {
		return fmt.Errorf("bits %08x: %w", bits, err)
	}
	if target.Cmp(powLimit) > 0 {
		return fmt.Errorf("%w: target %064x, limit %064x",
			ErrTargetAboveLimit, target, powLimit)
	}
	if !HashMeetsTarget(hash, target) {
		return fmt.Errorf("%w: hash %v, target %064x", ErrHighHash,
			hash, target)
	}
	return nil
}

// CalcWork calculates a work value from difficulty bits.  Bitcoin increases
// the difficulty for generating a block by decreasing the value which the
// generated hash must be less than.  This difficulty target is stored in each
// block header using a compact representation as described in the
// documentation for CompactToBig.  The main chain is selected by choosing the
// chain that has the most proof of work (highest difficulty).  Since a lower
// target difficulty value equates to higher actual difficulty, the work value
// which will be accumulated must be the inverse of the difficulty.  Also, in
// order to avoid potential division by zero and really small floating point
// numbers, the result adds 1 to the denominator and multiplies the numerator
// by 2^256.
func CalcWork(bits uint32) *big.Int {
	// Return a work value of zero if the passed difficulty bits represent
	// an invalid target.
	difficultyNum, err := TargetFromCompact(bits)
	if err != nil {
		return big.NewInt(0)
	}

	// (1 << 256) / (difficultyNum + 1)
	denominator := new(big.Int).Add(difficultyNum, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}

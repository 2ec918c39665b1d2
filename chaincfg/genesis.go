// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// GenesisMessage is the message embedded in the coinbase signature
	// script of every network's genesis block.
	GenesisMessage = "The Times 03/Jan/2018 Bitcoin is name of the game for new generation of firms"

	// GenesisReward is the value of the single genesis coinbase output.
	GenesisReward = 30 * btcutil.SatoshiPerBitcoin

	// genesisCoinbaseBits is the compact value pushed first in the genesis
	// coinbase signature script.  It is fixed and unrelated to the header
	// bits of the individual networks.
	genesisCoinbaseBits = 486604799
)

// ErrGenesisMismatch describes an error where a constructed genesis block
// does not hash to the value compiled into the network parameters.  Nodes
// must refuse to start when this happens.
var ErrGenesisMismatch = errors.New("genesis block mismatch")

// genesisPubKey is the uncompressed public key paid by the genesis coinbase.
var genesisPubKey = []byte{
	0x04, 0x67, 0x8a, 0xfd, 0xb0, 0xfe, 0x55, 0x48, /* |.g....UH| */
	0x27, 0x19, 0x67, 0xf1, 0xa6, 0x71, 0x30, 0xb7, /* |'.g..q0.| */
	0x10, 0x5c, 0xd6, 0xa8, 0x28, 0xe0, 0x39, 0x09, /* |.\..(.9.| */
	0xa6, 0x79, 0x62, 0xe0, 0xea, 0x1f, 0x61, 0xde, /* |.yb...a.| */
	0xb6, 0x49, 0xf6, 0xbc, 0x3f, 0x4c, 0xef, 0x38, /* |.I..?L.8| */
	0xc4, 0xf3, 0x55, 0x04, 0xe5, 0x1e, 0xc1, 0x12, /* |..U.....| */
	0xde, 0x5c, 0x38, 0x4d, 0xf7, 0xba, 0x0b, 0x8d, /* |.\8M....| */
	0x57, 0x8a, 0x4c, 0x70, 0x2b, 0x6b, 0xf1, 0x1d, /* |W.Lp+k..| */
	0x5f, /* |_| */
}

// GenesisPubKeyScript returns the pay-to-pubkey output script shared by the
// genesis blocks of all networks.
func GenesisPubKeyScript() []byte {
	script, _ := txscript.NewScriptBuilder().
		AddData(genesisPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	return script
}

// genesisSignatureScript builds the coinbase signature script carrying the
// genesis message.  The second element is a raw one-byte push of 0x04 which
// the builder would otherwise canonicalize to OP_4, so it is appended as
// opcodes.
func genesisSignatureScript(message string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, 0x04}).
		AddData([]byte(message)).
		Script()
}

// BuildGenesisBlock constructs a genesis block holding a single coinbase
// transaction that embeds message and pays reward to outputScript.  The
// merkle root is computed from the coinbase; the remaining header fields are
// taken from the arguments.
func BuildGenesisBlock(message string, outputScript []byte, timestamp uint32,
	nonce uint32, bits uint32, version int32, reward btcutil.Amount) (*wire.MsgBlock, error) {

	sigScript, err := genesisSignatureScript(message)
	if err != nil {
		return nil, fmt.Errorf("genesis signature script: %w", err)
	}

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: 0xffffffff,
		},
		SignatureScript: sigScript,
		Sequence:        0xffffffff,
	})
	coinbase.AddTxOut(wire.NewTxOut(int64(reward), outputScript))
	coinbase.LockTime = 0

	utilTxns := []*btcutil.Tx{btcutil.NewTx(coinbase)}
	merkleRoot := blockchain.CalcMerkleRoot(utilTxns, false)

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: merkleRoot,
			Timestamp:  time.Unix(int64(timestamp), 0),
			Bits:       bits,
			Nonce:      nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	return block, nil
}

// VerifyGenesisBlock checks that block hashes to expectedHash and carries
// expectedMerkleRoot.  The returned error wraps ErrGenesisMismatch.
func VerifyGenesisBlock(block *wire.MsgBlock, expectedHash,
	expectedMerkleRoot *chainhash.Hash) error {

	if block == nil || len(block.Transactions) != 1 {
		return fmt.Errorf("%w: block must hold exactly one transaction",
			ErrGenesisMismatch)
	}

	utilTxns := []*btcutil.Tx{btcutil.NewTx(block.Transactions[0])}
	merkleRoot := blockchain.CalcMerkleRoot(utilTxns, false)
	if !merkleRoot.IsEqual(&block.Header.MerkleRoot) {
		return fmt.Errorf("%w: header merkle root %v, computed %v",
			ErrGenesisMismatch, block.Header.MerkleRoot, merkleRoot)
	}
	if !merkleRoot.IsEqual(expectedMerkleRoot) {
		return fmt.Errorf("%w: merkle root %v, expected %v",
			ErrGenesisMismatch, merkleRoot, expectedMerkleRoot)
	}

	hash := block.BlockHash()
	if !hash.IsEqual(expectedHash) {
		return fmt.Errorf("%w: hash %v, expected %v", ErrGenesisMismatch,
			hash, expectedHash)
	}

	log.Debugf("Genesis block %v verified (merkle root %v)", hash, merkleRoot)
	return nil
}

// genesisMerkleRoot is the merkle root of the genesis coinbase.  It is the
// same for every network since the coinbase does not vary.
var genesisMerkleRoot = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x0d, 0x73, 0x06, 0x8f, 0x38, 0x44, 0x0e, 0xbb,
	0xa2, 0xf5, 0x67, 0x67, 0xfa, 0xd7, 0x6c, 0x4c,
	0x36, 0xee, 0xd6, 0xb9, 0x55, 0x61, 0x24, 0x62,
	0xba, 0x92, 0xa1, 0xfb, 0xab, 0x3a, 0x87, 0xa2,
})

// mainGenesisHash is the hash of the first block in the block chain for the
// main network (genesis block).  The main and test networks share their
// genesis inputs and therefore their genesis block.
var mainGenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x17, 0x13, 0xef, 0x03, 0xaa, 0xb0, 0x0d, 0x0e,
	0x4f, 0xa1, 0xa0, 0x11, 0xf0, 0xdf, 0x9f, 0xdb,
	0x69, 0xc8, 0x92, 0x71, 0x58, 0x11, 0x55, 0xc1,
	0x91, 0x6b, 0x1e, 0x1a, 0x00, 0x00, 0x00, 0x00,
})

// testNetGenesisHash is the hash of the first block in the block chain for
// the test network.
var testNetGenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x17, 0x13, 0xef, 0x03, 0xaa, 0xb0, 0x0d, 0x0e,
	0x4f, 0xa1, 0xa0, 0x11, 0xf0, 0xdf, 0x9f, 0xdb,
	0x69, 0xc8, 0x92, 0x71, 0x58, 0x11, 0x55, 0xc1,
	0x91, 0x6b, 0x1e, 0x1a, 0x00, 0x00, 0x00, 0x00,
})

// regTestGenesisHash is the hash of the first block in the block chain for
// the regression test network.
var regTestGenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0xf7, 0xc8, 0xcd, 0xcb, 0xca, 0x63, 0x6e, 0x12,
	0x76, 0xf1, 0xc2, 0x37, 0xe6, 0x7a, 0x94, 0x67,
	0xc7, 0x8d, 0xa4, 0xed, 0x4b, 0xdc, 0x83, 0x8c,
	0x71, 0x4b, 0x93, 0xfa, 0xd4, 0xc5, 0x3f, 0x1c,
})

// genesisInputs holds the literal inputs a network's genesis block is built
// from.
type genesisInputs struct {
	timestamp uint32
	nonce     uint32
	bits      uint32
	version   int32
}

var (
	mainGenesisInputs    = genesisInputs{1532687395, 1989679220, 0x1d00ffff, 1}
	testNetGenesisInputs = genesisInputs{1532687395, 1989679220, 0x1d00ffff, 1}
	regTestGenesisInputs = genesisInputs{1296688602, 0, 0x207fffff, 1}
)

// mustBuildGenesis constructs the genesis block for the given inputs.  Only
// the script builder can fail and it does not for the fixed inputs.
func mustBuildGenesis(in genesisInputs) *wire.MsgBlock {
	block, err := BuildGenesisBlock(GenesisMessage, GenesisPubKeyScript(),
		in.timestamp, in.nonce, in.bits, in.version, GenesisReward)
	if err != nil {
		panic(fmt.Sprintf("genesis construction: %v", err))
	}
	return block
}

// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/davecgh/go-spew/spew"
)

// genesisCoinbaseTxHex is the serialized genesis coinbase shared by all
// networks.
var genesisCoinbaseTxHex = "0100000001000000000000000000000000000000000000000000000000000000" +
	"0000000000ffffffff5604ffff001d01044c4d5468652054696d65732030332f" +
	"4a616e2f3230313820426974636f696e206973206e616d65206f662074686520" +
	"67616d6520666f72206e65772067656e65726174696f6e206f66206669726d73" +
	"ffffffff01005ed0b200000000434104678afdb0fe5548271967f1a67130b710" +
	"5cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de" +
	"5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

// TestGenesisCoinbase tests the serialization of the genesis coinbase built
// from the genesis message, reward and output script.
func TestGenesisCoinbase(t *testing.T) {
	block, err := BuildGenesisBlock(GenesisMessage, GenesisPubKeyScript(),
		1532687395, 0, 0x1d00ffff, 1, GenesisReward)
	if err != nil {
		t.Fatalf("BuildGenesisBlock: %v", err)
	}

	var buf bytes.Buffer
	if err := block.Transactions[0].Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want, _ := hex.DecodeString(genesisCoinbaseTxHex)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("genesis coinbase: wrong bytes - got %x, want %x",
			buf.Bytes(), want)
	}

	if !block.Header.MerkleRoot.IsEqual(&genesisMerkleRoot) {
		t.Fatalf("genesis merkle root: got %v, want %v",
			block.Header.MerkleRoot, genesisMerkleRoot)
	}
	if got := block.Transactions[0].TxOut[0].Value; got != 3000000000 {
		t.Fatalf("genesis reward: got %d, want 3000000000", got)
	}
}

// TestGenesisBlocks tests the genesis block of each network for validity by
// checking the hash, merkle root and proof of work.
func TestGenesisBlocks(t *testing.T) {
	tests := []struct {
		name   string
		params *Params
	}{
		{"main", &MainNetParams},
		{"test", &TestNetParams},
		{"regtest", &RegressionNetParams},
	}

	for _, test := range tests {
		p := test.params
		err := VerifyGenesisBlock(p.GenesisBlock, p.GenesisHash,
			p.GenesisMerkleRoot)
		if err != nil {
			t.Errorf("%s: VerifyGenesisBlock: %v\n%s", test.name, err,
				spew.Sdump(p.GenesisBlock.Header))
			continue
		}

		err = blockchain.CheckProofOfWork(btcutil.NewBlock(p.GenesisBlock),
			p.PowLimit)
		if err != nil {
			t.Errorf("%s: genesis proof of work: %v", test.name, err)
		}

		if p.GenesisBlock.Header.Bits != p.PowLimitBits {
			t.Errorf("%s: genesis bits got %08x, want %08x", test.name,
				p.GenesisBlock.Header.Bits, p.PowLimitBits)
		}
	}
}

// TestVerifyGenesisMismatch ensures a genesis block built from altered inputs
// is rejected.
func TestVerifyGenesisMismatch(t *testing.T) {
	in := testNetGenesisInputs
	in.nonce++
	block := mustBuildGenesis(in)
	err := VerifyGenesisBlock(block, &testNetGenesisHash, &genesisMerkleRoot)
	if !errors.Is(err, ErrGenesisMismatch) {
		t.Fatalf("altered nonce: got %v, want ErrGenesisMismatch", err)
	}

	block, err = BuildGenesisBlock("another message", GenesisPubKeyScript(),
		in.timestamp, in.nonce-1, in.bits, in.version, GenesisReward)
	if err != nil {
		t.Fatalf("BuildGenesisBlock: %v", err)
	}
	err = VerifyGenesisBlock(block, &testNetGenesisHash, &genesisMerkleRoot)
	if !errors.Is(err, ErrGenesisMismatch) {
		t.Fatalf("altered message: got %v, want ErrGenesisMismatch", err)
	}

	if err := VerifyGenesisBlock(nil, &testNetGenesisHash,
		&genesisMerkleRoot); !errors.Is(err, ErrGenesisMismatch) {

		t.Fatalf("nil block: got %v, want ErrGenesisMismatch", err)
	}
}

// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// genesisminer searches for the nonce of a genesis block whose hash meets
// the target of its compact bits.  It is an offline tool: the nodes only
// verify the compiled-in genesis blocks.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	btcscript "github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/sat20-labs/lyokocore/blockchain"
	"github.com/sat20-labs/lyokocore/chaincfg"
)

// genesisVersion is the block version of every genesis block.
const genesisVersion = 1

// outputScript returns the pay-to-pubkey script the genesis coinbase pays.
func outputScript(pubKey []byte) ([]byte, error) {
	if len(pubKey) == 0 {
		return chaincfg.GenesisPubKeyScript(), nil
	}
	if _, err := secp256k1.ParsePubKey(pubKey); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}
	return btcscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(btcscript.OP_CHECKSIG).
		Script()
}

// mineGenesis builds the genesis block described by cfg and searches for a
// header meeting its target.
func mineGenesis(ctx context.Context, cfg *config,
	params *chaincfg.Params) (*wire.MsgBlock, error) {

	pkScript, err := outputScript(cfg.pubKey)
	if err != nil {
		return nil, err
	}
	block, err := chaincfg.BuildGenesisBlock(cfg.Message, pkScript,
		cfg.Time, cfg.Nonce, cfg.bits, genesisVersion,
		btcutil.Amount(cfg.Reward))
	if err != nil {
		return nil, err
	}

	var store *progressStore
	if !cfg.NoProgress {
		store, err = openProgressStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		defer store.Close()
	}

	m, err := newMiner(&block.Header, params.PowLimit, store,
		cfg.ProgressInterval)
	if err != nil {
		return nil, err
	}
	header, err := m.run(ctx)
	if err != nil {
		return nil, err
	}
	block.Header = *header

	hash := block.BlockHash()
	if err := blockchain.CheckProofOfWork(&hash, header.Bits,
		params.PowLimit); err != nil {

		return nil, err
	}
	return block, nil
}

// showBlock prints the header fields of the mined block and the Go literals
// of its hashes.
func showBlock(block *wire.MsgBlock, params *chaincfg.Params) {
	hash := block.BlockHash()
	header := &block.Header

	fmt.Println("-------------------------  Genesis Block  --------------------------")
	fmt.Printf("    Block Hash: %v\n", hash)
	fmt.Printf("    Block MerkleRoot Hash: %v\n", header.MerkleRoot)
	fmt.Printf("    Block TimeStamp Unix: %d\n", header.Timestamp.Unix())
	fmt.Printf("    Block TimeStamp: %s\n", header.Timestamp.UTC().Format(time.DateTime))
	fmt.Printf("    Block Bits: %08x\n", header.Bits)
	fmt.Printf("    Block Nonce: %d\n", header.Nonce)
	fmt.Printf("    Block Work: %v\n", blockchain.CalcWork(header.Bits))
	fmt.Println("-------------------------  End  --------------------------")

	logHash("var genesisHash = chainhash.Hash", hash[:])
	logHash("var genesisMerkleRoot = chainhash.Hash", header.MerkleRoot[:])

	if hash.IsEqual(params.GenesisHash) {
		minrLog.Infof("Mined block is the %s genesis block", params.Name)
	}
}

// logHash prints data as a Go byte array literal.
func logHash(title string, data []byte) {
	fmt.Printf("%s{\n\t", title)
	for i, b := range data {
		fmt.Printf("0x%02x,", b)
		switch {
		case i == len(data)-1:
			fmt.Printf("\n")
		case i%8 == 7:
			fmt.Printf("\n\t")
		default:
			fmt.Printf(" ")
		}
	}
	fmt.Printf("}\n")
}

// genesisMinerMain is the real main function for genesisminer.  It is
// necessary to work around the fact that deferred functions do not run when
// os.Exit() is called.
func genesisMinerMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	setLogLevels(cfg.DebugLevel)
	logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
	if err := initLogRotator(logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	// The selected network's own genesis block is verified on selection.
	params, err := chaincfg.SelectParams(cfg.Network)
	if err != nil {
		cfgLog.Errorf("%v", err)
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer cancel()

	minrLog.Infof("Searching for a genesis block at time %d with bits %08x "+
		"starting at nonce %d", cfg.Time, cfg.bits, cfg.Nonce)
	block, err := mineGenesis(ctx, cfg, params)
	if err != nil {
		minrLog.Errorf("%v", err)
		return err
	}
	showBlock(block, params)
	return nil
}

func main() {
	if err := genesisMinerMain(); err != nil {
		os.Exit(1)
	}
}

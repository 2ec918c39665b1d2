// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/sat20-labs/lyokocore/chaincfg"
)

const (
	defaultLogLevel    = "info"
	defaultLogDirname  = "logs"
	defaultLogFilename = "genesisminer"
	defaultDataDirname = "data"
	defaultNetwork     = "regtest"
)

var (
	defaultHomeDir = btcutil.AppDataDir("lyokominer", false)
	defaultDataDir = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir  = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for genesisminer.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Network          string `long:"network" description:"Network whose genesis inputs are the defaults (main, test, regtest)"`
	Time             uint32 `long:"time" description:"Genesis timestamp in unix seconds; 0 uses the network's"`
	Nonce            uint32 `long:"nonce" description:"First nonce to try"`
	Bits             string `long:"bits" description:"Compact target as hex; empty uses the network's"`
	Reward           int64  `long:"reward" description:"Coinbase reward in satoshi; 0 uses the standard reward"`
	Message          string `long:"message" description:"Message embedded in the coinbase"`
	PubKey           string `long:"pubkey" description:"Hex public key paid by the coinbase; empty uses the standard key"`
	DataDir          string `short:"b" long:"datadir" description:"Directory to store search progress"`
	LogDir           string `long:"logdir" description:"Directory to log output"`
	DebugLevel       string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, fatal}; show lists the subsystems"`
	ProgressInterval uint32 `long:"progressinterval" description:"Number of nonces tried between progress records"`
	NoProgress       bool   `long:"noprogress" description:"Do not persist or resume search progress"`

	bits   uint32
	pubKey []byte
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options and overwrite the default values
//  3. Fill unset genesis inputs from the selected network
//
// The above results in genesisminer functioning properly without any config
// settings while still allowing the user to override settings with the
// command line.
func loadConfig() (*config, []string, error) {
	return parseConfig(os.Args[1:])
}

// parseConfig is loadConfig for an explicit argument list.
func parseConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		Network:          defaultNetwork,
		Message:          chaincfg.GenesisMessage,
		DataDir:          defaultDataDir,
		LogDir:           defaultLogDir,
		DebugLevel:       defaultLogLevel,
		ProgressInterval: defaultProgressInterval,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if !errors.As(err, &flagsErr) || flagsErr.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, "Use genesisminer -h to show usage")
		}
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}
	if !validLogLevel(cfg.DebugLevel) {
		err := fmt.Errorf("the specified debug level [%v] is invalid",
			cfg.DebugLevel)
		return nil, nil, usageError(parser, err)
	}

	params, err := chaincfg.ParamsForNetwork(cfg.Network)
	if err != nil {
		return nil, nil, usageError(parser, err)
	}
	genesisHeader := &params.GenesisBlock.Header

	if cfg.Time == 0 {
		cfg.Time = uint32(genesisHeader.Timestamp.Unix())
	}
	cfg.bits = genesisHeader.Bits
	if cfg.Bits != "" {
		bits, err := strconv.ParseUint(strings.TrimPrefix(cfg.Bits, "0x"),
			16, 32)
		if err != nil {
			err := fmt.Errorf("invalid bits %q: %w", cfg.Bits, err)
			return nil, nil, usageError(parser, err)
		}
		cfg.bits = uint32(bits)
	}
	if cfg.Reward == 0 {
		cfg.Reward = chaincfg.GenesisReward
	}
	if cfg.Reward < 0 || cfg.Reward > btcutil.MaxSatoshi {
		err := fmt.Errorf("reward %d is out of range", cfg.Reward)
		return nil, nil, usageError(parser, err)
	}
	if cfg.PubKey != "" {
		cfg.pubKey, err = hex.DecodeString(cfg.PubKey)
		if err != nil {
			err := fmt.Errorf("invalid public key %q: %w", cfg.PubKey, err)
			return nil, nil, usageError(parser, err)
		}
	}

	cfg.DataDir = filepath.Join(cleanAndExpandPath(cfg.DataDir), params.Name)
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), params.Name)

	return &cfg, remainingArgs, nil
}

// usageError prints err followed by the usage of parser and returns err.
func usageError(parser *flags.Parser, err error) error {
	fmt.Fprintln(os.Stderr, err)
	parser.WriteHelp(os.Stderr)
	return err
}

// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^224 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// testNetPowLimit is the highest proof of work value a block can have
	// for the test network.  It is the value 2^224 - 1.
	testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)
)

// Lyokocoin networks.  The values are the message start bytes of each network
// read as a little-endian uint32.
const (
	MainNet wire.BitcoinNet = 0xe8f3e1e3
	TestNet wire.BitcoinNet = 0xf4f3e5f4
	RegTest wire.BitcoinNet = 0xfabfb5da
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64
}

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package.  The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// TriggerKind identifies what an upgrade trigger compares against.
type TriggerKind uint8

const (
	// TriggerHeight activates an upgrade on blocks above a fixed height.
	TriggerHeight TriggerKind = iota

	// TriggerMedianTime activates an upgrade once the median time past of
	// the previous block reaches a fixed time.
	TriggerMedianTime
)

// String returns the trigger kind as a human-readable name.
func (k TriggerKind) String() string {
	switch k {
	case TriggerHeight:
		return "height"
	case TriggerMedianTime:
		return "median-time"
	}
	return fmt.Sprintf("unknown trigger kind (%d)", uint8(k))
}

// UpgradeTrigger describes a hard-coded consensus upgrade.  Unlike BIP0009
// deployments there is no signalling; the upgrade is tied to either a height
// or a median time past.
type UpgradeTrigger struct {
	Name string
	Kind TriggerKind

	// Height is used by height triggers.  The upgrade applies to blocks
	// whose parent is at or above this height.
	Height int32

	// Time is used by median-time triggers, in unix seconds.
	Time int64
}

// IsActive reports whether the upgrade applies to a block whose parent is at
// prevHeight and has a median time past of prevMedianTime.
func (u *UpgradeTrigger) IsActive(prevHeight int32, prevMedianTime int64) bool {
	switch u.Kind {
	case TriggerHeight:
		return prevHeight >= u.Height
	case TriggerMedianTime:
		return prevMedianTime >= u.Time
	}
	return false
}

// Constants that define the upgrade offset in the upgrades field of the
// parameters.
const (
	// UpgradeUAHF is the user activated hard fork introducing replay
	// protected signature hashes.
	UpgradeUAHF = iota

	// UpgradeDAA is the difficulty adjustment algorithm upgrade which also
	// enforces low-S and null-fail signatures.
	UpgradeDAA

	// UpgradeMonolith re-enables a set of disabled opcodes.
	UpgradeMonolith

	// UpgradeMagneticAnomaly introduces OP_CHECKDATASIG and clean stack
	// rules.
	UpgradeMagneticAnomaly

	// DefinedUpgrades is the number of currently defined upgrades.
	DefinedUpgrades
)

// ChainTxData holds statistics about the transaction count of the chain at a
// fixed point, used to estimate verification progress.
type ChainTxData struct {
	// Time is the unix timestamp of the last known transaction count.
	Time int64

	// TxCount is the total number of transactions between genesis and
	// Time.
	TxCount int64

	// TxRate is the estimated number of transactions per second after
	// Time.
	TxRate float64
}

// Params defines a Lyokocoin network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// A Params value is immutable once selected; callers must not modify it.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DiskMagic is the message start written before each block in the
	// on-disk block files.
	DiskMagic [4]byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PruneAfterHeight is the height below which block files are never
	// pruned.
	PruneAfterHeight int32

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root the genesis block must carry.
	GenesisMerkleRoot *chainhash.Hash

	// SubsidyReductionInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyReductionInterval int32

	// These fields define the block heights at which the specified softfork
	// BIP became active.
	BIP0034Height int32
	BIP0034Hash   chainhash.Hash
	BIP0065Height int32
	BIP0066Height int32

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks and should not be set on a main network.
	ReduceMinDifficulty bool

	// NoRetargeting disables difficulty retargeting altogether.
	NoRetargeting bool

	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	RuleChangeActivationThreshold uint32

	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	MinerConfirmationWindow uint32

	// Deployments define the specific consensus rule changes to be voted
	// on.
	Deployments [DefinedDeployments]ConsensusDeployment

	// Upgrades define the hard-coded height and time triggered rule
	// changes.
	Upgrades [DefinedUpgrades]UpgradeTrigger

	// MinimumChainWork is the amount of work below which a chain is not
	// considered during initial block download.
	MinimumChainWork *big.Int

	// AssumeValid is a block whose ancestors are assumed to have valid
	// scripts.
	AssumeValid chainhash.Hash

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// ChainTxData is used to estimate verification progress.
	ChainTxData ChainTxData

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// CashAddrPrefix is the human-readable part of cash addresses.
	CashAddrPrefix string

	// Node behaviour defaults.
	MiningRequiresPeers      bool
	DefaultConsistencyChecks bool
	RequireStandard          bool
	MineBlocksOnDemand       bool
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// copyParams returns a copy of p whose mutable containers are not shared.
func (p *Params) copyParams() *Params {
	c := *p
	c.Checkpoints = append([]Checkpoint(nil), p.Checkpoints...)
	return &c
}

// upgrades returns the upgrade triggers shared by all networks, with the
// height triggers set to the given heights.
func upgrades(uahfHeight, daaHeight int32) [DefinedUpgrades]UpgradeTrigger {
	return [DefinedUpgrades]UpgradeTrigger{
		UpgradeUAHF: {
			Name:   "uahf",
			Kind:   TriggerHeight,
			Height: uahfHeight,
		},
		UpgradeDAA: {
			Name:   "daa",
			Kind:   TriggerHeight,
			Height: daaHeight,
		},
		UpgradeMonolith: {
			Name: "monolith",
			Kind: TriggerMedianTime,
			Time: 1526400000,
		},
		UpgradeMagneticAnomaly: {
			Name: "magneticanomaly",
			Kind: TriggerMedianTime,
			Time: 1542300000,
		},
	}
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:             "main",
	Net:              MainNet,
	DiskMagic:        [4]byte{0xf9, 0xbe, 0xb4, 0xd9},
	DefaultPort:      "5333",
	PruneAfterHeight: 100000,

	// Chain parameters
	GenesisBlock:             mustBuildGenesis(mainGenesisInputs),
	GenesisHash:              &mainGenesisHash,
	GenesisMerkleRoot:        &genesisMerkleRoot,
	SubsidyReductionInterval: 210000,
	BIP0034Height:            227931,
	BIP0034Hash:              *newHashFromStr("000000000000024b89b42a942fe0d9fea3bb44ab7bd1b19115dd6a759c0808b8"),
	BIP0065Height:            388381,
	BIP0066Height:            363725,
	PowLimit:                 mainPowLimit,
	PowLimitBits:             0x1d00ffff,
	TargetTimespan:           time.Hour * 24,
	TargetTimePerBlock:       time.Minute * 5,
	ReduceMinDifficulty:      false,
	NoRetargeting:            false,

	// Consensus rule change deployments.
	//
	// The miner confirmation window is defined as:
	//   target proof of work timespan / target proof of work spacing
	RuleChangeActivationThreshold: 260, // 90% of MinerConfirmationWindow
	MinerConfirmationWindow:       288,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:  28,
			StartTime:  1199145601, // January 1, 2008 UTC
			ExpireTime: 1230767999, // December 31, 2008 UTC
		},
		DeploymentCSV: {
			BitNumber:  0,
			StartTime:  1462060800, // May 1st, 2016
			ExpireTime: 1493596800, // May 1st, 2017
		},
	},
	Upgrades: upgrades(478558, 504031),

	MinimumChainWork: hexToBig("000000000000000000000000000000000000000000a0f3064330647e2f6c4828"),
	AssumeValid:      *newHashFromStr("000000000000000000e45ad2fbcc5ff3e85f0868dd8f00ad4e92dffabe28f8d2"),

	// Checkpoints ordered from oldest to newest.
	Checkpoints: []Checkpoint{
		{0, &mainGenesisHash},
	},

	ChainTxData: ChainTxData{
		Time:    1532154995,
		TxCount: 248589038,
		TxRate:  1.0,
	},

	PubKeyHashAddrID: 0x00, // starts with 1
	ScriptHashAddrID: 0x05, // starts with 3
	PrivateKeyID:     0x80, // starts with 5 (uncompressed) or K (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

	CashAddrPrefix: "lyokocoincash",

	MiningRequiresPeers:      true,
	DefaultConsistencyChecks: false,
	RequireStandard:          true,
	MineBlocksOnDemand:       false,
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:             "test",
	Net:              TestNet,
	DiskMagic:        [4]byte{0x0b, 0x11, 0x09, 0x07},
	DefaultPort:      "15333",
	PruneAfterHeight: 1000,

	// Chain parameters
	GenesisBlock:             mustBuildGenesis(testNetGenesisInputs),
	GenesisHash:              &testNetGenesisHash,
	GenesisMerkleRoot:        &genesisMerkleRoot,
	SubsidyReductionInterval: 210000,
	BIP0034Height:            21111,
	BIP0034Hash:              *newHashFromStr("0000000023b3a96d3484e5abb3755c413e7d41500f8e2a5c3f0dd01299cd8ef8"),
	BIP0065Height:            581885,
	BIP0066Height:            330776,
	PowLimit:                 testNetPowLimit,
	PowLimitBits:             0x1d00ffff,
	TargetTimespan:           time.Hour * 24,
	TargetTimePerBlock:       time.Minute * 5,
	ReduceMinDifficulty:      true,
	NoRetargeting:            false,

	RuleChangeActivationThreshold: 216, // 75% of MinerConfirmationWindow
	MinerConfirmationWindow:       288,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:  28,
			StartTime:  1199145601, // January 1, 2008 UTC
			ExpireTime: 999999999999,
		},
		DeploymentCSV: {
			BitNumber:  0,
			StartTime:  1456790400, // March 1st, 2016
			ExpireTime: 999999999999,
		},
	},
	Upgrades: upgrades(1155875, 1188697),

	MinimumChainWork: hexToBig("00000000000000000000000000000000000000000000002a650f6ff7649485da"),
	AssumeValid:      *newHashFromStr("0000000000327972b8470c11755adf8f4319796bafae01f5a6650490b98a17db"),

	Checkpoints: []Checkpoint{
		{0, &testNetGenesisHash},
	},

	ChainTxData: ChainTxData{
		Time:    1532687395,
		TxCount: 0,
		TxRate:  1.0,
	},

	PubKeyHashAddrID: 0x5f,
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

	CashAddrPrefix: "loctest",

	MiningRequiresPeers:      true,
	DefaultConsistencyChecks: false,
	RequireStandard:          false,
	MineBlocksOnDemand:       false,
}

// RegressionNetParams defines the network parameters for the regression test
// network.  Not to be confused with the test network, this network is
// sometimes simply called "regtest".
var RegressionNetParams = Params{
	Name:             "regtest",
	Net:              RegTest,
	DiskMagic:        [4]byte{0xfa, 0xbf, 0xb5, 0xda},
	DefaultPort:      "18444",
	PruneAfterHeight: 1000,

	// Chain parameters
	GenesisBlock:             mustBuildGenesis(regTestGenesisInputs),
	GenesisHash:              &regTestGenesisHash,
	GenesisMerkleRoot:        &genesisMerkleRoot,
	SubsidyReductionInterval: 150,
	BIP0034Height:            100000000, // Not active, permit regtest mining of blocks
	BIP0065Height:            1351,      // Used by regression tests
	BIP0066Height:            1251,      // Used by regression tests
	PowLimit:                 regressionPowLimit,
	PowLimitBits:             0x207fffff,
	TargetTimespan:           time.Hour * 24,
	TargetTimePerBlock:       time.Minute * 5,
	ReduceMinDifficulty:      true,
	NoRetargeting:            true,

	RuleChangeActivationThreshold: 216, // 75% of MinerConfirmationWindow
	MinerConfirmationWindow:       288,
	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:  28,
			StartTime:  0,
			ExpireTime: 999999999999,
		},
		DeploymentCSV: {
			BitNumber:  0,
			StartTime:  0,
			ExpireTime: 999999999999,
		},
	},
	Upgrades: upgrades(0, 0),

	MinimumChainWork: new(big.Int),

	Checkpoints: []Checkpoint{
		{0, &regTestGenesisHash},
	},

	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

	CashAddrPrefix: "bchreg",

	MiningRequiresPeers:      false,
	DefaultConsistencyChecks: true,
	RequireStandard:          false,
	MineBlocksOnDemand:       true,
}

var (
	// ErrBadCheckpoints describes an error where a checkpoint table is not
	// ordered by strictly increasing height or holds a nil hash.
	ErrBadCheckpoints = errors.New("invalid checkpoint table")
)

// ValidateCheckpoints verifies that checkpoints are ordered by strictly
// increasing height and carry a hash.
func ValidateCheckpoints(checkpoints []Checkpoint) error {
	for i := range checkpoints {
		if checkpoints[i].Hash == nil {
			return fmt.Errorf("%w: nil hash at height %d",
				ErrBadCheckpoints, checkpoints[i].Height)
		}
		if i > 0 && checkpoints[i].Height <= checkpoints[i-1].Height {
			return fmt.Errorf("%w: height %d follows %d",
				ErrBadCheckpoints, checkpoints[i].Height,
				checkpoints[i-1].Height)
		}
	}
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexToBig converts the passed big-endian hex string into a big.Int.  It panics
// on an error since it is only called with hard-coded values.
func hexToBig(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hex in source file: " + hexStr)
	}
	return n
}

// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	// ErrUnknownNetwork describes an error where the requested network
	// name is not one of the supported networks.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNotInitialized describes an error where the active parameters are
	// requested before a network has been selected.
	ErrNotInitialized = errors.New("network parameters not selected")

	// ErrAlreadyInitialized describes an error where a network selection is
	// attempted after a different selection has already been made.
	ErrAlreadyInitialized = errors.New("network parameters already selected")

	// ErrOverrideNotAllowed describes an error where a deployment override
	// is requested for a network other than regtest.
	ErrOverrideNotAllowed = errors.New("deployment overrides are only allowed on regtest")
)

var (
	// selectMtx serializes selections.  Readers only load active.
	selectMtx sync.Mutex

	// active holds the selected parameters.  It is written once.
	active atomic.Pointer[Params]

	// selectedWithOverrides records whether the active parameters were
	// derived with select options, in which case a repeated selection is
	// never treated as idempotent.
	selectedWithOverrides bool
)

// networks maps the accepted network names to their parameters.
var networks = map[string]*Params{
	"main":    &MainNetParams,
	"mainnet": &MainNetParams,
	"test":    &TestNetParams,
	"testnet": &TestNetParams,
	"regtest": &RegressionNetParams,
}

// SelectOption modifies the parameters of a network before they become
// active.
type SelectOption func(*Params) error

// WithDeploymentTimes overrides the start and expire times of a deployment.
// It is only accepted for the regression test network.
func WithDeploymentTimes(deploymentID int, startTime, expireTime uint64) SelectOption {
	return func(p *Params) error {
		if p.Net != RegTest {
			return ErrOverrideNotAllowed
		}
		if deploymentID < 0 || deploymentID >= DefinedDeployments {
			return fmt.Errorf("deployment ID %d does not exist",
				deploymentID)
		}
		p.Deployments[deploymentID].StartTime = startTime
		p.Deployments[deploymentID].ExpireTime = expireTime
		return nil
	}
}

// ParamsForNetwork returns the parameters for the named network without
// selecting it.  Accepted names are main, mainnet, test, testnet and regtest.
func ParamsForNetwork(name string) (*Params, error) {
	params, ok := networks[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return params, nil
}

// SelectParams selects the process-wide network parameters.  The genesis
// block of the network is verified against its compiled-in hash and the
// checkpoint table is validated before the parameters become active.
//
// Selection happens once per process.  Selecting the already active network
// again without options returns the active parameters; any other repeated
// selection fails with ErrAlreadyInitialized.
func SelectParams(name string, opts ...SelectOption) (*Params, error) {
	params, err := ParamsForNetwork(name)
	if err != nil {
		return nil, err
	}

	selectMtx.Lock()
	defer selectMtx.Unlock()

	if current := active.Load(); current != nil {
		if current.Net == params.Net && len(opts) == 0 &&
			!selectedWithOverrides {

			return current, nil
		}
		return nil, fmt.Errorf("%w: active network is %s",
			ErrAlreadyInitialized, current.Name)
	}

	if len(opts) > 0 {
		params = params.copyParams()
		for _, opt := range opts {
			if err := opt(params); err != nil {
				return nil, err
			}
		}
	}

	if err := VerifyGenesisBlock(params.GenesisBlock, params.GenesisHash,
		params.GenesisMerkleRoot); err != nil {

		return nil, fmt.Errorf("%s network: %w", params.Name, err)
	}
	if err := ValidateCheckpoints(params.Checkpoints); err != nil {
		return nil, fmt.Errorf("%s network: %w", params.Name, err)
	}

	active.Store(params)
	selectedWithOverrides = len(opts) > 0
	log.Infof("Selected %s network (genesis %v)", params.Name,
		params.GenesisHash)

	return params, nil
}

// ActiveParams returns the selected network parameters.
func ActiveParams() (*Params, error) {
	params := active.Load()
	if params == nil {
		return nil, ErrNotInitialized
	}
	return params, nil
}

// MustActiveParams returns the selected network parameters and panics when no
// network has been selected yet.
func MustActiveParams() *Params {
	params, err := ActiveParams()
	if err != nil {
		panic(err)
	}
	return params
}

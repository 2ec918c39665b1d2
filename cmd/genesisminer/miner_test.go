// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/sat20-labs/lyokocore/blockchain"
	"github.com/sat20-labs/lyokocore/chaincfg"
	"github.com/stretchr/testify/require"
)

// regtestHeader returns a copy of the regtest genesis header with the given
// bits and nonce.
func regtestHeader(bits, nonce uint32) *wire.BlockHeader {
	header := chaincfg.RegressionNetParams.GenesisBlock.Header
	header.Bits = bits
	header.Nonce = nonce
	return &header
}

func TestMineRegtestGenesis(t *testing.T) {
	params := &chaincfg.RegressionNetParams
	m, err := newMiner(regtestHeader(params.PowLimitBits, 0),
		params.PowLimit, nil, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(defaultProgressInterval), m.interval)

	header, err := m.run(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint32(0), header.Nonce)
	hash := header.BlockHash()
	require.Equal(t, *params.GenesisHash, hash)
}

func TestNewMinerErrors(t *testing.T) {
	_, err := newMiner(regtestHeader(0, 0),
		chaincfg.RegressionNetParams.PowLimit, nil, 0)
	require.ErrorIs(t, err, blockchain.ErrZeroTarget)

	_, err = newMiner(regtestHeader(0x207fffff, 0),
		chaincfg.MainNetParams.PowLimit, nil, 0)
	require.ErrorIs(t, err, blockchain.ErrTargetAboveLimit)
}

func TestMineStoresResult(t *testing.T) {
	store, err := openProgressStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	// About one in 512 hashes meets this target.
	start := regtestHeader(0x1f7fffff, 0)
	key := newSearchKey(start)
	m, err := newMiner(start, chaincfg.RegressionNetParams.PowLimit,
		store, 16)
	require.NoError(t, err)

	header, err := m.run(context.Background())
	require.NoError(t, err)
	hash := header.BlockHash()
	require.NoError(t, blockchain.CheckProofOfWork(&hash, header.Bits,
		chaincfg.RegressionNetParams.PowLimit))

	saved, err := store.LoadResult(key)
	require.NoError(t, err)
	require.Equal(t, hash, saved.BlockHash())
	_, err = store.LoadProgress(key)
	require.ErrorIs(t, err, errNoProgress)

	// A second run returns the stored header without searching, even
	// when asked to stop right away.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, err = newMiner(start, chaincfg.RegressionNetParams.PowLimit, store, 1)
	require.NoError(t, err)
	again, err := m.run(ctx)
	require.NoError(t, err)
	require.Equal(t, hash, again.BlockHash())
}

func TestMineResume(t *testing.T) {
	store, err := openProgressStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The main network target is out of reach for a few dozen tries.
	start := regtestHeader(0x1d00ffff, 100)
	key := newSearchKey(start)
	for _, want := range []uint32{116, 132} {
		m, err := newMiner(start, chaincfg.MainNetParams.PowLimit, store, 16)
		require.NoError(t, err)
		_, err = m.run(ctx)
		require.ErrorIs(t, err, context.Canceled)

		state, err := store.LoadProgress(key)
		require.NoError(t, err)
		require.Equal(t, want, state.Nonce)
		require.Equal(t, uint32(start.Timestamp.Unix()), state.Timestamp)
	}
}

func TestMineNonceWrap(t *testing.T) {
	store, err := openProgressStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := regtestHeader(0x1d00ffff, ^uint32(0))
	m, err := newMiner(start, chaincfg.MainNetParams.PowLimit, store, 1)
	require.NoError(t, err)
	_, err = m.run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	state, err := store.LoadProgress(newSearchKey(start))
	require.NoError(t, err)
	require.Equal(t, uint32(0), state.Nonce)
	require.Equal(t, uint32(start.Timestamp.Add(time.Second).Unix()),
		state.Timestamp)
}

func TestSearchKey(t *testing.T) {
	a := regtestHeader(0x207fffff, 0)
	b := regtestHeader(0x207fffff, 12345)
	require.Equal(t, newSearchKey(a), newSearchKey(b))

	c := regtestHeader(0x1f7fffff, 0)
	require.NotEqual(t, newSearchKey(a), newSearchKey(c))

	d := regtestHeader(0x207fffff, 0)
	d.Timestamp = d.Timestamp.Add(time.Second)
	require.NotEqual(t, newSearchKey(a), newSearchKey(d))
}

func TestSearchState(t *testing.T) {
	state := searchState{Timestamp: 1532687395, Nonce: 1989679220}
	got, err := decodeSearchState(state.bytes())
	require.NoError(t, err)
	require.Equal(t, state, got)

	_, err = decodeSearchState([]byte{0x01, 0x02})
	require.Error(t, err)
}

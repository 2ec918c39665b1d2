// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	bolt "go.etcd.io/bbolt"
)

const (
	// databaseFileName is the name of the progress database inside the
	// data directory.
	databaseFileName = "genesisminer.db"

	boltAllocSize = 1024 * 1024

	// boltTimeout is how long opening waits for the file lock held by
	// another miner.
	boltTimeout = time.Second
)

var (
	// progressBucket maps a search key to the next untried time and nonce.
	progressBucket = []byte("progress")

	// resultsBucket maps a search key to the header that was found.
	resultsBucket = []byte("results")

	buckets = [][]byte{progressBucket, resultsBucket}
)

// errNoProgress is returned when no progress was recorded for a search.
var errNoProgress = errors.New("no progress recorded")

// searchKey identifies a nonce search by its starting header.  The nonce
// does not take part so a search resumes independently of where it began.
type searchKey [sha256.Size]byte

// newSearchKey returns the key of the search starting from header.
func newSearchKey(header *wire.BlockHeader) searchKey {
	var buf [4 + chainhash.HashSize*2 + 4 + 4]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(header.Version))
	copy(buf[4:], header.PrevBlock[:])
	copy(buf[4+chainhash.HashSize:], header.MerkleRoot[:])
	binary.LittleEndian.PutUint32(buf[4+chainhash.HashSize*2:],
		uint32(header.Timestamp.Unix()))
	binary.LittleEndian.PutUint32(buf[8+chainhash.HashSize*2:], header.Bits)
	return sha256.Sum256(buf[:])
}

// searchState is the position of a search: the next timestamp and nonce to
// try.
type searchState struct {
	Timestamp uint32
	Nonce     uint32
}

func (s searchState) bytes() []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], s.Timestamp)
	binary.LittleEndian.PutUint32(buf[4:8], s.Nonce)
	return buf[:]
}

func decodeSearchState(b []byte) (searchState, error) {
	if len(b) != 8 {
		return searchState{}, fmt.Errorf("malformed progress record of "+
			"%d bytes", len(b))
	}
	return searchState{
		Timestamp: binary.LittleEndian.Uint32(b[0:4]),
		Nonce:     binary.LittleEndian.Uint32(b[4:8]),
	}, nil
}

// ioConfig defines the file permissions of the database.
type ioConfig struct {
	readWritePermissions        os.FileMode
	readWriteExecutePermissions os.FileMode
}

var defaultIoConfig = &ioConfig{
	readWritePermissions:        0600, //-rw------- Read and Write permissions for user
	readWriteExecutePermissions: 0700, //-rwx------ Read Write and Execute (traverse) permissions for user
}

var defaultWindowsIoConfig = &ioConfig{
	readWritePermissions:        0666,
	readWriteExecutePermissions: 0777,
}

func dbIoConfig() *ioConfig {
	if runtime.GOOS == "windows" {
		return defaultWindowsIoConfig
	}
	return defaultIoConfig
}

// progressStore persists the position of nonce searches so an interrupted
// search can resume.
type progressStore struct {
	db *bolt.DB
}

// dbFilePath is the canonical construction of a full database file path
// from the directory path.
func dbFilePath(dirPath string) string {
	return filepath.Join(dirPath, databaseFileName)
}

// openProgressStore opens or creates the progress database in dirPath.
func openProgressStore(dirPath string) (*progressStore, error) {
	if err := os.MkdirAll(dirPath, dbIoConfig().readWriteExecutePermissions); err != nil {
		return nil, err
	}

	datafile := dbFilePath(dirPath)
	minrLog.Debugf("Opening Bolt DB: path = %s", datafile)
	boltDB, err := bolt.Open(datafile, dbIoConfig().readWritePermissions,
		&bolt.Options{Timeout: boltTimeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errors.New("cannot obtain database lock, " +
				"database may be in use by another process")
		}
		return nil, err
	}
	boltDB.AllocSize = boltAllocSize

	store := &progressStore{db: boltDB}
	if err := store.db.Update(func(tx *bolt.Tx) error {
		return createBuckets(tx, buckets...)
	}); err != nil {
		boltDB.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *progressStore) Close() error {
	return s.db.Close()
}

// LoadProgress returns the saved position of the search, or errNoProgress.
func (s *progressStore) LoadProgress(key searchKey) (searchState, error) {
	var state searchState
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(progressBucket).Get(key[:])
		if v == nil {
			return errNoProgress
		}
		var err error
		state, err = decodeSearchState(v)
		return err
	})
	return state, err
}

// SaveProgress records the next position of the search.
func (s *progressStore) SaveProgress(key searchKey, state searchState) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(progressBucket).Put(key[:], state.bytes()); err != nil {
			return fmt.Errorf("could not write progress with key %x: %w",
				key[:], err)
		}
		return nil
	})
}

// SaveResult records the header found by the search and drops its progress.
func (s *progressStore) SaveResult(key searchKey, header *wire.BlockHeader) error {
	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(resultsBucket).Put(key[:], buf.Bytes()); err != nil {
			return fmt.Errorf("could not write result with key %x: %w",
				key[:], err)
		}
		return tx.Bucket(progressBucket).Delete(key[:])
	})
}

// LoadResult returns the header previously found by the search, or nil.
func (s *progressStore) LoadResult(key searchKey) (*wire.BlockHeader, error) {
	var header *wire.BlockHeader
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(resultsBucket).Get(key[:])
		if v == nil {
			return nil
		}
		header = new(wire.BlockHeader)
		return header.Deserialize(bytes.NewReader(v))
	})
	if err != nil {
		return nil, err
	}
	return header, nil
}

func createBuckets(tx *bolt.Tx, buckets ...[]byte) error {
	for _, bucket := range buckets {
		if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
			return err
		}
	}
	return nil
}

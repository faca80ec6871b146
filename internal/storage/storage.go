package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const keyPerftPrefix = "perft/"

// PerftResult is one cached perft count.
type PerftResult struct {
	FEN      string    `json:"fen"`
	Depth    int       `json:"depth"`
	Nodes    int64     `json:"nodes"`
	Computed time.Time `json:"computed"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the cache in the user cache directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the cache in dir. An empty dir keeps everything in memory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// perftKey keys a result by board, side, castling and en passant fields.
// The move counters do not change the node count.
func perftKey(fen string, depth int) ([]byte, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("storage: cannot key %q", fen)
	}
	return []byte(fmt.Sprintf("%s%d/%s", keyPerftPrefix, depth, strings.Join(fields[:4], " "))), nil
}

// LookupPerft returns the cached node count for fen at depth.
func (s *Storage) LookupPerft(fen string, depth int) (int64, bool, error) {
	key, err := perftKey(fen, depth)
	if err != nil {
		return 0, false, err
	}

	var res PerftResult
	found := false
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &res)
		})
	})
	if err != nil {
		return 0, false, err
	}
	return res.Nodes, found, nil
}

// StorePerft saves the node count for fen at depth.
func (s *Storage) StorePerft(fen string, depth int, nodes int64) error {
	key, err := perftKey(fen, depth)
	if err != nil {
		return err
	}

	data, err := json.Marshal(PerftResult{
		FEN:      fen,
		Depth:    depth,
		Nodes:    nodes,
		Computed: time.Now(),
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// PerftResults lists every cached result, ordered by key.
func (s *Storage) PerftResults() ([]PerftResult, error) {
	var results []PerftResult

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPerftPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var res PerftResult
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &res)
			}); err != nil {
				return err
			}
			results = append(results, res)
		}
		return nil
	})

	return results, err
}

// ClearPerft drops every cached result.
func (s *Storage) ClearPerft() error {
	return s.db.DropPrefix([]byte(keyPerftPrefix))
}

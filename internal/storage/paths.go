// Package storage provides a persistent cache of perft results.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "chessrules"

// GetCacheDir returns the per-user cache directory for the application,
// creating it if needed. The base comes from os.UserCacheDir:
//   - Linux: $XDG_CACHE_HOME/chessrules, falling back to ~/.cache/chessrules
//   - macOS: ~/Library/Caches/chessrules
//   - Windows: %LocalAppData%\chessrules
func GetCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("storage: no user cache directory: %w", err)
	}

	cacheDir := filepath.Join(base, appName)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", err
	}
	return cacheDir, nil
}

// GetDatabaseDir returns the directory for the perft BadgerDB database.
// Everything in it can be recomputed, so it lives under the cache directory
// and may be deleted at any time.
func GetDatabaseDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(cacheDir, "perft")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}

package main

import (
	"os"

	"github.com/revelaction/textform/storage"
	"github.com/revelaction/textform/storage/filesystem"
	"github.com/revelaction/textform/storage/sqlite/zombiezen"
)

// newCorpusRepository selects a corpus store by path shape: an existing
// directory is a filesystem store, anything else is treated as a SQLite
// database file (created on demand). The returned func releases the store.
func newCorpusRepository(path string) (storage.CorpusRepository, func(), error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		store, err := filesystem.NewCorpusStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, nil, err
	}
	if err := zombiezen.CreateCorpusTables(pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return zombiezen.NewCorpusStore(pool), func() { pool.Close() }, nil
}

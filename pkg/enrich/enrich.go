// Package enrich augments canonical zoos with an animal list looked up by
// zoo name. Lookups go through an explicit Store so results can be cached
// between runs and tests never touch the network or filesystem.
package enrich

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/openfauna/zoolist/pkg/errors"
)

// Enricher produces an animal list for a zoo, identified by its canonical
// name.
type Enricher interface {
	// Animals returns the notable animals kept at the named zoo.
	Animals(ctx context.Context, zooName string) ([]string, error)
}

// Store is a key-value cache for enrichment responses, passed in
// explicitly rather than held as package state.
type Store interface {
	// Get returns the cached value for key, or false if absent.
	Get(key string) (string, bool)

	// Set stores the value for key.
	Set(key, value string) error
}

// MemoryStore is an in-memory Store, used in tests and for uncached runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the cached value for key.
func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores the value for key.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// FileStore persists the cache as a single JSON document, written through
// on every Set. Volume is low hundreds of entries, so rewriting the whole
// file is acceptable.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore loads (or initializes) a FileStore at path.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, &fs.values); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return fs, nil
}

// Get returns the cached value for key.
func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Set stores the value for key and flushes the cache to disk.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value

	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return errors.WrapIO("encode", f.path, err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return errors.WrapIO("write", f.path, err)
	}
	return nil
}

// Cached wraps an Enricher with a Store: hits are served from the store,
// misses are fetched and written through.
func Cached(inner Enricher, store Store) Enricher {
	return &cachedEnricher{inner: inner, store: store}
}

type cachedEnricher struct {
	inner Enricher
	store Store
}

func (c *cachedEnricher) Animals(ctx context.Context, zooName string) ([]string, error) {
	if raw, ok := c.store.Get(zooName); ok {
		var animals []string
		if err := json.Unmarshal([]byte(raw), &animals); err == nil {
			return animals, nil
		}
		// Unreadable cache entry: fall through and refetch.
	}

	animals, err := c.inner.Animals(ctx, zooName)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(animals)
	if err != nil {
		return nil, err
	}
	if err := c.store.Set(zooName, string(raw)); err != nil {
		return nil, err
	}
	return animals, nil
}

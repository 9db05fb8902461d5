// Package store persists the serialized journal and library collections.
package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// EntriesKey holds the journal entries record.
	EntriesKey = "serenitas_entries"
	// LibraryKey holds the library items record.
	LibraryKey = "serenitas_library"
)

// Gateway is a durable key-value store for serialized collections.
type Gateway interface {
	// Load returns the blob for key; ok is false when nothing was stored yet.
	Load(key string) (blob []byte, ok bool, err error)
	// Store replaces the blob for key. It returns once the write completed.
	Store(key string, blob []byte) error
}

// Load creates a Gateway backed by diskv using the provided config.
func Load(cfg Config) (Gateway, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Load(key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	if !p.d.Has(key) {
		return nil, false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, true, nil
}

func (p *persistence) Store(key string, blob []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := p.d.Write(key, blob); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}

// Records live directly under the base path, one file per key.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s + ".json",
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, ".json")
}

// Package file persists each collection as a pretty-printed UTF-8 JSON file
// under a data directory, one file per collection key.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the document for key. A missing file materializes the caller's
// default: it is written to disk and doc is left untouched.
func (s *Store) Load(_ context.Context, key string, doc any) error {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return s.write(key, doc)
		}
		return fmt.Errorf("read collection %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("parse collection %s: %w", key, err)
	}
	return nil
}

func (s *Store) Save(_ context.Context, key string, doc any) error {
	return s.write(key, doc)
}

// write replaces the document atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (s *Store) write(key string, doc any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize collection %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}

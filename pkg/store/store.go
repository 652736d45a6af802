// Package store persists named record collections as flat JSON documents.
// Every save rewrites the whole collection; there is no locking, and two
// concurrent writers race with last-write-wins semantics.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/logger"
)

// Collection is a JSON file holding an ordered slice of records.
type Collection[T any] struct {
	path string
	logg *logger.Logger
}

// NewCollection binds a collection to its file under dir, creating dir if needed.
func NewCollection[T any](dir, file string, logg *logger.Logger) (*Collection[T], error) {
	if file == "" {
		return nil, fmt.Errorf("collection file name is required")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return &Collection[T]{path: filepath.Join(dir, file), logg: logg}, nil
}

// Path returns the backing file location.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads the whole collection. A missing or corrupt file yields an
// empty collection, never an error.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) && c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "path", c.path), "collection unreadable, treating as empty")
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		if c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "path", c.path), "collection corrupt, treating as empty")
		}
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

// Save atomically rewrites the whole collection. A failed write is the one
// storage condition surfaced as an error: losing it silently would be worse.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	payload, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode collection")
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create temp collection file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write collection")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close collection file")
	}

	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace collection file")
	}
	return nil
}

// Exists reports whether the backing file is present on disk.
func (c *Collection[T]) Exists() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

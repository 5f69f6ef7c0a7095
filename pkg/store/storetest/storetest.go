// Package storetest builds throwaway stores for runner and command tests.
package storetest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/resolution/pkg/entry"
	"tableflip.dev/resolution/pkg/store"
)

// Config is a store.Config with fixed values.
type Config struct {
	File       string
	Snapshots  bool
	SnapshotAt string
	Keep       int
}

func (c Config) Path() string       { return c.File }
func (c Config) Backups() bool      { return c.Snapshots }
func (c Config) BackupPath() string { return c.SnapshotAt }
func (c Config) BackupKeep() int    { return c.Keep }

// New returns a store at <tempdir>/files/resolutions.csv; nothing is created on disk.
func New(t *testing.T) (store.Persistence, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "files", "resolutions.csv")
	p, err := store.Load(Config{File: path})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p, path
}

// Seed writes entries with SaveAll.
func Seed(t *testing.T, p store.Persistence, entries ...*entry.Entry) {
	t.Helper()
	if err := p.SaveAll(context.Background(), entries); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

// Read returns the raw file contents.
func Read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Entry builds an entry; an empty deadline means none.
func Entry(text string, priority int, deadline string) *entry.Entry {
	e := &entry.Entry{Text: text, Priority: priority}
	if deadline != "" {
		e.SetDeadline(deadline)
	}
	return e
}

package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const snapshotLayout = "20060102T150405.000000000Z"

// Snapshots keeps copies of the backing file taken before each overwrite, one
// diskv key per copy. Keys sort in the order they were taken.
type Snapshots struct {
	d    *diskv.Diskv
	dir  string
	keep int
	now  func() time.Time
}

// NewSnapshots returns a snapshot store rooted at dir keeping at most keep copies.
// keep <= 0 keeps everything.
func NewSnapshots(dir string, keep int) *Snapshots {
	return &Snapshots{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		dir:  dir,
		keep: keep,
		now:  time.Now,
	}
}

func (s *Snapshots) Dir() string {
	return s.dir
}

// Save stores data under a new key and drops the oldest copies beyond the limit.
func (s *Snapshots) Save(data []byte) (string, error) {
	base := s.now().UTC().Format(snapshotLayout)
	key := base
	for i := 1; s.d.Has(key); i++ {
		key = fmt.Sprintf("%s-%d", base, i)
	}
	if err := s.d.Write(key, data); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", key, err)
	}
	if err := s.prune(); err != nil {
		return key, err
	}
	return key, nil
}

// Keys lists snapshot keys, oldest first.
func (s *Snapshots) Keys() []string {
	cancel := make(chan struct{})
	defer close(cancel)

	keys := make([]string, 0)
	for k := range s.d.Keys(cancel) {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Read returns the contents of one snapshot.
func (s *Snapshots) Read(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, fmt.Errorf("snapshot %q not found", key)
	}
	return s.d.Read(key)
}

func (s *Snapshots) prune() error {
	if s.keep <= 0 {
		return nil
	}
	keys := s.Keys()
	for len(keys) > s.keep {
		if err := s.d.Erase(keys[0]); err != nil {
			return fmt.Errorf("erase snapshot %s: %w", keys[0], err)
		}
		keys = keys[1:]
	}
	return nil
}

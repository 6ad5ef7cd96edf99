// Package store maps synthesis fingerprints to audio artifacts on disk. The
// index lives in memory; the artifacts are fingerprint-addressed WAV files.
// Entries are created once, never mutated, never evicted.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var ErrNotFound = errors.New("artifact not found")

// NotFound reports whether err is the store's 404-class condition.
func NotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Entry records one committed artifact.
type Entry struct {
	Key  string
	Path string
	Size int64

	CreatedAt time.Time
}

type Store struct {
	dir string

	mu      sync.RWMutex
	entries map[string]Entry

	locks sync.Map // fingerprint -> *sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	s := &Store{
		dir: dir,

		entries: make(map[string]Entry),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// load re-indexes artifacts already on disk, so a restart keeps the cache.
func (s *Store) load() error {
	items, err := os.ReadDir(s.dir)

	if err != nil {
		return fmt.Errorf("scan store dir: %w", err)
	}

	for _, item := range items {
		name := item.Name()

		if item.IsDir() || !strings.HasSuffix(name, ".wav") {
			continue
		}

		info, err := item.Info()

		if err != nil {
			continue
		}

		key := strings.TrimSuffix(name, ".wav")

		s.entries[key] = Entry{
			Key:  key,
			Path: filepath.Join(s.dir, name),
			Size: info.Size(),

			CreatedAt: info.ModTime(),
		}
	}

	return nil
}

// Lookup returns the committed entry for a fingerprint, if any. It never
// blocks on in-flight synthesis.
func (s *Store) Lookup(fingerprint string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[fingerprint]

	return entry, ok
}

// Commit writes the artifact bytes and registers the mapping. The write is
// atomic (temp file then rename), so a partial artifact is never visible
// under its final key. Committing an already-present fingerprint keeps the
// existing entry.
func (s *Store) Commit(fingerprint string, data []byte) (Entry, error) {
	if entry, ok := s.Lookup(fingerprint); ok {
		return entry, nil
	}

	path := filepath.Join(s.dir, fingerprint+".wav")
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("write artifact: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return Entry{}, fmt.Errorf("commit artifact: %w", err)
	}

	entry := Entry{
		Key:  fingerprint,
		Path: path,
		Size: int64(len(data)),

		CreatedAt: time.Now(),
	}

	s.mu.Lock()

	if existing, ok := s.entries[fingerprint]; ok {
		entry = existing
	} else {
		s.entries[fingerprint] = entry
	}

	s.mu.Unlock()

	return entry, nil
}

// Fetch reads the artifact bytes for a key. A key that is unknown, or whose
// artifact vanished out-of-band, yields ErrNotFound; the store never
// regenerates audio.
func (s *Store) Fetch(key string) ([]byte, error) {
	entry, ok := s.Lookup(key)

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	data, err := os.ReadFile(entry.Path)

	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}

		return nil, fmt.Errorf("read artifact: %w", err)
	}

	return data, nil
}

// Key returns the per-fingerprint mutex serializing synthesis for that
// fingerprint. One mutex per fingerprint ever seen; the map is as unbounded
// as the cache itself.
func (s *Store) Key(fingerprint string) *sync.Mutex {
	val, _ := s.locks.LoadOrStore(fingerprint, &sync.Mutex{})

	return val.(*sync.Mutex)
}

// Count reports the number of committed entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store persists record collections as flat JSON array files, one file per
// collection, full-file read and overwrite. Read-modify-write cycles are
// serialized per collection so concurrent writers cannot drop each other's
// appends.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads a collection into v (a pointer to a slice). A missing file is
// created as an empty array; a file that fails to decode is logged and
// reported as empty. Callers must tolerate silently-empty reads.
func (s *Store) Load(collection string, v interface{}) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return s.loadLocked(collection, v)
}

// Save overwrites the whole collection file with v.
func (s *Store) Save(collection string, v interface{}) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return s.saveLocked(collection, v)
}

// Update runs a read-modify-write cycle under the collection lock: v is
// loaded, mutate runs, and v is written back. Returning an error from mutate
// aborts the write.
func (s *Store) Update(collection string, v interface{}, mutate func() error) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	if err := s.loadLocked(collection, v); err != nil {
		return err
	}
	if err := mutate(); err != nil {
		return err
	}
	return s.saveLocked(collection, v)
}

func (s *Store) loadLocked(collection string, v interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		if werr := os.WriteFile(s.path(collection), []byte("[]"), 0o644); werr != nil {
			return fmt.Errorf("initialize %s: %w", collection, werr)
		}
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("read %s: %w", collection, err)
	}
	if len(data) == 0 {
		data = []byte("[]")
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Lenient read: a corrupt file degrades to an empty collection.
		log.Printf("store: decode %s failed, treating as empty: %v", collection, err)
		return json.Unmarshal([]byte("[]"), v)
	}
	return nil
}

func (s *Store) saveLocked(collection string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Collection names; each one maps to <dir>/<name>.json holding a JSON array.
const (
	Users       = "users"
	Schedules   = "schedules"
	Attendance  = "attendance"
	Assignments = "assignments"
	Events      = "events"
)

var collections = []string{Users, Schedules, Attendance, Assignments, Events}

// Store persists collections as whole pretty-printed JSON array files. Every
// read-modify-write cycle holds the collection's mutex, so appends never lose
// records or hand out duplicate ids.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the data directory and an empty file for any missing collection.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir, locks: make(map[string]*sync.Mutex)}
	for _, name := range collections {
		if _, err := os.Stat(s.path(name)); errors.Is(err, os.ErrNotExist) {
			if err := writeFile(s.path(name), []byte("[]")); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// ReadAll decodes a whole collection. A missing or unparsable file yields an
// empty slice; decode failures are logged, not surfaced.
func ReadAll[T any](s *Store, collection string) []T {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn().Err(err).Str("collection", collection).Msg("unparsable collection file, treating as empty")
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// WriteAll overwrites a whole collection, 4-space indented like the files the
// app has always produced. The write goes through a temp file and rename so a
// crash mid-write cannot truncate the collection.
func WriteAll[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	return writeFile(s.path(collection), data)
}

// Append reads a collection, assigns the next sequential id (len+1), appends
// the record built by build and writes the collection back, all under the
// collection's lock.
func Append[T any](s *Store, collection string, build func(id int) T) (T, error) {
	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()

	records := ReadAll[T](s, collection)
	record := build(len(records) + 1)
	records = append(records, record)
	return record, WriteAll(s, collection, records)
}

// Update reads a collection, applies fn to it and writes the result back under
// the collection's lock. fn reports whether anything changed.
func Update[T any](s *Store, collection string, fn func(records []T) bool) error {
	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()

	records := ReadAll[T](s, collection)
	if !fn(records) {
		return nil
	}
	return WriteAll(s, collection, records)
}

func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Now is the timestamp format used by created_at/recorded_at fields.
func Now() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// Package history keeps a log of evaluated calculator lines, newest first.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Max is the number of entries a log keeps. Pushing onto a full log drops the
// oldest entry.
const Max = 200

// Entry is one line of history.
type Entry struct {
	// Time is the entry's creation time in Unix milliseconds. It identifies
	// the entry within its log.
	Time int64 `json:"t"`
	// Line is the text of the entry, usually "expression = result".
	Line string `json:"line"`
}

// Input returns the part of the entry that can be evaluated again: the text
// before the first =, or the whole line if there is none.
func (e Entry) Input() string {
	if k := strings.IndexByte(e.Line, '='); k >= 0 {
		return strings.TrimSpace(e.Line[:k])
	}
	return strings.TrimSpace(e.Line)
}

// Store is a history log persisted as a JSON array at a file path. It is safe
// for concurrent use. Every operation reads the file anew, so several
// processes sharing a path see each other's entries.
type Store struct {
	mu   sync.Mutex
	path string
	// mem holds the entries of a store with no path.
	mem []Entry
	now func() time.Time
}

// Open returns a store backed by the file at path. The file need not exist.
// If path is empty, the store is kept in memory only.
func Open(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Push adds a line as the newest entry and returns it.
func (s *Store) Push(line string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hist := s.load()
	e := Entry{Time: s.now().UnixMilli(), Line: line}
	if len(hist) > 0 && e.Time <= hist[0].Time {
		// Keep times unique so that Delete removes exactly one entry.
		e.Time = hist[0].Time + 1
	}
	hist = append(hist, Entry{})
	copy(hist[1:], hist)
	hist[0] = e
	if len(hist) > Max {
		hist = hist[:Max]
	}
	return e, s.save(hist)
}

// List returns the entries, newest first. A log that cannot be read or
// decoded is empty.
func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the entry with the given time.
func (s *Store) Get(t int64) (Entry, bool) {
	for _, e := range s.List() {
		if e.Time == t {
			return e, true
		}
	}
	return Entry{}, false
}

// Delete removes the entry with the given time. It reports whether such an
// entry existed.
func (s *Store) Delete(t int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hist := s.load()
	r := hist[:0]
	for _, e := range hist {
		if e.Time != t {
			r = append(r, e)
		}
	}
	if len(r) == len(hist) {
		return false, nil
	}
	return true, s.save(r)
}

// Clear removes all entries.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		s.mem = nil
		return nil
	}
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) load() []Entry {
	if s.path == "" {
		return append([]Entry(nil), s.mem...)
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var hist []Entry
	if err := json.Unmarshal(b, &hist); err != nil {
		return nil
	}
	return hist
}

func (s *Store) save(hist []Entry) error {
	if s.path == "" {
		s.mem = append(s.mem[:0], hist...)
		return nil
	}
	if hist == nil {
		hist = []Entry{}
	}
	b, err := json.Marshal(hist)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

package digest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/riskdigest/digest-backend/model"
)

// dateRe guards digest dates used to build file paths
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrNotFound is returned when no digest exists for a date
var ErrNotFound = fmt.Errorf("digest not found")

// Store reads and writes pre-generated digest JSON files in a flat directory.
// index.json lists the known dates, newest first. The web layer only reads;
// writes come from the generator CLI and the background refresh task.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Index returns all known digest dates, newest first. A missing or unreadable
// index yields an empty list, not an error.
func (s *Store) Index() []string {
	data, err := os.ReadFile(filepath.Join(s.dir, "index.json"))
	if err != nil {
		return []string{}
	}
	var index []string
	if err := json.Unmarshal(data, &index); err != nil {
		return []string{}
	}
	return index
}

// Load returns the digest for a date, or ErrNotFound
func (s *Store) Load(date string) (*model.Digest, error) {
	if !dateRe.MatchString(date) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir, date+".json"))
	if err != nil {
		return nil, ErrNotFound
	}
	var d model.Digest
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse digest %s: %w", date, err)
	}
	return &d, nil
}

// Exists reports whether a digest file exists for a date
func (s *Store) Exists(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, date+".json"))
	return err == nil
}

// Save writes a digest file and prepends its date to index.json if absent
func (s *Store) Save(d model.Digest) error {
	if !dateRe.MatchString(d.Date) {
		return fmt.Errorf("invalid digest date %q", d.Date)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create digests directory: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode digest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, d.Date+".json"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write digest file: %w", err)
	}

	index := s.Index()
	for _, date := range index {
		if date == d.Date {
			return nil
		}
	}
	index = append([]string{d.Date}, index...)

	indexData, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "index.json"), indexData, 0o644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}

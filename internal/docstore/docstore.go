// Package docstore implements the flat-file JSON document store backing
// the default repository driver. The whole database is one JSON file
// with three top-level collections; every mutation rewrites the file.
package docstore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// Data is the on-disk document shape.
type Data struct {
	Submissions []models.Submission            `json:"submissions"`
	Statuses    map[string]models.StatusRecord `json:"statuses"`
	Rankings    []models.RankingEntry          `json:"rankings"`
}

// Store serializes access to the document file. Writes are
// last-write-wins; there are no transactions.
type Store struct {
	path string
	mu   sync.Mutex
	data *Data
}

// Open loads the document file at path, creating it with empty
// collections when it does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.data = defaults()
		if err := s.flush(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	data, err := decode(raw)
	if err != nil {
		return nil, err
	}
	s.data = data

	return s, nil
}

func defaults() *Data {
	return &Data{
		Submissions: []models.Submission{},
		Statuses:    map[string]models.StatusRecord{},
		Rankings:    []models.RankingEntry{},
	}
}

func decode(raw []byte) (*Data, error) {
	// Older store files carried statuses as an array instead of a map
	// keyed by submission id. Decode it leniently and reset the
	// collection when the legacy shape shows up.
	var probe struct {
		Submissions []models.Submission   `json:"submissions"`
		Statuses    json.RawMessage       `json:"statuses"`
		Rankings    []models.RankingEntry `json:"rankings"`
	}

	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode store file: %w", err)
	}

	data := defaults()
	if probe.Submissions != nil {
		data.Submissions = probe.Submissions
	}
	if probe.Rankings != nil {
		data.Rankings = probe.Rankings
	}

	if len(probe.Statuses) > 0 && probe.Statuses[0] != '[' {
		if err := json.Unmarshal(probe.Statuses, &data.Statuses); err != nil {
			return nil, fmt.Errorf("failed to decode statuses collection: %w", err)
		}
	} else if len(probe.Statuses) > 0 {
		log.Println("⚠️  Converted statuses collection from array to map")
	}

	return data, nil
}

// View runs fn with read access to the document. fn must not retain
// references to the collections after returning.
func (s *Store) View(fn func(*Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// Update runs fn with write access and persists the document when fn
// succeeds.
func (s *Store) Update(fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.data); err != nil {
		return err
	}
	return s.flush()
}

// flush writes the document through a temp file so a crash mid-write
// cannot truncate the store. Caller must hold the mutex.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

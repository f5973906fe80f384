// Package memory holds the embedded, read-only record store. The
// dataset is parsed once at startup and never mutated afterward, so the
// store needs no locking.
package memory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/employeah/employeah/internal/domain"
	"github.com/employeah/employeah/internal/domain/market"
)

//go:embed dataset.json
var embeddedDataset []byte

// Ensure Store satisfies the catalog consumed by the query façade.
var _ market.Catalog = (*Store)(nil)

// Store serves the posting and course sequences in load order.
type Store struct {
	postings []domain.JobPosting
	courses  []domain.Course
}

type dataset struct {
	Jobs    []domain.JobPosting `json:"jobs"`
	Courses []domain.Course     `json:"courses"`
}

// NewStore loads the embedded dataset.
func NewStore() (*Store, error) {
	return parseDataset(embeddedDataset)
}

// NewStoreFromFile loads a dataset from disk; used by cmd/export and by
// deployments overriding the embedded data via DATASET_PATH.
func NewStoreFromFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memory: read dataset: %w", err)
	}
	return parseDataset(raw)
}

// NewStoreFromData builds a store from in-process slices. Tests use it
// to inject small fixture catalogs.
func NewStoreFromData(postings []domain.JobPosting, courses []domain.Course) *Store {
	return &Store{postings: postings, courses: courses}
}

func parseDataset(raw []byte) (*Store, error) {
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("memory: parse dataset: %w", err)
	}

	seen := make(map[int]struct{}, len(ds.Jobs))
	for _, post := range ds.Jobs {
		if _, dup := seen[post.ID]; dup {
			return nil, fmt.Errorf("memory: duplicate posting id %d", post.ID)
		}
		seen[post.ID] = struct{}{}
	}

	return &Store{postings: ds.Jobs, courses: ds.Courses}, nil
}

// Postings returns the posting sequence. Callers must not mutate it.
func (s *Store) Postings() []domain.JobPosting {
	return s.postings
}

// Courses returns the course sequence. Callers must not mutate it.
func (s *Store) Courses() []domain.Course {
	return s.courses
}

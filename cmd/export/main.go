// Command export dumps the active dataset to a JSON file. The output
// has the same shape the server loads, plus an export timestamp, so a
// dump can be edited and fed back in via DATASET_PATH.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/employeah/employeah/internal/domain"
	"github.com/employeah/employeah/internal/storage/memory"
)

type exportFile struct {
	ExportedAt time.Time           `json:"exported_at"`
	Jobs       []domain.JobPosting `json:"jobs"`
	Courses    []domain.Course     `json:"courses"`
}

func main() {
	var (
		in  = flag.String("in", "", "dataset JSON to export (default: embedded dataset)")
		out = flag.String("out", "dataset_export.json", "output file path")
	)
	flag.Parse()

	var (
		store *memory.Store
		err   error
	)
	if *in != "" {
		store, err = memory.NewStoreFromFile(*in)
	} else {
		store, err = memory.NewStore()
	}
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	payload := exportFile{
		ExportedAt: time.Now().UTC(),
		Jobs:       store.Postings(),
		Courses:    store.Courses(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode dataset: %v", err)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *out, err)
	}

	log.Printf("wrote %d job(s) and %d course(s) to %s", len(payload.Jobs), len(payload.Courses), *out)
}

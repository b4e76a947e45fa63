// Package store persists solver runs.
//
// Two backends implement Store: MemoryStore for one-shot processes and
// tests, SQLiteStore for run history across invocations. Records travel as
// versioned JSON payloads so the table layout stays stable.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gatsp/genetic"
)

// Sentinel errors for the run store.
var (
	// ErrNotInitialized indicates a call before Init or after Close.
	ErrNotInitialized = errors.New("store: not initialized")

	// ErrVersionMismatch indicates a payload written by another schema.
	ErrVersionMismatch = errors.New("store: record version mismatch")

	// ErrInvalidRecord indicates a record without an ID.
	ErrInvalidRecord = errors.New("store: invalid record")
)

// Store defines run persistence.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, bool, error)
	// ListRuns returns up to limit runs, newest first; limit ≤ 0 means all.
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
	Close() error
}

// RunRecord is one finished solve.
type RunRecord struct {
	ID            string    `json:"id"`
	SchemaVersion int       `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`

	Graph          string   `json:"graph"`
	Start          string   `json:"start"`
	Stop           string   `json:"stop,omitempty"`
	Seed           int64    `json:"seed"`
	PopulationSize int      `json:"population_size"`
	Selection      string   `json:"selection"`
	Tour           []string `json:"tour"`
	Cost           float64  `json:"cost"`
	Generations    int      `json:"generations"`
	Reason         string   `json:"reason"`
	ElapsedMS      int64    `json:"elapsed_ms"`

	// History is the best cost after every generation.
	History  []float64 `json:"history,omitempty"`
	// Optimum is the exact cost when it was verified, else nil.
	Optimum  *float64  `json:"optimum,omitempty"`
	// Polished is the cost after 2-opt polishing, when it ran.
	Polished *float64  `json:"polished,omitempty"`
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// NewRunRecord captures a finished solve under a fresh ID.
func NewRunRecord(graph string, opts genetic.Options, res genetic.Result, history []float64) RunRecord {
	tour := make([]string, len(res.Tour))
	copy(tour, res.Tour)

	return RunRecord{
		ID:             NewRunID(),
		SchemaVersion:  CurrentSchemaVersion,
		CreatedAt:      time.Now().UTC(),
		Graph:          graph,
		Start:          opts.Start,
		Stop:           opts.Stop,
		Seed:           opts.Seed,
		PopulationSize: opts.PopulationSize,
		Selection:      opts.Selection.String(),
		Tour:           tour,
		Cost:           res.Cost,
		Generations:    res.Generations,
		Reason:         res.Reason.String(),
		ElapsedMS:      res.Elapsed.Milliseconds(),
		History:        history,
	}
}

// Open returns an initialized store: in memory for an empty path, SQLite
// otherwise.
func Open(ctx context.Context, path string) (Store, error) {
	var s Store
	if path == "" {
		s = NewMemoryStore()
	} else {
		s = NewSQLiteStore(path)
	}
	if err := s.Init(ctx); err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}

	return s, nil
}

func checkRecord(run RunRecord) error {
	if run.ID == "" {
		return fmt.Errorf("empty id: %w", ErrInvalidRecord)
	}

	return nil
}

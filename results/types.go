// Package results defines the structured output format for equivalence runs
// and a SQLite store for tracking them across fuzzing campaigns.
package results

import (
	"time"

	"github.com/google/uuid"

	"github.com/qdiff-xyz/go-qdiff/coupling"
	"github.com/qdiff-xyz/go-qdiff/equiv"
)

const SchemaVersion = "1.0.0"

// Run kinds.
const (
	KindStatevector = "statevector"
	KindSampled     = "sampled"
	KindRouting     = "routing"
)

// Report contains the complete output of one circuit's equivalence run.
type Report struct {
	Version     string          `json:"version"`
	Metadata    Metadata        `json:"metadata"`
	Circuit     Circuit         `json:"circuit"`
	Comparisons []equiv.Result  `json:"comparisons"`
	Coupling    *coupling.Graph `json:"coupling,omitempty"` // routing runs only
}

// Metadata contains run execution information.
type Metadata struct {
	RunID       string    `json:"runId"`
	Timestamp   time.Time `json:"timestamp"`
	Kind        string    `json:"kind"`
	Seed        int64     `json:"seed,omitempty"`
	Shots       int       `json:"shots,omitempty"`
	ComputeTime float64   `json:"computeTime"` // seconds
	Status      string    `json:"status"`      // success, error
	Error       string    `json:"error,omitempty"`
}

// Circuit summarizes the circuit under test.
type Circuit struct {
	ID        string `json:"id"`
	NumQubits int    `json:"numQubits"`
	Gates     int    `json:"gates"`
}

// NewReport creates a report shell for a run of the given kind.
func NewReport(kind string, circ Circuit) *Report {
	return &Report{
		Version: SchemaVersion,
		Metadata: Metadata{
			RunID:     uuid.NewString(),
			Timestamp: time.Now().UTC(),
			Kind:      kind,
			Status:    "success",
		},
		Circuit: circ,
	}
}

// Finish records compute time and, if err is non-nil, flips the report to
// error status.
func (r *Report) Finish(start time.Time, err error) {
	r.Metadata.ComputeTime = time.Since(start).Seconds()
	if err != nil {
		r.Metadata.Status = "error"
		r.Metadata.Error = err.Error()
	}
}

// AllPassed reports whether the run succeeded and every comparison passed
// its threshold.
func (r *Report) AllPassed() bool {
	if r.Metadata.Status != "success" {
		return false
	}
	for _, c := range r.Comparisons {
		if !c.Pass {
			return false
		}
	}
	return true
}

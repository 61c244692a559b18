package main

import (
	"fmt"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/equiv"
	"github.com/qdiff-xyz/go-qdiff/results"
)

// circuitInfo builds the report summary for a circuit, falling back to the
// filename-derived id when the circuit is unnamed.
func circuitInfo(c *circuit.Circuit, fallbackID string) results.Circuit {
	id := c.Name
	if id == "" {
		id = fallbackID
	}
	return results.Circuit{
		ID:        id,
		NumQubits: c.NumQubits,
		Gates:     len(c.Gates),
	}
}

// printResults writes one verdict line per comparison.
func printResults(rs []equiv.Result) {
	for _, r := range rs {
		verdict := "PASS"
		if !r.Pass {
			verdict = "FAIL"
		}
		fmt.Printf("  %-12s %s=%.9f  (threshold %g)  %s\n", r.ID, r.Metric, r.Value, r.Threshold, verdict)
	}
}

// emit writes the report to the configured JSON file and/or store.
func emit(report *results.Report, output, dbPath string) error {
	if output != "" {
		if err := results.WriteJSON(report, output); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", output)
	}
	if dbPath != "" {
		store, err := results.OpenStore(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()
		if err := store.Save(report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		fmt.Printf("Report %s saved to %s\n", report.Metadata.RunID, dbPath)
	}
	return nil
}

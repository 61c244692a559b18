package results

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes a report to an indented JSON file.
func WriteJSON(report *Report, filename string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadJSON reads a report back, rejecting files written under a different
// schema version so they are not silently misinterpreted.
func ReadJSON(filename string) (*Report, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	if report.Version != SchemaVersion {
		return nil, fmt.Errorf("report schema version %q, this build reads %q", report.Version, SchemaVersion)
	}
	return &report, nil
}

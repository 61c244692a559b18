package counts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadCSV reads a raw histogram from a CSV file of "bitstring,count" rows.
// An "outcome,count" style header row is skipped if present. The result
// feeds Normalize.
func ReadCSV(filename string) (map[string]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return ReadCSVReader(f)
}

// ReadCSVReader reads a raw histogram from a CSV reader.
func ReadCSVReader(r io.Reader) (map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	raw := make(map[string]int)
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}

		if row == 0 && isHeader(record) {
			row++
			continue
		}

		count, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: count %q is not an integer", row, record[1])
		}
		if count < 0 {
			return nil, fmt.Errorf("row %d: negative count %d", row, count)
		}
		raw[record[0]] += count
		row++
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("histogram is empty")
	}
	return raw, nil
}

// isHeader matches the column names WriteCSV emits, so a malformed first
// data row is an error rather than a silently skipped header.
func isHeader(record []string) bool {
	return (record[0] == "outcome" || record[0] == "bitstring") && record[1] == "count"
}

// WriteCSV writes a frequency map to a CSV file as "outcome,count" rows,
// outcomes as bitstrings padded to the map's register width, ascending.
// ReadCSV followed by Normalize recovers the map exactly.
func WriteCSV(m FrequencyMap, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"outcome", "count"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	width := m.Width()
	for _, k := range m.Keys() {
		if err := w.Write([]string{FormatBitstring(k, width), strconv.Itoa(m[k])}); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

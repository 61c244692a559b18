package counts

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSVReader(t *testing.T) {
	in := "outcome,count\n00,500\n11,524\n"
	raw, err := ReadCSVReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSVReader failed: %v", err)
	}

	if raw["00"] != 500 || raw["11"] != 524 {
		t.Errorf("Unexpected raw counts: %v", raw)
	}
}

func TestReadCSVReaderNoHeader(t *testing.T) {
	raw, err := ReadCSVReader(strings.NewReader("0,10\n1,20\n"))
	if err != nil {
		t.Fatalf("ReadCSVReader failed: %v", err)
	}
	if raw["0"] != 10 || raw["1"] != 20 {
		t.Errorf("Unexpected raw counts: %v", raw)
	}
}

func TestReadCSVReaderErrors(t *testing.T) {
	if _, err := ReadCSVReader(strings.NewReader("")); err == nil {
		t.Error("Expected error for empty input")
	}
	if _, err := ReadCSVReader(strings.NewReader("0,10\n1,-3\n")); err == nil {
		t.Error("Expected error for negative count")
	}
	if _, err := ReadCSVReader(strings.NewReader("0,10\n1,abc\n")); err == nil {
		t.Error("Expected error for non-integer count")
	}
}

func TestReadCSVReaderMalformedFirstRow(t *testing.T) {
	// Only the literal header line is skippable; a broken first data row
	// in a headerless file must not be dropped silently.
	if _, err := ReadCSVReader(strings.NewReader("0,abc\n1,20\n")); err == nil {
		t.Error("Expected error for malformed count in the first row")
	}
	if _, err := ReadCSVReader(strings.NewReader("outcome,total\n0,10\n")); err == nil {
		t.Error("Expected error for an unrecognized header line")
	}

	raw, err := ReadCSVReader(strings.NewReader("bitstring,count\n0,10\n"))
	if err != nil {
		t.Fatalf("ReadCSVReader failed: %v", err)
	}
	if raw["0"] != 10 {
		t.Errorf("Unexpected raw counts: %v", raw)
	}
}

func TestCSVRoundtrip(t *testing.T) {
	fm, err := Normalize(map[string]int{"00": 500, "11": 524})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "counts.csv")
	if err := WriteCSV(fm, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	raw, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	back, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if back.Total() != fm.Total() {
		t.Errorf("Roundtrip changed total: %d vs %d", back.Total(), fm.Total())
	}
	for _, k := range fm.Keys() {
		if back[k] != fm[k] {
			t.Errorf("Roundtrip changed count at %s: %d vs %d", k.Dec(), back[k], fm[k])
		}
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/equiv"
	"github.com/qdiff-xyz/go-qdiff/results"
	"github.com/qdiff-xyz/go-qdiff/transform"
)

// defaultRegistry holds the transformations testable from the CLI. Real
// compiler passes plug in through the library API; the CLI ships the
// identity reference and the preset levels.
func defaultRegistry() (*transform.Registry, error) {
	return transform.NewRegistry(
		transform.Identity(),
		transform.AtLevel("O0", transform.Level0),
		transform.AtLevel("O1", transform.Level1),
		transform.AtLevel("O2", transform.Level2),
		transform.AtLevel("O3", transform.Level3),
	)
}

func check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	pass := fs.String("pass", "", "Named transformation to test (default: compare all optimization levels)")
	tolerance := fs.Float64("tolerance", equiv.DefaultTolerance, "Absolute tolerance on |1 - fidelity|")
	output := fs.String("output", "", "Write JSON report to file")
	dbPath := fs.String("db", "", "Append report to SQLite store")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qdiff check <circuit.json> [options]

Compare statevectors before and after compilation. Without --pass, the
circuit is transpiled at optimization levels 0..3 under pinned options and
each level's fidelity against the baseline is reported.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  qdiff check circuit.json
  qdiff check circuit.json --pass Identity
  qdiff check circuit.json --tolerance 1e-10 --output report.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("circuit file required")
	}

	c, err := circuit.ReadJSON(fs.Arg(0))
	if err != nil {
		return err
	}

	registry, err := defaultRegistry()
	if err != nil {
		return err
	}
	checker := equiv.NewChecker(transform.Passthrough{}, registry)
	checker.Tolerance = *tolerance

	report := results.NewReport(results.KindStatevector, circuitInfo(c, baseID(fs.Arg(0))))
	start := time.Now()

	if *pass != "" {
		fmt.Printf("Testing %s\n", *pass)
		result, err := checker.CompareTransform(c, *pass)
		if err != nil {
			return err
		}
		report.Comparisons = []equiv.Result{result}
	} else {
		fmt.Println("Applying optimization levels, comparing statevectors")
		rs, err := checker.CompareAllLevels(c)
		if err != nil {
			return err
		}
		report.Comparisons = rs
	}

	report.Finish(start, nil)
	printResults(report.Comparisons)
	return emit(report, *output, *dbPath)
}

// baseID derives a circuit identifier from a filename.
func baseID(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

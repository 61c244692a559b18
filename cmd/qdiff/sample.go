package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/equiv"
	"github.com/qdiff-xyz/go-qdiff/plotter"
	"github.com/qdiff-xyz/go-qdiff/results"
	"github.com/qdiff-xyz/go-qdiff/sim"
	"github.com/qdiff-xyz/go-qdiff/transform"
)

func sample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	shots := fs.Int("shots", equiv.DefaultShots, "Shots per execution")
	alpha := fs.Float64("alpha", equiv.DefaultAlpha, "Significance threshold for p-values")
	seed := fs.Int64("seed", 1234, "Backend sampling seed")
	plots := fs.String("plots", "", "Directory for distribution plots (disabled if empty)")
	output := fs.String("output", "", "Write JSON report to file")
	dbPath := fs.String("db", "", "Append report to SQLite store")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qdiff sample <circuit.json> [options]

Run the circuit at optimization level 0 for a baseline outcome distribution,
then at levels 1..3, comparing each against the baseline with a two-sample
KS test.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  qdiff sample circuit.json
  qdiff sample circuit.json --shots 4096 --alpha 0.01
  qdiff sample circuit.json --plots plots --db runs.db
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

	runner := equiv.NewSampledRunner(transform.Passthrough{}, func(n int) (equiv.Executor, error) {
		return sim.NewBackend(n, nil, *seed)
	})
	runner.Shots = *shots
	runner.Alpha = *alpha
	if *plots != "" {
		runner.Plotter = plotter.NewDist(*plots)
	}

	info := circuitInfo(c, baseID(fs.Arg(0)))
	report := results.NewReport(results.KindSampled, info)
	report.Metadata.Seed = *seed
	report.Metadata.Shots = *shots
	start := time.Now()

	fmt.Println("Applying optimization levels, running on simulator")
	rs, err := runner.Run(c, info.ID)
	if err != nil {
		return err
	}
	report.Comparisons = rs
	report.Finish(start, nil)

	printResults(report.Comparisons)
	return emit(report, *output, *dbPath)
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qdiff-xyz/go-qdiff/counts"
	"github.com/qdiff-xyz/go-qdiff/plotter"
)

func plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	output := fs.String("output", "", "Output SVG file (required)")
	title := fs.String("title", "", "Plot title")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qdiff plot <counts.csv> [options]

Render an outcome histogram from a CSV of raw counts (bitstring,count rows).

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  qdiff plot counts.csv --output histogram.svg --title "circuit 3"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("counts file required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output is required")
	}

	raw, err := counts.ReadCSV(fs.Arg(0))
	if err != nil {
		return err
	}
	fm, err := counts.Normalize(raw)
	if err != nil {
		return err
	}

	hist := plotter.NewHistogram().SetTitle(*title)
	if err := hist.WriteFile(fm, *output); err != nil {
		return err
	}
	fmt.Printf("Plot written to %s (%d outcomes, %d shots)\n", *output, len(fm), fm.Total())
	return nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qdiff-xyz/go-qdiff/results"
)

func failures(args []string) error {
	fs := flag.NewFlagSet("failures", flag.ExitOnError)
	dbPath := fs.String("db", "", "Report store to read (required)")
	limit := fs.Int("limit", 20, "Maximum number of reports to show")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qdiff failures --db <runs.db> [options]

List recent runs where a comparison failed its threshold or the run errored.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbPath == "" {
		fs.Usage()
		return fmt.Errorf("--db is required")
	}

	store, err := results.OpenStore(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	reports, err := store.Failures(*limit)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("No failures recorded")
		return nil
	}

	for _, r := range reports {
		fmt.Printf("%s  %-11s circuit %s  status=%s\n",
			r.Metadata.Timestamp.Format("2006-01-02 15:04:05"),
			r.Metadata.Kind, r.Circuit.ID, r.Metadata.Status)
		if r.Metadata.Error != "" {
			fmt.Printf("  error: %s\n", r.Metadata.Error)
		}
		printResults(r.Comparisons)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "check":
		if err := check(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sample":
		if err := sample(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "route":
		if err := route(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "graph":
		if err := graphCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "plot":
		if err := plot(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "failures":
		if err := failures(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("qdiff version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`qdiff - differential equivalence tester for quantum-program compilation

Usage:
  qdiff <command> [options]

Commands:
  check      Compare statevectors before/after a transformation or across levels
  sample     Compare sampled outcome distributions across optimization levels
  route      Compare sampled distributions under a random restricted coupling map
  graph      Sample a random connectivity graph
  plot       Render an outcome histogram from a CSV of raw counts
  failures   List failed runs from a report store
  help       Show this help message
  version    Show version information

Examples:
  # Exact statevector check across optimization levels
  qdiff check circuit.json

  # Test a single named transformation
  qdiff check circuit.json --pass Identity

  # Sampled distribution comparison, with plots and a report
  qdiff sample circuit.json --plots plots --output report.json

  # Routing stress test with a seeded coupling map
  qdiff route circuit.json --seed 42 --db runs.db

For command-specific help, run:
  qdiff <command> --help`)
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"Plenum/internal/calc/fullcalc"
	"Plenum/internal/calc/vessel"
)

// vesselcalc runs the full calculation bundle for one component and prints
// the result as JSON. Exits 1 on a read/decode problem, 2 when the component
// is assessed unacceptable, so scripts can gate on the verdict.
func main() {
	inputPath := flag.String("input", "-", "path to component input JSON, - for stdin")
	horizontalHead := flag.String("horizontal-head", "zero", "static head rule for horizontal vessels: zero or full-bore")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vesselcalc: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	var in vessel.Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		fmt.Fprintf(os.Stderr, "vesselcalc: decode input: %v\n", err)
		os.Exit(1)
	}

	opts := vessel.Options{HorizontalHead: vessel.HorizontalHeadRule(*horizontalHead)}
	full := fullcalc.Calculate(in, opts)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(full); err != nil {
		fmt.Fprintf(os.Stderr, "vesselcalc: encode result: %v\n", err)
		os.Exit(1)
	}

	if full.Summary.Status == vessel.StatusUnacceptable {
		os.Exit(2)
	}
}

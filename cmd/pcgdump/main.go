// Command pcgdump is a diagnostic CLI: it builds a PCG from a small
// built-in fixture topology and automaton, minimizes it, and prints
// its DOT form and per-location preference ordering. It exists to
// exercise the public API end to end without reimplementing the
// policy front-end the module excludes; flag is enough for that, no
// argument-parsing framework is warranted.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/pcg/consistency"
	"github.com/katalvlaran/pcg/dfa"
	"github.com/katalvlaran/pcg/dot"
	"github.com/katalvlaran/pcg/internal/dfatest"
	"github.com/katalvlaran/pcg/internal/topotest"
	"github.com/katalvlaran/pcg/minimize"
	"github.com/katalvlaran/pcg/pcg"
	"github.com/rs/zerolog"
)

func main() {
	dotOut := flag.String("dot", "", "write the minimized PCG's DOT form to this file instead of stdout")
	verbose := flag.Bool("v", false, "log each minimization pass to stderr")
	flag.Parse()

	cg, err := buildFixture(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pcgdump:", err)
		os.Exit(1)
	}

	if *dotOut != "" {
		if err := os.WriteFile(*dotOut, []byte(dot.ToDot(cg)), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "pcgdump:", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(dot.ToDot(cg))
	}

	ordering, err := consistency.FindOrderingConservative(cg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pcgdump: ordering:", err)
		os.Exit(1)
	}
	for loc, seq := range ordering {
		fmt.Printf("%s:", loc)
		for _, s := range seq {
			fmt.Printf(" %d", s.Id)
		}
		fmt.Println()
	}
}

// buildFixture builds a three-node line topology A—B—C, A and C
// origination-capable, with DFAs accepting words ending in A and in C
// respectively.
func buildFixture(verbose bool) (*pcg.T, error) {
	topology := topotest.Line(map[string]bool{"A": true, "C": true}, "A", "B", "C")
	locs := []string{"A", "B", "C"}
	d1 := dfatest.EndsWith(locs, "A")
	d2 := dfatest.EndsWith(locs, "C")

	cg, err := pcg.BuildFromAutomata(topology, []*dfa.DFA{d1, d2})
	if err != nil {
		return nil, err
	}

	var opts []minimize.Option
	if verbose {
		opts = append(opts, minimize.WithLogger(zerolog.New(os.Stderr).With().Timestamp().Logger()))
	}
	minimize.Minimize(cg, opts...)

	return cg, nil
}

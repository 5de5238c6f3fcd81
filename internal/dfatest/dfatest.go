// Package dfatest builds small fixture DFAs for tests: regex-to-DFA
// compilation is out of this module's scope, so tests that need a DFA
// build one directly against the two-state shape that ".*X" compiles
// to.
package dfatest

import "github.com/katalvlaran/pcg/dfa"

// EndsWith returns a 2-state DFA over alphabet accepting exactly the
// words that end in target: state 0 is "doesn't end in target",
// state 1 is "ends in target".
func EndsWith(alphabet []string, target string) *dfa.DFA {
	b := dfa.NewBuilder(0).Accept(1)
	for _, loc := range alphabet {
		if loc == target {
			b.AddTransition(0, []string{loc}, 1)
			b.AddTransition(1, []string{loc}, 1)
		} else {
			b.AddTransition(0, []string{loc}, 0)
			b.AddTransition(1, []string{loc}, 0)
		}
	}

	return b.Build()
}

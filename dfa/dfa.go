// Package dfa provides the DFA type the PCG builder products
// against: one deterministic finite automaton per policy preference
// level, over an alphabet of router locations.
//
// Compiling a regular expression over locations into a DFA is outside
// this package's scope; dfa only models the already-compiled
// transition table.
package dfa

// Key identifies one transition: from state, on symbol loc.
type Key struct {
	State int
	Loc   string
}

// DFA is a deterministic finite automaton over router locations.
type DFA struct {
	Q0    int
	F     map[int]struct{}
	Trans map[Key]int
}

// New returns a DFA with the given start state, accepting set and
// (already per-symbol expanded) transition table.
func New(q0 int, accept []int, trans map[Key]int) *DFA {
	f := make(map[int]struct{}, len(accept))
	for _, s := range accept {
		f[s] = struct{}{}
	}

	return &DFA{Q0: q0, F: f, Trans: trans}
}

// Accepts reports whether state is in the accepting set F.
func (d *DFA) Accepts(state int) bool {
	_, ok := d.F[state]

	return ok
}

// Step returns the next state from state on symbol loc, and whether a
// transition is defined.
func (d *DFA) Step(state int, loc string) (int, bool) {
	next, ok := d.Trans[Key{State: state, Loc: loc}]

	return next, ok
}

// Builder expands a table given as (state, set<string>) -> next,
// the wire shape a regex-to-DFA compiler would deliver, into the flat
// per-symbol Trans map a DFA needs.
type Builder struct {
	q0     int
	accept []int
	trans  map[Key]int
}

// NewBuilder starts a DFA under construction with start state q0.
func NewBuilder(q0 int) *Builder {
	return &Builder{q0: q0, trans: make(map[Key]int)}
}

// Accept marks state as accepting.
func (b *Builder) Accept(state int) *Builder {
	b.accept = append(b.accept, state)

	return b
}

// AddTransition records state --{locs}--> next, expanding the symbol
// set into one Trans entry per location.
func (b *Builder) AddTransition(state int, locs []string, next int) *Builder {
	for _, loc := range locs {
		b.trans[Key{State: state, Loc: loc}] = next
	}

	return b
}

// Build finalizes the DFA.
func (b *Builder) Build() *DFA {
	return New(b.q0, b.accept, b.trans)
}

// GarbageStates returns the set of states whose only outgoing
// transition is a self-loop to a non-accepting state: a product
// successor that lands in the garbage set of every automaton
// contributes no accepting path and is pruned by the builder.
func (d *DFA) GarbageStates(alphabet []string) map[int]struct{} {
	garbage := make(map[int]struct{})
	for _, s := range statesOf(d, alphabet) {
		if d.Accepts(s) {
			continue
		}
		if isSelfLoopOnly(d, s, alphabet) {
			garbage[s] = struct{}{}
		}
	}

	return garbage
}

func statesOf(d *DFA, alphabet []string) []int {
	seen := map[int]struct{}{d.Q0: {}}
	for k, v := range d.Trans {
		seen[k.State] = struct{}{}
		seen[v] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}

	return out
}

// isSelfLoopOnly reports whether every transition defined out of s
// (over alphabet) goes back to s, and at least one is defined.
func isSelfLoopOnly(d *DFA, s int, alphabet []string) bool {
	any := false
	for _, loc := range alphabet {
		next, ok := d.Trans[Key{State: s, Loc: loc}]
		if !ok {
			continue
		}
		any = true
		if next != s {
			return false
		}
	}

	return any
}

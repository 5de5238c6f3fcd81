// Package regexextract implements the classical state-elimination
// algorithm over a minimized PCG: given a state s, compute a regular
// expression over topology locations describing every path from s to
// End.
package regexextract

import "strings"

// Regex is a regular expression over topology locations. The zero set
// of concrete types below — Empty, Eps, Lit, Concat, Union, Star — is
// closed under the constructors this package uses internally; callers
// only need String and Match.
type Regex interface {
	String() string
	isRegex()
}

// Empty denotes the empty language (no strings).
type Empty struct{}

func (Empty) String() string { return "∅" }
func (Empty) isRegex()       {}

// Eps matches only the empty word.
type Eps struct{}

func (Eps) String() string { return "ε" }
func (Eps) isRegex()       {}

// Lit matches exactly one symbol: the given location.
type Lit struct{ Loc string }

func (l Lit) String() string { return l.Loc }
func (Lit) isRegex()         {}

// Concat matches A followed by B.
type Concat struct{ A, B Regex }

func (c Concat) String() string { return wrap(c.A) + "." + wrap(c.B) }
func (Concat) isRegex()         {}

// Union matches A or B.
type Union struct{ A, B Regex }

func (u Union) String() string { return wrap(u.A) + "|" + wrap(u.B) }
func (Union) isRegex()         {}

// Star matches zero or more repetitions of A.
type Star struct{ A Regex }

func (s Star) String() string { return wrap(s.A) + "*" }
func (Star) isRegex()         {}

func wrap(r Regex) string {
	switch r.(type) {
	case Union, Concat:
		return "(" + r.String() + ")"
	default:
		return r.String()
	}
}

// concat builds A·B with the Empty/Eps identities collapsed, keeping
// extracted regexes legible instead of accumulating ε/∅ noise.
func concat(a, b Regex) Regex {
	if _, ok := a.(Empty); ok {
		return Empty{}
	}
	if _, ok := b.(Empty); ok {
		return Empty{}
	}
	if _, ok := a.(Eps); ok {
		return b
	}
	if _, ok := b.(Eps); ok {
		return a
	}

	return Concat{A: a, B: b}
}

// union builds A|B with the Empty identity collapsed.
func union(a, b Regex) Regex {
	if _, ok := a.(Empty); ok {
		return b
	}
	if _, ok := b.(Empty); ok {
		return a
	}

	return Union{A: a, B: b}
}

// star builds A* — Star of the empty language or the empty word is
// just the empty word.
func star(a Regex) Regex {
	if _, ok := a.(Empty); ok {
		return Eps{}
	}
	if _, ok := a.(Eps); ok {
		return Eps{}
	}

	return Star{A: a}
}

// Match reports whether word (a sequence of locations) is in the
// language r denotes.
func Match(r Regex, word []string) bool {
	return matchFrom(r, word, func(rest []string) bool { return len(rest) == 0 })
}

func matchFrom(r Regex, input []string, cont func(rest []string) bool) bool {
	switch v := r.(type) {
	case Empty:
		return false
	case Eps:
		return cont(input)
	case Lit:
		if len(input) > 0 && input[0] == v.Loc {
			return cont(input[1:])
		}

		return false
	case Concat:
		return matchFrom(v.A, input, func(rest []string) bool { return matchFrom(v.B, rest, cont) })
	case Union:
		return matchFrom(v.A, input, cont) || matchFrom(v.B, input, cont)
	case Star:
		return matchStar(v.A, input, cont)
	default:
		return false
	}
}

func matchStar(a Regex, input []string, cont func(rest []string) bool) bool {
	if cont(input) {
		return true
	}

	return matchFrom(a, input, func(rest []string) bool {
		if len(rest) == len(input) {
			return false // no progress: avoid infinite recursion on ε-matching bodies
		}

		return matchStar(a, rest, cont)
	})
}

// Join renders word as the dotted form the extracted regexes use,
// handy for test failure messages.
func Join(word []string) string { return strings.Join(word, ".") }

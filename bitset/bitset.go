// Package bitset implements BitSet31, a compact set of integers in
// [1,31] backed by a single 32-bit word.
//
// The 31-element limit is a deliberate design limit, not a workaround:
// it lets the whole set fit in one machine word, so every operation
// below compiles to a handful of instructions, and Min is a single
// trailing-zero-count.
//
// Complexity: every operation is O(1).
package bitset

import "math/bits"

// MaxPreference is the highest integer BitSet31 can hold.
const MaxPreference = 31

// BitSet31 is a set of integers in [1,31]. The zero value is the
// empty set. Bit i-1 of the underlying word represents membership of
// element i.
type BitSet31 struct {
	word uint32
}

// Empty returns the empty BitSet31.
func Empty() BitSet31 { return BitSet31{} }

// Singleton returns a BitSet31 containing exactly n.
// Panics if n is outside [1,31].
func Singleton(n int) BitSet31 {
	mustInRange(n)

	return BitSet31{word: 1 << uint(n-1)}
}

// Contains reports whether n is a member. Out-of-range n is never a member.
func (b BitSet31) Contains(n int) bool {
	if n < 1 || n > MaxPreference {
		return false
	}

	return b.word&(1<<uint(n-1)) != 0
}

// Union returns the set union of b and other.
func (b BitSet31) Union(other BitSet31) BitSet31 {
	return BitSet31{word: b.word | other.word}
}

// Intersect returns the set intersection of b and other.
func (b BitSet31) Intersect(other BitSet31) BitSet31 {
	return BitSet31{word: b.word & other.word}
}

// Diff returns the elements of b that are not in other.
func (b BitSet31) Diff(other BitSet31) BitSet31 {
	return BitSet31{word: b.word &^ other.word}
}

// IsEmpty reports whether the set has no members.
func (b BitSet31) IsEmpty() bool { return b.word == 0 }

// Len reports the number of members.
func (b BitSet31) Len() int { return bits.OnesCount32(b.word) }

// Min returns the smallest member and true, or (0, false) if empty.
func (b BitSet31) Min() (int, bool) {
	if b.word == 0 {
		return 0, false
	}

	return bits.TrailingZeros32(b.word) + 1, true
}

// With returns a copy of b with n added.
// Panics if n is outside [1,31].
func (b BitSet31) With(n int) BitSet31 {
	mustInRange(n)

	return BitSet31{word: b.word | (1 << uint(n-1))}
}

// Members returns the set elements in ascending order.
func (b BitSet31) Members() []int {
	out := make([]int, 0, b.Len())
	w := b.word
	for w != 0 {
		i := bits.TrailingZeros32(w)
		out = append(out, i+1)
		w &^= 1 << uint(i)
	}

	return out
}

// Equal reports whether b and other contain exactly the same elements.
func (b BitSet31) Equal(other BitSet31) bool { return b.word == other.word }

func mustInRange(n int) {
	if n < 1 || n > MaxPreference {
		panic("bitset: preference level out of range [1,31]")
	}
}

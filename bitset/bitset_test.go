package bitset_test

import (
	"testing"

	"github.com/katalvlaran/pcg/bitset"
	"github.com/stretchr/testify/require"
)

func TestEmptyAndSingleton(t *testing.T) {
	e := bitset.Empty()
	require.True(t, e.IsEmpty())
	require.Equal(t, 0, e.Len())

	s := bitset.Singleton(5)
	require.False(t, s.IsEmpty())
	require.True(t, s.Contains(5))
	require.False(t, s.Contains(6))
	m, ok := s.Min()
	require.True(t, ok)
	require.Equal(t, 5, m)
}

func TestUnionIntersectDiff(t *testing.T) {
	a := bitset.Singleton(1).With(3)
	b := bitset.Singleton(3).With(7)

	require.Equal(t, []int{1, 3, 7}, a.Union(b).Members())
	require.Equal(t, []int{3}, a.Intersect(b).Members())
	require.Equal(t, []int{1}, a.Diff(b).Members())
}

func TestMinOfEmpty(t *testing.T) {
	_, ok := bitset.Empty().Min()
	require.False(t, ok)
}

func TestMembersAscending(t *testing.T) {
	s := bitset.Singleton(31).With(1).With(17)
	require.Equal(t, []int{1, 17, 31}, s.Members())
}

func TestOutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { bitset.Singleton(0) })
	require.Panics(t, func() { bitset.Singleton(32) })
}

func TestEqual(t *testing.T) {
	a := bitset.Singleton(2).With(4)
	b := bitset.Singleton(4).With(2)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(bitset.Empty()))
}

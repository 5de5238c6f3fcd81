package minimize

import "github.com/katalvlaran/pcg/pcg"

// Restrict drops every state whose lowest satisfied preference level
// is worse (numerically greater) than i, keeping states with an empty
// Accept set unconditionally — they carry no preference commitment of
// their own.
func Restrict(cg *pcg.T, i int) *pcg.T {
	cg.Graph.RemoveVerticesWhere(func(id int) bool {
		if !isReal(cg, id) {
			return false
		}
		s := cg.State(id)
		if s.Accept.IsEmpty() {
			return false
		}
		min, ok := s.Accept.Min()

		return ok && min > i
	})
	cg.Prune()

	return cg
}

package failure

import "github.com/katalvlaran/pcg/pcg"

// Disconnect repeatedly finds a shortest (unit-weight) path from src
// to dst and removes every edge on it, counting iterations until no
// path remains — an approximation of the minimum edge cut. The shape
// is a Ford-Fulkerson augmenting-path loop (find path, saturate,
// repeat) specialized to unit capacities, where "saturate" degenerates
// to "remove".
func Disconnect(cg *pcg.T, src, dst int) int {
	count := 0
	for {
		path, ok := cg.Graph.ShortestPath(src, dst)
		if !ok {
			return count
		}
		for i := 0; i < len(path)-1; i++ {
			cg.Graph.RemoveEdge(path[i], path[i+1])
		}
		count++
	}
}

// Summary is the result of DisconnectLocs: the minimum number of
// additional eliminations beyond the first, and the witness pair's
// locations.
type Summary struct {
	Metric int
	SrcLoc string
	DstLoc string
}

// DisconnectLocs runs Disconnect for every (src, dst) pair with srcs
// drawn from the given source states and dst ranging over every
// state at dstLoc, over independent clones of cg (Disconnect mutates
// its graph), and returns the minimum resulting count minus one along
// with the witness pair's locations. Returns (nil, false) when either
// side is empty.
func DisconnectLocs(cg *pcg.T, srcs []int, dstLoc string) (*Summary, bool) {
	var dsts []int
	for id, s := range cg.States {
		if id == cg.Start || id == cg.End {
			continue
		}
		if s.Loc() == dstLoc {
			dsts = append(dsts, id)
		}
	}
	if len(srcs) == 0 || len(dsts) == 0 {
		return nil, false
	}

	best := -1
	var bestSrc, bestDst int
	for _, src := range srcs {
		for _, dst := range dsts {
			clone := cg.Clone()
			n := Disconnect(clone, src, dst)
			if best == -1 || n < best {
				best = n
				bestSrc, bestDst = src, dst
			}
		}
	}

	return &Summary{Metric: best - 1, SrcLoc: cg.State(bestSrc).Loc(), DstLoc: cg.State(bestDst).Loc()}, true
}

// Package dot renders a PCG as Graphviz DOT text, and optionally
// shells out to the dot binary to rasterize it. Nothing in
// pcg/minimize/consistency imports this package — PNG rendering is a
// leaf side-channel, never on the core's hot path.
package dot

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/katalvlaran/pcg/pcg"
)

// ToDot renders cg as a Graphviz digraph. Start/End get the labels
// "Start"/"End"; non-accepting real states are labeled
// "state, location"; accepting states additionally carry their accept
// set, a double-circle shape, and a light-yellow fill.
func ToDot(cg *pcg.T) string {
	var b strings.Builder
	b.WriteString("digraph PCG {\n")

	ids := make([]int, 0, len(cg.States))
	for id := range cg.States {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		s := cg.State(id)
		switch id {
		case cg.Start:
			fmt.Fprintf(&b, "  %d [label=\"Start\"];\n", id)
		case cg.End:
			fmt.Fprintf(&b, "  %d [label=\"End\"];\n", id)
		default:
			if s.Accept.IsEmpty() {
				fmt.Fprintf(&b, "  %d [label=\"%d, %s\"];\n", id, s.State, s.Loc())
			} else {
				fmt.Fprintf(&b, "  %d [label=\"%d, %s\\nAccept={%s}\", shape=doublecircle, style=filled, fillcolor=lightyellow];\n",
					id, s.State, s.Loc(), acceptList(s))
			}
		}
	}

	for _, id := range ids {
		for _, to := range cg.Graph.OutNeighbors(id) {
			fmt.Fprintf(&b, "  %d -> %d;\n", id, to)
		}
	}

	b.WriteString("}\n")

	return b.String()
}

func acceptList(s pcg.CgState) string {
	members := s.Accept.Members()
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = fmt.Sprintf("%d", m)
	}

	return strings.Join(parts, ",")
}

// GeneratePNG writes file+".dot" with cg's DOT rendering, then shells
// out to the dot binary to render file+".png". This is the one
// operation in the module that touches the filesystem or an external
// process.
func GeneratePNG(cg *pcg.T, file string) error {
	dotPath := file + ".dot"
	pngPath := file + ".png"
	if err := os.WriteFile(dotPath, []byte(ToDot(cg)), 0o644); err != nil {
		return fmt.Errorf("dot: write %s: %w", dotPath, err)
	}

	cmd := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("dot: render %s: %w: %s", pngPath, err, out)
	}

	return nil
}

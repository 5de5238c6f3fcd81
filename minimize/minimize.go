// Package minimize implements the PCG minimizer: repeated, sound
// reductions to fixpoint. Each pass only ever removes vertices or
// edges, never adds them, so |V|+|E| never increases; the loop stops at
// the first pass that does not shrink it, so it always terminates.
package minimize

import (
	"github.com/katalvlaran/pcg/pcg"
	"github.com/rs/zerolog"
)

// Option configures Minimize.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

// WithLogger injects a zerolog.Logger that receives one Info event per
// pass with the resulting vertex/edge counts. The default is
// zerolog.Nop(), so callers that don't opt in pay nothing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Minimize mutates cg in place, applying every reduction pass to
// fixpoint, and returns it for chaining.
func Minimize(cg *pcg.T, opts ...Option) *pcg.T {
	cfg := config{logger: zerolog.Nop()}
	for _, o := range opts {
		o(&cfg)
	}

	pass := 0
	for {
		before := cg.Graph.Size()

		removeUnreachableFromEnd(cg)
		removeUnreachableFromStart(cg)
		removeRedundantExternal(cg)
		removeConnectionsToOutStar(cg)
		removeDominated(cg)

		after := cg.Graph.Size()
		pass++
		cfg.logger.Info().
			Int("pass", pass).
			Int("vertices", cg.Graph.NumVertices()).
			Int("edges", cg.Graph.NumEdges()).
			Msg("minimize: pass complete")

		if after >= before {
			break
		}
	}

	return cg
}

func isReal(cg *pcg.T, id int) bool {
	return id != cg.Start && id != cg.End
}

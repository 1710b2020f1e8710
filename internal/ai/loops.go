package ai

import (
	"sort"

	"github.com/starfront-game/starfront/internal/game"
)

// CarrierLoop assigns a patrol between two stars: the frontier-side supply
// source and the interior star feeding it. It carries no state of its own;
// the carrier-movement executor consumes it as-is.
type CarrierLoop struct {
	From *game.Star
	To   *game.Star
}

// deriveLoops projects the logistics graph's edges onto the snapshot's
// star records. Edges are emitted in sorted index order so a given plan is
// reproducible.
func deriveLoops(stars []*game.Star, graph logisticsGraph) []CarrierLoop {
	sources := make([]int, 0, len(graph))
	for src := range graph {
		sources = append(sources, src)
	}
	sort.Ints(sources)

	var loops []CarrierLoop
	for _, src := range sources {
		dests := make([]int, 0, len(graph[src]))
		for dst := range graph[src] {
			dests = append(dests, dst)
		}
		sort.Ints(dests)
		for _, dst := range dests {
			loops = append(loops, CarrierLoop{From: stars[src], To: stars[dst]})
		}
	}
	return loops
}

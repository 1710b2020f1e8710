// Package ai implements the territorial logistics planner for
// computer-controlled players: it decides which frontier stars are under
// threat and routes interior supply toward them, producing carrier loop
// assignments. The pass runs once per AI activation over an immutable
// snapshot and owns all of its working structures.
package ai

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/starfront-game/starfront/internal/game"
)

// Planner holds one planning pass's snapshot: the controlled player's
// stars (index-stable for the duration of the pass), the hostile stars,
// and the longest travel range present in the game.
type Planner struct {
	stars    []*game.Star
	hostiles []*game.Star
	maxRange float64
}

// NewPlanner snapshots the given player's territory and threat picture.
func NewPlanner(g *game.Game, playerID uuid.UUID) *Planner {
	return &Planner{
		stars:    g.StarsOwnedBy(playerID),
		hostiles: g.HostileStarsTo(playerID),
		maxRange: g.MaxHyperspaceRange(),
	}
}

// Plan runs the full pipeline: triangulation, adjacency, frontier
// detection, threat scoring, logistics construction, loop derivation.
// Degenerate territories produce an empty plan, never an error.
func (p *Planner) Plan() []CarrierLoop {
	triangles := triangulate(p.stars)
	if len(triangles) == 0 {
		return nil
	}

	sg := buildStarGraph(triangles)
	frontier := sg.frontierStars()
	queue := scoreFrontier(p.stars, frontier, newHostileIndex(p.hostiles), p.maxRange)
	graph := buildLogistics(sg, len(p.stars), frontier, queue)
	return deriveLoops(p.stars, graph)
}

// PlanForPlayer runs one planning pass for the given player, absorbing any
// panic: a failed pass means the AI simply makes no plan this activation,
// and the surrounding tick keeps processing.
func PlanForPlayer(g *game.Game, playerID uuid.UUID) (loops []CarrierLoop) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("planning pass failed, no plan this activation",
				"player", playerID, "panic", r)
			loops = nil
		}
	}()
	return NewPlanner(g, playerID).Plan()
}

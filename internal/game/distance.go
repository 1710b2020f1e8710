// Distance and travel-range helpers shared by the simulation and the AI
// planner. Coordinates are planar; one light-year is a settings constant.
package game

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distance returns the Euclidean distance between two locations.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// AngleBetween returns the angle of the vector from a to b, in radians.
func AngleBetween(a, b orb.Point) float64 {
	return math.Atan2(b.Y()-a.Y(), b.X()-a.X())
}

// HyperspaceRange returns the travel range granted by a hyperspace tech
// level. Level 0 still reaches past a single light-year so freshly joined
// players are never stranded.
func HyperspaceRange(s Settings, level int) float64 {
	return (float64(level) + 1.5) * s.LightYear
}

// MaxHyperspaceRange returns the greatest travel range achievable by any
// player currently in the game. Returns 0 when the game has no players.
func (g *Game) MaxHyperspaceRange() float64 {
	best := -1
	for _, p := range g.Players {
		if p.Research.Hyperspace > best {
			best = p.Research.Hyperspace
		}
	}
	if best < 0 {
		return 0
	}
	return HyperspaceRange(g.Settings, best)
}

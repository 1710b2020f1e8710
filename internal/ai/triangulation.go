// Territory triangulation. Stars are addressed by their index in the
// planning snapshot; triangles are flat index triples as produced by the
// Delaunay library, addressed by triangle number.
package ai

import (
	"github.com/fogleman/delaunay"

	"github.com/starfront-game/starfront/internal/game"
)

// triangulate returns the Delaunay triangulation of the snapshot stars as
// flat star-index triples: triangle t spans entries 3t, 3t+1, 3t+2.
//
// Degenerate territories (fewer than three stars, or all stars collinear
// or coincident) yield an empty triangulation. Downstream stages treat
// that as "no frontier, no plan" rather than an error.
func triangulate(stars []*game.Star) []int {
	if len(stars) < 3 {
		return nil
	}
	points := make([]delaunay.Point, len(stars))
	for i, s := range stars {
		points[i] = delaunay.Point{X: s.Location.X(), Y: s.Location.Y()}
	}
	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil
	}
	return tri.Triangles
}

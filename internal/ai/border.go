package ai

import "sort"

// edgeNeighborCount returns how many candidate triangles share a full edge
// (exactly two stars) with triangle t. Interior triangles in a well-formed
// triangulation have exactly three; anything fewer touches the frontier.
func (sg *starGraph) edgeNeighborCount(t int) int {
	n := 0
	for candidate := range sg.candidateTriangles(t) {
		if sg.sharedStars(t, candidate) == 2 {
			n++
		}
	}
	return n
}

// borderTriangles returns the triangle numbers classified as boundary:
// those with fewer than three edge-sharing neighbors. Convex-hull corners
// with one or zero edge neighbors still qualify.
func (sg *starGraph) borderTriangles() []int {
	var border []int
	for t := range sg.triangleStars {
		if sg.edgeNeighborCount(t) < 3 {
			border = append(border, t)
		}
	}
	return border
}

// edgeIsShared reports whether any triangle other than t contains both
// stars a and b, i.e. whether the edge (a, b) of t is interior.
func (sg *starGraph) edgeIsShared(t, a, b int) bool {
	for other := range sg.starTriangles[a] {
		if other == t {
			continue
		}
		if _, ok := sg.starTriangles[b][other]; ok {
			return true
		}
	}
	return false
}

// frontierStars returns the sorted indexes of stars on the territory's
// outer edge: the endpoints of free edges — triangle edges no second
// triangle shares. Stars that only touch interior edges stay interior, so
// the strict inside of a grid never leaks into the frontier.
func (sg *starGraph) frontierStars() []int {
	frontier := make(map[int]struct{})
	for _, t := range sg.borderTriangles() {
		tri := sg.triangleStars[t]
		edges := [3][2]int{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
		for _, e := range edges {
			if !sg.edgeIsShared(t, e[0], e[1]) {
				frontier[e[0]] = struct{}{}
				frontier[e[1]] = struct{}{}
			}
		}
	}

	stars := make([]int, 0, len(frontier))
	for s := range frontier {
		stars = append(stars, s)
	}
	sort.Ints(stars)
	return stars
}

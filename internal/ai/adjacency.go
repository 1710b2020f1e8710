package ai

import "sort"

// starGraph holds the dual star/triangle mappings derived from one
// triangulation, plus the star adjacency lists. All three structures are
// built once and read-only afterwards.
type starGraph struct {
	// starTriangles maps a star index to the set of triangle numbers
	// incident to it.
	starTriangles map[int]map[int]struct{}

	// triangleStars maps a triangle number to its three star indexes.
	triangleStars [][3]int

	// adjacency maps a star index to the sorted indexes of every star it
	// shares a triangle with, self excluded. Sorted order keeps the
	// planner deterministic.
	adjacency map[int][]int
}

// buildStarGraph derives the dual mappings and the adjacency lists from a
// flat triangle list.
func buildStarGraph(triangles []int) *starGraph {
	sg := &starGraph{
		starTriangles: make(map[int]map[int]struct{}),
		triangleStars: make([][3]int, 0, len(triangles)/3),
	}

	for t := 0; t*3+2 < len(triangles); t++ {
		tri := [3]int{triangles[t*3], triangles[t*3+1], triangles[t*3+2]}
		sg.triangleStars = append(sg.triangleStars, tri)
		for _, star := range tri {
			set, ok := sg.starTriangles[star]
			if !ok {
				set = make(map[int]struct{})
				sg.starTriangles[star] = set
			}
			set[t] = struct{}{}
		}
	}

	// Adjacency: union of the stars in every triangle a star belongs to.
	sg.adjacency = make(map[int][]int, len(sg.starTriangles))
	for star, tris := range sg.starTriangles {
		seen := make(map[int]struct{})
		for t := range tris {
			for _, other := range sg.triangleStars[t] {
				if other != star {
					seen[other] = struct{}{}
				}
			}
		}
		neighbors := make([]int, 0, len(seen))
		for n := range seen {
			neighbors = append(neighbors, n)
		}
		sort.Ints(neighbors)
		sg.adjacency[star] = neighbors
	}

	return sg
}

// candidateTriangles returns every triangle sharing at least one star with
// triangle t, excluding t itself.
func (sg *starGraph) candidateTriangles(t int) map[int]struct{} {
	candidates := make(map[int]struct{})
	for _, star := range sg.triangleStars[t] {
		for other := range sg.starTriangles[star] {
			if other != t {
				candidates[other] = struct{}{}
			}
		}
	}
	return candidates
}

// sharedStars returns how many stars triangles t and u have in common.
func (sg *starGraph) sharedStars(t, u int) int {
	n := 0
	for _, a := range sg.triangleStars[t] {
		for _, b := range sg.triangleStars[u] {
			if a == b {
				n++
			}
		}
	}
	return n
}

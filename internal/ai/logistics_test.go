package ai

import "testing"

func TestLogisticsClaimsInterior(t *testing.T) {
	stars := gridStars(3, 10)
	sg := buildStarGraph(triangulate(stars))
	frontier := sg.frontierStars()

	q := newThreatQueue()
	q.Push(10, frontier[0])

	graph := buildLogistics(sg, len(stars), frontier, q)

	edges := 0
	for src, dests := range graph {
		for dst := range dests {
			edges++
			if src == dst {
				t.Errorf("self-edge %d→%d", src, dst)
			}
			if dst != 4 {
				t.Errorf("claimed star %d, but only the grid center (4) is interior", dst)
			}
		}
	}
	if edges != 1 {
		t.Errorf("expected exactly 1 supply edge, got %d", edges)
	}
}

func TestLogisticsNeverClaimsTwice(t *testing.T) {
	stars := gridStars(3, 10)
	sg := buildStarGraph(triangulate(stars))
	frontier := sg.frontierStars()

	// Every frontier star is desperate for supply; only one interior star
	// exists, so exactly one claim can succeed.
	q := newThreatQueue()
	for i, f := range frontier {
		q.Push(float64(100-i), f)
	}

	graph := buildLogistics(sg, len(stars), frontier, q)

	claimed := make(map[int]int)
	for _, dests := range graph {
		for dst := range dests {
			claimed[dst]++
		}
	}
	if len(claimed) != 1 || claimed[4] != 1 {
		t.Errorf("grid center must be claimed exactly once, got %v", claimed)
	}
}

func TestLogisticsDrainsAllInterior(t *testing.T) {
	stars := gridStars(5, 10)
	sg := buildStarGraph(triangulate(stars))
	frontier := sg.frontierStars()

	interior := make(map[int]struct{})
	for i := range stars {
		interior[i] = struct{}{}
	}
	for _, f := range frontier {
		delete(interior, f)
	}
	if len(interior) != 9 {
		t.Fatalf("5x5 grid should have 9 interior stars, got %d", len(interior))
	}

	// A single threatened frontier star, re-queued with decay after each
	// claim, must eventually absorb the whole interior through reach
	// extension — and must terminate doing it.
	q := newThreatQueue()
	q.Push(10, frontier[0])

	graph := buildLogistics(sg, len(stars), frontier, q)

	claimed := make(map[int]struct{})
	for src, dests := range graph {
		for dst := range dests {
			if src == dst {
				t.Errorf("self-edge %d→%d", src, dst)
			}
			if _, dup := claimed[dst]; dup {
				t.Errorf("star %d claimed twice", dst)
			}
			claimed[dst] = struct{}{}
			if _, ok := interior[dst]; !ok {
				t.Errorf("claimed star %d is not interior", dst)
			}
		}
	}
	if len(claimed) != len(interior) {
		t.Errorf("claimed %d interior stars, want %d", len(claimed), len(interior))
	}
}

func TestFindConnectionUnreachable(t *testing.T) {
	// Single triangle: no interior stars at all.
	stars := testStars([][2]float64{{0, 0}, {10, 0}, {5, 8}})
	sg := buildStarGraph(triangulate(stars))

	if _, _, ok := findConnection(sg, map[int]struct{}{}, 0); ok {
		t.Error("connection reported with nothing unclaimed")
	}
}

// A frontier star cut off from the remaining unclaimed stars must have its
// entry dropped without re-insertion, leaving those stars unsupplied.
func TestLogisticsDropsUnreachableFrontier(t *testing.T) {
	// Hand-built adjacency with two components: {0,1} and {2,3}. Only the
	// logistics walk uses adjacency, so the triangle mappings can stay empty.
	sg := &starGraph{
		adjacency: map[int][]int{
			0: {1},
			1: {0},
			2: {3},
			3: {2},
		},
	}

	q := newThreatQueue()
	q.Push(10, 0)

	graph := buildLogistics(sg, 4, []int{0}, q)

	if len(graph) != 1 || len(graph[0]) != 1 {
		t.Fatalf("expected the single edge 0→1, got %v", graph)
	}
	if _, ok := graph[0][1]; !ok {
		t.Fatalf("expected edge 0→1, got %v", graph)
	}
	for _, dests := range graph {
		for dst := range dests {
			if dst == 2 || dst == 3 {
				t.Error("stars in a disconnected component must stay unclaimed")
			}
		}
	}
}

func TestLogisticsDropsUnsupplyableEntry(t *testing.T) {
	stars := testStars([][2]float64{{0, 0}, {10, 0}, {5, 8}})
	sg := buildStarGraph(triangulate(stars))
	frontier := sg.frontierStars()
	if len(frontier) != 3 {
		t.Fatalf("single triangle: all 3 stars should be frontier, got %d", len(frontier))
	}

	q := newThreatQueue()
	q.Push(10, frontier[0])

	// No interior exists: the unclaimed set is empty from the start, so
	// the loop must exit immediately with an empty graph.
	graph := buildLogistics(sg, len(stars), frontier, q)
	if len(graph) != 0 {
		t.Errorf("expected empty logistics graph, got %v", graph)
	}
}

// Logistics graph construction: the greedy, priority-driven procedure that
// wires unclaimed interior stars to threatened frontier stars.
package ai

// decayFactor halves a frontier star's score after each successful claim
// so other frontier stars get a turn before it is revisited. Must stay
// strictly inside (0, 1) or the drain loop loses its termination argument.
const decayFactor = 0.5

// logisticsGraph is a directed supply mapping: source star index → the
// destination star indexes it feeds.
type logisticsGraph map[int]map[int]struct{}

func (lg logisticsGraph) addEdge(src, dst int) {
	if src == dst {
		return
	}
	set, ok := lg[src]
	if !ok {
		set = make(map[int]struct{})
		lg[src] = set
	}
	set[dst] = struct{}{}
}

// buildLogistics drains the threat queue, connecting each dequeued frontier
// star to an unclaimed interior star, directly or through already-committed
// territory. Every iteration either shrinks the unclaimed set or
// permanently discards a queue entry, so the loop terminates.
func buildLogistics(sg *starGraph, starCount int, frontier []int, queue *threatQueue) logisticsGraph {
	// Interior stars start unclaimed; frontier stars are never supply
	// sources for themselves.
	unclaimed := make(map[int]struct{}, starCount)
	for i := 0; i < starCount; i++ {
		unclaimed[i] = struct{}{}
	}
	for _, f := range frontier {
		delete(unclaimed, f)
	}

	graph := make(logisticsGraph)
	for len(unclaimed) > 0 && queue.Len() > 0 {
		score, borderStar, _ := queue.Pop()

		src, dst, ok := findConnection(sg, unclaimed, borderStar)
		if !ok {
			// Nothing reachable can supply this frontier star right now;
			// drop the entry for good.
			continue
		}

		delete(unclaimed, dst)
		graph.addEdge(src, dst)

		if len(unclaimed) > 0 {
			queue.Push(score*decayFactor, borderStar)
		}
	}
	return graph
}

// findConnection looks for an unclaimed star reachable from borderStar.
// The search is a depth-first walk with an explicit stack (large empires
// would overflow a call-stack recursion) over already-committed stars:
// the frontier star itself, and any star no longer unclaimed. The first
// unclaimed neighbor encountered is claimed, with the supply edge running
// from the committed star that reached it.
//
// Walking through all committed territory, not only along already-built
// supply edges, means a connection is found whenever one topologically
// exists in the component.
func findConnection(sg *starGraph, unclaimed map[int]struct{}, borderStar int) (src, dst int, ok bool) {
	stack := []int{borderStar}
	visited := map[int]struct{}{borderStar: {}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, neighbor := range sg.adjacency[current] {
			if _, isUnclaimed := unclaimed[neighbor]; isUnclaimed {
				return current, neighbor, true
			}
			if _, seen := visited[neighbor]; !seen {
				visited[neighbor] = struct{}{}
				stack = append(stack, neighbor)
			}
		}
	}
	return 0, 0, false
}

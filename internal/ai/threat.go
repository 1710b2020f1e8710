// Threat scoring for frontier stars. Urgency is the inverse of the
// distance to the nearest hostile star, measured in units of the longest
// travel range any player in the game can achieve.
package ai

import (
	"container/heap"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/starfront-game/starfront/internal/game"
)

// safeDistanceRatio is the relative distance beyond which a frontier star
// is considered out of reach of any hostile and carries no urgency.
const safeDistanceRatio = 2.5

// pointTolerance gives hostile stars a tiny non-degenerate bounding box so
// they can live in the R-tree.
const pointTolerance = 0.01

type hostileEntry struct {
	star *game.Star
	rect rtreego.Rect
}

func (e *hostileEntry) Bounds() rtreego.Rect {
	return e.rect
}

// hostileIndex answers nearest-hostile-distance queries over an R-tree of
// hostile star positions. A nil index means the game has no hostiles.
type hostileIndex struct {
	tree *rtreego.Rtree
}

func newHostileIndex(hostiles []*game.Star) *hostileIndex {
	if len(hostiles) == 0 {
		return nil
	}
	tree := rtreego.NewTree(2, 25, 50)
	for _, s := range hostiles {
		rect, err := rtreego.NewRect(
			rtreego.Point{s.Location.X(), s.Location.Y()},
			[]float64{pointTolerance, pointTolerance},
		)
		if err != nil {
			continue
		}
		tree.Insert(&hostileEntry{star: s, rect: rect})
	}
	return &hostileIndex{tree: tree}
}

// nearestDistance returns the Euclidean distance from p to the closest
// hostile star, or -1 when no hostiles exist.
func (hi *hostileIndex) nearestDistance(p orb.Point) float64 {
	if hi == nil {
		return -1
	}
	nearest := hi.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if nearest == nil {
		return -1
	}
	return game.Distance(p, nearest.(*hostileEntry).star.Location)
}

// threatScore converts a relative distance into an urgency score. Closer
// threats score higher; a hostile sitting on the star itself saturates to
// the maximum representable score instead of dividing by zero.
func threatScore(relDist float64) float64 {
	if relDist == 0 {
		return math.MaxFloat64
	}
	return 1 / relDist
}

// queueEntry is one (score, star) pair. seq breaks score ties in stable
// FIFO order: among equal scores the earliest insertion dequeues first.
type queueEntry struct {
	score float64
	star  int
	seq   uint64
}

type entryHeap []queueEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(queueEntry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// threatQueue is a max-priority queue over frontier stars. Scores strictly
// decrease across re-insertions of the same star (the caller applies the
// decay factor), so the queue drains in finitely many steps.
type threatQueue struct {
	entries entryHeap
	seq     uint64
}

func newThreatQueue() *threatQueue {
	return &threatQueue{}
}

func (q *threatQueue) Len() int {
	return q.entries.Len()
}

func (q *threatQueue) Push(score float64, star int) {
	heap.Push(&q.entries, queueEntry{score: score, star: star, seq: q.seq})
	q.seq++
}

// Pop removes and returns the highest-score entry. ok is false when the
// queue is empty.
func (q *threatQueue) Pop() (score float64, star int, ok bool) {
	if q.entries.Len() == 0 {
		return 0, 0, false
	}
	e := heap.Pop(&q.entries).(queueEntry)
	return e.score, e.star, true
}

// scoreFrontier loads every threatened frontier star into a fresh queue.
// With no hostiles in the game, every frontier star is safe and the queue
// stays empty. maxRange <= 0 (no players, or a zero light-year) likewise
// yields an empty queue.
func scoreFrontier(stars []*game.Star, frontier []int, hostiles *hostileIndex, maxRange float64) *threatQueue {
	q := newThreatQueue()
	if maxRange <= 0 {
		return q
	}
	for _, star := range frontier {
		dist := hostiles.nearestDistance(stars[star].Location)
		if dist < 0 {
			continue
		}
		relDist := dist / maxRange
		if relDist >= safeDistanceRatio {
			continue
		}
		q.Push(threatScore(relDist), star)
	}
	return q
}

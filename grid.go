package aabbgrid

import "iter"

// DefaultCellSize is used when NewGrid is given a non-positive cell size
const DefaultCellSize = 16

// Predicate is called once for every unique candidate found by Query.
// ctx is the value passed to Query, typically the object doing the querying.
// Returning false skips the rest of the current cell.
type Predicate[P any] func(ctx, candidate P) bool

type gridNode[P any] struct {
	id      uint32
	payload P
}

// Grid is a uniform grid for broad phase overlap queries between AABBs.
//
// A grid is built once and reused every tick: Clear, then Insert every object,
// then Query every object. An object is recorded in every cell its box covers,
// and a query reports it at most once no matter how many of those cells it visits.
//
// Cell size should be at least the size of the largest object. Payloads are held
// by value and never interpreted, so an index into a caller owned slice is the
// most natural payload. A Grid is not safe for concurrent use.
type Grid[TFloat float32 | float64, P any] struct {
	cellSize TFloat

	cells    map[uint64][]gridNode[P]
	nextID   uint32
	visited  map[uint32]struct{}
	querying int
}

// Stats is a snapshot of grid occupancy
type Stats struct {
	Cells         int    // Bucket slots, including ones emptied by Clear
	CellsOccupied int    // Buckets holding at least one node
	Nodes         int    // Total nodes. An object spanning N cells counts N times.
	MaxOccupancy  int    // Largest bucket
	Inserts       uint32 // Inserts since the last Clear
}

// Create a new grid with the given cell size
func NewGrid[TFloat float32 | float64, P any](cellSize TFloat) *Grid[TFloat, P] {
	if !(cellSize > 0) {
		cellSize = DefaultCellSize
	}
	return &Grid[TFloat, P]{
		cellSize: cellSize,
		cells:    map[uint64][]gridNode[P]{},
		visited:  map[uint32]struct{}{},
	}
}

func (g *Grid[TFloat, P]) CellSize() TFloat {
	return g.cellSize
}

// Reserve room for the given number of cells. Only has an effect while no cells exist yet.
func (g *Grid[TFloat, P]) Reserve(cells int) {
	if len(g.cells) == 0 && cells > 0 {
		g.cells = make(map[uint64][]gridNode[P], cells)
	}
}

// Clear empties every cell and restarts ids from zero.
// Bucket storage is kept for the next round of inserts, but payload slots are zeroed
// so the grid does not keep anything reachable.
func (g *Grid[TFloat, P]) Clear() {
	for key, bucket := range g.cells {
		clear(bucket)
		g.cells[key] = bucket[:0]
	}
	g.nextID = 0
}

// Insert adds payload to every cell covered by box, and returns the id of this insertion.
// Ids start at 1 after Clear, and are unique until the next Clear.
func (g *Grid[TFloat, P]) Insert(box Aabb[TFloat], payload P) uint32 {
	g.nextID++
	n := gridNode[P]{id: g.nextID, payload: payload}
	lo, hi := CellRange(box, g.cellSize)
	for x := int64(lo.X); x <= int64(hi.X); x++ {
		for y := int64(lo.Y); y <= int64(hi.Y); y++ {
			key := PackCell(CellCoord{X: int32(x), Y: int32(y)})
			g.cells[key] = append(g.cells[key], n)
		}
	}
	return n.id
}

// Query calls fn(ctx, candidate) once for every unique object stored in the cells covered by box.
// Cells are visited x-major, and nodes within a cell in insertion order.
// If fn returns false, the remaining nodes of the current cell are skipped and the
// query moves on to the next cell. Use Candidates to stop the whole traversal.
//
// fn may run a nested query on the same grid, but must not call Insert or Clear.
func (g *Grid[TFloat, P]) Query(box Aabb[TFloat], fn Predicate[P], ctx P) {
	g.walk(box, func(candidate P) walkAction {
		if !fn(ctx, candidate) {
			return skipCell
		}
		return keepGoing
	})
}

// Candidates returns an iterator over the unique objects stored in the cells covered by box.
// Each call to the returned sequence starts a fresh traversal. Breaking out of the loop ends it.
func (g *Grid[TFloat, P]) Candidates(box Aabb[TFloat]) iter.Seq[P] {
	return func(yield func(P) bool) {
		g.walk(box, func(candidate P) walkAction {
			if !yield(candidate) {
				return stopWalk
			}
			return keepGoing
		})
	}
}

// QueryAppend appends the unique objects stored in the cells covered by box to results.
// Reusing 'results' across calls avoids an allocation per query.
func (g *Grid[TFloat, P]) QueryAppend(box Aabb[TFloat], results []P) []P {
	results = results[:0]
	g.walk(box, func(candidate P) walkAction {
		results = append(results, candidate)
		return keepGoing
	})
	return results
}

// Stats walks every bucket, so it costs O(cells)
func (g *Grid[TFloat, P]) Stats() Stats {
	s := Stats{
		Cells:   len(g.cells),
		Inserts: g.nextID,
	}
	for _, bucket := range g.cells {
		if len(bucket) == 0 {
			continue
		}
		s.CellsOccupied++
		s.Nodes += len(bucket)
		s.MaxOccupancy = max(s.MaxOccupancy, len(bucket))
	}
	return s
}

type walkAction int

const (
	keepGoing walkAction = iota
	skipCell
	stopWalk
)

// walk visits every node in the cells covered by box, skipping ids already seen during this walk
func (g *Grid[TFloat, P]) walk(box Aabb[TFloat], visit func(P) walkAction) {
	// The shared visited set belongs to the outermost walk. A nested walk gets its own.
	seen := g.visited
	if g.querying > 0 {
		seen = map[uint32]struct{}{}
	} else {
		clear(seen)
	}
	g.querying++
	defer func() { g.querying-- }()

	lo, hi := CellRange(box, g.cellSize)
	for x := int64(lo.X); x <= int64(hi.X); x++ {
		for y := int64(lo.Y); y <= int64(hi.Y); y++ {
			bucket := g.cells[PackCell(CellCoord{X: int32(x), Y: int32(y)})]
		nodes:
			for _, n := range bucket {
				if _, ok := seen[n.id]; ok {
					continue
				}
				seen[n.id] = struct{}{}
				switch visit(n.payload) {
				case skipCell:
					break nodes
				case stopWalk:
					return
				}
			}
		}
	}
}

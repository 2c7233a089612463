package gridastar

import (
	"container/heap"
	"fmt"
	"strings"
)

// TieBreak decides which of two frontier entries with equal f is expanded first.
type TieBreak int

const (
	// Neutral expands equal-f entries in insertion order.
	Neutral TieBreak = iota
	// PreferHigherG expands the entry with the larger g first, favouring nodes deeper
	// in the search.
	PreferHigherG
	// PreferLowerG expands the entry with the smaller g first.
	PreferLowerG
)

func (t TieBreak) String() string {
	switch t {
	case Neutral:
		return "neutral"
	case PreferHigherG:
		return "higher-g"
	case PreferLowerG:
		return "lower-g"
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// ParseTieBreak converts a tie-break name to its policy.
func ParseTieBreak(name string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "neutral", "fifo":
		return Neutral, nil
	case "higher-g", "larger-g", "prefer-higher-g":
		return PreferHigherG, nil
	case "lower-g", "smaller-g", "prefer-lower-g":
		return PreferLowerG, nil
	}
	return Neutral, fmt.Errorf("parse tie-break %q: unknown policy", name)
}

type PriorityQueueItem struct {
	Node         NodeID
	Cell         Cell
	GScore       int
	FCost        float64
	Sequence     uint64
	IndexInQueue int
}

type PriorityQueue struct {
	items    []*PriorityQueueItem
	tieBreak TieBreak
}

func (queue PriorityQueue) Len() int { return len(queue.items) }

func (queue PriorityQueue) Less(i, j int) bool {
	a, b := queue.items[i], queue.items[j]
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	switch queue.tieBreak {
	case PreferHigherG:
		if a.GScore != b.GScore {
			return a.GScore > b.GScore
		}
	case PreferLowerG:
		if a.GScore != b.GScore {
			return a.GScore < b.GScore
		}
	}
	return a.Sequence < b.Sequence
}

func (queue PriorityQueue) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.items[i].IndexInQueue = i
	queue.items[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(queue.items)
	queue.items = append(queue.items, item)
}

func (queue *PriorityQueue) Pop() any {
	old := queue.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.IndexInQueue = -1
	queue.items = old[:n-1]
	return item
}

// Frontier is the open set of a search: a min-heap on f with an index from cell to
// heap entry, so membership tests and decrease-key never scan the heap.
// It holds at most one entry per cell.
type Frontier struct {
	queue    PriorityQueue
	byCell   map[Cell]*PriorityQueueItem
	store    *NodeStore
	sequence uint64
}

// NewFrontier returns an empty frontier over nodes allocated in store.
func NewFrontier(store *NodeStore, tieBreak TieBreak) *Frontier {
	return &Frontier{
		queue:  PriorityQueue{tieBreak: tieBreak},
		byCell: make(map[Cell]*PriorityQueueItem),
		store:  store,
	}
}

// Len returns the number of entries.
func (f *Frontier) Len() int { return f.queue.Len() }

// Push inserts a node. If its cell is already present the call acts as Decrease.
func (f *Frontier) Push(id NodeID) {
	n := f.store.Node(id)
	if _, ok := f.byCell[n.Cell]; ok {
		f.Decrease(n.Cell, n.G, n.Pred)
		return
	}
	f.sequence++
	item := &PriorityQueueItem{
		Node:     id,
		Cell:     n.Cell,
		GScore:   n.G,
		FCost:    n.F,
		Sequence: f.sequence,
	}
	heap.Push(&f.queue, item)
	f.byCell[n.Cell] = item
}

// PopMin removes and returns the entry with the lowest f.
func (f *Frontier) PopMin() (NodeID, bool) {
	if f.queue.Len() == 0 {
		return NoNode, false
	}
	item := heap.Pop(&f.queue).(*PriorityQueueItem)
	delete(f.byCell, item.Cell)
	return item.Node, true
}

// PeekMin returns the entry with the lowest f without removing it.
func (f *Frontier) PeekMin() (NodeID, bool) {
	if f.queue.Len() == 0 {
		return NoNode, false
	}
	return f.queue.items[0].Node, true
}

// Contains reports whether cell has an entry.
func (f *Frontier) Contains(cell Cell) bool {
	_, ok := f.byCell[cell]
	return ok
}

// Find returns the node queued for cell.
func (f *Frontier) Find(cell Cell) (NodeID, bool) {
	item, ok := f.byCell[cell]
	if !ok {
		return NoNode, false
	}
	return item.Node, true
}

// Decrease lowers the cost of the entry for cell to g via pred when that gives a
// strictly lower f. It reports whether the entry changed.
func (f *Frontier) Decrease(cell Cell, g int, pred NodeID) bool {
	item, ok := f.byCell[cell]
	if !ok {
		return false
	}
	n := f.store.Node(item.Node)
	if float64(g)+n.H >= item.FCost {
		return false
	}
	f.store.relink(item.Node, g, pred)
	item.GScore = g
	item.FCost = float64(g) + n.H
	heap.Fix(&f.queue, item.IndexInQueue)
	return true
}

// Cells returns the cells currently queued, in no particular order.
func (f *Frontier) Cells() []Cell {
	out := make([]Cell, 0, len(f.byCell))
	for c := range f.byCell {
		out = append(out, c)
	}
	return out
}

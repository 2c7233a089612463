package gridastar

import (
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// NodeID addresses a PathNode inside a NodeStore.
type NodeID int32

// NoNode is the predecessor of the first node of a path.
const NoNode NodeID = -1

// PathNode is one search state: a cell, the cost of the path that reached it, and a
// link to the node one step closer to the path's start.
type PathNode struct {
	Cell       Cell
	G          int
	H          float64
	F          float64
	Pred       NodeID
	Generation int
}

func (n PathNode) String() string {
	return fmt.Sprintf("%v g=%d h=%.3f f=%.3f", n.Cell, n.G, n.H, n.F)
}

// NodeStore is an arena of path nodes. Paths are chains of NodeIDs, so truncating or
// splicing a path never leaves a dangling reference behind.
type NodeStore struct {
	nodes []PathNode
}

// NewNodeStore returns an empty store with room for capacity nodes.
func NewNodeStore(capacity int) *NodeStore {
	return &NodeStore{nodes: make([]PathNode, 0, capacity)}
}

// New appends a node and returns its id.
func (s *NodeStore) New(cell Cell, g int, h float64, pred NodeID, generation int) NodeID {
	s.nodes = append(s.nodes, PathNode{
		Cell:       cell,
		G:          g,
		H:          h,
		F:          float64(g) + h,
		Pred:       pred,
		Generation: generation,
	})
	return NodeID(len(s.nodes) - 1)
}

// Node returns a copy of the node with the given id.
func (s *NodeStore) Node(id NodeID) PathNode {
	return s.nodes[id]
}

// Len returns the number of nodes in the store.
func (s *NodeStore) Len() int { return len(s.nodes) }

// Reset discards every node while keeping the allocated capacity.
func (s *NodeStore) Reset() { s.nodes = s.nodes[:0] }

// relink rewrites the cost and predecessor of an existing node.
func (s *NodeStore) relink(id NodeID, g int, pred NodeID) {
	n := &s.nodes[id]
	n.G = g
	n.F = float64(g) + n.H
	n.Pred = pred
}

// Path returns the cells from the start of the chain ending at id, start first.
func (s *NodeStore) Path(id NodeID) []Cell {
	if id == NoNode {
		return nil
	}
	return internal.ReconstructPath(id, NoNode,
		func(n NodeID) Cell { return s.nodes[n].Cell },
		func(n NodeID) NodeID { return s.nodes[n].Pred },
	)
}

// Chain returns the node ids of the chain ending at id, start first.
func (s *NodeStore) Chain(id NodeID) []NodeID {
	if id == NoNode {
		return nil
	}
	return internal.ReconstructPath(id, NoNode,
		func(n NodeID) NodeID { return n },
		func(n NodeID) NodeID { return s.nodes[n].Pred },
	)
}

// Depth returns the number of moves between the start of the chain and id.
func (s *NodeStore) Depth(id NodeID) int {
	d := -1
	for n := id; n != NoNode; n = s.nodes[n].Pred {
		d++
	}
	return d
}

package gridastar

// RelaxProposal is a candidate path to one neighbour of an expanded node.
type RelaxProposal struct {
	FromNode NodeID
	ToCell   Cell
	GScore   int
	HScore   float64
}

// FCost returns g + h for the proposal.
func (p RelaxProposal) FCost() float64 {
	return float64(p.GScore) + p.HScore
}

// proposeNeighbors appends to out one proposal per in-bounds, unblocked neighbour of
// from, in Moves order.
func proposeNeighbors(grid *Grid, store *NodeStore, from NodeID, goal Cell, heuristic Heuristic, out []RelaxProposal) []RelaxProposal {
	current := store.Node(from)
	for _, m := range Moves {
		next := current.Cell.Step(m)
		if !grid.InBounds(next) || grid.Blocked(next) {
			continue
		}
		out = append(out, RelaxProposal{
			FromNode: from,
			ToCell:   next,
			GScore:   current.G + 1,
			HScore:   heuristic(next, goal),
		})
	}
	return out
}

// Package gridastar provides A* and Repeated A* search over four-connected square grids.
//
// It exposes three entry points:
//
//   - Search: run a single A* search to completion over a grid and get an Outcome.
//   - Stepper: iterate the same search one expansion at a time to drive UIs or debugging tools.
//   - RepeatedSearch: move an agent across a ground-truth grid it can only partially see,
//     replanning with A* over its belief grid whenever it bumps into an undiscovered block.
//
// Search state lives in a NodeStore arena addressed by NodeID, and the frontier is a
// binary heap with a cell index for decrease-key. Per-cell costs recorded in a Grid carry
// the generation that wrote them, so a replanning round invalidates old costs lazily
// instead of clearing the whole grid.
package gridastar

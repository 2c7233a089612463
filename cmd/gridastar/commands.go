package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/experiment"
	"github.com/pdrpinto/gridastar/render"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Run one A* search from (0,0) to (dim-1,dim-1) with full knowledge of the grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			start, goal := g.Corners()
			out, err := gridastar.Search(cmd.Context(), g, start, goal, a.policy.Heuristic,
				gridastar.WithTieBreak(a.policy.TieBreak),
				gridastar.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Info("search finished",
				zap.Stringer("status", out.Status),
				zap.Int("expanded", out.ExpandedNodes))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "grid %dx%d  heuristic %v  tie-break %v\n", g.Dim(), g.Dim(), a.policy.Heuristic, a.policy.TieBreak)
			a.draw(w, g, out.Path, render.Options{})
			fmt.Fprintf(w, "status: %v\n", out.Status)
			fmt.Fprintf(w, "expanded: %d\n", out.ExpandedNodes)
			if out.IsFound() {
				fmt.Fprintf(w, "cost: %d\n", out.TotalCost)
				writePath(w, out.Path)
			}
			return nil
		},
	}
}

func newRepeatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repeat",
		Short: "Move an agent across the grid with Repeated A*, discovering blocks as it goes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			c, err := gridastar.NewController(g, a.policy.Direction, a.policy.Heuristic,
				gridastar.WithTieBreak(a.policy.TieBreak),
				gridastar.WithVisibility(a.policy.Visibility),
				gridastar.WithLogger(a.logger))
			if err != nil {
				return err
			}
			res, err := c.Run(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Info("repeated search finished",
				zap.Stringer("status", res.Status),
				zap.Int("rounds", res.Rounds),
				zap.Int("moves", res.Moves))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "grid %dx%d  heuristic %v  tie-break %v  direction %v  visibility %v\n",
				g.Dim(), g.Dim(), a.policy.Heuristic, a.policy.TieBreak, a.policy.Direction, a.policy.Visibility)
			a.draw(w, g, res.Path, render.Options{})
			if a.showBelief {
				fmt.Fprintln(w, "belief:")
				a.draw(w, c.Belief(), res.Path, render.Options{MarkExplored: true})
			}
			fmt.Fprintf(w, "status: %v\n", res.Status)
			fmt.Fprintf(w, "moves: %d\n", res.Moves)
			fmt.Fprintf(w, "rounds: %d\n", res.Rounds)
			fmt.Fprintf(w, "expanded: %d\n", res.ExpandedNodes)
			fmt.Fprintf(w, "discovered: %d\n", len(res.Discovered))
			writePath(w, res.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&a.direction, "direction", "", "forward or backward")
	cmd.Flags().StringVar(&a.visibility, "visibility", "", "local, adjacent or full")
	cmd.Flags().BoolVar(&a.showBelief, "show-belief", false, "also draw the agent's final belief grid")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run Repeated A* over many random grids and compare heuristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := a.cfg.BatchHeuristics()
			if err != nil {
				return err
			}
			report, err := experiment.Run(cmd.Context(), experiment.Config{
				Dim:              a.cfg.Grid.Dim,
				BlockProbability: a.cfg.Grid.BlockProbability,
				Runs:             a.cfg.Batch.Runs,
				Workers:          a.cfg.Batch.Workers,
				Seed:             a.cfg.Grid.Seed,
				Heuristics:       kinds,
				Direction:        a.policy.Direction,
				TieBreak:         a.policy.TieBreak,
				Visibility:       a.policy.Visibility,
			}, a.logger)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d runs  grid %dx%d  block probability %.2f  seed %d\n",
				report.Config.Runs, report.Config.Dim, report.Config.Dim, report.Config.BlockProbability, report.Config.Seed)
			fmt.Fprintln(w, summaryTable(report))
			return nil
		},
	}
	cmd.Flags().StringVar(&a.direction, "direction", "", "forward or backward")
	cmd.Flags().StringVar(&a.visibility, "visibility", "", "local, adjacent or full")
	cmd.Flags().IntVar(&a.runs, "runs", 0, "number of random grids")
	cmd.Flags().IntVar(&a.workers, "workers", 0, "parallel trials (0 = one per CPU)")
	cmd.Flags().StringSliceVar(&a.heuristics, "heuristics", nil, "heuristics to compare")
	return cmd
}

func summaryTable(report *experiment.Report) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("heuristic", "trials", "reached", "mean moves", "std moves", "mean expanded", "mean rounds")
	for _, s := range report.Summaries {
		t.Row(
			s.Heuristic.String(),
			strconv.Itoa(s.Trials),
			strconv.Itoa(s.Reached),
			strconv.FormatFloat(s.MeanMoves, 'f', 2, 64),
			strconv.FormatFloat(s.StdMoves, 'f', 2, 64),
			strconv.FormatFloat(s.MeanExpanded, 'f', 1, 64),
			strconv.FormatFloat(s.MeanRounds, 'f', 2, 64),
		)
	}
	return t
}

func writePath(w io.Writer, path []gridastar.Cell) {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	fmt.Fprintf(w, "path: %s\n", strings.Join(parts, " "))
}

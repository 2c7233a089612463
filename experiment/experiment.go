// Package experiment runs Repeated A* over batches of random grids and summarises
// how each heuristic performed.
//
// Trials run in parallel, but every trial generates and owns its grid, belief grid
// and controller, so nothing mutable is shared between goroutines.
package experiment

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/gridgen"
)

// Config describes a batch.
type Config struct {
	Dim              int
	BlockProbability float64
	Runs             int
	Workers          int   // <= 0 means one per CPU
	Seed             int64 // 0 = seed from the clock
	Heuristics       []gridastar.HeuristicKind
	Direction        gridastar.Direction
	TieBreak         gridastar.TieBreak
	Visibility       gridastar.Visibility
}

// Trial is one Repeated A* run on one grid with one heuristic.
type Trial struct {
	ID        uuid.UUID
	Run       int
	Seed      int64
	Heuristic gridastar.HeuristicKind
	// Solvable is whether a full-visibility search finds a path on the grid.
	Solvable   bool
	Status     gridastar.RunStatus
	Moves      int
	Rounds     int
	Expanded   int
	Discovered int
	Duration   time.Duration
}

// Summary aggregates the trials of one heuristic.
type Summary struct {
	Heuristic gridastar.HeuristicKind
	Trials    int
	Reached   int
	// MeanMoves and StdMoves cover reached trials only.
	MeanMoves    float64
	StdMoves     float64
	MeanExpanded float64
	MeanRounds   float64
}

// Report is the outcome of a batch.
type Report struct {
	Config    Config
	Trials    []Trial
	Summaries []Summary
}

// Summary returns the summary for kind.
func (r *Report) Summary(kind gridastar.HeuristicKind) (Summary, bool) {
	for _, s := range r.Summaries {
		if s.Heuristic == kind {
			return s, true
		}
	}
	return Summary{}, false
}

// Run executes cfg.Runs grids, each searched once per heuristic.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Runs < 0 {
		return nil, fmt.Errorf("runs must not be negative, got %d", cfg.Runs)
	}
	if len(cfg.Heuristics) == 0 {
		cfg.Heuristics = gridastar.HeuristicKinds
	}
	for _, k := range cfg.Heuristics {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %v", gridastar.ErrUnknownHeuristic, k)
		}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger.Info("starting batch",
		zap.Int("runs", cfg.Runs),
		zap.Int("dim", cfg.Dim),
		zap.Float64("block_probability", cfg.BlockProbability),
		zap.Int("workers", cfg.Workers),
		zap.Int64("seed", cfg.Seed))

	trials := make([]Trial, cfg.Runs*len(cfg.Heuristics))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for run := 0; run < cfg.Runs; run++ {
		run := run
		eg.Go(func() error {
			out := trials[run*len(cfg.Heuristics) : (run+1)*len(cfg.Heuristics)]
			return runGrid(egCtx, cfg, run, out, logger)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Config: cfg, Trials: trials, Summaries: summarize(cfg.Heuristics, trials)}
	for _, s := range report.Summaries {
		logger.Info("heuristic summary",
			zap.Stringer("heuristic", s.Heuristic),
			zap.Int("trials", s.Trials),
			zap.Int("reached", s.Reached),
			zap.Float64("mean_moves", s.MeanMoves),
			zap.Float64("mean_expanded", s.MeanExpanded))
	}
	return report, nil
}

// runGrid generates the grid for one run and fills out with one trial per heuristic.
func runGrid(ctx context.Context, cfg Config, run int, out []Trial, logger *zap.Logger) error {
	seed := cfg.Seed + int64(run)
	truth, err := gridgen.Generate(cfg.Dim, cfg.BlockProbability, gridgen.NewRand(seed))
	if err != nil {
		return fmt.Errorf("run %d: %w", run, err)
	}
	start, goal := cfg.Direction.Endpoints(cfg.Dim)

	// The reference search records costs in its own copy, leaving truth read-only.
	reference, err := gridastar.Search(ctx, truth.Clone(), start, goal, gridastar.Manhattan)
	if err != nil {
		return fmt.Errorf("run %d: reference search: %w", run, err)
	}

	for i, kind := range cfg.Heuristics {
		began := time.Now()
		res, err := gridastar.RepeatedSearch(ctx, truth, cfg.Direction, kind,
			gridastar.WithTieBreak(cfg.TieBreak),
			gridastar.WithVisibility(cfg.Visibility))
		if err != nil {
			return fmt.Errorf("run %d %v: %w", run, kind, err)
		}
		if (res.Status == gridastar.Reached) != reference.IsFound() {
			return fmt.Errorf("run %d %v: repeated search %v but reference search %v", run, kind, res.Status, reference.Status)
		}
		out[i] = Trial{
			ID:         uuid.New(),
			Run:        run,
			Seed:       seed,
			Heuristic:  kind,
			Solvable:   reference.IsFound(),
			Status:     res.Status,
			Moves:      res.Moves,
			Rounds:     res.Rounds,
			Expanded:   res.ExpandedNodes,
			Discovered: len(res.Discovered),
			Duration:   time.Since(began),
		}
		logger.Debug("trial finished",
			zap.Stringer("id", out[i].ID),
			zap.Int("run", run),
			zap.Stringer("heuristic", kind),
			zap.Stringer("status", res.Status),
			zap.Int("moves", res.Moves),
			zap.Int("rounds", res.Rounds))
	}
	return nil
}

func summarize(kinds []gridastar.HeuristicKind, trials []Trial) []Summary {
	summaries := make([]Summary, 0, len(kinds))
	for _, kind := range kinds {
		s := Summary{Heuristic: kind}
		var moves, expanded, rounds []float64
		for _, t := range trials {
			if t.Heuristic != kind {
				continue
			}
			s.Trials++
			expanded = append(expanded, float64(t.Expanded))
			rounds = append(rounds, float64(t.Rounds))
			if t.Status == gridastar.Reached {
				s.Reached++
				moves = append(moves, float64(t.Moves))
			}
		}
		if len(moves) > 1 {
			s.MeanMoves, s.StdMoves = stat.MeanStdDev(moves, nil)
		} else if len(moves) == 1 {
			s.MeanMoves = moves[0]
		}
		if len(expanded) > 0 {
			s.MeanExpanded = stat.Mean(expanded, nil)
			s.MeanRounds = stat.Mean(rounds, nil)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

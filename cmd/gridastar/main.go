// Command gridastar runs A* and Repeated A* on generated or hand-written grids.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/gridgen"
	"github.com/pdrpinto/gridastar/internal/config"
	"github.com/pdrpinto/gridastar/internal/logging"
	"github.com/pdrpinto/gridastar/render"
)

// app holds the flag values and the state built from them before a command runs.
type app struct {
	configPath string
	verbose    bool
	color      bool

	dim       int
	blockProb float64
	seed      int64
	gridFile  string

	heuristic  string
	tieBreak   string
	direction  string
	visibility string
	showBelief bool

	runs       int
	workers    int
	heuristics []string

	cfg    *config.Config
	policy config.Policy
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "gridastar",
		Short: "A* and Repeated A* on square grids",
		Long: `gridastar searches dim x dim four-connected grids with blocked cells.

  search  runs one A* search with full knowledge of the grid.
  repeat  moves an agent that only discovers blocks by running into them,
          replanning with A* each time its plan is cut.
  batch   runs Repeated A* over many random grids and summarises each heuristic.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.color, "color", false, "colour the rendered grid")
	pf.IntVar(&a.dim, "dim", 0, "grid dimension")
	pf.Float64Var(&a.blockProb, "block-prob", 0, "probability that a generated cell is blocked")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (0 = clock)")
	pf.StringVar(&a.gridFile, "grid-file", "", "read the grid from a file instead of generating it")
	pf.StringVar(&a.heuristic, "heuristic", "", "euclidean, manhattan or chebyshev")
	pf.StringVar(&a.tieBreak, "tie-break", "", "neutral, higher-g or lower-g")

	rootCmd.AddCommand(newSearchCmd(a), newRepeatCmd(a), newBatchCmd(a))
	return rootCmd
}

// setup loads the config, applies flags that were set explicitly, and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("dim") {
		cfg.Grid.Dim = a.dim
	}
	if flags.Changed("block-prob") {
		cfg.Grid.BlockProbability = a.blockProb
	}
	if flags.Changed("seed") {
		cfg.Grid.Seed = a.seed
	}
	if flags.Changed("grid-file") {
		cfg.Grid.File = a.gridFile
	}
	if flags.Changed("heuristic") {
		cfg.Search.Heuristic = a.heuristic
	}
	if flags.Changed("tie-break") {
		cfg.Search.TieBreak = a.tieBreak
	}
	if flags.Changed("direction") {
		cfg.Search.Direction = a.direction
	}
	if flags.Changed("visibility") {
		cfg.Search.Visibility = a.visibility
	}
	if flags.Changed("runs") {
		cfg.Batch.Runs = a.runs
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = a.workers
	}
	if flags.Changed("heuristics") {
		cfg.Batch.Heuristics = a.heuristics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if a.policy, err = cfg.Policy(); err != nil {
		return err
	}
	if a.logger, err = logging.New(cfg.Logging, a.verbose); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// loadGrid returns the ground truth: the configured file, or a generated grid.
func (a *app) loadGrid() (*gridastar.Grid, error) {
	if a.cfg.Grid.File != "" {
		return gridgen.ParseFile(a.cfg.Grid.File)
	}
	return gridgen.Generate(a.cfg.Grid.Dim, a.cfg.Grid.BlockProbability, gridgen.NewRand(a.cfg.Grid.Seed))
}

func (a *app) draw(w io.Writer, g *gridastar.Grid, path []gridastar.Cell, opts render.Options) {
	if a.color {
		fmt.Fprint(w, render.Styled(g, path, opts, render.DefaultStyles()))
		return
	}
	fmt.Fprint(w, render.Text(g, path, opts))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

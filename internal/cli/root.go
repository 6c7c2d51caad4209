// Package cli implements the headless dungenon command line.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dungenon/internal/sims/territory"
	"dungenon/pkg/faction"
)

// worldFlags are shared by every subcommand that builds a map.
type worldFlags struct {
	width, height int
	seed          int64
	factions      int
	voidChance    float64
	fill          string
	workers       int
	kernel        string
}

func (f *worldFlags) bind(cmd *cobra.Command) {
	def := territory.DefaultConfig()
	fs := cmd.Flags()
	fs.IntVar(&f.width, "width", def.Width, "Grid width in cells")
	fs.IntVar(&f.height, "height", def.Height, "Grid height in cells")
	fs.Int64VarP(&f.seed, "seed", "s", def.Seed, "Seed for the starting map and the run")
	fs.IntVarP(&f.factions, "factions", "f", def.Factions, "Number of starting factions")
	fs.Float64Var(&f.voidChance, "void", def.VoidChance, "Probability that a cell starts as void")
	fs.StringVar(&f.fill, "fill", string(def.Fill), "Starting layout: points or scatter")
	fs.IntVarP(&f.workers, "workers", "w", 0, "Parallel row bands (0 = GOMAXPROCS)")
	fs.StringVar(&f.kernel, "kernel", faction.KernelWindowed.String(), "Row kernel: windowed or scalar")
}

func (f *worldFlags) config() (territory.Config, error) {
	cfg := territory.DefaultConfig()
	if f.width <= 0 || f.height <= 0 {
		return cfg, fmt.Errorf("grid size must be positive, got %dx%d", f.width, f.height)
	}
	if f.factions <= 0 {
		return cfg, fmt.Errorf("factions must be positive, got %d", f.factions)
	}
	if f.voidChance < 0 || f.voidChance > 1 {
		return cfg, fmt.Errorf("void chance must be within [0,1], got %g", f.voidChance)
	}
	switch territory.Fill(f.fill) {
	case territory.FillPoints, territory.FillScatter:
	default:
		return cfg, fmt.Errorf("unknown fill %q (use points or scatter)", f.fill)
	}
	kernel, err := faction.ParseKernel(f.kernel)
	if err != nil {
		return cfg, err
	}
	cfg.Width = f.width
	cfg.Height = f.height
	cfg.Seed = f.seed
	cfg.Factions = f.factions
	cfg.VoidChance = f.voidChance
	cfg.Fill = territory.Fill(f.fill)
	cfg.Workers = f.workers
	cfg.Kernel = kernel
	return cfg, nil
}

// NewRootCommand assembles the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dungenon",
		Short: "Faction territory simulator",
		Long: `Run the faction diffusion automaton without a window.

Examples:
  dungenon run --steps 500 --out map.png
  dungenon census -f 12 --steps 1000 --every 100`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCommand(), newCensusCommand())
	return root
}

// Execute runs the command tree with the given arguments.
func Execute(args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dungenon/internal/render"
	"dungenon/internal/sims/territory"
)

type runOptions struct {
	world worldFlags
	steps int
	out   string
	quiet bool
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a map and optionally write it as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr(), "dungenon: ", log.LstdFlags)
			if opts.quiet {
				logger.SetOutput(io.Discard)
			}
			return runWorld(cmd, opts, logger)
		},
	}
	opts.world.bind(cmd)
	cmd.Flags().IntVarP(&opts.steps, "steps", "n", 200, "Number of generations to run")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the final map to this PNG file")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress logging")
	return cmd
}

func runWorld(cmd *cobra.Command, opts *runOptions, logger *log.Logger) error {
	if opts.steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", opts.steps)
	}
	cfg, err := opts.world.config()
	if err != nil {
		return err
	}

	world := territory.NewWithConfig(cfg)
	sim := world.Simulator()
	logger.Printf("map %dx%d seed=%d factions=%d kernel=%s workers=%d", cfg.Width, cfg.Height, cfg.Seed, cfg.Factions, sim.Kernel(), sim.Workers())

	scratch := world.Level().Clone()
	start := time.Now()
	if err := sim.StepN(world.Level(), scratch, opts.steps); err != nil {
		return err
	}
	elapsed := time.Since(start)

	cells := float64(cfg.Width) * float64(cfg.Height) * float64(opts.steps)
	rate := 0.0
	if elapsed > 0 {
		rate = cells / elapsed.Seconds()
	}
	logger.Printf("ran %d steps in %s (%.0f cells/s)", opts.steps, elapsed.Round(time.Millisecond), rate)

	census := world.Census()
	if id, n, ok := census.Leader(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "generation %d: %d factions alive, leader %d holds %d cells\n", sim.Steps(), len(census.Owned), id, n)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "generation %d: no faction holds territory\n", sim.Steps())
	}

	if opts.out == "" {
		return nil
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	if err := render.WriteFactionPNG(f, world.Level()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.out, err)
	}
	logger.Printf("wrote %s", opts.out)
	return nil
}

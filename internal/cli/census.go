package cli

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dungenon/internal/sims/territory"
	"dungenon/pkg/faction"
)

type censusOptions struct {
	world worldFlags
	steps int
	every int
	top   int
}

func newCensusCommand() *cobra.Command {
	opts := &censusOptions{}
	cmd := &cobra.Command{
		Use:   "census",
		Short: "Print territory counts while a map evolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCensus(cmd.OutOrStdout(), opts)
		},
	}
	opts.world.bind(cmd)
	cmd.Flags().IntVarP(&opts.steps, "steps", "n", 1000, "Number of generations to run")
	cmd.Flags().IntVarP(&opts.every, "every", "e", 100, "Report every this many generations")
	cmd.Flags().IntVarP(&opts.top, "top", "t", 5, "Factions listed per report")
	return cmd
}

func runCensus(out io.Writer, opts *censusOptions) error {
	if opts.steps < 0 || opts.every <= 0 || opts.top < 0 {
		return fmt.Errorf("invalid reporting window: steps=%d every=%d top=%d", opts.steps, opts.every, opts.top)
	}
	cfg, err := opts.world.config()
	if err != nil {
		return err
	}
	world := territory.NewWithConfig(cfg)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "gen\talive\tneutral\tfrontier\tleaders")
	var mask []bool
	report := func() {
		var contested int
		mask, contested = faction.Frontier(world.Level(), mask)
		c := world.Census()
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n", world.Generation(), len(c.Owned), c.Neutral, contested, leaders(c, opts.top))
	}

	report()
	for done := 0; done < opts.steps; {
		n := min(opts.every, opts.steps-done)
		for i := 0; i < n; i++ {
			world.Step()
		}
		done += n
		report()
	}
	return tw.Flush()
}

// leaders formats the top factions by cell count, largest first. Equal
// counts keep ascending id order.
func leaders(c faction.Census, top int) string {
	ids := c.Factions()
	slices.SortStableFunc(ids, func(a, b uint64) int {
		return cmp.Compare(c.Owned[b], c.Owned[a])
	})
	ids = ids[:min(top, len(ids))]
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d:%d", id, c.Owned[id])
	}
	return strings.Join(parts, " ")
}

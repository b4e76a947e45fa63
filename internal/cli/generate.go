package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gatsp/builder"
	"github.com/katalvlaran/gatsp/core"
	"github.com/katalvlaran/gatsp/graphio"
)

type generateFlags struct {
	vertices     int
	maxCost      int
	directed     bool
	connectivity float64
	seed         int64
	out          string
}

func newGenerateCommand(_ *globals) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random cost graph as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.maxCost < 1 {
				return fmt.Errorf("--max-cost must be ≥ 1, got %d", f.maxCost)
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(f.directed)},
				[]builder.BuilderOption{
					builder.WithSeed(f.seed),
					builder.WithWeightFn(builder.UniformIntWeightFn(1, f.maxCost)),
					builder.WithIDScheme(builder.PaddedIDFn(builder.WidthFor(f.vertices))),
				},
				builder.Random(f.vertices, f.connectivity),
			)
			if err != nil {
				return err
			}
			if f.out == "" {
				return graphio.WriteJSON(cmd.OutOrStdout(), g)
			}

			return graphio.WriteJSONFile(f.out, g)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.vertices, "vertices", 10, "number of vertices")
	fl.IntVar(&f.maxCost, "max-cost", 100, "costs are drawn uniformly from [1, max-cost]")
	fl.BoolVar(&f.directed, "directed", false, "draw each direction independently")
	fl.Float64Var(&f.connectivity, "connectivity", 1, "probability that a pair is priced")
	fl.Int64Var(&f.seed, "seed", 1, "RNG seed")
	fl.StringVar(&f.out, "out", "", "output file (default stdout)")

	return cmd
}

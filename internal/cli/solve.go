package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/graphio"
	"github.com/katalvlaran/gatsp/metrics"
	"github.com/katalvlaran/gatsp/store"
)

type solveFlags struct {
	graph      string
	start      string
	stop       string
	seed       int64
	runs       int
	population int
	db         string
	verify     bool
	polish     bool
}

func newSolveCommand(g *globals) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run the genetic solver on a graph file",
		Long: `Run the genetic solver on a JSON (dict-of-dicts) or TSPLIB XML graph.

Run k of a batch is seeded with DeriveSeed(seed, k). Every run is stored
in the run store (--db, or store.path in the config).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, g, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.graph, "graph", "", "graph file (.json or .xml)")
	fl.StringVar(&f.start, "start", "", "start vertex (default: first vertex)")
	fl.StringVar(&f.stop, "stop", "", "stop vertex (default: round trip)")
	fl.Int64Var(&f.seed, "seed", 0, "base seed (overrides config)")
	fl.IntVar(&f.runs, "runs", 1, "number of independent runs")
	fl.IntVar(&f.population, "population", 0, "population size (overrides config)")
	fl.StringVar(&f.db, "db", "", "SQLite run store (overrides config)")
	fl.BoolVar(&f.verify, "verify", false, "compare against the brute-force optimum")
	fl.BoolVar(&f.polish, "polish", false, "apply 2-opt to each run's best tour until no move improves")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func runSolve(cmd *cobra.Command, g *globals, f *solveFlags) error {
	if f.runs < 1 {
		return fmt.Errorf("--runs must be ≥ 1, got %d", f.runs)
	}
	cfg, log, err := g.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cmd.Flags().Changed("seed") {
		cfg.Solver.Seed = f.seed
	}
	if f.population > 0 {
		cfg.Solver.PopulationSize = f.population
	}
	if f.db != "" {
		cfg.Store.Path = f.db
	}

	graph, err := graphio.Load(f.graph)
	if err != nil {
		return err
	}
	start := f.start
	if start == "" && graph.VertexCount() > 0 {
		start = graph.Vertices()[0]
	}
	opts, err := cfg.Options(start, f.stop)
	if err != nil {
		return err
	}
	opts.Logger = log.With(zap.String("graph", filepath.Base(f.graph)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runs, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer runs.Close()

	var optimum *float64
	out := cmd.OutOrStdout()
	if f.verify {
		exact, err := genetic.BruteForce(graph, start, f.stop)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		c := exact.Fitness()
		optimum = &c
		fmt.Fprintf(out, "optimum: %s\n", exact)
	}

	rec := metrics.NewRecorder("")
	base := cfg.Solver.Seed
	var k int
	for k = 0; k < f.runs; k++ {
		opts.Seed = genetic.DeriveSeed(base, uint64(k))
		var history []float64
		opts.OnGeneration = rec.Hook(func(st genetic.GenerationStats) {
			history = append(history, st.Best)
		})

		res, solveErr := genetic.Solve(ctx, graph, opts)
		if solveErr != nil && !errors.Is(solveErr, context.Canceled) && !errors.Is(solveErr, context.DeadlineExceeded) {
			return solveErr
		}
		rec.ObserveResult(res)

		run := store.NewRunRecord(f.graph, opts, res, history)
		run.Optimum = optimum
		var polished genetic.Tour
		if f.polish && !res.Best.IsZero() {
			var moves int
			// maxMoves 0: polish until no move improves.
			if polished, moves, err = res.Best.TwoOpt(0); err != nil {
				return err
			}
			c := polished.Fitness()
			run.Polished = &c
			log.Debug("polished", zap.String("run", run.ID), zap.Int("moves", moves), zap.Float64("cost", c))
		}
		// a cancelled solve is still recorded
		if err = runs.SaveRun(context.WithoutCancel(ctx), run); err != nil {
			return err
		}
		printRun(out, k, f.runs, run, res, optimum)
		if !polished.IsZero() {
			fmt.Fprintf(out, "  polished: %s\n", polished)
		}

		if solveErr != nil {
			return solveErr
		}
	}

	if snap, err := rec.Snapshot(); err == nil {
		log.Info("metrics", zap.Any("values", snap))
	}

	return nil
}

func printRun(w io.Writer, k, total int, run store.RunRecord, res genetic.Result, optimum *float64) {
	fmt.Fprintf(w, "run %d/%d id=%s seed=%d cost=%g generations=%d reason=%s elapsed=%s\n",
		k+1, total, run.ID, run.Seed, res.Cost, res.Generations, res.Reason, res.Elapsed)
	if optimum != nil && *optimum > 0 {
		opt := *optimum
		fmt.Fprintf(w, "  gap=%.2f%%\n", 100*(res.Cost-opt)/opt)
	}
	fmt.Fprintf(w, "  %s\n", res.Best)
}

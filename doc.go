// Package gatsp finds short travelling-salesman tours over cost graphs with
// a genetic algorithm.
//
// What is inside?
//
//	core/      thread-safe cost Graph: string IDs, float64 costs, directed or not
//	matrix/    dense cost matrix and the index↔ID adjacency view the solver reads
//	builder/   seeded complete and random graph constructors
//	graphio/   JSON dict-of-dicts and TSPLIB XML loaders, JSON writer
//	genetic/   Tour, Population, Evolver, Solve, 2-opt polish, brute-force reference
//	metrics/   Prometheus recorder fed by the per-generation hook
//	store/     run history in memory or SQLite
//	cmd/gatsp  CLI: solve, generate, history
//
// Quick start:
//
//	g, _ := graphio.LoadJSONFile("cities.json")
//	opts := genetic.DefaultOptions()
//	opts.Start = "0"
//	res, err := genetic.Solve(ctx, g, opts)
//	fmt.Println(res.Best) // 0 → 2 → 1 → 3 → 0 (8100)
//
// The search is seeded and single-threaded: equal inputs and Options.Seed
// reproduce the same tour. Solving independent instances concurrently is
// safe with one Evolver per goroutine.
package gatsp

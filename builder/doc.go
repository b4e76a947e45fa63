// Package builder provides deterministic, functional-options constructors for
// cost graphs used as solver inputs, fixtures and benchmarks.
//
// The package offers:
//
//   - Orchestration: BuildGraph(gopts, bopts, cons...) creates a core.Graph
//     and applies Constructors in order.
//   - Topologies:
//     – Complete(n):            every ordered pair priced (K_n).
//     – Random(n, connectivity): each pair priced with probability
//     connectivity, otherwise left missing.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), PaddedIDFn(width)
//     ("00","01",… keeps lexicographic order numeric), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…).
//   - Cost distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, UniformIntWeightFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
//   - Option constructors panic on meaningless inputs (programmer error);
//     Constructors never panic and return sentinel errors.
//   - Directed graphs draw an independent cost per ordered pair; undirected
//     graphs draw once per unordered pair and core mirrors it.
package builder

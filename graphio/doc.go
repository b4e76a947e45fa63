// Package graphio loads and saves cost graphs.
//
// Supported formats:
//
//   - JSON dict-of-dicts: {"a": {"b": 3, "c": 4}, "b": {"a": 3}, ...}.
//     Each inner entry is the cost of one ordered pair; a vertex with an
//     empty object is kept as an isolated vertex. Diagonal entries are
//     ignored. The graph is directed unless WithUndirected is given, in
//     which case asymmetric pairs are rejected.
//   - TSPLIB XML (travellingSalesmanProblemInstance): the k-th <vertex>
//     element becomes vertex "k" and each <edge cost="c">j</edge> the cost
//     k→j.
//
// WriteJSON renders any graph back to dict-of-dicts JSON with sorted keys,
// so LoadJSON(WriteJSON(g)) reproduces g.
package graphio

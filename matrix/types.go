// Package matrix provides the dense cost table used by index-based solvers.
//
// A cost graph keyed by string IDs is compiled once into an Adjacency: a
// row-major Dense matrix plus a stable VertexIndex. Solvers then price a
// tour with O(1) slice reads instead of nested map lookups.
//
// Numeric policy:
//   - +Inf marks a pair that the source graph cannot price ("no edge").
//   - The diagonal is always 0.
//   - NaN and negative costs are rejected at ingestion.
package matrix

// Matrix is the minimal read/write surface shared by dense implementations.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Source is a string-keyed cost provider, e.g. *core.Graph.
type Source interface {
	// Vertices returns vertex IDs in their canonical order.
	Vertices() []string

	// Cost returns the cost of traversing from→to, or an error when the
	// pair has no cost.
	Cost(from, to string) (float64, error)
}

package graphio

import "errors"

// Sentinel errors for graph decoding.
var (
	// ErrFormat indicates a malformed document.
	ErrFormat = errors.New("graphio: malformed input")

	// ErrAsymmetric indicates an undirected load met a→b ≠ b→a.
	ErrAsymmetric = errors.New("graphio: asymmetric cost in undirected graph")

	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("graphio: unknown file format")
)

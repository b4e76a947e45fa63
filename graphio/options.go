package graphio

// Option configures decoding.
type Option func(*options)

type options struct {
	undirected bool
	name       string
}

// WithUndirected builds an undirected graph and requires symmetric costs.
func WithUndirected() Option {
	return func(o *options) { o.undirected = true }
}

func resolve(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

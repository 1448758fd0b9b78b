package iso

// Option configures what an isomorphism must preserve besides structure.
type Option func(*config)

type config struct {
	nodeLabels bool
	edgeLabels bool
}

// WithNodeLabels requires mapped nodes to carry equal labels.
func WithNodeLabels() Option {
	return func(c *config) { c.nodeLabels = true }
}

// WithEdgeLabels requires the label multisets of mapped parallel edges to agree.
func WithEdgeLabels() Option {
	return func(c *config) { c.edgeLabels = true }
}

// WithLabels is WithNodeLabels when on is true and a no-op otherwise.
func WithLabels(on bool) Option {
	return func(c *config) { c.nodeLabels = c.nodeLabels || on }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

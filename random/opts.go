package random

type Opts struct {
	Random Source // nil means Default()
}

type Option func(*Opts)

// WithSource draws from src instead of the default source.
func WithSource(src Source) Option {
	return func(o *Opts) {
		o.Random = src
	}
}

func WithOpts(opts Opts) Option {
	return func(o *Opts) {
		*o = opts
	}
}

func newOpts(options []Option) Opts {
	var o Opts
	for _, option := range options {
		if option != nil {
			option(&o)
		}
	}
	return o
}

func (o Opts) random() float64 {
	if o.Random != nil {
		return o.Random()
	}
	return defaultSource()
}

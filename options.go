package indexlist

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	capacity     int
	eagerReindex bool
}

func newDefaultListOptions() listOptions {
	return listOptions{
		capacity:     0,
		eagerReindex: true,
	}
}

// WithCapacity option preallocates the element index for capacity elements.
//
// The capacity is a hint, the list grows beyond it.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *listOptions) {
		if capacity < 0 {
			panic("indexlist: negative capacity")
		}
		opts.capacity = capacity
	})
}

// WithEagerReindex option configures whether RemoveAt rebuilds
// the position index before returning.
//
// Enabled by default. When disabled, the index is rebuilt by the next positional read.
func WithEagerReindex(enabled bool) Option {
	return funcOption(func(opts *listOptions) {
		opts.eagerReindex = enabled
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}

// Options for configuring Engine instances.
package core

// WithMaxLimit replaces the capacity ceiling. Values <= 0 keep the default.
func WithMaxLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.maxLimit = limit
		}
	}
}

// WithWorkers sets how many limits the density runner sieves at once.
// Values < 1 are treated as 1 (sequential).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithReporter configures the Engine with a summary Reporter.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// WithSummary toggles summary reporting from Analyze.
func WithSummary(enabled bool) Option {
	return func(e *Engine) {
		e.summary = enabled
	}
}

// WithObserver configures the Engine with a measurement Observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithPublisher configures the Engine with a density SamplePublisher.
func WithPublisher(p SamplePublisher) Option {
	return func(e *Engine) {
		e.publisher = p
	}
}

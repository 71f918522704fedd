package fsmx

import "log/slog"

type options struct {
	name      string
	observers []Observer
}

// Option configures a Machine during construction.
type Option func(*options)

// WithName labels the machine in events, logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithObserver attaches an observer that sees every run. May be given more than once.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithLogger logs every run event at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.observers = append(o.observers, &logObserver{logger: logger})
		}
	}
}

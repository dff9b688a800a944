package sqlschema

import (
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

type options struct {
	logger         *slog.Logger
	messages       validator.Messages
	ignoreDefaults bool
}

// Option configures the compiler.
type Option func(*options)

// WithLogger logs every derived column rule at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMessages attaches a message overlay to the compiled rule set. It wins
// over the default catalog.
func WithMessages(m validator.Messages) Option {
	return func(o *options) {
		o.messages = o.messages.Merge(m)
	}
}

// IgnoreDefaults skips column default values, so absent fields stay absent.
func IgnoreDefaults() Option {
	return func(o *options) {
		o.ignoreDefaults = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

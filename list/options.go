package list

import (
	"fmt"

	"github.com/sirkon/lstack/logging"
)

// Option тип опции для создания списка.
type Option interface {
	String() string
	apply(o *options)
}

// WithLogger задаёт логгер для нефатальных ситуаций. Без него используется logging.Nop.
func WithLogger(logger logging.Logger) Option {
	return withLogger{logger: logger}
}

type options struct {
	logger logging.Logger
}

func newOptions(opts []Option) options {
	res := options{
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt.apply(&res)
	}

	return res
}

type withLogger struct {
	logger logging.Logger
}

func (o withLogger) String() string {
	return fmt.Sprintf("set logger %T", o.logger)
}

func (o withLogger) apply(opts *options) {
	if o.logger == nil {
		return
	}

	opts.logger = o.logger
}

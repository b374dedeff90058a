package textfile

import (
	"fmt"

	"github.com/sirkon/lstack/list"
	"github.com/sirkon/lstack/logging"
)

// Option тип опции чтения файла.
type Option interface {
	String() string
	apply(o *options)
}

// WithLogger задаёт логгер для пропущенных строк и ошибок чтения.
// Он же передаётся создаваемому списку.
func WithLogger(logger logging.Logger) Option {
	return withLogger{logger: logger}
}

// WithListOptions опции создаваемого списка.
func WithListOptions(opts ...list.Option) Option {
	return withListOptions(opts)
}

type options struct {
	logger   logging.Logger
	listOpts []list.Option
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
	opts.listOpts = append(opts.listOpts, list.WithLogger(o.logger))
}

type withListOptions []list.Option

func (o withListOptions) String() string {
	return fmt.Sprintf("set %d list options", len(o))
}

func (o withListOptions) apply(opts *options) {
	opts.listOpts = append(opts.listOpts, o...)
}

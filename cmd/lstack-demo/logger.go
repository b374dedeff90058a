package main

import (
	"github.com/sirkon/message"

	"github.com/sirkon/lstack/logging"
)

var _ logging.Logger = &printLogger{}

// printLogger выводит сообщения о нефатальных ситуациях как предупреждения.
type printLogger struct{}

func (*printLogger) IndexOutOfBounds(op string, index, count int) {
	message.Warningf("%s: index %d is out of bounds for length %d", op, index, count)
}

func (*printLogger) EmptyStructure(op string) {
	message.Warningf("%s: structure is empty", op)
}

func (*printLogger) LineSkipped(path string, line int, err error) {
	message.Warningf("%s:%d: line skipped: %s", path, line, err)
}

func (*printLogger) FileReadFailed(path string, err error) {
	message.Warningf("%s: cannot read the file, nothing loaded: %s", path, err)
}

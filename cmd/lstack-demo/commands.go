package main

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/message"

	"github.com/sirkon/lstack/list"
	"github.com/sirkon/lstack/stack"
	"github.com/sirkon/lstack/textfile"
)

type listCommand struct{}

// Run повторяет фиксированную последовательность операций над списком.
func (listCommand) Run(rctx *runContext) error {
	l := list.New[int](list.WithLogger(rctx.logger))
	for i := 0; i <= 9; i++ {
		l.Append(i)
	}
	printSequence("filled", l.Iterate())

	// Ошибки выхода за границы уже отражены логгером.
	_ = l.RemoveElement(0)
	_ = l.RemoveElement(l.Len() - 1)
	_ = l.RemoveElement(2)
	printSequence("after removals", l.Iterate())

	l.Append(2)
	_ = l.Add(3, 6)
	printSequence("after insertions", l.Iterate())

	_ = l.Add(3, 16)
	_ = l.RemoveElement(11)

	restored, err := roundTrip(rctx, l)
	if err != nil {
		return err
	}
	printSequence("read from "+rctx.path, restored.Iterate())

	return nil
}

type stackCommand struct{}

// Run повторяет фиксированную последовательность операций над стеком.
func (stackCommand) Run(rctx *runContext) error {
	s := stack.New[int](list.WithLogger(rctx.logger))
	for i := 0; i <= 10; i++ {
		s.Push(i)
	}
	printSequence("pushed", s.Iterate())

	v, err := s.Pop()
	if err != nil {
		return errors.Wrap(err, "pop")
	}
	message.Infof("popped %d", v)
	printSequence("after pop", s.Iterate())

	top, err := s.Peek()
	if err != nil {
		return errors.Wrap(err, "peek")
	}
	message.Infof("top %d", top)

	restored, err := roundTrip(rctx, s.List())
	if err != nil {
		return err
	}
	printSequence("read from "+rctx.path, stack.FromList(restored).Iterate())

	return nil
}

func roundTrip(rctx *runContext, l *list.List[int]) (*list.List[int], error) {
	if err := textfile.Write[int](rctx.path, l, textfile.Ints[int]()); err != nil {
		return nil, errors.Wrap(err, "write list into file")
	}

	res, err := textfile.ReadRadix[int](rctx.path, textfile.Ints[int](), textfile.WithLogger(rctx.logger))
	if err != nil {
		return nil, errors.Wrap(err, "read list from file")
	}

	return res, nil
}

func printSequence(title string, it *list.Iterator[int]) {
	var values []int
	for it.Next() {
		values = append(values, it.Value())
	}
	if err := it.Err(); err != nil {
		message.Warning(errors.Wrap(err, "iterate "+title))
		return
	}

	message.Infof("%s: %v", title, values)
}

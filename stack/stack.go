// Package stack стек поверх двусвязного списка. Вершиной стека считается
// конец списка: и Pop, и Peek работают с последним элементом.
//
// Как и список, стек не безопасен при конкурентном доступе.
package stack

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/lstack/list"
	"github.com/sirkon/lstack/lsterr"
)

// New конструктор пустого стека. Опции передаются нижележащему списку.
func New[T any](opts ...list.Option) *Stack[T] {
	return &Stack[T]{
		list: list.New[T](opts...),
	}
}

// FromList стек поверх данного списка, например прочитанного из файла.
// Последний элемент списка становится вершиной.
func FromList[T any](l *list.List[T]) *Stack[T] {
	return &Stack[T]{
		list: l,
	}
}

// Stack стек значений.
type Stack[T any] struct {
	list *list.List[T]
}

// Len количество элементов в стеке.
func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// Push кладёт значение на вершину стека.
func (s *Stack[T]) Push(v T) {
	s.list.Append(v)
}

// Pop снимает значение с вершины стека.
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.top("pop")
	if err != nil {
		return v, err
	}

	if err := s.list.RemoveElement(s.list.Len() - 1); err != nil {
		return v, errors.Wrap(err, "remove top element")
	}

	return v, nil
}

// Peek значение на вершине стека без его снятия.
func (s *Stack[T]) Peek() (T, error) {
	return s.top("peek")
}

// Iterate обход стека от дна к вершине.
func (s *Stack[T]) Iterate() *list.Iterator[T] {
	return s.list.Iterate()
}

// List нижележащий список, например для записи в файл.
func (s *Stack[T]) List() *list.List[T] {
	return s.list
}

func (s *Stack[T]) top(op string) (T, error) {
	if s.list.Len() == 0 {
		var zero T
		s.list.Logger().EmptyStructure(op)
		return zero, errors.Wrap(lsterr.NewEmptyStructure(), op)
	}

	v, err := s.list.Element(s.list.Len() - 1)
	if err != nil {
		return v, errors.Wrap(err, "read top element")
	}

	return v, nil
}

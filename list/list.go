// Package list обобщённый двусвязный список с доступом по индексу.
//
// Список не безопасен при конкурентном доступе: все вызовы, включая обход,
// должны быть упорядочены пользователем. Изменение списка во время обхода
// запрещено и обнаруживается итератором.
package list

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/lstack/internal/dllist"
	"github.com/sirkon/lstack/logging"
	"github.com/sirkon/lstack/lsterr"
)

// New конструктор пустого списка.
func New[T any](opts ...Option) *List[T] {
	o := newOptions(opts)
	return &List[T]{
		nodes:  dllist.New[T](),
		logger: o.logger,
	}
}

// List упорядоченная последовательность значений.
type List[T any] struct {
	nodes  *dllist.DLList[T]
	gen    uint64
	logger logging.Logger
}

// Len количество элементов списка.
func (l *List[T]) Len() int {
	return l.nodes.Len()
}

// Logger логгер списка.
func (l *List[T]) Logger() logging.Logger {
	return l.logger
}

// Append добавление значения в конец списка.
func (l *List[T]) Append(v T) {
	l.nodes.Push(v)
	l.gen++
}

// Add вставка значения так, чтобы оно оказалось под номером index.
// Допустимы индексы от 0 до Len() включительно, index == Len() то же самое что Append.
// При недопустимом индексе список не меняется.
func (l *List[T]) Add(v T, index int) error {
	count := l.nodes.Len()
	if index < 0 || index > count {
		return l.outOfBounds("add", index)
	}

	if index == count {
		l.Append(v)
		return nil
	}

	l.nodes.InsertBefore(l.nodes.Nth(index), v)
	l.gen++
	return nil
}

// Element значение под номером index.
func (l *List[T]) Element(index int) (T, error) {
	h, err := l.lookup("element", index)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.nodes.Value(h), nil
}

// SetElement замена значения под номером index.
func (l *List[T]) SetElement(v T, index int) error {
	h, err := l.lookup("set element", index)
	if err != nil {
		return err
	}

	l.nodes.SetValue(h, v)
	return nil
}

// RemoveElement удаление значения под номером index с сохранением порядка остальных.
// При недопустимом индексе список не меняется.
func (l *List[T]) RemoveElement(index int) error {
	if l.nodes.Len() == 0 {
		l.logger.EmptyStructure("remove element")
		return errors.Wrap(lsterr.NewEmptyStructure(), "remove element").Int("index", index)
	}

	h, err := l.lookup("remove element", index)
	if err != nil {
		return err
	}

	l.nodes.Delete(h)
	l.gen++
	return nil
}

// Slice значения списка по порядку.
func (l *List[T]) Slice() []T {
	res := make([]T, 0, l.nodes.Len())
	for h := l.nodes.First(); h != dllist.None; h = l.nodes.Next(h) {
		res = append(res, l.nodes.Value(h))
	}

	return res
}

func (l *List[T]) lookup(op string, index int) (dllist.Handle, error) {
	if index < 0 || index >= l.nodes.Len() {
		return dllist.None, l.outOfBounds(op, index)
	}

	return l.nodes.Nth(index), nil
}

func (l *List[T]) outOfBounds(op string, index int) error {
	count := l.nodes.Len()
	l.logger.IndexOutOfBounds(op, index, count)
	return errors.Wrap(lsterr.NewIndexOutOfBounds(), op).Int("index", index).Int("count", count)
}

package list

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/lstack/internal/dllist"
	"github.com/sirkon/lstack/lsterr"
)

// Iterate начало нового обхода списка с первого элемента.
//
//	it := l.Iterate()
//	for it.Next() {
//	    v := it.Value()
//	}
//	if err := it.Err(); err != nil {
//	    …
//	}
func (l *List[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{
		list: l,
		gen:  l.gen,
		cur:  dllist.None,
	}
}

// Iterator ленивый обход списка вперёд. Изменение структуры списка
// во время обхода прерывает его с ошибкой.
type Iterator[T any] struct {
	list    *List[T]
	gen     uint64
	cur     dllist.Handle
	started bool
	err     error
}

// Next переход к следующему элементу. Возвращает false по достижении
// конца списка или при ошибке.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}

	if it.gen != it.list.gen {
		it.err = errors.Wrap(lsterr.NewModifiedDuringIteration(), "iterate").
			Uint64("iteration-generation", it.gen).
			Uint64("list-generation", it.list.gen)
		it.cur = dllist.None
		return false
	}

	if !it.started {
		it.started = true
		it.cur = it.list.nodes.First()
	} else if it.cur != dllist.None {
		it.cur = it.list.nodes.Next(it.cur)
	}

	return it.cur != dllist.None
}

// Value текущее значение. Допустимо только после Next вернувшего true.
func (it *Iterator[T]) Value() T {
	return it.list.nodes.Value(it.cur)
}

// Err ошибка прервавшая обход.
func (it *Iterator[T]) Err() error {
	return it.err
}

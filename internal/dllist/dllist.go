package dllist

import (
	"github.com/sirkon/errors"
)

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{
		nodes: make([]Node[T], 1), // нулевой слот зарезервирован под None
	}
}

// DLList двусвязный список с узлами в растущей таблице. Узлы адресуются
// ручками, а не указателями, так что взаимные ссылки соседей не образуют
// циклов владения. Освобождённые слоты переиспользуются.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	nodes []Node[T]
	free  []Handle

	first Handle
	last  Handle
	count int
}

// Len количество узлов в списке.
func (l *DLList[T]) Len() int {
	return l.count
}

// First получение первого узла списка.
func (l *DLList[T]) First() Handle {
	return l.first
}

// Last получение последнего узла списка.
func (l *DLList[T]) Last() Handle {
	return l.last
}

// Next следующий за данным узел.
func (l *DLList[T]) Next(h Handle) Handle {
	return l.node(h).next
}

// Prev предшествующий данному узел.
func (l *DLList[T]) Prev(h Handle) Handle {
	return l.node(h).prev
}

// Value значение лежащее в узле.
func (l *DLList[T]) Value(h Handle) T {
	return l.node(h).value
}

// SetValue замена значения в узле.
func (l *DLList[T]) SetValue(h Handle, v T) {
	l.node(h).value = v
}

// Push добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) Push(v T) Handle {
	h := l.alloc(v)
	n := l.node(h)
	n.prev = l.last

	if l.first == None {
		l.first = h
		l.last = h
		l.count++
		return h
	}

	l.node(l.last).next = h
	l.last = h
	l.count++

	return h
}

// InsertBefore вставка нового значения непосредственно перед данным узлом.
func (l *DLList[T]) InsertBefore(at Handle, v T) Handle {
	h := l.alloc(v)
	n := l.node(h)
	nxt := l.node(at)

	n.next = at
	n.prev = nxt.prev
	if nxt.prev != None {
		l.node(nxt.prev).next = h
	} else {
		l.first = h
	}
	nxt.prev = h
	l.count++

	return h
}

// Nth получение узла по его порядковому номеру. Узлы из первой половины
// ищутся проходом от начала, из второй от конца. Возвращает None при выходе
// за границы.
func (l *DLList[T]) Nth(index int) Handle {
	if index < 0 || index >= l.count {
		return None
	}

	if index >= l.count/2 {
		cur := l.last
		for i := l.count - 1; i > index; i-- {
			cur = l.Prev(cur)
		}
		return cur
	}

	cur := l.first
	for i := 0; i < index; i++ {
		cur = l.Next(cur)
	}

	return cur
}

// Delete удаление данного узла из списка.
func (l *DLList[T]) Delete(h Handle) {
	n := l.node(h)

	switch {
	case h == l.first && h == l.last:
		// в списке был только один элемент
		l.first = None
		l.last = None
	case h == l.first:
		l.first = n.next
		l.node(n.next).prev = None
	case h == l.last:
		l.last = n.prev
		l.node(n.prev).next = None
	default:
		l.node(n.prev).next = n.next
		l.node(n.next).prev = n.prev
	}

	n.cleanup()
	l.free = append(l.free, h)
	l.count--
}

// Check проверка целостности связей списка.
func (l *DLList[T]) Check() error {
	if l.first == None || l.last == None {
		if l.first != l.last {
			return errors.New("only one of the list ends is set").
				Int("first", int(l.first)).
				Int("last", int(l.last))
		}
		if l.count != 0 {
			return errors.New("empty list has non-zero count").Int("count", l.count)
		}
		return nil
	}

	if p := l.node(l.first).prev; p != None {
		return errors.New("first node has a predecessor").Int("prev", int(p))
	}
	if n := l.node(l.last).next; n != None {
		return errors.New("last node has a successor").Int("next", int(n))
	}

	var forward int
	prev := None
	for cur := l.first; cur != None; cur = l.node(cur).next {
		n := l.node(cur)
		if !n.used {
			return errors.New("released node is still linked").Int("node", int(cur))
		}
		if n.prev != prev {
			return errors.New("back reference does not point to the predecessor").
				Int("node", int(cur)).
				Int("expected-prev", int(prev)).
				Int("actual-prev", int(n.prev))
		}
		prev = cur
		forward++
		if forward > l.count {
			return errors.New("forward chain is longer than count").Int("count", l.count)
		}
	}
	if prev != l.last {
		return errors.New("forward chain does not end at the last node").
			Int("chain-end", int(prev)).
			Int("last", int(l.last))
	}

	var backward int
	for cur := l.last; cur != None; cur = l.Prev(cur) {
		backward++
		if backward > l.count {
			return errors.New("backward chain is longer than count").Int("count", l.count)
		}
	}

	if forward != l.count || backward != l.count {
		return errors.New("count does not match linked nodes").
			Int("count", l.count).
			Int("forward", forward).
			Int("backward", backward)
	}

	return nil
}

func (l *DLList[T]) alloc(v T) Handle {
	var h Handle
	if k := len(l.free); k > 0 {
		h = l.free[k-1]
		l.free = l.free[:k-1]
	} else {
		l.nodes = append(l.nodes, Node[T]{})
		h = Handle(len(l.nodes) - 1)
	}

	n := l.node(h)
	n.used = true
	n.value = v

	return h
}

func (l *DLList[T]) node(h Handle) *Node[T] {
	return &l.nodes[h]
}

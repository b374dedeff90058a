package dllist

// Handle ручка узла в таблице узлов списка. Нулевое значение означает
// отсутствие узла.
type Handle int32

// None отсутствующий узел.
const None Handle = 0

// Node узел содержащий данное значение в связанном списке.
// next задаёт владение следующим узлом в прямой цепочке, prev только
// обратная ссылка для обхода в обратную сторону и не является владением.
type Node[T any] struct {
	prev Handle
	next Handle
	used bool

	value T
}

func (n *Node[T]) cleanup() {
	var zero T
	n.prev = None
	n.next = None
	n.used = false
	n.value = zero // для упрощения работы GC
}

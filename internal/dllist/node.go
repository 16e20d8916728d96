package dllist

// Node узел содержащий данное значение в связанном списке.
// Значение принадлежит вызывающей стороне, список его только хранит.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// Next следующий узел списка, nil для последнего.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev предыдущий узел списка, nil для первого.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// unlink выцепляет узел из цепочки соседей.
func (n *Node[T]) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	n.cleanup()
}

func (n *Node[T]) cleanup() {
	var zero T

	n.prev = nil
	n.next = nil
	n.value = zero // для упрощения работы GC
}

package dllist

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"github.com/sirkon/ranklist/internal/logging"
)

// List двусвязный список значений, принадлежащих вызывающей стороне.
// Список владеет только своими узлами.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	id    uuid.UUID
	first *Node[T]
	last  *Node[T]
	size  int

	alloc  Allocator
	rnd    Random
	algo   ShuffleAlgorithm
	logger logging.Logger
}

// New конструктор пустого двусвязного списка.
func New[T any](opts ...Option) (*List[T], error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, errors.Wrap(err, "apply options")
	}

	id := uuid.New()
	if err := c.alloc.Allocate(KindList, 1); err != nil {
		c.logger.ListAllocationFailed(id, "create", err)
		return nil, errors.Wrap(err, "allocate list header").Str("list-id", id.String())
	}

	return &List[T]{
		id:     id,
		alloc:  c.alloc,
		rnd:    c.rnd,
		algo:   c.algo,
		logger: c.logger,
	}, nil
}

// ID идентификатор списка.
func (l *List[T]) ID() uuid.UUID {
	return l.id
}

// Len число узлов в списке.
func (l *List[T]) Len() int {
	return l.size
}

// First получение первого элемента списка.
func (l *List[T]) First() *Node[T] {
	return l.first
}

// Last получение последнего элемента списка.
func (l *List[T]) Last() *Node[T] {
	return l.last
}

// Append добавление нового значения в конец списка с возвратом созданного узла.
// Если память под узел получить не удалось, список не меняется.
func (l *List[T]) Append(v T) (*Node[T], error) {
	if err := l.alloc.Allocate(KindNode, 1); err != nil {
		l.logger.ListAllocationFailed(l.id, "append", err)
		return nil, errors.Wrap(err, "allocate node").
			Str("list-id", l.id.String()).
			Int("list-size", l.size)
	}

	n := &Node[T]{
		next:  nil,
		prev:  l.last,
		value: v,
	}

	if l.first == nil {
		l.first = n
	}
	if l.last != nil {
		l.last.next = n
	}
	l.last = n
	l.size++

	return n, nil
}

// Destroy освобождает все узлы и сам список. После вызова список
// использовать нельзя.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}

	var released int
	for n := l.first; n != nil; {
		// освобождение узла обнуляет его ссылки, следующий берём заранее
		next := n.next
		n.unlink()
		l.alloc.Release(KindNode, 1)
		l.size--
		released++
		n = next
	}

	l.first = nil
	l.last = nil
	l.alloc.Release(KindList, 1)
	l.logger.DebugListDestroyed(l.id, released)
}

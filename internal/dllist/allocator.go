package dllist

import (
	"fmt"

	"github.com/sirkon/errors"
)

// Kind вид объекта, под который запрашивается память.
type Kind int

const (
	// KindList заголовок списка.
	KindList Kind = iota + 1
	// KindNode узел списка.
	KindNode
	// KindIndex ячейки временного индекса перемешивания.
	KindIndex
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindNode:
		return "node"
	case KindIndex:
		return "index"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Allocator абстракция хранилища, из которого список получает память.
// Ошибка Allocate означает, что память получить нельзя, реализации
// должны оборачивать ErrorAllocation.
type Allocator interface {
	Allocate(kind Kind, count int) error
	Release(kind Kind, count int)
}

// Unlimited аллокатор, который никогда не отказывает.
func Unlimited() Allocator {
	return unlimited{}
}

type unlimited struct{}

func (unlimited) Allocate(Kind, int) error { return nil }

func (unlimited) Release(Kind, int) {}

// Budget аллокатор с ограничением на общее число живых ячеек.
// Ведёт учёт по видам объектов и отмечает освобождения того,
// что не было выделено.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Budget struct {
	limit    int
	live     map[Kind]int
	allocs   map[Kind]int
	releases map[Kind]int
	total    int
	over     int
}

// NewBudget конструктор аллокатора с ограничением limit ячеек.
func NewBudget(limit int) *Budget {
	return &Budget{
		limit:    limit,
		live:     map[Kind]int{},
		allocs:   map[Kind]int{},
		releases: map[Kind]int{},
	}
}

// Allocate для реализации Allocator.
func (b *Budget) Allocate(kind Kind, count int) error {
	if b.total+count > b.limit {
		return errors.Wrap(ErrorAllocation, "budget exhausted").
			Str("object-kind", kind.String()).
			Int("object-count", count).
			Int("budget-limit", b.limit).
			Int("budget-used", b.total)
	}

	b.live[kind] += count
	b.allocs[kind] += count
	b.total += count
	return nil
}

// Release для реализации Allocator.
func (b *Budget) Release(kind Kind, count int) {
	b.releases[kind] += count
	if b.live[kind] < count {
		// освобождается больше, чем было выделено
		b.over += count - b.live[kind]
		count = b.live[kind]
	}

	b.live[kind] -= count
	b.total -= count
}

// Live число живых ячеек данного вида.
func (b *Budget) Live(kind Kind) int {
	return b.live[kind]
}

// Total общее число живых ячеек.
func (b *Budget) Total() int {
	return b.total
}

// Allocated сколько всего ячеек данного вида было выделено.
func (b *Budget) Allocated(kind Kind) int {
	return b.allocs[kind]
}

// Released сколько всего ячеек данного вида было освобождено.
func (b *Budget) Released(kind Kind) int {
	return b.releases[kind]
}

// Overreleased число освобождений сверх выделенного.
func (b *Budget) Overreleased() int {
	return b.over
}

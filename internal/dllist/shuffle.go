package dllist

import (
	"fmt"

	"github.com/sirkon/errors"
)

// ShuffleAlgorithm алгоритм перемешивания значений списка.
type ShuffleAlgorithm int

const (
	// ShuffleUniform перемешивание Фишера-Йетса, все перестановки равновероятны.
	ShuffleUniform ShuffleAlgorithm = iota
	// ShuffleLegacy на каждом шаге i значение меняется местами со значением
	// в позиции из всего диапазона [0, size). Распределение перестановок
	// неравномерно, нужен для совместимости со старыми данными.
	ShuffleLegacy
)

func (a ShuffleAlgorithm) String() string {
	switch a {
	case ShuffleUniform:
		return "uniform"
	case ShuffleLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("shuffle(%d)", int(a))
	}
}

// Shuffle случайно переставляет значения между узлами списка.
// Сами узлы, их связи и размер списка не меняются. Для пустого
// списка или списка из одного элемента ничего не делает.
// При ошибке выделения памяти под индекс список остаётся нетронутым.
func (l *List[T]) Shuffle() error {
	if l == nil || l.size < 2 {
		return nil
	}

	size := l.size
	if err := l.alloc.Allocate(KindIndex, size); err != nil {
		l.logger.ListAllocationFailed(l.id, "shuffle", err)
		return errors.Wrap(err, "allocate shuffle index").
			Str("list-id", l.id.String()).
			Int("list-size", size)
	}
	defer l.alloc.Release(KindIndex, size)

	index := make([]*Node[T], 0, size)
	for n := l.first; n != nil; n = n.next {
		index = append(index, n)
	}

	switch l.algo {
	case ShuffleLegacy:
		for i := range index {
			j := l.rnd.Intn(size)
			swapValues(index[i], index[j])
		}
	default:
		for i := 0; i < size-1; i++ {
			j := i + l.rnd.Intn(size-i)
			swapValues(index[i], index[j])
		}
	}

	l.logger.DebugListShuffled(l.id, size, l.algo)
	return nil
}

func swapValues[T any](a, b *Node[T]) {
	a.value, b.value = b.value, a.value
}

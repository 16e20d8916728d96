package dllist

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random источник случайных чисел для перемешивания.
type Random interface {
	// Intn возвращает равномерно распределённое число из [0, n).
	Intn(n int) int
}

// NewSeededRandom детерминированный источник с данным зерном.
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}

func defaultRandom() Random {
	return NewSeededRandom(uint64(time.Now().UnixNano()))
}

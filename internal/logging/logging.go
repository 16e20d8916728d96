package logging

import "fmt"

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// ListAllocationFailed не удалось получить память под объект списка
	// в ходе операции op.
	ListAllocationFailed(listID fmt.Stringer, op string, err error)

	// DebugListDestroyed отладочное логирование при уничтожении списка,
	// released – число освобождённых узлов.
	DebugListDestroyed(listID fmt.Stringer, released int)

	// DebugListShuffled отладочное логирование после перемешивания списка.
	DebugListShuffled(listID fmt.Stringer, size int, algo fmt.Stringer)
}

// Nop логгер, который ничего не делает.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) ListAllocationFailed(fmt.Stringer, string, error) {}

func (nopLogger) DebugListDestroyed(fmt.Stringer, int) {}

func (nopLogger) DebugListShuffled(fmt.Stringer, int, fmt.Stringer) {}

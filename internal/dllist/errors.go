package dllist

import "github.com/sirkon/errors"

// ErrorAllocation не удалось получить память под объект списка.
const ErrorAllocation errors.Const = "allocation failed"

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrListingNotFound - запись с таким id отсутствует в хранилище.
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidStatus - значение вне пары in-progress / contract-completed.
	ErrInvalidStatus = errors.New("invalid listing status")
)

// ValidationError - не заполнено обязательное поле. Ловится до любого
// обращения к хранилищу и показывается пользователю сразу.
type ValidationError struct {
	Field Field
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("required field is missing: %s", e.Field)
}

// IsValidationError проверяет цепочку ошибок на ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

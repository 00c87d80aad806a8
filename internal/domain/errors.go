package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrRateNotPositive = errors.New("current rate must be positive")
)

// ValidationError ошибка валидации пользовательского ввода. Запрос с такой ошибкой
// не должен доходить до слоя персистентности.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// StatusConflictError возвращается при попытке перевести уже разрешенную заявку в новый
// статус. Содержит актуальную запись, чтобы клиент мог выполнить сверку вместо
// оптимистичного удаления из списка.
type StatusConflictError struct {
	Request *InvestmentRequest
}

func NewStatusConflictError(request *InvestmentRequest) error {
	return &StatusConflictError{Request: request}
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf(
		"investment request %d is already %s and cannot be transitioned",
		e.Request.ID,
		e.Request.Status,
	)
}

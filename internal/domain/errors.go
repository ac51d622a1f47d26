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

	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrNotEnoughBalance     = errors.New("not enough balance")
	ErrOwnerConflict        = errors.New("owner conflict")
	ErrWrongTransactionType = errors.New("wrong transaction type")
	ErrAlreadyProcessed     = errors.New("transaction has already been processed")
	ErrBudgetExceeded       = errors.New("event points budget exceeded")
	ErrEventFull            = errors.New("event guest capacity reached")

	// ErrConflict - проигрыш гонки за атомарную секцию check-then-write.
	// Единственная ошибка, которую сервисный слой ретраит сам.
	ErrConflict = errors.New("concurrent update conflict")
)

type BudgetExceededError struct {
	EventID   int64
	Requested int64
	Remaining int64
}

func NewBudgetExceededError(eventID, requested, remaining int64) error {
	return &BudgetExceededError{EventID: eventID, Requested: requested, Remaining: remaining}
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf(
		"event %d: requested %d points with only %d remaining in budget",
		e.EventID,
		e.Requested,
		e.Remaining,
	)
}

func (e *BudgetExceededError) Unwrap() error {
	return ErrBudgetExceeded
}

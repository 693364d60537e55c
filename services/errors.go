package services

import "errors"

// Kategori error. Semua error di bawah ini dapat dicek dengan errors.Is
// terhadap salah satu kategori.
var (
	// ErrValidation is returned before any write when an input is rejected.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
)

var (
	ErrInvalidDate      = &CustomError{Kind: ErrValidation, Message: "date must be YYYY-MM-DD"}
	ErrNonPositiveStay  = &CustomError{Kind: ErrValidation, Message: "check-out must be after check-in"}
	ErrSubjectRequired  = &CustomError{Kind: ErrValidation, Message: "subject required"}
	ErrRoomRequired     = &CustomError{Kind: ErrValidation, Message: "room required"}
	ErrEmptyCart        = &CustomError{Kind: ErrValidation, Message: "cart is empty"}
	ErrInvalidQuantity  = &CustomError{Kind: ErrValidation, Message: "quantity must be at least 1"}
	ErrCategoryRequired = &CustomError{Kind: ErrValidation, Message: "category name required"}

	ErrItemNotFound = &CustomError{Kind: ErrNotFound, Message: "referenced item not found"}
	ErrRoomNotFound = &CustomError{Kind: ErrNotFound, Message: "room not found"}
)

type CustomError struct {
	Kind    error
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Kind
}

package models

import "errors"

// General errors
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Transaction errors
var (
	ErrTransactionTypeInvalid = errors.New("the transaction type must be income or expense")
	ErrAmountNotPositive      = errors.New("the amount must be larger than zero")
	ErrDescriptionEmpty       = errors.New("the description must not be empty")
	ErrDateNotSet             = errors.New("the date must be set")
)

// Goal errors
var (
	ErrGoalNameEmpty           = errors.New("the goal name must not be empty")
	ErrTargetAmountNotPositive = errors.New("the target amount must be larger than zero")
	ErrSavedAmountNegative     = errors.New("the saved amount must not be negative")
	ErrSavedExceedsTarget      = errors.New("the saved amount must not exceed the target amount")
	ErrTopUpExceedsTarget      = errors.New("the top up would exceed the target amount")
)

// Attendance errors
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("no check-in recorded for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)

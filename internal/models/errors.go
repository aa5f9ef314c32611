package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrConflict         = errors.New("the resource was modified concurrently, please try again")

	ErrAccountNameNotUnique   = errors.New("the account name must be unique")
	ErrAccountNameEmpty       = errors.New("the account name must not be empty")
	ErrAccountKindInvalid     = errors.New("the account kind must be one of 'asset' or 'liability'")
	ErrExpensePaymentExists   = errors.New("the recurring expense has already been paid for this month")
	ErrSubsetInvalid          = errors.New("the transaction subset is not valid")
	ErrStatusInvalid          = errors.New("the transaction status is not valid")
	ErrDueDayInvalid          = errors.New("the due day must be between 1 and 31")
	ErrPaymentMethodInvalid   = errors.New("the payment method must be one of 'bank' or 'cash'")
	ErrRecurringAmountInvalid = errors.New("the monthly amount of a recurring expense must be positive")
)

package models

import (
	"errors"
)

var (
	ErrGeneral               = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound      = errors.New("there is no")
	ErrProfileAmountNegative = errors.New("income and expenses of a profile must not be negative")
	ErrProfileAmountInvalid  = errors.New("income and expenses of a profile must have at most 8 decimal places and be less than 10^12")
)

package errors

import (
	"errors"
	"fmt"
)

type Status string

// The balance cannot cover the amount being sent plus any fee in the same asset
const NoBalance Status = "NoBalance"

// The native balance cannot cover the native part of the fee
const NoBalanceForGas Status = "NoBalanceForGas"

// The token balance cannot cover the diesel part of the fee
const NoBalanceForDiesel Status = "NoBalanceForDiesel"

// The stars balance cannot cover the diesel part of the fee
const NoBalanceForStars Status = "NoBalanceForStars"

// The fee has not been quoted yet, affordability cannot be decided
const FeeUnknown Status = "FeeUnknown"

// The fee is above the configured limit
const FeeLimitExceeded Status = "FeeLimitExceeded"

// A quote document is malformed
const InvalidQuote Status = "InvalidQuote"

type Error struct {
	Status  Status
	Message string
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func Errorf(status Status, format string, args ...interface{}) error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

func NoBalanceForGasf(format string, args ...interface{}) error {
	return Errorf(NoBalanceForGas, format, args...)
}

func FeeLimitExceededf(format string, args ...interface{}) error {
	return Errorf(FeeLimitExceeded, format, args...)
}

func InvalidQuotef(format string, args ...interface{}) error {
	return Errorf(InvalidQuote, format, args...)
}

// StatusOf returns the status of a wrapped *Error, or "" for any other error.
func StatusOf(err error) Status {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return ""
}

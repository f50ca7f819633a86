// Package fault holds the coded errors the services raise and the
// controllers map to HTTP statuses.
package fault

import (
	"errors"
	"fmt"
)

type Code string

const (
	UserNotFound    Code = "USER_NOT_FOUND"
	ItemNotFound    Code = "ITEM_NOT_FOUND"
	BookingNotFound Code = "BOOKING_NOT_FOUND"
	RequestNotFound Code = "REQUEST_NOT_FOUND"

	EmailAlreadyExists Code = "EMAIL_ALREADY_EXISTS"
	ItemOwnerMismatch  Code = "ITEM_OWNER_MISMATCH"

	ItemNotAvailable        Code = "ITEM_NOT_AVAILABLE"
	ItemRenterRequired      Code = "ITEM_RENTER_REQUIRED"
	BookingEndDateInvalid   Code = "BOOKING_END_DATE_INVALID"
	BookingStatusAlreadySet Code = "BOOKING_STATUS_ALREADY_SET"
	UnknownState            Code = "UNKNOWN_STATE"
)

type codedError struct {
	code Code
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() Code    { return e.code }

func New(code Code, format string, args ...any) error {
	return codedError{code: code, msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the code from an error, or "" for uncoded errors.
func CodeOf(err error) Code {
	var ce interface{ Code() Code }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

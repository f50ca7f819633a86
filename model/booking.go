// model/booking.go
package model

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
	// BookingCanceled is part of the status vocabulary but no operation
	// produces it; there is no cancellation endpoint.
	BookingCanceled BookingStatus = "CANCELED"
)

type Booking struct {
	ID       int64         `json:"id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	ItemID   int64         `json:"item_id"`
	BookerID int64         `json:"booker_id"`
	Status   BookingStatus `json:"status"`
}

// BookingState filters booking listings relative to "now" at query time.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState accepts the listing filter values; an empty string
// means ALL. Unknown values are rejected by the caller as UnknownState.
func ParseBookingState(s string) (BookingState, bool) {
	if s == "" {
		return StateAll, true
	}
	switch st := BookingState(strings.ToUpper(s)); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st, true
	default:
		return "", false
	}
}

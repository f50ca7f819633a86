// model/item.go
package model

import "time"

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	// RequestID links the item to the request it fulfills, if any.
	RequestID *int64 `json:"request_id,omitempty"`
}

// ItemPatch carries a partial update; nil fields keep the stored value.
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

type Comment struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"item_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// BookingRef is the short booking shape embedded in owner item views.
type BookingRef struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"booker_id"`
}

// ItemView is an item enriched at read time. LastBooking and NextBooking
// are populated only when the requesting user owns the item.
type ItemView struct {
	Item
	Comments    []Comment   `json:"comments"`
	LastBooking *BookingRef `json:"last_booking,omitempty"`
	NextBooking *BookingRef `json:"next_booking,omitempty"`
}

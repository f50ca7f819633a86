package model

import "time"

type Request struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
}

// RequestView attaches the items that fulfill the request.
type RequestView struct {
	Request
	Items []Item `json:"items"`
}

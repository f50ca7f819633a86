package booking

import "time"

type CreateBookingReq struct {
	ItemID int64     `json:"item_id" validate:"required,gt=0"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

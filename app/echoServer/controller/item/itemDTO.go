package item

type CreateItemReq struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Available   *bool  `json:"available" validate:"required"`
	// RequestID marks the item as fulfilling a wanted-item request.
	RequestID *int64 `json:"request_id" validate:"omitempty,gt=0"`
}

// UpdateItemReq is a partial update; absent fields leave the stored value.
type UpdateItemReq struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type PostCommentReq struct {
	Text string `json:"text" validate:"required,notblank"`
}

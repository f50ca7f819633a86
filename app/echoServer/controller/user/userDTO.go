package user

type CreateUserReq struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserReq is a partial update; absent fields leave the stored value.
type UpdateUserReq struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

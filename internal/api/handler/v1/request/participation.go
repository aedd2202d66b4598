package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateParticipationRequest struct {
	ContestID uint  `json:"contest_id"`
	Numbers   []int `json:"numbers"`
}

func (req *CreateParticipationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContestID, validation.Required),
		validation.Field(&req.Numbers, validation.Required, validation.Length(1, 100)),
	)
}

package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type PublishDrawRequest struct {
	Numbers  []int     `json:"numbers"`
	DrawDate time.Time `json:"draw_date"`
}

func (req *PublishDrawRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Numbers, validation.Required, validation.Length(1, 100)),
	)
}

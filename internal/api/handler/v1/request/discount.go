package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDiscountRequest struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	ContestID   *uint     `json:"contest_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	MaxUses     *int      `json:"max_uses"`
}

func (req *CreateDiscountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Type, validation.Required, validation.In("percentage", "fixed")),
		validation.Field(&req.Value, validation.Required, validation.Min(0.01)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
}

type PreviewDiscountRequest struct {
	Code      string  `json:"code"`
	ContestID uint    `json:"contest_id"`
	Amount    float64 `json:"amount"`
}

func (req *PreviewDiscountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required),
		validation.Field(&req.ContestID, validation.Required),
		validation.Field(&req.Amount, validation.Required, validation.Min(0.01)),
	)
}

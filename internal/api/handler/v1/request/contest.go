package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateContestRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	MinNumber               int     `json:"min_number"`
	MaxNumber               int     `json:"max_number"`
	NumbersPerParticipation int     `json:"numbers_per_participation"`
	ParticipationValue      float64 `json:"participation_value"`

	TopPct      float64 `json:"top_pct"`
	SecondPct   float64 `json:"second_pct"`
	LowestPct   float64 `json:"lowest_pct"`
	AdminFeePct float64 `json:"admin_fee_pct"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (req *CreateContestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.MinNumber, validation.Min(0)),
		validation.Field(&req.MaxNumber, validation.Required, validation.Min(1)),
		validation.Field(&req.NumbersPerParticipation, validation.Required, validation.Min(1)),
		validation.Field(&req.ParticipationValue, validation.Required, validation.Min(0.01)),
		validation.Field(&req.TopPct, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&req.SecondPct, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&req.LowestPct, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&req.AdminFeePct, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
}

type UpdateContestRequest struct {
	CreateContestRequest
}

type ChangeContestStatusRequest struct {
	Status string `json:"status"`
}

func (req *ChangeContestStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In("active", "finished", "cancelled")),
	)
}

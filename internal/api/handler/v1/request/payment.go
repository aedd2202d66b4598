package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateChargeRequest struct {
	ParticipationID uint   `json:"participation_id"`
	DiscountCode    string `json:"discount_code"`
}

func (req *CreateChargeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipationID, validation.Required),
	)
}

// WebhookRequest is the payload Asaas posts on payment events.
type WebhookRequest struct {
	Event   string `json:"event"`
	Payment struct {
		ID string `json:"id"`
	} `json:"payment"`
}

func (req *WebhookRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Event, validation.Required),
	)
}

package domain

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Payment is one row of the contest's revenue ledger. ExternalID is the
// charge id at the payment gateway; the webhook matches on it.
type Payment struct {
	ID              uint          `json:"id"`
	ParticipationID uint          `json:"participation_id"`
	ContestID       uint          `json:"contest_id"`
	UserID          uint          `json:"user_id"`
	ExternalID      string        `json:"external_id"`
	Amount          float64       `json:"amount"`
	DiscountCode    string        `json:"discount_code,omitempty"`
	Status          PaymentStatus `json:"status"`
	DueDate         time.Time     `json:"due_date"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (p Payment) IsPaid() bool {
	return p.Status == PaymentPaid
}

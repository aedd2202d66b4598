package domain

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is an admin-managed promotion code. ContestID nil means the code
// is global.
type Discount struct {
	ID          uint         `json:"id"`
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        DiscountType `json:"type"`
	Value       float64      `json:"value"`
	ContestID   *uint        `json:"contest_id,omitempty"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	MaxUses     *int         `json:"max_uses,omitempty"`
	CurrentUses int          `json:"current_uses"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsUsable reports whether the code can be applied right now, for the given
// contest (0 checks only global validity).
func (d Discount) IsUsable(now time.Time, contestID uint) bool {
	if !d.IsActive {
		return false
	}
	if now.Before(d.StartDate) || d.EndDate.Before(now) {
		return false
	}
	if d.MaxUses != nil && d.CurrentUses >= *d.MaxUses {
		return false
	}
	if d.ContestID != nil && contestID != 0 && *d.ContestID != contestID {
		return false
	}

	return true
}

// Apply returns the amount after the discount, never below zero.
func (d Discount) Apply(amount float64) float64 {
	var discounted float64
	switch d.Type {
	case DiscountPercentage:
		discounted = amount - amount*d.Value/100
	case DiscountFixed:
		discounted = amount - d.Value
	default:
		return amount
	}

	if discounted < 0 {
		return 0
	}

	return discounted
}

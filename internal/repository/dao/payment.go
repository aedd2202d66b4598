package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type Payment struct {
	ID uint `gorm:"primaryKey"`

	ParticipationID uint `gorm:"not null;index"`
	ContestID       uint `gorm:"not null;index"`
	UserID          uint `gorm:"not null;index"`

	ExternalID string `gorm:"unique;not null"`

	Amount       float64 `gorm:"not null"`
	DiscountCode string

	Status  string `gorm:"not null;default:pending"`
	DueDate time.Time
	PaidAt  *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) Update(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Save(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByID(ctx context.Context, id uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByExternalID(ctx context.Context, externalID string) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, "external_id = ?", externalID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) ListByUserID(ctx context.Context, userID uint) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

// SumPaidByContestID totals confirmed revenue for a contest.
func (d *PaymentDAO) SumPaidByContestID(ctx context.Context, contestID uint) (float64, error) {
	var total float64

	result := d.db.WithContext(ctx).
		Model(&Payment{}).
		Where("contest_id = ? AND status = ?", contestID, "paid").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

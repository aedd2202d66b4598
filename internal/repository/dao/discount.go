package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDiscountNotFound   = errors.New("discount not found")
	ErrDiscountCodeExists = errors.New("discount code already exists")
)

type Discount struct {
	ID uint `gorm:"primaryKey"`

	Code string `gorm:"unique;not null"`
	Type string `gorm:"not null"` // "percentage" or "fixed"

	Name        string
	Description string

	Value float64 `gorm:"not null"`

	ContestID *uint `gorm:"index"` // nil means usable on any contest

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	MaxUses     *int
	CurrentUses int  `gorm:"not null;default:0"`
	IsActive    bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DiscountDAO struct {
	db *gorm.DB
}

func NewDiscountDAO(db *gorm.DB) *DiscountDAO {
	return &DiscountDAO{
		db: db,
	}
}

func (d *DiscountDAO) Insert(ctx context.Context, discount Discount) (Discount, error) {
	result := d.db.WithContext(ctx).Create(&discount)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_discounts_code"`) {
			return Discount{}, ErrDiscountCodeExists
		}

		return Discount{}, result.Error
	}

	return discount, nil
}

func (d *DiscountDAO) Update(ctx context.Context, discount Discount) (Discount, error) {
	result := d.db.WithContext(ctx).Save(&discount)
	if result.Error != nil {
		return Discount{}, result.Error
	}

	return discount, nil
}

func (d *DiscountDAO) FindByCode(ctx context.Context, code string) (Discount, error) {
	var discount Discount

	result := d.db.WithContext(ctx).First(&discount, "code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Discount{}, ErrDiscountNotFound
		}

		return Discount{}, result.Error
	}

	return discount, nil
}

func (d *DiscountDAO) List(ctx context.Context) ([]Discount, error) {
	var discounts []Discount

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&discounts)
	if result.Error != nil {
		return nil, result.Error
	}

	return discounts, nil
}

// IncrementUses bumps the usage counter atomically.
func (d *DiscountDAO) IncrementUses(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Model(&Discount{}).
		Where("id = ?", id).
		UpdateColumn("current_uses", gorm.Expr("current_uses + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}

	return nil
}

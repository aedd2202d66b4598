package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDrawNotFound = errors.New("draw not found")

type Draw struct {
	ID uint `gorm:"primaryKey"`

	ContestID uint   `gorm:"not null;index"`
	Code      string `gorm:"unique;not null"`

	Numbers  IntList   `gorm:"not null"`
	DrawDate time.Time `gorm:"not null;index"`

	CreatedBy uint      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type DrawDAO struct {
	db *gorm.DB
}

func NewDrawDAO(db *gorm.DB) *DrawDAO {
	return &DrawDAO{
		db: db,
	}
}

func (d *DrawDAO) Insert(ctx context.Context, draw Draw) (Draw, error) {
	result := d.db.WithContext(ctx).Create(&draw)
	if result.Error != nil {
		return Draw{}, result.Error
	}

	return draw, nil
}

func (d *DrawDAO) FindByID(ctx context.Context, id uint) (Draw, error) {
	var draw Draw

	result := d.db.WithContext(ctx).First(&draw, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Draw{}, ErrDrawNotFound
		}

		return Draw{}, result.Error
	}

	return draw, nil
}

// ListByContestID returns the contest's draws oldest first, IDs breaking
// same-date ties.
func (d *DrawDAO) ListByContestID(ctx context.Context, contestID uint) ([]Draw, error) {
	var draws []Draw

	result := d.db.WithContext(ctx).
		Where("contest_id = ?", contestID).
		Order("draw_date, id").
		Find(&draws)
	if result.Error != nil {
		return nil, result.Error
	}

	return draws, nil
}

func (d *DrawDAO) CountByContestID(ctx context.Context, contestID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Draw{}).Where("contest_id = ?", contestID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *DrawDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Draw{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDrawNotFound
	}

	return nil
}

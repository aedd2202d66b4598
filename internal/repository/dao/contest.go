package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrContestNotFound = errors.New("contest not found")

type Contest struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string

	MinNumber               int     `gorm:"not null"`
	MaxNumber               int     `gorm:"not null"`
	NumbersPerParticipation int     `gorm:"not null"`
	ParticipationValue      float64 `gorm:"not null"`

	TopPct      float64 `gorm:"not null"`
	SecondPct   float64 `gorm:"not null"`
	LowestPct   float64 `gorm:"not null"`
	AdminFeePct float64 `gorm:"not null"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	Status    string `gorm:"not null;default:draft"`
	CreatedBy uint   `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ContestDAO struct {
	db *gorm.DB
}

func NewContestDAO(db *gorm.DB) *ContestDAO {
	return &ContestDAO{
		db: db,
	}
}

func (d *ContestDAO) Insert(ctx context.Context, contest Contest) (Contest, error) {
	result := d.db.WithContext(ctx).Create(&contest)
	if result.Error != nil {
		return Contest{}, result.Error
	}

	return contest, nil
}

func (d *ContestDAO) Update(ctx context.Context, contest Contest) (Contest, error) {
	result := d.db.WithContext(ctx).Save(&contest)
	if result.Error != nil {
		return Contest{}, result.Error
	}

	return contest, nil
}

func (d *ContestDAO) FindByID(ctx context.Context, id uint) (Contest, error) {
	var contest Contest

	result := d.db.WithContext(ctx).First(&contest, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Contest{}, ErrContestNotFound
		}

		return Contest{}, result.Error
	}

	return contest, nil
}

func (d *ContestDAO) List(ctx context.Context) ([]Contest, error) {
	var contests []Contest

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}

	return contests, nil
}

func (d *ContestDAO) ListByStatus(ctx context.Context, status string) ([]Contest, error) {
	var contests []Contest

	result := d.db.WithContext(ctx).Where("status = ?", status).Order("created_at DESC").Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}

	return contests, nil
}

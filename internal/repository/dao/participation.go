package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrParticipationNotFound = errors.New("participation not found")

type Participation struct {
	ID uint `gorm:"primaryKey"`

	ContestID uint `gorm:"not null;index"`
	UserID    uint `gorm:"not null;index"`
	User      User `gorm:"foreignKey:UserID"`

	TicketCode string  `gorm:"unique;not null"`
	Numbers    IntList `gorm:"not null"`

	Status string `gorm:"not null;default:pending"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParticipationDAO struct {
	db *gorm.DB
}

func NewParticipationDAO(db *gorm.DB) *ParticipationDAO {
	return &ParticipationDAO{
		db: db,
	}
}

func (d *ParticipationDAO) Insert(ctx context.Context, participation Participation) (Participation, error) {
	result := d.db.WithContext(ctx).Create(&participation)
	if result.Error != nil {
		return Participation{}, result.Error
	}

	return participation, nil
}

func (d *ParticipationDAO) Update(ctx context.Context, participation Participation) (Participation, error) {
	result := d.db.WithContext(ctx).Save(&participation)
	if result.Error != nil {
		return Participation{}, result.Error
	}

	return participation, nil
}

func (d *ParticipationDAO) FindByID(ctx context.Context, id uint) (Participation, error) {
	var participation Participation

	result := d.db.WithContext(ctx).Preload("User").First(&participation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participation{}, ErrParticipationNotFound
		}

		return Participation{}, result.Error
	}

	return participation, nil
}

func (d *ParticipationDAO) ListByContestID(ctx context.Context, contestID uint) ([]Participation, error) {
	var participations []Participation

	result := d.db.WithContext(ctx).
		Preload("User").
		Where("contest_id = ?", contestID).
		Order("created_at, id").
		Find(&participations)
	if result.Error != nil {
		return nil, result.Error
	}

	return participations, nil
}

func (d *ParticipationDAO) ListByContestIDAndStatus(ctx context.Context, contestID uint, status string) ([]Participation, error) {
	var participations []Participation

	result := d.db.WithContext(ctx).
		Preload("User").
		Where("contest_id = ? AND status = ?", contestID, status).
		Order("created_at, id").
		Find(&participations)
	if result.Error != nil {
		return nil, result.Error
	}

	return participations, nil
}

func (d *ParticipationDAO) ListByUserID(ctx context.Context, userID uint) ([]Participation, error) {
	var participations []Participation

	result := d.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&participations)
	if result.Error != nil {
		return nil, result.Error
	}

	return participations, nil
}

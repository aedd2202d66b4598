package repository

import (
	"context"
	"fmt"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	Update(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByID(ctx context.Context, id uint) (dao.Payment, error)
	FindByExternalID(ctx context.Context, externalID string) (dao.Payment, error)
	ListByUserID(ctx context.Context, userID uint) ([]dao.Payment, error)
	SumPaidByContestID(ctx context.Context, contestID uint) (float64, error)
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(payment))
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(payment))
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (domain.Payment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PaymentRepository) FindByExternalID(ctx context.Context, externalID string) (domain.Payment, error) {
	found, err := r.dao.FindByExternalID(ctx, externalID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByExternalID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PaymentRepository) ListByUserID(ctx context.Context, userID uint) ([]domain.Payment, error) {
	found, err := r.dao.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByUserID -> %w", err)
	}

	payments := make([]domain.Payment, len(found))
	for i, p := range found {
		payments[i] = r.daoToDomain(p)
	}

	return payments, nil
}

func (r *PaymentRepository) SumPaidByContestID(ctx context.Context, contestID uint) (float64, error) {
	total, err := r.dao.SumPaidByContestID(ctx, contestID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumPaidByContestID -> %w", err)
	}

	return total, nil
}

func (r *PaymentRepository) domainToDao(p domain.Payment) dao.Payment {
	return dao.Payment{
		ID:              p.ID,
		ParticipationID: p.ParticipationID,
		ContestID:       p.ContestID,
		UserID:          p.UserID,
		ExternalID:      p.ExternalID,
		Amount:          p.Amount,
		DiscountCode:    p.DiscountCode,
		Status:          string(p.Status),
		DueDate:         p.DueDate,
		PaidAt:          p.PaidAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:              p.ID,
		ParticipationID: p.ParticipationID,
		ContestID:       p.ContestID,
		UserID:          p.UserID,
		ExternalID:      p.ExternalID,
		Amount:          p.Amount,
		DiscountCode:    p.DiscountCode,
		Status:          domain.PaymentStatus(p.Status),
		DueDate:         p.DueDate,
		PaidAt:          p.PaidAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

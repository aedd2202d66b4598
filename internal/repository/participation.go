package repository

import (
	"context"
	"fmt"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/repository/dao"
)

var ErrParticipationNotFound = dao.ErrParticipationNotFound

type ParticipationDAO interface {
	Insert(ctx context.Context, participation dao.Participation) (dao.Participation, error)
	Update(ctx context.Context, participation dao.Participation) (dao.Participation, error)
	FindByID(ctx context.Context, id uint) (dao.Participation, error)
	ListByContestID(ctx context.Context, contestID uint) ([]dao.Participation, error)
	ListByContestIDAndStatus(ctx context.Context, contestID uint, status string) ([]dao.Participation, error)
	ListByUserID(ctx context.Context, userID uint) ([]dao.Participation, error)
}

type ParticipationRepository struct {
	dao ParticipationDAO
}

func NewParticipationRepository(dao ParticipationDAO) *ParticipationRepository {
	return &ParticipationRepository{
		dao: dao,
	}
}

func (r *ParticipationRepository) Create(ctx context.Context, participation domain.Participation) (domain.Participation, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(participation))
	if err != nil {
		return domain.Participation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipationRepository) Update(ctx context.Context, participation domain.Participation) (domain.Participation, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(participation))
	if err != nil {
		return domain.Participation{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ParticipationRepository) FindByID(ctx context.Context, id uint) (domain.Participation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipationRepository) ListByContestID(ctx context.Context, contestID uint) ([]domain.Participation, error) {
	found, err := r.dao.ListByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByContestID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ParticipationRepository) ListActiveByContestID(ctx context.Context, contestID uint) ([]domain.Participation, error) {
	found, err := r.dao.ListByContestIDAndStatus(ctx, contestID, string(domain.ParticipationActive))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByContestIDAndStatus -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ParticipationRepository) ListByUserID(ctx context.Context, userID uint) ([]domain.Participation, error) {
	found, err := r.dao.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ParticipationRepository) daosToDomain(participations []dao.Participation) []domain.Participation {
	converted := make([]domain.Participation, len(participations))
	for i, p := range participations {
		converted[i] = r.daoToDomain(p)
	}

	return converted
}

func (r *ParticipationRepository) domainToDao(p domain.Participation) dao.Participation {
	return dao.Participation{
		ID:         p.ID,
		ContestID:  p.ContestID,
		UserID:     p.UserID,
		TicketCode: p.TicketCode,
		Numbers:    dao.IntList(p.Numbers),
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (r *ParticipationRepository) daoToDomain(p dao.Participation) domain.Participation {
	return domain.Participation{
		ID:         p.ID,
		ContestID:  p.ContestID,
		UserID:     p.UserID,
		UserName:   p.User.Name,
		TicketCode: p.TicketCode,
		Numbers:    []int(p.Numbers),
		Status:     domain.ParticipationStatus(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

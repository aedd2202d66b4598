package repository

import (
	"context"
	"fmt"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/repository/dao"
)

var ErrContestNotFound = dao.ErrContestNotFound

type ContestDAO interface {
	Insert(ctx context.Context, contest dao.Contest) (dao.Contest, error)
	Update(ctx context.Context, contest dao.Contest) (dao.Contest, error)
	FindByID(ctx context.Context, id uint) (dao.Contest, error)
	List(ctx context.Context) ([]dao.Contest, error)
	ListByStatus(ctx context.Context, status string) ([]dao.Contest, error)
}

type ContestRepository struct {
	dao ContestDAO
}

func NewContestRepository(dao ContestDAO) *ContestRepository {
	return &ContestRepository{
		dao: dao,
	}
}

func (r *ContestRepository) Create(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(contest))
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ContestRepository) Update(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(contest))
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ContestRepository) FindByID(ctx context.Context, id uint) (domain.Contest, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ContestRepository) List(ctx context.Context) ([]domain.Contest, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ContestRepository) ListByStatus(ctx context.Context, status domain.ContestStatus) ([]domain.Contest, error) {
	found, err := r.dao.ListByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByStatus -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ContestRepository) daosToDomain(contests []dao.Contest) []domain.Contest {
	converted := make([]domain.Contest, len(contests))
	for i, c := range contests {
		converted[i] = r.daoToDomain(c)
	}

	return converted
}

func (r *ContestRepository) domainToDao(c domain.Contest) dao.Contest {
	return dao.Contest{
		ID:                      c.ID,
		Name:                    c.Name,
		Description:             c.Description,
		MinNumber:               c.MinNumber,
		MaxNumber:               c.MaxNumber,
		NumbersPerParticipation: c.NumbersPerParticipation,
		ParticipationValue:      c.ParticipationValue,
		TopPct:                  c.TopPct,
		SecondPct:               c.SecondPct,
		LowestPct:               c.LowestPct,
		AdminFeePct:             c.AdminFeePct,
		StartDate:               c.StartDate,
		EndDate:                 c.EndDate,
		Status:                  string(c.Status),
		CreatedBy:               c.CreatedBy,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

func (r *ContestRepository) daoToDomain(c dao.Contest) domain.Contest {
	return domain.Contest{
		ID:                      c.ID,
		Name:                    c.Name,
		Description:             c.Description,
		MinNumber:               c.MinNumber,
		MaxNumber:               c.MaxNumber,
		NumbersPerParticipation: c.NumbersPerParticipation,
		ParticipationValue:      c.ParticipationValue,
		TopPct:                  c.TopPct,
		SecondPct:               c.SecondPct,
		LowestPct:               c.LowestPct,
		AdminFeePct:             c.AdminFeePct,
		StartDate:               c.StartDate,
		EndDate:                 c.EndDate,
		Status:                  domain.ContestStatus(c.Status),
		CreatedBy:               c.CreatedBy,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

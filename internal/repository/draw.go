package repository

import (
	"context"
	"fmt"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/repository/dao"
)

var ErrDrawNotFound = dao.ErrDrawNotFound

type DrawDAO interface {
	Insert(ctx context.Context, draw dao.Draw) (dao.Draw, error)
	FindByID(ctx context.Context, id uint) (dao.Draw, error)
	ListByContestID(ctx context.Context, contestID uint) ([]dao.Draw, error)
	CountByContestID(ctx context.Context, contestID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type DrawRepository struct {
	dao DrawDAO
}

func NewDrawRepository(dao DrawDAO) *DrawRepository {
	return &DrawRepository{
		dao: dao,
	}
}

func (r *DrawRepository) Create(ctx context.Context, draw domain.Draw) (domain.Draw, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(draw))
	if err != nil {
		return domain.Draw{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DrawRepository) FindByID(ctx context.Context, id uint) (domain.Draw, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Draw{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DrawRepository) ListByContestID(ctx context.Context, contestID uint) ([]domain.Draw, error) {
	found, err := r.dao.ListByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByContestID -> %w", err)
	}

	draws := make([]domain.Draw, len(found))
	for i, d := range found {
		draws[i] = r.daoToDomain(d)
	}

	return draws, nil
}

func (r *DrawRepository) CountByContestID(ctx context.Context, contestID uint) (int64, error) {
	count, err := r.dao.CountByContestID(ctx, contestID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByContestID -> %w", err)
	}

	return count, nil
}

func (r *DrawRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *DrawRepository) domainToDao(d domain.Draw) dao.Draw {
	return dao.Draw{
		ID:        d.ID,
		ContestID: d.ContestID,
		Code:      d.Code,
		Numbers:   dao.IntList(d.Numbers),
		DrawDate:  d.DrawDate,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
	}
}

func (r *DrawRepository) daoToDomain(d dao.Draw) domain.Draw {
	return domain.Draw{
		ID:        d.ID,
		ContestID: d.ContestID,
		Code:      d.Code,
		Numbers:   []int(d.Numbers),
		DrawDate:  d.DrawDate,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
	}
}

package repository

import (
	"context"
	"fmt"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/repository/dao"
)

var (
	ErrDiscountNotFound   = dao.ErrDiscountNotFound
	ErrDiscountCodeExists = dao.ErrDiscountCodeExists
)

type DiscountDAO interface {
	Insert(ctx context.Context, discount dao.Discount) (dao.Discount, error)
	Update(ctx context.Context, discount dao.Discount) (dao.Discount, error)
	FindByCode(ctx context.Context, code string) (dao.Discount, error)
	List(ctx context.Context) ([]dao.Discount, error)
	IncrementUses(ctx context.Context, id uint) error
}

type DiscountRepository struct {
	dao DiscountDAO
}

func NewDiscountRepository(dao DiscountDAO) *DiscountRepository {
	return &DiscountRepository{
		dao: dao,
	}
}

func (r *DiscountRepository) Create(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(discount))
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DiscountRepository) Update(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(discount))
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *DiscountRepository) FindByCode(ctx context.Context, code string) (domain.Discount, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DiscountRepository) List(ctx context.Context) ([]domain.Discount, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	discounts := make([]domain.Discount, len(found))
	for i, d := range found {
		discounts[i] = r.daoToDomain(d)
	}

	return discounts, nil
}

func (r *DiscountRepository) IncrementUses(ctx context.Context, id uint) error {
	if err := r.dao.IncrementUses(ctx, id); err != nil {
		return fmt.Errorf("r.dao.IncrementUses -> %w", err)
	}

	return nil
}

func (r *DiscountRepository) domainToDao(d domain.Discount) dao.Discount {
	return dao.Discount{
		ID:          d.ID,
		Code:        d.Code,
		Type:        string(d.Type),
		Name:        d.Name,
		Description: d.Description,
		Value:       d.Value,
		ContestID:   d.ContestID,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		MaxUses:     d.MaxUses,
		CurrentUses: d.CurrentUses,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *DiscountRepository) daoToDomain(d dao.Discount) domain.Discount {
	return domain.Discount{
		ID:          d.ID,
		Code:        d.Code,
		Type:        domain.DiscountType(d.Type),
		Name:        d.Name,
		Description: d.Description,
		Value:       d.Value,
		ContestID:   d.ContestID,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		MaxUses:     d.MaxUses,
		CurrentUses: d.CurrentUses,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

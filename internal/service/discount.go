package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/repository"
)

var (
	ErrDiscountCodeExists  = repository.ErrDiscountCodeExists
	ErrDiscountValueRange  = errors.New("invalid discount value")
	ErrDiscountWindow      = errors.New("discount end date must be after start date")
	ErrDiscountWrongType   = errors.New("unknown discount type")
	ErrDiscountZeroMaxUses = errors.New("max uses must be positive when set")
)

type DiscountRepository interface {
	Create(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	Update(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	FindByCode(ctx context.Context, code string) (domain.Discount, error)
	List(ctx context.Context) ([]domain.Discount, error)
}

type DiscountService struct {
	repo DiscountRepository
}

func NewDiscountService(repo DiscountRepository) *DiscountService {
	return &DiscountService{
		repo: repo,
	}
}

func (s *DiscountService) CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error) {
	if err := validateDiscount(discount); err != nil {
		return domain.Discount{}, err
	}

	discount.CurrentUses = 0
	discount.IsActive = true

	created, err := s.repo.Create(ctx, discount)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DiscountService) DeactivateDiscount(ctx context.Context, code string) (domain.Discount, error) {
	discount, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	discount.IsActive = false

	updated, err := s.repo.Update(ctx, discount)
	if err != nil {
		return domain.Discount{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DiscountService) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	discounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return discounts, nil
}

// PreviewDiscount resolves a code for a contest and reports the final price.
func (s *DiscountService) PreviewDiscount(ctx context.Context, code string, contestID uint, amount float64) (float64, error) {
	discount, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	if !discount.IsUsable(time.Now(), contestID) {
		return 0, ErrDiscountNotUsable
	}

	return discount.Apply(amount), nil
}

func validateDiscount(discount domain.Discount) error {
	switch discount.Type {
	case domain.DiscountPercentage:
		if discount.Value <= 0 || discount.Value > 100 {
			return ErrDiscountValueRange
		}
	case domain.DiscountFixed:
		if discount.Value <= 0 {
			return ErrDiscountValueRange
		}
	default:
		return ErrDiscountWrongType
	}

	if !discount.EndDate.After(discount.StartDate) {
		return ErrDiscountWindow
	}

	if discount.MaxUses != nil && *discount.MaxUses <= 0 {
		return ErrDiscountZeroMaxUses
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/pkg/ticketcode"
	"github.com/bolaohub/bolao-api/internal/repository"
)

var (
	ErrDrawNotFound         = repository.ErrDrawNotFound
	ErrDrawNumbersEmpty     = errors.New("draw must contain at least one number")
	ErrDrawNumbersRange     = errors.New("draw numbers must be within the contest range")
	ErrDrawNumbersDuplicate = errors.New("draw numbers must be unique")
	ErrDrawContestInactive  = errors.New("contest is not accepting draws")
)

type DrawRepository interface {
	Create(ctx context.Context, draw domain.Draw) (domain.Draw, error)
	FindByID(ctx context.Context, id uint) (domain.Draw, error)
	ListByContestID(ctx context.Context, contestID uint) ([]domain.Draw, error)
	Delete(ctx context.Context, id uint) error
}

type DrawContestRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Contest, error)
}

// DrawNotifier broadcasts a published draw to connected clients.
type DrawNotifier interface {
	NotifyDraw(draw domain.Draw)
}

type DrawService struct {
	repo        DrawRepository
	contestRepo DrawContestRepository
	notifier    DrawNotifier
}

func NewDrawService(repo DrawRepository, contestRepo DrawContestRepository, notifier DrawNotifier) *DrawService {
	return &DrawService{
		repo:        repo,
		contestRepo: contestRepo,
		notifier:    notifier,
	}
}

func (s *DrawService) PublishDraw(ctx context.Context, draw domain.Draw) (domain.Draw, error) {
	contest, err := s.contestRepo.FindByID(ctx, draw.ContestID)
	if err != nil {
		return domain.Draw{}, fmt.Errorf("s.contestRepo.FindByID -> %w", err)
	}

	if contest.Status != domain.ContestActive {
		return domain.Draw{}, ErrDrawContestInactive
	}

	if err := validateDrawNumbers(contest, draw.Numbers); err != nil {
		return domain.Draw{}, err
	}

	if draw.DrawDate.IsZero() {
		draw.DrawDate = time.Now()
	}
	draw.Code = ticketcode.GenerateDrawCode(draw.DrawDate)

	created, err := s.repo.Create(ctx, draw)
	if err != nil {
		return domain.Draw{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyDraw(created)
	}

	return created, nil
}

func (s *DrawService) GetDraw(ctx context.Context, id uint) (domain.Draw, error) {
	draw, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Draw{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return draw, nil
}

func (s *DrawService) ListDraws(ctx context.Context, contestID uint) ([]domain.Draw, error) {
	draws, err := s.repo.ListByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByContestID -> %w", err)
	}

	return draws, nil
}

func (s *DrawService) DeleteDraw(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func validateDrawNumbers(contest domain.Contest, numbers []int) error {
	if len(numbers) == 0 {
		return ErrDrawNumbersEmpty
	}

	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < contest.MinNumber || n > contest.MaxNumber {
			return ErrDrawNumbersRange
		}
		if seen[n] {
			return ErrDrawNumbersDuplicate
		}
		seen[n] = true
	}

	return nil
}

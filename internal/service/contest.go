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
	ErrContestNotFound      = repository.ErrContestNotFound
	ErrInvalidPrizeSplit    = errors.New("prize percentages must sum to 100")
	ErrInvalidNumberRange   = errors.New("invalid number range")
	ErrContestNotEditable   = errors.New("contest can no longer be edited")
	ErrInvalidStatusChange  = errors.New("invalid contest status change")
	ErrContestWindowInvalid = errors.New("contest end date must be after start date")
)

type ContestRepository interface {
	Create(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	Update(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	FindByID(ctx context.Context, id uint) (domain.Contest, error)
	List(ctx context.Context) ([]domain.Contest, error)
	ListByStatus(ctx context.Context, status domain.ContestStatus) ([]domain.Contest, error)
}

type ContestDrawRepository interface {
	CountByContestID(ctx context.Context, contestID uint) (int64, error)
}

type ContestService struct {
	repo     ContestRepository
	drawRepo ContestDrawRepository
}

func NewContestService(repo ContestRepository, drawRepo ContestDrawRepository) *ContestService {
	return &ContestService{
		repo:     repo,
		drawRepo: drawRepo,
	}
}

func (s *ContestService) CreateContest(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	if err := s.validateContest(contest); err != nil {
		return domain.Contest{}, err
	}

	contest.Status = domain.ContestDraft

	created, err := s.repo.Create(ctx, contest)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ContestService) UpdateContest(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	existing, err := s.repo.FindByID(ctx, contest.ID)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if existing.Status == domain.ContestFinished || existing.Status == domain.ContestCancelled {
		return domain.Contest{}, ErrContestNotEditable
	}

	if err := s.validateContest(contest); err != nil {
		return domain.Contest{}, err
	}

	contest.Status = existing.Status
	contest.CreatedBy = existing.CreatedBy
	contest.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, contest)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ChangeStatus moves a contest along draft -> active -> finished.
// Cancelling is allowed from draft or active.
func (s *ContestService) ChangeStatus(ctx context.Context, id uint, status domain.ContestStatus) (domain.Contest, error) {
	contest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !statusChangeAllowed(contest.Status, status) {
		return domain.Contest{}, ErrInvalidStatusChange
	}

	contest.Status = status

	updated, err := s.repo.Update(ctx, contest)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ContestService) GetContest(ctx context.Context, id uint) (domain.Contest, error) {
	contest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return contest, nil
}

// GetContestState resolves the display phase, which depends on whether any
// draw has been published yet.
func (s *ContestService) GetContestState(ctx context.Context, id uint) (domain.Contest, domain.ContestState, error) {
	contest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Contest{}, domain.ContestState{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	drawCount, err := s.drawRepo.CountByContestID(ctx, id)
	if err != nil {
		return domain.Contest{}, domain.ContestState{}, fmt.Errorf("s.drawRepo.CountByContestID -> %w", err)
	}

	return contest, contest.State(time.Now(), drawCount > 0), nil
}

func (s *ContestService) ListContests(ctx context.Context) ([]domain.Contest, error) {
	contests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return contests, nil
}

func (s *ContestService) ListContestsByStatus(ctx context.Context, status domain.ContestStatus) ([]domain.Contest, error) {
	contests, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByStatus -> %w", err)
	}

	return contests, nil
}

func (s *ContestService) validateContest(contest domain.Contest) error {
	if !contest.PercentagesValid() {
		return ErrInvalidPrizeSplit
	}

	if contest.MinNumber >= contest.MaxNumber || contest.NumbersPerParticipation <= 0 {
		return ErrInvalidNumberRange
	}

	rangeSize := contest.MaxNumber - contest.MinNumber + 1
	if contest.NumbersPerParticipation > rangeSize {
		return ErrInvalidNumberRange
	}

	if !contest.EndDate.After(contest.StartDate) {
		return ErrContestWindowInvalid
	}

	return nil
}

func statusChangeAllowed(from, to domain.ContestStatus) bool {
	switch from {
	case domain.ContestDraft:
		return to == domain.ContestActive || to == domain.ContestCancelled
	case domain.ContestActive:
		return to == domain.ContestFinished || to == domain.ContestCancelled
	default:
		return false
	}
}

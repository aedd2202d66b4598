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
	ErrParticipationNotFound  = repository.ErrParticipationNotFound
	ErrContestNotAccepting    = errors.New("contest is not accepting participations")
	ErrWrongNumbersCount      = errors.New("wrong count of numbers for this contest")
	ErrNumbersOutOfRange      = errors.New("numbers must be within the contest range")
	ErrNumbersDuplicate       = errors.New("numbers must be unique")
	ErrParticipationNotOwned  = errors.New("participation does not belong to the user")
	ErrParticipationNotActive = errors.New("participation is not active")
)

type ParticipationRepository interface {
	Create(ctx context.Context, participation domain.Participation) (domain.Participation, error)
	Update(ctx context.Context, participation domain.Participation) (domain.Participation, error)
	FindByID(ctx context.Context, id uint) (domain.Participation, error)
	ListByContestID(ctx context.Context, contestID uint) ([]domain.Participation, error)
	ListActiveByContestID(ctx context.Context, contestID uint) ([]domain.Participation, error)
	ListByUserID(ctx context.Context, userID uint) ([]domain.Participation, error)
}

type ParticipationContestRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Contest, error)
}

type ParticipationService struct {
	repo        ParticipationRepository
	contestRepo ParticipationContestRepository
}

func NewParticipationService(repo ParticipationRepository, contestRepo ParticipationContestRepository) *ParticipationService {
	return &ParticipationService{
		repo:        repo,
		contestRepo: contestRepo,
	}
}

// CreateParticipation registers a pending ticket. It only becomes active
// once its payment is confirmed.
func (s *ParticipationService) CreateParticipation(ctx context.Context, participation domain.Participation) (domain.Participation, error) {
	contest, err := s.contestRepo.FindByID(ctx, participation.ContestID)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("s.contestRepo.FindByID -> %w", err)
	}

	now := time.Now()
	if !contest.CanAcceptParticipations(now) {
		return domain.Participation{}, ErrContestNotAccepting
	}

	if err := validateTicketNumbers(contest, participation.Numbers); err != nil {
		return domain.Participation{}, err
	}

	participation.TicketCode = ticketcode.GenerateTicketCode(now)
	participation.Status = domain.ParticipationPending

	created, err := s.repo.Create(ctx, participation)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ParticipationService) GetParticipation(ctx context.Context, id uint) (domain.Participation, error) {
	participation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participation, nil
}

func (s *ParticipationService) ListByContest(ctx context.Context, contestID uint) ([]domain.Participation, error) {
	participations, err := s.repo.ListByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByContestID -> %w", err)
	}

	return participations, nil
}

func (s *ParticipationService) ListByUser(ctx context.Context, userID uint) ([]domain.Participation, error) {
	participations, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUserID -> %w", err)
	}

	return participations, nil
}

// CancelParticipation lets a user withdraw a ticket that has not been paid.
func (s *ParticipationService) CancelParticipation(ctx context.Context, id, userID uint) (domain.Participation, error) {
	participation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if participation.UserID != userID {
		return domain.Participation{}, ErrParticipationNotOwned
	}

	if participation.Status != domain.ParticipationPending {
		return domain.Participation{}, ErrParticipationNotActive
	}

	participation.Status = domain.ParticipationCancelled

	updated, err := s.repo.Update(ctx, participation)
	if err != nil {
		return domain.Participation{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func validateTicketNumbers(contest domain.Contest, numbers []int) error {
	if len(numbers) != contest.NumbersPerParticipation {
		return ErrWrongNumbersCount
	}

	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < contest.MinNumber || n > contest.MaxNumber {
			return ErrNumbersOutOfRange
		}
		if seen[n] {
			return ErrNumbersDuplicate
		}
		seen[n] = true
	}

	return nil
}

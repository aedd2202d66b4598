package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolaohub/bolao-api/internal/domain"
)

type fakeContestStore struct {
	byID    map[uint]domain.Contest
	created []domain.Contest
	updated []domain.Contest
}

func (f *fakeContestStore) Create(_ context.Context, c domain.Contest) (domain.Contest, error) {
	c.ID = uint(len(f.created) + 1)
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeContestStore) Update(_ context.Context, c domain.Contest) (domain.Contest, error) {
	f.updated = append(f.updated, c)
	return c, nil
}

func (f *fakeContestStore) FindByID(_ context.Context, id uint) (domain.Contest, error) {
	c, ok := f.byID[id]
	if !ok {
		return domain.Contest{}, ErrContestNotFound
	}
	return c, nil
}

func (f *fakeContestStore) List(_ context.Context) ([]domain.Contest, error) {
	return nil, nil
}

func (f *fakeContestStore) ListByStatus(_ context.Context, _ domain.ContestStatus) ([]domain.Contest, error) {
	return nil, nil
}

type fakeDrawCounter struct {
	count int64
}

func (f *fakeDrawCounter) CountByContestID(_ context.Context, _ uint) (int64, error) {
	return f.count, nil
}

func validContest() domain.Contest {
	return domain.Contest{
		Name:                    "Mega da Virada",
		MinNumber:               1,
		MaxNumber:               60,
		NumbersPerParticipation: 10,
		ParticipationValue:      50,
		TopPct:                  65,
		SecondPct:               10,
		LowestPct:               7,
		AdminFeePct:             18,
		StartDate:               time.Now().Add(-24 * time.Hour),
		EndDate:                 time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestContestService_CreateContest(t *testing.T) {
	store := &fakeContestStore{}
	svc := NewContestService(store, &fakeDrawCounter{})

	contest := validContest()
	contest.Status = domain.ContestActive // must be ignored

	created, err := svc.CreateContest(context.Background(), contest)
	require.NoError(t, err)
	assert.Equal(t, domain.ContestDraft, created.Status)
	assert.NotZero(t, created.ID)
}

func TestContestService_CreateContest_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.Contest)
		wantErr error
	}{
		{
			name:    "percentages do not sum to 100",
			mutate:  func(c *domain.Contest) { c.TopPct = 50 },
			wantErr: ErrInvalidPrizeSplit,
		},
		{
			name:    "min above max",
			mutate:  func(c *domain.Contest) { c.MinNumber = 61 },
			wantErr: ErrInvalidNumberRange,
		},
		{
			name:    "zero numbers per ticket",
			mutate:  func(c *domain.Contest) { c.NumbersPerParticipation = 0 },
			wantErr: ErrInvalidNumberRange,
		},
		{
			name:    "more numbers than the range holds",
			mutate:  func(c *domain.Contest) { c.MaxNumber = 5 },
			wantErr: ErrInvalidNumberRange,
		},
		{
			name:    "end before start",
			mutate:  func(c *domain.Contest) { c.EndDate = c.StartDate.Add(-time.Hour) },
			wantErr: ErrContestWindowInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContestService(&fakeContestStore{}, &fakeDrawCounter{})

			contest := validContest()
			tt.mutate(&contest)

			_, err := svc.CreateContest(context.Background(), contest)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContestService_UpdateContest(t *testing.T) {
	t.Run("preserves status and ownership", func(t *testing.T) {
		existing := validContest()
		existing.ID = 1
		existing.Status = domain.ContestActive
		existing.CreatedBy = 42

		store := &fakeContestStore{byID: map[uint]domain.Contest{1: existing}}
		svc := NewContestService(store, &fakeDrawCounter{})

		edit := validContest()
		edit.ID = 1
		edit.Name = "Mega da Virada 2026"
		edit.Status = domain.ContestCancelled // must be ignored
		edit.CreatedBy = 99                   // must be ignored

		updated, err := svc.UpdateContest(context.Background(), edit)
		require.NoError(t, err)
		assert.Equal(t, "Mega da Virada 2026", updated.Name)
		assert.Equal(t, domain.ContestActive, updated.Status)
		assert.EqualValues(t, 42, updated.CreatedBy)
	})

	t.Run("finished contest is frozen", func(t *testing.T) {
		existing := validContest()
		existing.ID = 1
		existing.Status = domain.ContestFinished

		store := &fakeContestStore{byID: map[uint]domain.Contest{1: existing}}
		svc := NewContestService(store, &fakeDrawCounter{})

		edit := validContest()
		edit.ID = 1

		_, err := svc.UpdateContest(context.Background(), edit)
		assert.ErrorIs(t, err, ErrContestNotEditable)
	})
}

func TestContestService_ChangeStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ContestStatus
		to      domain.ContestStatus
		wantErr error
	}{
		{"draft to active", domain.ContestDraft, domain.ContestActive, nil},
		{"draft to cancelled", domain.ContestDraft, domain.ContestCancelled, nil},
		{"active to finished", domain.ContestActive, domain.ContestFinished, nil},
		{"active to cancelled", domain.ContestActive, domain.ContestCancelled, nil},
		{"draft cannot finish", domain.ContestDraft, domain.ContestFinished, ErrInvalidStatusChange},
		{"finished is terminal", domain.ContestFinished, domain.ContestActive, ErrInvalidStatusChange},
		{"cancelled is terminal", domain.ContestCancelled, domain.ContestActive, ErrInvalidStatusChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := validContest()
			existing.ID = 1
			existing.Status = tt.from

			store := &fakeContestStore{byID: map[uint]domain.Contest{1: existing}}
			svc := NewContestService(store, &fakeDrawCounter{})

			updated, err := svc.ChangeStatus(context.Background(), 1, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
		})
	}
}

package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolaohub/bolao-api/internal/domain"
)

func date(day, hour int) time.Time {
	return time.Date(2025, time.March, day, hour, 0, 0, 0, time.UTC)
}

func TestNormalizeDraws(t *testing.T) {
	draws := []domain.Draw{
		{ID: 3, DrawDate: date(20, 10)},
		{ID: 1, DrawDate: date(10, 10)},
		{ID: 2, DrawDate: date(15, 10)},
	}

	sorted := normalizeDraws(draws)

	require.Len(t, sorted, 3)
	assert.Equal(t, uint(1), sorted[0].ID)
	assert.Equal(t, uint(2), sorted[1].ID)
	assert.Equal(t, uint(3), sorted[2].ID)

	// Input slice is left untouched.
	assert.Equal(t, uint(3), draws[0].ID)
}

func TestNormalizeDraws_EqualDatesFallBackToID(t *testing.T) {
	draws := []domain.Draw{
		{ID: 9, DrawDate: date(10, 10)},
		{ID: 4, DrawDate: date(10, 10)},
	}

	sorted := normalizeDraws(draws)

	assert.Equal(t, uint(4), sorted[0].ID)
	assert.Equal(t, uint(9), sorted[1].ID)
}

func TestTruncateAt(t *testing.T) {
	sorted := normalizeDraws([]domain.Draw{
		{ID: 1, DrawDate: date(10, 10)},
		{ID: 2, DrawDate: date(15, 10)},
		{ID: 3, DrawDate: date(20, 10)},
	})

	tests := []struct {
		name       string
		selectedID uint
		wantIDs    []uint
	}{
		{"zero keeps everything", 0, []uint{1, 2, 3}},
		{"middle draw truncates later ones", 2, []uint{1, 2}},
		{"first draw", 1, []uint{1}},
		{"last draw keeps everything", 3, []uint{1, 2, 3}},
		{"unknown id keeps everything", 99, []uint{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateAt(sorted, tt.selectedID)

			ids := make([]uint, 0, len(got))
			for _, d := range got {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCutoffDate(t *testing.T) {
	working := []domain.Draw{
		{ID: 1, DrawDate: date(10, 10)},
		{ID: 2, DrawDate: date(15, 10)},
	}

	cutoff, ok := cutoffDate(working)
	require.True(t, ok)
	assert.True(t, cutoff.Equal(date(15, 10)))

	_, ok = cutoffDate(nil)
	assert.False(t, ok)
}

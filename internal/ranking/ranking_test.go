package ranking

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolaohub/bolao-api/internal/domain"
)

func testContest(n int) domain.Contest {
	return domain.Contest{
		ID:                      1,
		MinNumber:               1,
		MaxNumber:               60,
		NumbersPerParticipation: n,
		TopPct:                  65,
		SecondPct:               10,
		LowestPct:               7,
		AdminFeePct:             18,
		Status:                  domain.ContestActive,
	}
}

func seq(from, to int) []int {
	numbers := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		numbers = append(numbers, n)
	}

	return numbers
}

func TestCalculate_PerfectTicketTakesTop(t *testing.T) {
	// One draw exposing 1..10, one earlier ticket choosing exactly 1..10.
	in := Input{
		Contest: testContest(10),
		Draws: []domain.Draw{
			{ID: 1, DrawDate: date(10, 20), Numbers: seq(1, 10)},
		},
		Participations: []domain.Participation{
			{ID: 1, UserID: 7, CreatedAt: date(5, 0), Numbers: seq(1, 10)},
		},
		TotalRevenue: 1000,
	}

	result, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	entry := result.Entries[0]
	assert.Equal(t, 10, entry.Score)
	assert.Equal(t, seq(1, 10), entry.HitNumbers)
	assert.Equal(t, CategoryTop, entry.Category)
	assert.True(t, entry.IsWinner)
	assert.InDelta(t, 650, entry.PrizeValue, 1e-9) // sole TOP winner takes the whole pool
	assert.Equal(t, 1, entry.Position)

	assert.Equal(t, 1, result.Summary.TopWinnersCount)
	assert.Equal(t, 10, result.Summary.MaxScore)
	assert.True(t, result.Summary.HasAnyWinner)
}

func TestCalculate_TwoNineHittersShareSecond(t *testing.T) {
	in := Input{
		Contest: testContest(10),
		Draws: []domain.Draw{
			{ID: 1, DrawDate: date(10, 20), Numbers: seq(1, 10)},
		},
		Participations: []domain.Participation{
			// Nine of ten each, different missing numbers; nobody has all ten.
			{ID: 1, CreatedAt: date(5, 0), Numbers: append(seq(1, 9), 50)},
			{ID: 2, CreatedAt: date(6, 0), Numbers: append(seq(2, 10), 51)},
		},
		TotalRevenue: 1000,
	}

	result, err := Calculate(in)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)

	for _, entry := range result.Entries {
		assert.Equal(t, 9, entry.Score)
		assert.Equal(t, CategorySecond, entry.Category)
		assert.InDelta(t, 50, entry.PrizeValue, 1e-9) // 1000*10%/2
	}

	assert.Zero(t, result.Summary.TopWinnersCount)
	assert.Equal(t, 2, result.Summary.SecondWinnersCount)
}

func TestCalculate_TicketAfterDrawGetsNoCredit(t *testing.T) {
	// Draw at T1, second draw later; ticket created between them only
	// scores the later draw.
	in := Input{
		Contest: testContest(3),
		Draws: []domain.Draw{
			{ID: 1, DrawDate: date(10, 10), Numbers: []int{1, 2, 3}},
			{ID: 2, DrawDate: date(20, 10), Numbers: []int{3, 4, 5}},
		},
		Participations: []domain.Participation{
			{ID: 1, CreatedAt: date(15, 0), Numbers: []int{1, 2, 3}},
		},
		TotalRevenue: 100,
	}

	result, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, []int{3}, result.Entries[0].HitNumbers)
	assert.Equal(t, 1, result.Entries[0].Score)
}

func TestCalculate_TicketAfterCutoffIsExcluded(t *testing.T) {
	in := Input{
		Contest: testContest(3),
		Draws: []domain.Draw{
			{ID: 1, DrawDate: date(10, 10), Numbers: []int{1, 2, 3}},
		},
		Participations: []domain.Participation{
			{ID: 1, CreatedAt: date(5, 0), Numbers: []int{1, 2, 3}},
			{ID: 2, CreatedAt: date(11, 0), Numbers: []int{1, 2, 3}}, // after the last draw
		},
		TotalRevenue: 100,
	}

	result, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, uint(1), result.Entries[0].ParticipationID)
	assert.Equal(t, 1, result.Summary.InvalidParticipationsCount)
}

func TestCalculate_AsOfDrawView(t *testing.T) {
	in := Input{
		Contest: testContest(4),
		Draws: []domain.Draw{
			{ID: 1, DrawDate: date(10, 10), Numbers: []int{1, 2}},
			{ID: 2, DrawDate: date(15, 10), Numbers: []int{3}},
			{ID: 3, DrawDate: date(20, 10), Numbers: []int{4}},
		},
		Participations: []domain.Participation{
			{ID: 1, CreatedAt: date(5, 0), Numbers: []int{1, 2, 3, 4}},
			// Created after draw 2: invalid in the "as of draw 2" view.
			{ID: 2, CreatedAt: date(16, 0), Numbers: []int{1, 2, 3, 4}},
		},
		SelectedDrawID: 2,
		TotalRevenue:   100,
	}

	result, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, 3, result.Entries[0].Score) // draw 3 not visible yet
	assert.Equal(t, []int{1, 2, 3}, result.Entries[0].HitNumbers)
	assert.Equal(t, 1, result.Summary.InvalidParticipationsCount)
}

func TestCalculate_InvalidPercentagesAbort(t *testing.T) {
	contest := testContest(5)
	contest.AdminFeePct = 5 // now sums to 87

	_, err := Calculate(Input{Contest: contest, TotalRevenue: 100})

	require.ErrorIs(t, err, ErrInvalidPercentages)
}

func TestCalculate_EmptyInputsAreNotErrors(t *testing.T) {
	t.Run("no participations", func(t *testing.T) {
		result, err := Calculate(Input{Contest: testContest(5), TotalRevenue: 100})

		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.False(t, result.Summary.HasAnyWinner)
		assert.Nil(t, result.Summary.LowestWinningScore)
	})

	t.Run("no draws means everyone scores zero", func(t *testing.T) {
		result, err := Calculate(Input{
			Contest: testContest(3),
			Participations: []domain.Participation{
				{ID: 1, CreatedAt: date(5, 0), Numbers: []int{1, 2, 3}},
				{ID: 2, CreatedAt: date(6, 0), Numbers: []int{4, 5, 6}},
			},
			TotalRevenue: 100,
		})

		require.NoError(t, err)
		require.Len(t, result.Entries, 2)
		for _, entry := range result.Entries {
			assert.Zero(t, entry.Score)
			assert.Equal(t, CategoryNone, entry.Category)
			assert.Zero(t, entry.PrizeValue)
		}
		assert.False(t, result.Summary.HasAnyWinner)
		assert.Zero(t, result.Summary.InvalidParticipationsCount)
	})
}

func TestCalculate_MalformedTicketsAreSkipped(t *testing.T) {
	in := Input{
		Contest: testContest(3),
		Draws: []domain.Draw{
			{ID: 1, DrawDate: date(10, 10), Numbers: []int{1, 2, 3}},
		},
		Participations: []domain.Participation{
			{ID: 1, CreatedAt: date(5, 0), Numbers: []int{1, 2, 3}},
			{ID: 2, CreatedAt: date(5, 0), Numbers: []int{1, 2}}, // wrong size
		},
		TotalRevenue: 100,
	}

	result, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, uint(1), result.Entries[0].ParticipationID)
	assert.Equal(t, 1, result.Summary.MalformedParticipationsCount)
}

func TestCalculate_DisplayOrderAndPositions(t *testing.T) {
	in := Input{
		Contest: testContest(3),
		Draws: []domain.Draw{
			{ID: 1, DrawDate: date(10, 10), Numbers: []int{1, 2, 3, 4, 5, 6}},
		},
		Participations: []domain.Participation{
			{ID: 1, CreatedAt: date(6, 0), Numbers: []int{1, 2, 50}},  // score 2, later
			{ID: 2, CreatedAt: date(5, 0), Numbers: []int{3, 4, 51}},  // score 2, earlier
			{ID: 3, CreatedAt: date(7, 0), Numbers: []int{1, 2, 3}},   // score 3
			{ID: 4, CreatedAt: date(8, 0), Numbers: []int{50, 51, 52}}, // score 0
		},
		TotalRevenue: 100,
	}

	result, err := Calculate(in)
	require.NoError(t, err)
	require.Len(t, result.Entries, 4)

	// Score desc, then created_at asc.
	assert.Equal(t, uint(3), result.Entries[0].ParticipationID)
	assert.Equal(t, uint(2), result.Entries[1].ParticipationID)
	assert.Equal(t, uint(1), result.Entries[2].ParticipationID)
	assert.Equal(t, uint(4), result.Entries[3].ParticipationID)

	for i, entry := range result.Entries {
		assert.Equal(t, i+1, entry.Position)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	contest := testContest(5)
	draws := []domain.Draw{
		{ID: 1, DrawDate: date(10, 10), Numbers: []int{1, 2, 3}},
		{ID: 2, DrawDate: date(12, 10), Numbers: []int{4, 5, 6}},
		{ID: 3, DrawDate: date(14, 10), Numbers: []int{7, 8, 9}},
	}
	parts := []domain.Participation{
		{ID: 1, CreatedAt: date(5, 0), Numbers: []int{1, 2, 3, 4, 5}},
		{ID: 2, CreatedAt: date(5, 1), Numbers: []int{1, 4, 7, 10, 11}},
		{ID: 3, CreatedAt: date(11, 0), Numbers: []int{1, 2, 3, 4, 5}},
		{ID: 4, CreatedAt: date(6, 0), Numbers: []int{20, 21, 22, 23, 24}},
	}

	baseline, err := Calculate(Input{
		Contest: contest, Draws: draws, Participations: parts, TotalRevenue: 500,
	})
	require.NoError(t, err)

	wantJSON, err := json.Marshal(baseline)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffledDraws := make([]domain.Draw, len(draws))
		copy(shuffledDraws, draws)
		rng.Shuffle(len(shuffledDraws), func(a, b int) {
			shuffledDraws[a], shuffledDraws[b] = shuffledDraws[b], shuffledDraws[a]
		})

		shuffledParts := make([]domain.Participation, len(parts))
		copy(shuffledParts, parts)
		rng.Shuffle(len(shuffledParts), func(a, b int) {
			shuffledParts[a], shuffledParts[b] = shuffledParts[b], shuffledParts[a]
		})

		result, err := Calculate(Input{
			Contest: contest, Draws: shuffledDraws, Participations: shuffledParts, TotalRevenue: 500,
		})
		require.NoError(t, err)

		gotJSON, err := json.Marshal(result)
		require.NoError(t, err)
		assert.Equal(t, string(wantJSON), string(gotJSON))
	}
}

func TestCalculate_ScoreMatchesHitNumbers(t *testing.T) {
	in := Input{
		Contest: testContest(5),
		Draws: []domain.Draw{
			{ID: 1, DrawDate: date(10, 10), Numbers: seq(1, 20)},
			{ID: 2, DrawDate: date(12, 10), Numbers: seq(15, 30)},
		},
		Participations: []domain.Participation{
			{ID: 1, CreatedAt: date(5, 0), Numbers: []int{1, 15, 25, 40, 41}},
		},
		TotalRevenue: 100,
	}

	result, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	entry := result.Entries[0]
	assert.Len(t, entry.HitNumbers, entry.Score)
	assert.Equal(t, []int{1, 15, 25}, entry.HitNumbers)
}

var benchmarkResult Result

func BenchmarkCalculate(b *testing.B) {
	contest := testContest(10)
	rng := rand.New(rand.NewSource(1))

	draws := make([]domain.Draw, 12)
	for i := range draws {
		numbers := rng.Perm(60)[:6]
		for j := range numbers {
			numbers[j]++
		}
		draws[i] = domain.Draw{
			ID:       uint(i + 1),
			DrawDate: time.Date(2025, time.March, i+1, 20, 0, 0, 0, time.UTC),
			Numbers:  numbers,
		}
	}

	parts := make([]domain.Participation, 5000)
	for i := range parts {
		numbers := rng.Perm(60)[:10]
		for j := range numbers {
			numbers[j]++
		}
		parts[i] = domain.Participation{
			ID:        uint(i + 1),
			CreatedAt: time.Date(2025, time.February, 20, i%24, 0, 0, 0, time.UTC),
			Numbers:   numbers,
		}
	}

	in := Input{Contest: contest, Draws: draws, Participations: parts, TotalRevenue: 50000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := Calculate(in)
		if err != nil {
			b.Fatal(err)
		}
		benchmarkResult = result
	}
}

package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bolaohub/bolao-api/internal/domain"
)

func TestNumberSet(t *testing.T) {
	s := newNumberSet(1, 100)

	s.add(1)
	s.add(100)
	s.add(64)
	s.add(65)
	s.add(64) // duplicate

	assert.True(t, s.contains(1))
	assert.True(t, s.contains(100))
	assert.True(t, s.contains(64))
	assert.False(t, s.contains(2))
	assert.False(t, s.contains(0))
	assert.False(t, s.contains(101))

	assert.Equal(t, []int{1, 64, 65, 100}, s.values())
}

func TestNumberSet_IgnoresOutOfRange(t *testing.T) {
	s := newNumberSet(10, 20)

	s.add(9)
	s.add(21)
	s.add(-5)

	assert.Empty(t, s.values())
}

func TestAccumulatedHits(t *testing.T) {
	ticket := []int{5, 10, 15, 20}

	tests := []struct {
		name  string
		draws []domain.Draw
		want  []int
	}{
		{
			name:  "no draws",
			draws: nil,
			want:  []int{},
		},
		{
			name: "single draw intersection",
			draws: []domain.Draw{
				{Numbers: []int{10, 11, 12, 20}},
			},
			want: []int{10, 20},
		},
		{
			name: "hits accumulate across draws without double counting",
			draws: []domain.Draw{
				{Numbers: []int{10, 20}},
				{Numbers: []int{10, 15}}, // 10 repeats, only 15 is new
			},
			want: []int{10, 15, 20},
		},
		{
			name: "a number hit earlier stays credited",
			draws: []domain.Draw{
				{Numbers: []int{5}},
				{Numbers: []int{99, 98}}, // nothing for this ticket
			},
			want: []int{5},
		},
		{
			name: "draw numbers outside the contest range are ignored",
			draws: []domain.Draw{
				{Numbers: []int{-1, 0, 5, 1000}},
			},
			want: []int{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accumulatedHits(ticket, tt.draws, 1, 60)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccumulatedHits_OrderIndependent(t *testing.T) {
	ticket := []int{1, 2, 3, 4, 5}
	a := domain.Draw{Numbers: []int{1, 2}}
	b := domain.Draw{Numbers: []int{2, 3}}
	c := domain.Draw{Numbers: []int{5}}

	want := []int{1, 2, 3, 5}

	assert.Equal(t, want, accumulatedHits(ticket, []domain.Draw{a, b, c}, 1, 10))
	assert.Equal(t, want, accumulatedHits(ticket, []domain.Draw{c, b, a}, 1, 10))
	assert.Equal(t, want, accumulatedHits(ticket, []domain.Draw{b, c, a}, 1, 10))
}

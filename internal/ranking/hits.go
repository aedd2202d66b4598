package ranking

import (
	"github.com/bolaohub/bolao-api/internal/domain"
)

// numberSet is a bitset over the contest's [min,max] range. Hit accumulation
// is the engine's hot path, so membership tests have to be O(1).
type numberSet struct {
	min  int
	max  int
	bits []uint64
}

func newNumberSet(min, max int) *numberSet {
	if max < min {
		max = min
	}

	return &numberSet{
		min:  min,
		max:  max,
		bits: make([]uint64, (max-min)/64+1),
	}
}

func (s *numberSet) add(n int) {
	if n < s.min || n > s.max {
		return
	}
	i := n - s.min

	s.bits[i/64] |= 1 << (i % 64)
}

func (s *numberSet) contains(n int) bool {
	if n < s.min || n > s.max {
		return false
	}
	i := n - s.min

	return s.bits[i/64]&(1<<(i%64)) != 0
}

// values returns the set members in ascending order.
func (s *numberSet) values() []int {
	values := make([]int, 0)
	for i := 0; i <= s.max-s.min; i++ {
		if s.bits[i/64]&(1<<(i%64)) != 0 {
			values = append(values, s.min+i)
		}
	}

	return values
}

// accumulatedHits computes the unique ticket numbers hit across every
// eligible draw, ascending. A number hit once stays credited even if later
// draws do not repeat it, and is never counted twice. The result does not
// depend on the order of the draws.
func accumulatedHits(ticketNumbers []int, eligible []domain.Draw, min, max int) []int {
	ticket := newNumberSet(min, max)
	for _, n := range ticketNumbers {
		ticket.add(n)
	}

	hits := newNumberSet(min, max)
	for _, d := range eligible {
		for _, n := range d.Numbers {
			if ticket.contains(n) {
				hits.add(n)
			}
		}
	}

	return hits.values()
}

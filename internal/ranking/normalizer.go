package ranking

import (
	"sort"
	"time"

	"github.com/bolaohub/bolao-api/internal/domain"
)

// normalizeDraws returns a copy of draws sorted by draw date ascending.
// Equal dates fall back to id order so the working set is deterministic
// regardless of input order.
func normalizeDraws(draws []domain.Draw) []domain.Draw {
	sorted := make([]domain.Draw, len(draws))
	copy(sorted, draws)

	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].DrawDate.Equal(sorted[j].DrawDate) {
			return sorted[i].DrawDate.Before(sorted[j].DrawDate)
		}

		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}

// truncateAt cuts the sorted draw list down to every draw up to and
// including selectedID, reconstructing the ranking as it looked right after
// that draw. selectedID zero, or an id that is not in the list, keeps the
// full set.
func truncateAt(sorted []domain.Draw, selectedID uint) []domain.Draw {
	if selectedID == 0 {
		return sorted
	}

	for i, d := range sorted {
		if d.ID == selectedID {
			return sorted[:i+1]
		}
	}

	return sorted
}

// cutoffDate returns the anti-fraud cutoff for the working draw set: the
// date of its last draw. Tickets created after this instant cannot claim
// credit for the ranking snapshot. No draws means no cutoff.
func cutoffDate(working []domain.Draw) (time.Time, bool) {
	if len(working) == 0 {
		return time.Time{}, false
	}

	return working[len(working)-1].DrawDate, true
}

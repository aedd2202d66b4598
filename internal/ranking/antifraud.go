package ranking

import (
	"time"

	"github.com/bolaohub/bolao-api/internal/domain"
)

// eligibleDraws filters the working draw set down to draws that happened at
// or after the ticket was created. A user must not be able to watch a draw
// and then buy a ticket that claims its numbers.
func eligibleDraws(working []domain.Draw, createdAt time.Time) []domain.Draw {
	eligible := make([]domain.Draw, 0, len(working))
	for _, d := range working {
		if !d.DrawDate.Before(createdAt) {
			eligible = append(eligible, d)
		}
	}

	return eligible
}

// splitAfterCutoff separates tickets created strictly after the ranking
// cutoff. Those never appear in the ranking; they are only counted. Without
// a cutoff (no draws at all) every ticket is kept.
func splitAfterCutoff(parts []domain.Participation, cutoff time.Time, hasCutoff bool) ([]domain.Participation, int) {
	if !hasCutoff {
		return parts, 0
	}

	valid := make([]domain.Participation, 0, len(parts))
	invalid := 0
	for _, p := range parts {
		if p.CreatedAt.After(cutoff) {
			invalid++
			continue
		}
		valid = append(valid, p)
	}

	return valid, invalid
}

// splitMalformed drops tickets whose number count does not match the
// contest's N. Creation-time validation should make this impossible, so a
// non-zero count is a data-integrity signal for the caller.
func splitMalformed(parts []domain.Participation, numbersPer int) ([]domain.Participation, int) {
	valid := make([]domain.Participation, 0, len(parts))
	malformed := 0
	for _, p := range parts {
		if len(p.Numbers) != numbersPer {
			malformed++
			continue
		}
		valid = append(valid, p)
	}

	return valid, malformed
}

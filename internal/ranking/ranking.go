// Package ranking computes a contest's running ranking and prize split from
// its draws and active participations. It is the single source of truth for
// every ranking column shown by the API: the ranking page, the CSV export
// and the payout bookkeeping all read the same Result.
//
// Scoring is cumulative: a ticket's score is the count of UNIQUE ticket
// numbers hit across every draw it is eligible for. Numbers never repeat
// between draws and a score never decreases. The whole computation is a pure
// function of its input: it never consults the wall clock, so the same
// contest, draws, participations and "as of" selection always produce the
// same bytes.
package ranking

import (
	"time"

	"github.com/bolaohub/bolao-api/internal/domain"
)

// Category is a ticket's prize tier. Exactly one per ticket.
type Category string

const (
	CategoryTop    Category = "TOP"
	CategorySecond Category = "SECOND"
	CategoryLowest Category = "LOWEST"
	CategoryNone   Category = "NONE"
)

// Input carries everything Calculate needs. SelectedDrawID may be zero to
// rank against every published draw, or a draw id to reconstruct the ranking
// as it looked right after that draw. TotalRevenue is the confirmed amount
// from the payment ledger; supplying it is the caller's job.
type Input struct {
	Contest        domain.Contest
	Draws          []domain.Draw
	Participations []domain.Participation
	SelectedDrawID uint
	TotalRevenue   float64
}

// Entry is one ranked ticket.
type Entry struct {
	ParticipationID uint      `json:"participation_id"`
	UserID          uint      `json:"user_id"`
	UserName        string    `json:"user_name"`
	TicketCode      string    `json:"ticket_code"`
	Numbers         []int     `json:"numbers"`
	CreatedAt       time.Time `json:"created_at"`

	HitNumbers []int    `json:"hit_numbers"`
	Score      int      `json:"score"`
	Category   Category `json:"category"`
	IsWinner   bool     `json:"is_winner"`
	PrizeValue float64  `json:"prize_value"`
	Position   int      `json:"position"`
}

type Summary struct {
	TopWinnersCount    int  `json:"top_winners_count"`
	SecondWinnersCount int  `json:"second_winners_count"`
	LowestWinnersCount int  `json:"lowest_winners_count"`
	MaxScore           int  `json:"max_score"`
	LowestWinningScore *int `json:"lowest_winning_score"`
	HasAnyWinner       bool `json:"has_any_winner"`

	// Tickets created after the ranking cutoff; excluded from scoring.
	InvalidParticipationsCount int `json:"invalid_participations_count"`
	// Tickets whose number count does not match the contest's N. They should
	// never reach the engine; when they do they are skipped, not scored.
	MalformedParticipationsCount int `json:"malformed_participations_count"`
}

type Result struct {
	Entries []Entry `json:"entries"`
	Summary Summary `json:"summary"`
}

// Calculate runs the full pipeline: normalize draws, apply the anti-fraud
// cutoff, accumulate hits, assign categories, split the prize pools and
// assemble the sorted entry list.
func Calculate(in Input) (Result, error) {
	if err := validatePercentages(in.Contest); err != nil {
		return Result{}, err
	}

	draws := normalizeDraws(in.Draws)
	draws = truncateAt(draws, in.SelectedDrawID)
	cutoff, hasCutoff := cutoffDate(draws)

	valid, malformed := splitMalformed(in.Participations, in.Contest.NumbersPerParticipation)
	valid, invalid := splitAfterCutoff(valid, cutoff, hasCutoff)

	entries := make([]Entry, 0, len(valid))
	for _, p := range valid {
		eligible := eligibleDraws(draws, p.CreatedAt)
		hits := accumulatedHits(p.Numbers, eligible, in.Contest.MinNumber, in.Contest.MaxNumber)

		entries = append(entries, Entry{
			ParticipationID: p.ID,
			UserID:          p.UserID,
			UserName:        p.UserName,
			TicketCode:      p.TicketCode,
			Numbers:         p.Numbers,
			CreatedAt:       p.CreatedAt,
			HitNumbers:      hits,
			Score:           len(hits),
			Category:        CategoryNone,
		})
	}

	tiers := categorize(entries, in.Contest.NumbersPerParticipation)

	pools := allocate(in.Contest, in.TotalRevenue, tiers)

	return assemble(entries, tiers, pools, invalid, malformed), nil
}

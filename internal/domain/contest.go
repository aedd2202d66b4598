package domain

import (
	"math"
	"time"
)

type ContestStatus string

const (
	ContestDraft     ContestStatus = "draft"
	ContestActive    ContestStatus = "active"
	ContestFinished  ContestStatus = "finished"
	ContestCancelled ContestStatus = "cancelled"
)

// PercentageTolerance is the accepted deviation when checking that the four
// prize percentages sum to 100.
const PercentageTolerance = 0.01

type Contest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	MinNumber               int     `json:"min_number"`
	MaxNumber               int     `json:"max_number"`
	NumbersPerParticipation int     `json:"numbers_per_participation"`
	ParticipationValue      float64 `json:"participation_value"`

	// Prize split configuration. The four values must sum to 100.
	TopPct      float64 `json:"top_pct"`
	SecondPct   float64 `json:"second_pct"`
	LowestPct   float64 `json:"lowest_pct"`
	AdminFeePct float64 `json:"admin_fee_pct"`

	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Status    ContestStatus `json:"status"`
	CreatedBy uint          `json:"created_by"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (c Contest) PercentagesSum() float64 {
	return c.TopPct + c.SecondPct + c.LowestPct + c.AdminFeePct
}

func (c Contest) PercentagesValid() bool {
	return math.Abs(c.PercentagesSum()-100) <= PercentageTolerance
}

// CanAcceptParticipations reports whether new tickets may still be sold.
// Draws do not block participation; the contest only stops accepting entries
// when its status changes or its window closes.
func (c Contest) CanAcceptParticipations(now time.Time) bool {
	if c.Status != ContestActive {
		return false
	}
	if now.Before(c.StartDate) {
		return false
	}
	if c.EndDate.Before(now) {
		return false
	}

	return true
}

type ContestState struct {
	Phase                 string `json:"phase"`
	Label                 string `json:"label"`
	AcceptsParticipations bool   `json:"accepts_participations"`
	Message               string `json:"message"`
}

// State describes the contest lifecycle for display purposes. A contest is
// only "finished" by status, never by merely having draws.
func (c Contest) State(now time.Time, hasDraws bool) ContestState {
	if c.Status == ContestFinished {
		return ContestState{
			Phase:   "finished",
			Label:   "Finished",
			Message: "This contest has already finished",
		}
	}

	if c.Status != ContestActive {
		label := "Cancelled"
		if c.Status == ContestDraft {
			label = "Draft"
		}

		return ContestState{
			Phase:   "inactive",
			Label:   label,
			Message: "This contest is not active",
		}
	}

	if now.Before(c.StartDate) {
		return ContestState{
			Phase:   "upcoming",
			Label:   "Upcoming",
			Message: "This contest has not started yet",
		}
	}

	if c.EndDate.Before(now) {
		return ContestState{
			Phase:   "awaiting_result",
			Label:   "Awaiting Result",
			Message: "Entries are closed. Waiting for the draw results.",
		}
	}

	if hasDraws {
		return ContestState{
			Phase:                 "ongoing",
			Label:                 "Ongoing",
			AcceptsParticipations: true,
			Message:               "Contest in progress. Draws have started.",
		}
	}

	return ContestState{
		Phase:                 "accepting",
		Label:                 "Accepting Participations",
		AcceptsParticipations: true,
		Message:               "You can join this contest",
	}
}

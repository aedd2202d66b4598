package domain

import "time"

type ParticipationStatus string

const (
	ParticipationPending   ParticipationStatus = "pending"
	ParticipationActive    ParticipationStatus = "active"
	ParticipationCancelled ParticipationStatus = "cancelled"
)

// Participation is a user's ticket: a set of chosen numbers in a contest.
// Only active (paid) participations count toward the ranking.
type Participation struct {
	ID         uint                `json:"id"`
	ContestID  uint                `json:"contest_id"`
	UserID     uint                `json:"user_id"`
	UserName   string              `json:"user_name"`
	TicketCode string              `json:"ticket_code"`
	Numbers    []int               `json:"numbers"`
	Status     ParticipationStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

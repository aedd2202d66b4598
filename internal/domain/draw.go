package domain

import "time"

// Draw is an administrator-published set of numbers at a point in time.
// Once published it is an immutable historical fact.
type Draw struct {
	ID        uint      `json:"id"`
	ContestID uint      `json:"contest_id"`
	Code      string    `json:"code"`
	Numbers   []int     `json:"numbers"`
	DrawDate  time.Time `json:"draw_date"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

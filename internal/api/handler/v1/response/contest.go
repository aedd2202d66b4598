package response

import "github.com/bolaohub/bolao-api/internal/domain"

type ContestResponse struct {
	Contest domain.Contest      `json:"contest"`
	State   domain.ContestState `json:"state"`
}

// Package challenge exposes maze challenge creation, retrieval, solution
// submission and per-challenge leaderboards over HTTP.
package challenge

import (
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/maze"
)

// CreateRequest carries the parameters for a new challenge. Zero
// dimensions fall back to the server defaults.
type CreateRequest struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Adversarial bool   `json:"adversarial"`
	Strategy    string `json:"strategy"`
}

// ChallengeResponse is the public view of a challenge. The optimal path
// length is deliberately absent so solvers cannot read the answer off
// the payload.
type ChallengeResponse struct {
	ID          string         `json:"id"`
	Maze        *maze.Artifact `json:"maze"`
	Adversarial bool           `json:"adversarial"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// SubmitRequest carries a solver's move list, 1-indexed [row, col]
// coordinates from start through end inclusive.
type SubmitRequest struct {
	Moves [][2]int `json:"moves" binding:"required"`
}

// SubmitResponse reports the score awarded for a valid solution.
type SubmitResponse struct {
	Score float64 `json:"score"`
}

func newChallengeResponse(c *dmn.Challenge) *ChallengeResponse {
	return &ChallengeResponse{
		ID:          c.ID.String(),
		Maze:        c.Artifact,
		Adversarial: c.Adversarial,
		CreatedAt:   c.CreatedAt,
	}
}

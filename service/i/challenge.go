package i

import (
	"context"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/google/uuid"
)

// ChallengeRequest holds the parameters for creating a new challenge.
// Zero dimensions fall back to the configured defaults.
type ChallengeRequest struct {
	Width       int
	Height      int
	Adversarial bool
	Strategy    string
}

// Challenger creates maze challenges and judges submitted solutions.
type Challenger interface {
	// Create generates, persists and returns a new challenge.
	Create(ctx context.Context, req ChallengeRequest) (*dmn.Challenge, error)

	// ByID retrieves a stored challenge.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Challenge, error)

	// Submit validates a move list against the challenge, records the
	// score on the leaderboard and returns it.
	Submit(ctx context.Context, challengeID uuid.UUID, username string, moves [][2]int) (float64, error)

	// Leaderboard returns the top scores for a challenge.
	Leaderboard(ctx context.Context, challengeID uuid.UUID, amount int64) ([]ScoreEntry, error)
}

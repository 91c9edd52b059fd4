package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/logger"
	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/beka-birhanu/labyrinth-api/solver"
	"github.com/google/uuid"
)

// ChallengeService generates maze challenges, persists them and judges
// submitted solutions against the stored artifact.
type ChallengeService struct {
	repo       i.ChallengeRepo
	scoreBoard i.ScoreBoard
	logger     logger.Logger

	defaultWidth  int
	defaultHeight int
}

// ChallengeServiceConfig holds the dependencies for a ChallengeService.
type ChallengeServiceConfig struct {
	Repo       i.ChallengeRepo
	ScoreBoard i.ScoreBoard
	Logger     logger.Logger

	DefaultWidth  int
	DefaultHeight int
}

// NewChallengeService validates the configuration and returns a service.
func NewChallengeService(cfg ChallengeServiceConfig) (*ChallengeService, error) {
	if cfg.Repo == nil || cfg.ScoreBoard == nil || cfg.Logger == nil {
		return nil, errors.New("challenge service requires a repo, score board and logger")
	}
	if cfg.DefaultWidth == 0 {
		cfg.DefaultWidth = 21
	}
	if cfg.DefaultHeight == 0 {
		cfg.DefaultHeight = 21
	}
	return &ChallengeService{
		repo:          cfg.Repo,
		scoreBoard:    cfg.ScoreBoard,
		logger:        cfg.Logger,
		defaultWidth:  cfg.DefaultWidth,
		defaultHeight: cfg.DefaultHeight,
	}, nil
}

// Create generates a maze for the request, fixes its optimal path length
// and persists the challenge.
func (s *ChallengeService) Create(ctx context.Context, req i.ChallengeRequest) (*dmn.Challenge, error) {
	width, height := req.Width, req.Height
	if width == 0 {
		width = s.defaultWidth
	}
	if height == 0 {
		height = s.defaultHeight
	}

	generator, err := maze.NewGenerator(maze.Config{
		Width:       width,
		Height:      height,
		Strategy:    maze.CarveStrategy(req.Strategy),
		Adversarial: req.Adversarial,
	})
	if err != nil {
		return nil, err
	}

	result, err := generator.Generate()
	if err != nil {
		return nil, err
	}
	// Independent solvability check before anything is published.
	if _, err := solver.BFS(result.Artifact); err != nil {
		return nil, fmt.Errorf("generated maze failed solver check: %w", err)
	}
	if result.Placement.Tier != maze.TierPrimary {
		// Degraded placements are valid but worth knowing about.
		s.logger.Warning(fmt.Sprintf("challenge %dx%d used %s placement after %d attempts", width, height, result.Placement.Tier, result.Attempts))
	}

	challenge := &dmn.Challenge{
		ID:            uuid.New(),
		Artifact:      result.Artifact,
		Adversarial:   req.Adversarial,
		OptimalLength: result.Placement.PathLength,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, challenge); err != nil {
		return nil, fmt.Errorf("saving challenge: %w", err)
	}

	s.logger.Info(fmt.Sprintf("created challenge %s (%dx%d, adversarial=%v, optimal=%d)",
		challenge.ID, width, height, req.Adversarial, challenge.OptimalLength))
	return challenge, nil
}

// ByID retrieves a stored challenge.
func (s *ChallengeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Challenge, error) {
	return s.repo.ByID(ctx, id)
}

// Submit validates a move list, scores it against the optimal path and
// records the result on the challenge's leaderboard.
func (s *ChallengeService) Submit(ctx context.Context, challengeID uuid.UUID, username string, moves [][2]int) (float64, error) {
	challenge, err := s.repo.ByID(ctx, challengeID)
	if err != nil {
		return 0, err
	}

	steps, err := challenge.ValidateSolution(moves)
	if err != nil {
		return 0, err
	}

	score := challenge.Score(steps)
	if err := s.scoreBoard.Submit(ctx, boardKey(challengeID), username, score); err != nil {
		return 0, fmt.Errorf("recording score: %w", err)
	}

	s.logger.Info(fmt.Sprintf("challenge %s: %s scored %.1f (%d steps, optimal %d)",
		challengeID, username, score, steps, challenge.OptimalLength))
	return score, nil
}

// Leaderboard returns the top scores for a challenge.
func (s *ChallengeService) Leaderboard(ctx context.Context, challengeID uuid.UUID, amount int64) ([]i.ScoreEntry, error) {
	return s.scoreBoard.Top(ctx, boardKey(challengeID), amount)
}

func boardKey(challengeID uuid.UUID) string {
	return "challenge:" + challengeID.String() + ":scores"
}

package challenge

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/labyrinth-api/api/identity"
	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/repo"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardSize = 10

// ChallengeServer handles HTTP requests for maze challenges.
type ChallengeServer struct {
	challenger i.Challenger
}

// NewChallengeServer creates a new ChallengeServer.
func NewChallengeServer(c i.Challenger) *ChallengeServer {
	return &ChallengeServer{
		challenger: c,
	}
}

// RegisterPublic registers public routes.
func (c *ChallengeServer) RegisterPublic(route *gin.RouterGroup) {
	challenges := route.Group("/challenges")
	{
		challenges.GET("/:id", c.byID)
		challenges.GET("/:id/leaderboard", c.leaderboard)
	}
}

// RegisterProtected registers routes that require authentication.
func (c *ChallengeServer) RegisterProtected(route *gin.RouterGroup) {
	challenges := route.Group("/challenges")
	{
		challenges.POST("", c.create)
		challenges.POST("/:id/solutions", c.submit)
	}
}

// create generates and publishes a new maze challenge.
func (c *ChallengeServer) create(ctx *gin.Context) {
	var request CreateRequest

	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := c.challenger.Create(ctx.Request.Context(), i.ChallengeRequest{
		Width:       request.Width,
		Height:      request.Height,
		Adversarial: request.Adversarial,
		Strategy:    request.Strategy,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newChallengeResponse(challenge))
}

// byID returns a stored challenge.
func (c *ChallengeServer) byID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	challenge, err := c.challenger.ByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrChallengeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newChallengeResponse(challenge))
}

// submit validates a solution for the authenticated solver and records
// the score.
func (c *ChallengeServer) submit(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	var request SubmitRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, ok := usernameFromClaims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	score, err := c.challenger.Submit(ctx.Request.Context(), id, username, request.Moves)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrChallengeNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, dmn.ErrInvalidSolution):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, &SubmitResponse{Score: score})
}

// leaderboard returns the top scores for a challenge.
func (c *ChallengeServer) leaderboard(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	amount := int64(defaultLeaderboardSize)
	if raw := ctx.Query("size"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid leaderboard size"})
			return
		}
		amount = parsed
	}

	entries, err := c.challenger.Leaderboard(ctx.Request.Context(), id, amount)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

func usernameFromClaims(ctx *gin.Context) (string, bool) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return "", false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return "", false
	}
	username, ok := claims["username"].(string)
	return username, ok && username != ""
}

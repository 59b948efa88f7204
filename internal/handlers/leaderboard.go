package handlers

import (
	"errors"
	"net/http"

	"github.com/moamen79/qurandle-backend/internal/auth"
	dom "github.com/moamen79/qurandle-backend/internal/domain"
	"github.com/moamen79/qurandle-backend/internal/dto"
	"github.com/moamen79/qurandle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles score submission, board reads and removal.
type LeaderboardHandler struct {
	svc *service.LeaderboardService
}

// NewLeaderboardHandler returns a new LeaderboardHandler.
func NewLeaderboardHandler(svc *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// Submit godoc
// @Summary      Submit a score for the authenticated user
// @Tags         leaderboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SubmitScoreRequest  true  "Score and level"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /submit-score [post]
func (h *LeaderboardHandler) Submit(c *gin.Context) {
	var req dto.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score and level must be provided"})
		return
	}
	principal := auth.UsernameFromContext(c)
	if err := h.svc.Submit(c.Request.Context(), req.Level, principal, *req.Score); err != nil {
		if errors.Is(err, service.ErrMissingLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "score and level must be provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit score"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "score submitted successfully"})
}

// Get godoc
// @Summary      Top entries for a level, best first
// @Tags         leaderboard
// @Produce      json
// @Param        level  query  string  true  "Difficulty level"
// @Success      200    {array}   domain.Entry
// @Failure      400    {object}  map[string]string
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) Get(c *gin.Context) {
	entries, err := h.svc.Top(c.Request.Context(), c.Query("level"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownLevel) || errors.Is(err, service.ErrMissingLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read leaderboard"})
		return
	}
	if entries == nil {
		entries = []dom.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

// Remove godoc
// @Summary      Remove a user's scores from every level
// @Tags         leaderboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RemoveScoreRequest  true  "Username to remove"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /remove-score [post]
func (h *LeaderboardHandler) Remove(c *gin.Context) {
	var req dto.RemoveScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}
	if err := h.svc.RemoveUser(c.Request.Context(), req.Username); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found in leaderboard"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove score"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "score removed successfully"})
}

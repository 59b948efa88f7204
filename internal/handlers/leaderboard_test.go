package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moamen79/qurandle-backend/internal/auth"
	dom "github.com/moamen79/qurandle-backend/internal/domain"
	"github.com/moamen79/qurandle-backend/internal/repo"
	"github.com/moamen79/qurandle-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardRouter(t *testing.T) (*gin.Engine, http.Header) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService([]byte(testSecret), time.Hour)
	boardSvc := service.NewLeaderboardService(
		repo.NewMemoryLeaderboardRepo(dom.LevelEasy, dom.LevelMedium, dom.LevelHard))
	h := NewLeaderboardHandler(boardSvc)

	r := gin.New()
	r.GET("/leaderboard", h.Get)
	protected := r.Group("", auth.RequireAuth(tokens))
	protected.POST("/submit-score", h.Submit)
	protected.POST("/remove-score", h.Remove)

	token, err := tokens.Generate("alice")
	require.NoError(t, err)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	return r, header
}

func getBoard(t *testing.T, r *gin.Engine, level string) (*httptest.ResponseRecorder, []dom.Entry) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/leaderboard?level="+level, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var entries []dom.Entry
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	}
	return rec, entries
}

func TestSubmitScore(t *testing.T) {
	r, authed := newBoardRouter(t)

	rec := postJSON(r, "/submit-score", `{"level":"easy","score":50}`, authed)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Lower score for the same user never lowers the stored one.
	rec = postJSON(r, "/submit-score", `{"level":"easy","score":30}`, authed)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, entries := getBoard(t, r, "easy")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, entries, 1)
	assert.Equal(t, dom.Entry{Username: "alice", Score: 50}, entries[0])
}

func TestSubmitScore_ZeroIsAScore(t *testing.T) {
	r, authed := newBoardRouter(t)

	rec := postJSON(r, "/submit-score", `{"level":"easy","score":0}`, authed)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, entries := getBoard(t, r, "easy")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].Score)
}

func TestSubmitScore_MissingFields(t *testing.T) {
	r, authed := newBoardRouter(t)

	for _, body := range []string{`{"level":"easy"}`, `{"score":10}`, `{}`} {
		rec := postJSON(r, "/submit-score", body, authed)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "must be provided")
	}
}

func TestSubmitScore_RequiresAuth(t *testing.T) {
	r, _ := newBoardRouter(t)

	rec := postJSON(r, "/submit-score", `{"level":"easy","score":10}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	bad := http.Header{}
	bad.Set("Authorization", "Bearer bogus")
	rec = postJSON(r, "/submit-score", `{"level":"easy","score":10}`, bad)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetLeaderboard_UnknownLevel(t *testing.T) {
	r, _ := newBoardRouter(t)

	rec, _ := getBoard(t, r, "nightmare")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid level")
}

func TestGetLeaderboard_EmptySeededLevel(t *testing.T) {
	r, _ := newBoardRouter(t)

	rec, entries := getBoard(t, r, "medium")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, entries)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestRemoveScore(t *testing.T) {
	r, authed := newBoardRouter(t)

	rec := postJSON(r, "/remove-score", `{"username":"alice"}`, authed)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, http.StatusCreated, postJSON(r, "/submit-score", `{"level":"easy","score":10}`, authed).Code)
	require.Equal(t, http.StatusCreated, postJSON(r, "/submit-score", `{"level":"hard","score":20}`, authed).Code)

	rec = postJSON(r, "/remove-score", `{"username":"alice"}`, authed)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, level := range []string{"easy", "hard"} {
		rec, entries := getBoard(t, r, level)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, entries)
	}

	rec = postJSON(r, "/remove-score", `{}`, authed)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

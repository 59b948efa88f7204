package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/moamen79/qurandle-backend/internal/domain"
	"github.com/moamen79/qurandle-backend/internal/repo"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnknownLevel = errors.New("unknown level")
	ErrMissingLevel = errors.New("level must be provided")
)

// LeaderboardService handles score submissions and board reads.
type LeaderboardService struct {
	repo repo.LeaderboardRepo
}

// NewLeaderboardService returns a new LeaderboardService.
func NewLeaderboardService(r repo.LeaderboardRepo) *LeaderboardService {
	return &LeaderboardService{repo: r}
}

// Submit records a score for username on level. A level seen for the first
// time is created on the spot. Zero is a valid score; absence is caught at
// the request-binding layer, not by value coercion.
func (s *LeaderboardService) Submit(ctx context.Context, level, username string, score int) error {
	level = strings.TrimSpace(level)
	if level == "" {
		return ErrMissingLevel
	}
	return s.repo.Upsert(ctx, level, username, score)
}

// Top returns the level's entries, best first, at most domain.TopN of them.
func (s *LeaderboardService) Top(ctx context.Context, level string) ([]dom.Entry, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return nil, ErrMissingLevel
	}
	entries, err := s.repo.Get(ctx, level)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnknownLevel
		}
		return nil, err
	}
	return entries, nil
}

// RemoveUser strips username from every level it appears on. ErrNotFound if
// it was on none of them.
func (s *LeaderboardService) RemoveUser(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrNotFound
	}
	removed, err := s.repo.RemoveUser(ctx, username)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

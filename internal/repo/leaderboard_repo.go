package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	dom "github.com/moamen79/qurandle-backend/internal/domain"
)

// LeaderboardRepo provides per-level score storage. The top-10 bound and the
// descending order are storage invariants: every read observes an already
// sorted, already truncated board.
type LeaderboardRepo interface {
	Upsert(ctx context.Context, level, username string, score int) error
	Get(ctx context.Context, level string) ([]dom.Entry, error)
	RemoveUser(ctx context.Context, username string) (int, error)
}

// MemoryLeaderboardRepo implements LeaderboardRepo with an in-process map of
// level -> sorted entries. One mutex serializes all board mutations; boards
// are small (<= domain.TopN rows each), so there is nothing to shard.
type MemoryLeaderboardRepo struct {
	mu     sync.RWMutex
	boards map[string][]dom.Entry
}

// NewMemoryLeaderboardRepo returns a repo with the given levels pre-created
// as empty boards. Pre-created levels are queryable before any submission.
func NewMemoryLeaderboardRepo(levels ...string) *MemoryLeaderboardRepo {
	boards := make(map[string][]dom.Entry, len(levels))
	for _, l := range levels {
		boards[l] = nil
	}
	return &MemoryLeaderboardRepo{boards: boards}
}

// Upsert records a score for username on level, creating the level if it
// does not exist. An existing entry is only ever raised, to the max of the
// old and new score. The board is then stably re-sorted descending and cut
// to domain.TopN; entries pushed past the cut are dropped.
func (r *MemoryLeaderboardRepo) Upsert(_ context.Context, level, username string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	board := r.boards[level]
	idx := slices.IndexFunc(board, func(e dom.Entry) bool { return e.Username == username })
	if idx >= 0 {
		if score > board[idx].Score {
			board[idx].Score = score
		}
	} else {
		board = append(board, dom.Entry{Username: username, Score: score})
	}

	// Stable sort: ties keep insertion order, there is no secondary key.
	slices.SortStableFunc(board, func(a, b dom.Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(board) > dom.TopN {
		board = board[:dom.TopN]
	}
	r.boards[level] = board
	return nil
}

// Get returns a copy of the level's entries, best first. A level that was
// never pre-created or submitted to yields ErrNotFound.
func (r *MemoryLeaderboardRepo) Get(_ context.Context, level string) ([]dom.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	board, ok := r.boards[level]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]dom.Entry, len(board))
	copy(out, board)
	return out, nil
}

// RemoveUser strips the username's entry from every level it appears on and
// returns how many entries were removed. Removal never reorders survivors,
// so no re-sort is needed.
func (r *MemoryLeaderboardRepo) RemoveUser(_ context.Context, username string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for level, board := range r.boards {
		kept := slices.DeleteFunc(board, func(e dom.Entry) bool { return e.Username == username })
		removed += len(board) - len(kept)
		r.boards[level] = kept
	}
	return removed, nil
}

package domain

// Entry is one row on a leaderboard: a username and its best score.
// Username is a weak reference to a User; the board never checks the
// account still exists.
type Entry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Default difficulty levels, present from startup. Other levels may be
// created lazily on first submission.
const (
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
)

// TopN is how many entries a level keeps after each submission.
const TopN = 10

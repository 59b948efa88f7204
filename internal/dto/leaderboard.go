package dto

// SubmitScoreRequest is the JSON body for POST /submit-score. Score is a
// pointer so an explicit 0 binds fine while an absent field still fails
// validation.
type SubmitScoreRequest struct {
	Level string `json:"level" binding:"required"`
	Score *int   `json:"score" binding:"required"`
}

// RemoveScoreRequest is the JSON body for POST /remove-score.
type RemoveScoreRequest struct {
	Username string `json:"username" binding:"required"`
}

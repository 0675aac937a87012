package domain

import (
	"encoding/json"
	"strings"
)

// InteractionRequest is the body sent to the game server for one player action.
type InteractionRequest struct {
	UserInput string `json:"user_input"`
}

// InteractionResult is the game server's reply to one interaction cycle.
// Fields are used as-is; absent fields decode to their zero values.
type InteractionResult struct {
	DMAction       string          `json:"dm_action"`
	FeedbackScore  *float64        `json:"feedback_score"`
	UpdatedRewards json.RawMessage `json:"updated_rewards"`
}

// IsBlank reports whether the input holds nothing but whitespace.
func IsBlank(input string) bool {
	return strings.TrimSpace(input) == ""
}

package app

import (
	"context"

	"github.com/CrestNiraj12/dungeonterm/domain"
)

// InteractionService submits one player action to the game server.
type InteractionService interface {
	// Interact sends the literal user input and returns the server's reply.
	Interact(ctx context.Context, userInput string) (domain.InteractionResult, error)
}

// Display is the surface an interaction cycle renders into: a running
// transcript plus three standalone panels.
type Display interface {
	AppendTranscript(text string)
	ScrollToBottom()
	SetAction(text string)
	SetScore(text string)
	SetRewards(text string)
	ClearTranscript()
}

// InputField is the field the player types actions into.
type InputField interface {
	Value() string
	Clear()
}

// Notifier surfaces a blocking notice the player must dismiss.
type Notifier interface {
	Notify(message string)
}

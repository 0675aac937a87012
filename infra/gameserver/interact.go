package gameserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CrestNiraj12/dungeonterm/domain"
)

// InteractPath is the endpoint that plays one turn.
const InteractPath = "/interact"

// interactionService implements app.InteractionService over HTTP.
type interactionService struct {
	client *Client
}

// NewInteractionService creates an InteractionService backed by the game server.
func NewInteractionService(client *Client) *interactionService {
	return &interactionService{client: client}
}

// Interact posts the literal user input; validation is the caller's job.
func (s *interactionService) Interact(ctx context.Context, userInput string) (domain.InteractionResult, error) {
	data, err := s.client.PostJSON(ctx, InteractPath, domain.InteractionRequest{UserInput: userInput})
	if err != nil {
		return domain.InteractionResult{}, fmt.Errorf("interacting: %w", err)
	}
	return parseInteraction(data)
}

func parseInteraction(data []byte) (domain.InteractionResult, error) {
	var res domain.InteractionResult
	if err := json.Unmarshal(data, &res); err != nil {
		return domain.InteractionResult{}, fmt.Errorf("%w: parsing interaction response: %v", domain.ErrParse, err)
	}
	res.DMAction = sanitizeForTerminal(res.DMAction)
	return res, nil
}

package gameserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/CrestNiraj12/dungeonterm/domain"
)

// Client is a thin JSON-over-HTTP wrapper for the game server.
// It handles base URL construction and keeps the server's session cookie.
type Client struct {
	baseURL string
	http    *http.Client
	newID   func() string
}

// NewClient creates a game server client.
// No request timeout is set; the server decides how long a turn takes.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		newID:   uuid.NewString,
	}
}

// PostJSON encodes body as JSON, POSTs it to path and returns the raw reply.
func (c *Client) PostJSON(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(payload))
}

// serverError is the envelope the game server uses for rejected requests.
type serverError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", c.newID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request to %s: %v", domain.ErrTransport, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s %s returned %d: %s", domain.ErrTransport, method, path, resp.StatusCode, errorDetail(data))
	}

	return data, nil
}

func errorDetail(data []byte) string {
	var e serverError
	if err := json.Unmarshal(data, &e); err == nil && e.Message != "" {
		return e.Message
	}
	// Cut by display cells so multi-byte runes stay whole.
	const maxDetail = 200
	return ansi.Truncate(strings.TrimSpace(string(data)), maxDetail+len("..."), "...")
}

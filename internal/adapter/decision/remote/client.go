// Package remote provides a decision provider backed by an external policy
// service. The service receives the player's view of the world and answers
// with a single action.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"harvestduel/internal/app/ports"
	"harvestduel/internal/domain/farming"
)

const defaultTimeout = 30 * time.Second

// Client POSTs the player view to a policy endpoint and decodes the chosen
// action. Transport or protocol failures surface as errors; the match driver
// degrades them to a rejected turn rather than aborting the match.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

var _ ports.DecisionProvider = (*Client)(nil)

type decisionResponse struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
}

func (c *Client) Decide(ctx context.Context, view ports.PlayerView) (farming.ActionRequest, error) {
	body, err := json.Marshal(view)
	if err != nil {
		return farming.ActionRequest{}, fmt.Errorf("marshal player view: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return farming.ActionRequest{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return farming.ActionRequest{}, fmt.Errorf("policy call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return farming.ActionRequest{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return farming.ActionRequest{}, fmt.Errorf("policy error %d: %s", resp.StatusCode, string(respBody))
	}

	var decision decisionResponse
	if err := json.Unmarshal(respBody, &decision); err != nil {
		return farming.ActionRequest{}, fmt.Errorf("unmarshal decision: %w", err)
	}
	if decision.Name == "" {
		return farming.ActionRequest{}, fmt.Errorf("empty decision")
	}

	return farming.ActionRequest{Name: decision.Name, Parameters: decision.Parameters}, nil
}

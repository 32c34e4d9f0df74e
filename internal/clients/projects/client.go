// internal/clients/projects/client.go

// Package projects talks to the remote project service. One POST per project
// kind; every call returns the id assigned by the service.
package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"edilia-assistant/internal/common/errors"
	"edilia-assistant/internal/engine"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type createResponse struct {
	ID string `json:"id"`
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) CreateFeasibilityStudy(ctx context.Context, p engine.FeasibilityPayload) (string, error) {
	return c.create(ctx, "/api/feasibility-studies", p)
}

func (c *Client) CreateBusinessPlan(ctx context.Context, p engine.BusinessPlanPayload) (string, error) {
	return c.create(ctx, "/api/business-plans", p)
}

func (c *Client) CreateMarketSearch(ctx context.Context, p engine.MarketSearchPayload) (string, error) {
	return c.create(ctx, "/api/market-searches", p)
}

func (c *Client) CreateDesignProject(ctx context.Context, p engine.DesignPayload) (string, error) {
	return c.create(ctx, "/api/design-projects", p)
}

func (c *Client) create(ctx context.Context, path string, payload interface{}) (string, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.NewProjectServiceTimeoutError(path)
		}
		return "", errors.NewProjectServiceFailedError(path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewProjectServiceFailedError(path, err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", errors.NewProjectServiceFailedError(path,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}

	var created createResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return "", errors.NewProjectServiceFailedError(path, fmt.Errorf("failed to unmarshal response: %w", err))
	}
	if created.ID == "" {
		return "", errors.NewProjectServiceFailedError(path, fmt.Errorf("no id in response"))
	}
	return created.ID, nil
}

// Package zephyr talks to the Zephyr Scale (Test Management for Jira) REST API.
package zephyr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"zrep/internal/config"
	"zrep/internal/domain"
	"zrep/internal/errors"
)

// TestRunPath is the Zephyr Scale Server endpoint creating a test run.
const TestRunPath = "/rest/atm/1.0/testrun"

// Client creates Zephyr test runs.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
	now        func() time.Time
}

// NewClient creates a Client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger.With().Str("component", "zephyr").Logger(),
		now:        time.Now,
	}
}

// CreateRun submits the batch as a single test run.
func (c *Client) CreateRun(ctx context.Context, rc config.RunConfig, batch domain.Batch) error {
	body, err := json.Marshal(c.payload(rc, batch))
	if err != nil {
		return fmt.Errorf("failed to marshal test run: %w", err)
	}

	url := strings.TrimSuffix(rc.Host, "/") + TestRunPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if rc.HasToken() {
		req.Header.Set("Authorization", "Bearer "+rc.AuthorizationToken)
	} else {
		req.SetBasicAuth(rc.User, rc.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to create test run: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Wrapf(errors.ErrSubmitFailed, "status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	key := gjson.GetBytes(respBody, "key").String()
	c.logger.Info().
		Str("test_run", key).
		Int("results", len(batch)).
		Msg("test run created")
	return nil
}

// payload builds the request body. Passthrough options are merged at the top
// level but never replace projectKey or items.
func (c *Client) payload(rc config.RunConfig, batch domain.Batch) map[string]any {
	p := make(map[string]any, len(rc.Options)+3)
	for k, v := range rc.Options {
		p[k] = v
	}
	if name, ok := p["name"].(string); !ok || name == "" {
		p["name"] = "Automated run " + domain.FormatExecutionDate(c.now())
	}
	p["projectKey"] = rc.ProjectKey
	p["items"] = batch
	return p
}

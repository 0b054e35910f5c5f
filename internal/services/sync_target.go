package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
)

// HTTPSyncTarget confirms queued entries against an upstream history
// service over JSON. An empty base URL disables pushing, which leaves
// every entry pending.
type HTTPSyncTarget struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSyncTarget(baseURL string) *HTTPSyncTarget {
	return &HTTPSyncTarget{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (target *HTTPSyncTarget) Push(ctx context.Context, entry models.SyncEntry) error {
	if target.baseURL == "" {
		return fmt.Errorf("no sync endpoint configured")
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode sync entry: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/sync/%s", target.baseURL, entry.Kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := target.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sync status %d: %s", resp.StatusCode, string(payload))
	}
	return nil
}

package api

import (
	"context"
	"fmt"
	"io"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/streamchat/internal/errors"
	"github.com/diogo/streamchat/internal/models"
)

// Health checks the backend health endpoint and returns the reported
// status string ("ok" for a healthy server).
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(models.PathHealth), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("health check", models.PathHealth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.responseError(resp, models.PathHealth)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return "", apierrors.NewNetworkError("health check", models.PathHealth, err)
	}

	status := gjson.GetBytes(body, "status").String()
	if status == "" {
		return "", apierrors.NewParseError("health response missing status field")
	}
	return status, nil
}

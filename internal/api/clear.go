package api

import (
	"context"
	"fmt"

	http "github.com/bogdanfinn/fhttp"

	"github.com/diogo/streamchat/internal/config"
	apierrors "github.com/diogo/streamchat/internal/errors"
	"github.com/diogo/streamchat/internal/models"
)

// ClearConversation resets the server-side conversation history. The
// operation is idempotent; clearing an already-empty conversation succeeds.
func (c *Client) ClearConversation(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(models.PathClear), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierrors.NewNetworkError("clear conversation", models.PathClear, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.responseError(resp, models.PathClear)
	}

	config.Debugf("conversation cleared")
	return nil
}

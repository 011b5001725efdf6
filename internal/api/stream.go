package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	http "github.com/bogdanfinn/fhttp"

	"github.com/diogo/streamchat/internal/config"
	apierrors "github.com/diogo/streamchat/internal/errors"
	"github.com/diogo/streamchat/internal/models"
)

// SendMessage performs one logical send: it posts message to the chat
// endpoint and consumes the streamed response, delivering the accumulated
// content to onUpdate as frames arrive and returning the final content.
//
// Failures before any content has been received are classified and retried
// with exponential backoff (baseDelay * 2^attempt) up to the configured
// maximum. A rate-limited response is always terminal and never waits. A
// failure after content has been received returns a StreamInterruptedError
// carrying the partial content; content already shown to the user is never
// retried or replaced.
//
// onUpdate may be nil. At most one send per client may be in flight;
// concurrent calls return ErrSendInFlight.
func (c *Client) SendMessage(ctx context.Context, message string, onUpdate StreamHandler) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", apierrors.ErrEmptyMessage
	}
	if utf8.RuneCountInString(trimmed) > models.MaxMessageLength {
		return "", apierrors.ErrMessageTooLong
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return "", apierrors.ErrSendInFlight
	}
	defer c.inFlight.Store(false)

	var lastErr error
	for attempt := 0; ; attempt++ {
		content, err := c.streamAttempt(ctx, trimmed, onUpdate)
		if err == nil {
			return content, nil
		}

		config.Debugf("send attempt %d failed: %v", attempt, err)

		// Partial content is preserved as-is; the operation never retries
		// past text the user has already seen.
		if apierrors.IsInterruptedError(err) {
			return apierrors.Partial(err), err
		}

		if !apierrors.IsRetryable(err, c.retryable) {
			return "", err
		}

		lastErr = err
		if attempt >= c.maxRetries {
			return "", apierrors.NewRetriesExhaustedError(attempt+1, lastErr)
		}

		delay := c.baseDelay << attempt
		config.Debugf("retrying in %v (attempt %d of %d)", delay, attempt+1, c.maxRetries)
		if err := c.sleep(ctx, delay); err != nil {
			return "", err
		}
	}
}

// streamAttempt runs a single request/response cycle: one attempt of a
// logical send. The accumulator is fresh per attempt and append-only for
// the attempt's lifetime.
func (c *Client) streamAttempt(ctx context.Context, message string, onUpdate StreamHandler) (string, error) {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(models.PathChat), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("send message", models.PathChat, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", c.responseError(resp, models.PathChat)
	}

	return c.consumeStream(resp.Body, onUpdate)
}

// consumeStream reads the response body to completion, decoding, framing
// and accumulating as it goes.
func (c *Client) consumeStream(body io.Reader, onUpdate StreamHandler) (string, error) {
	var (
		decoder streamDecoder
		parser  frameParser
		acc     strings.Builder
	)

	flush := func() {
		if text := decoder.Flush(); text != "" {
			parser.Parse(text)
		}
		if payload, ok := parser.Flush(); ok {
			acc.WriteString(payload)
		}
	}

	buf := make([]byte, 4096)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			frames := parser.Parse(decoder.Decode(buf[:n]))
			for _, payload := range frames {
				acc.WriteString(payload)
			}
			if len(frames) > 0 && onUpdate != nil {
				onUpdate(acc.String())
			}
		}

		if err == io.EOF {
			flush()
			return acc.String(), nil
		}
		if err != nil {
			flush()
			if acc.Len() > 0 {
				return "", apierrors.NewStreamInterruptedError(acc.String(), err)
			}
			// A stream that dies before delivering anything is treated as
			// a fresh connectivity failure and goes through the same retry
			// classification as a pre-stream error.
			return "", apierrors.NewNetworkError("read stream", models.PathChat, err)
		}
	}
}

// responseError reads a capped slice of a failed response for diagnostics
// and classifies the status.
func (c *Client) responseError(resp *http.Response, endpoint string) error {
	errorBody := make([]byte, 0, maxErrorBodySize)
	buf := make([]byte, 1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			errorBody = append(errorBody, buf[:n]...)
			if len(errorBody) >= maxErrorBodySize {
				break
			}
		}
		if readErr != nil {
			break
		}
	}

	message := parseErrorMessage(errorBody)
	config.Debugf("request to %s failed with status %d: %s", endpoint, resp.StatusCode, message)

	if resp.StatusCode == models.StatusRateLimited {
		return apierrors.NewRateLimitError(message)
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, message, string(errorBody))
}

package api

import (
	"context"
	"time"
)

// MockClient is a mock implementation of ClientInterface for testing
type MockClient struct {
	// Mock return values
	SendContentVal string
	SendErr        error
	SendUpdates    []string
	SendUpdateGap  time.Duration
	ClearErr       error
	HealthVal      string
	HealthErr      error
	BaseURLVal     string

	// Call counters/recorders
	SendCalled   bool
	ClearCalled  bool
	HealthCalled bool
	LastMessage  string
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) SendMessage(ctx context.Context, message string, onUpdate StreamHandler) (string, error) {
	m.SendCalled = true
	m.LastMessage = message
	if onUpdate != nil {
		for _, update := range m.SendUpdates {
			onUpdate(update)
			if m.SendUpdateGap > 0 {
				time.Sleep(m.SendUpdateGap)
			}
		}
	}
	return m.SendContentVal, m.SendErr
}

func (m *MockClient) ClearConversation(ctx context.Context) error {
	m.ClearCalled = true
	return m.ClearErr
}

func (m *MockClient) Health(ctx context.Context) (string, error) {
	m.HealthCalled = true
	return m.HealthVal, m.HealthErr
}

func (m *MockClient) BaseURL() string {
	if m.BaseURLVal != "" {
		return m.BaseURLVal
	}
	return "http://localhost:5000"
}

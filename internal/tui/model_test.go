package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/streamchat/internal/api"
	apierrors "github.com/diogo/streamchat/internal/errors"
	"github.com/diogo/streamchat/internal/models"
)

func newTestModel() Model {
	m := NewChatModel(&api.MockClient{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func pressEnter(t *testing.T, m Model, input string) (Model, tea.Cmd) {
	t.Helper()
	m.textarea.SetValue(input)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestEnterSendsMessageAndAddsPlaceholder(t *testing.T) {
	m, cmd := pressEnter(t, newTestModel(), "hello there")

	if !m.streaming {
		t.Error("model not streaming after send")
	}
	if cmd == nil {
		t.Error("no command returned for send")
	}
	if m.transcript.Len() != 2 {
		t.Fatalf("transcript has %d messages, want user + placeholder", m.transcript.Len())
	}

	msgs := m.transcript.Messages()
	if msgs[0].Role != models.RoleUser || msgs[0].Content != "hello there" {
		t.Errorf("first message = %+v, want user message", msgs[0])
	}
	if msgs[1].Role != models.RoleAssistant || msgs[1].Final {
		t.Errorf("second message = %+v, want unsealed placeholder", msgs[1])
	}
	if m.placeholderID != msgs[1].ID {
		t.Error("placeholderID does not track the placeholder message")
	}
}

func TestEnterIgnoredWhileStreaming(t *testing.T) {
	m, _ := pressEnter(t, newTestModel(), "first")
	before := m.transcript.Len()

	m, _ = pressEnter(t, m, "second")
	if m.transcript.Len() != before {
		t.Error("send accepted while a stream was in flight")
	}
}

func TestEnterIgnoredForBlankInput(t *testing.T) {
	m, cmd := pressEnter(t, newTestModel(), "   ")
	if m.streaming || cmd != nil || m.transcript.Len() != 0 {
		t.Error("blank input triggered a send")
	}
}

func TestRenderTickAppliesLatestStreamContent(t *testing.T) {
	m, _ := pressEnter(t, newTestModel(), "hi")

	m.stream.set("Hello")
	m.stream.set("Hello, wor")
	updated, _ := m.Update(renderTickMsg(time.Now()))
	m = updated.(Model)

	got, ok := m.transcript.Get(m.placeholderID)
	if !ok {
		t.Fatal("placeholder missing")
	}
	if got.Content != "Hello, wor" {
		t.Errorf("placeholder content = %q, want latest value", got.Content)
	}
}

func TestStreamDoneSealsPlaceholder(t *testing.T) {
	m, _ := pressEnter(t, newTestModel(), "hi")
	id := m.placeholderID

	updated, _ := m.Update(streamDoneMsg{content: "final answer"})
	m = updated.(Model)

	if m.streaming {
		t.Error("still streaming after done message")
	}
	got, ok := m.transcript.Get(id)
	if !ok {
		t.Fatal("placeholder missing after completion")
	}
	if got.Content != "final answer" || !got.Final {
		t.Errorf("message = %+v, want sealed final answer", got)
	}
}

func TestStreamDoneWithPartialKeepsContent(t *testing.T) {
	m, _ := pressEnter(t, newTestModel(), "hi")
	id := m.placeholderID

	err := apierrors.NewStreamInterruptedError("half an answ", errors.New("reset"))
	updated, _ := m.Update(streamDoneMsg{err: err})
	m = updated.(Model)

	got, ok := m.transcript.Get(id)
	if !ok {
		t.Fatal("placeholder removed despite partial content")
	}
	if got.Content != "half an answ" || !got.Final {
		t.Errorf("message = %+v, want sealed partial", got)
	}
	if m.err == nil {
		t.Error("error not surfaced")
	}
}

func TestStreamDoneTerminalFailureRemovesPlaceholder(t *testing.T) {
	m, _ := pressEnter(t, newTestModel(), "hi")
	id := m.placeholderID

	updated, _ := m.Update(streamDoneMsg{err: apierrors.NewRateLimitError("slow down")})
	m = updated.(Model)

	if _, ok := m.transcript.Get(id); ok {
		t.Error("placeholder survived a zero-content terminal failure")
	}
	if m.transcript.Len() != 1 {
		t.Errorf("transcript has %d messages, want just the user message", m.transcript.Len())
	}
	if m.err == nil {
		t.Error("error not surfaced")
	}
}

func TestClearCommand(t *testing.T) {
	m, _ := pressEnter(t, newTestModel(), "hi")
	updated, _ := m.Update(streamDoneMsg{content: "answer"})
	m = updated.(Model)

	m, cmd := pressEnter(t, m, "/clear")
	if cmd == nil {
		t.Fatal("no command returned for /clear")
	}

	updated, _ = m.Update(clearDoneMsg{})
	m = updated.(Model)
	if m.transcript.Len() != 0 {
		t.Errorf("transcript has %d messages after clear, want 0", m.transcript.Len())
	}
}

func TestClearFailureKeepsTranscript(t *testing.T) {
	m, _ := pressEnter(t, newTestModel(), "hi")
	updated, _ := m.Update(streamDoneMsg{content: "answer"})
	m = updated.(Model)

	updated, _ = m.Update(clearDoneMsg{err: errors.New("backend down")})
	m = updated.(Model)
	if m.transcript.Len() != 2 {
		t.Error("transcript dropped despite failed clear")
	}
	if m.err == nil {
		t.Error("clear failure not surfaced")
	}
}

func TestFormatErrorHints(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rate limit", apierrors.NewRateLimitError(""), "wait a moment"},
		{"interrupted", apierrors.NewStreamInterruptedError("x", errors.New("reset")), "may be incomplete"},
		{"network", apierrors.NewNetworkError("send", "/api/chat", errors.New("refused")), "backend is running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("FormatError() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

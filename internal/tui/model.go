package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/streamchat/internal/api"
	apierrors "github.com/diogo/streamchat/internal/errors"
	"github.com/diogo/streamchat/internal/models"
	"github.com/diogo/streamchat/internal/render"
)

// renderInterval paces placeholder redraws while a response streams in.
const renderInterval = 50 * time.Millisecond

// streamState carries the latest accumulated content from the send
// goroutine to the update loop. Redraw ticks read whatever is newest;
// intermediate values between ticks are dropped.
type streamState struct {
	mu     sync.Mutex
	latest string
	dirty  bool
}

func (s *streamState) set(content string) {
	s.mu.Lock()
	s.latest = content
	s.dirty = true
	s.mu.Unlock()
}

func (s *streamState) take() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return "", false
	}
	s.dirty = false
	return s.latest, true
}

// Message types for the TUI
type (
	renderTickMsg time.Time

	streamDoneMsg struct {
		content string
		err     error
	}

	clearDoneMsg struct {
		err error
	}

	copyDoneMsg struct {
		err error
	}
)

// Model represents the TUI state
type Model struct {
	client api.ClientInterface

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	transcript    *models.Transcript
	streaming     bool
	placeholderID string
	stream        *streamState
	ready         bool
	err           error
	notice        string

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(client api.ClientInterface) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = models.MaxMessageLength
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:     client,
		textarea:   ta,
		spinner:    s,
		transcript: models.NewTranscript(),
		stream:     &streamState{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// renderTick returns a command that paces streaming redraws
func renderTick() tea.Cmd {
	return tea.Tick(renderInterval, func(t time.Time) tea.Msg {
		return renderTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		inputHeight := 6
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if !m.streaming {
				return m, tea.Quit
			}

		case "ctrl+y":
			return m, m.copyLastResponse()

		case "enter":
			if !m.streaming && strings.TrimSpace(m.textarea.Value()) != "" {
				input := strings.TrimSpace(m.textarea.Value())
				if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
					return m, tea.Quit
				}

				if input == "/clear" {
					m.textarea.Reset()
					m.err = nil
					m.notice = ""
					return m, m.clearConversation()
				}

				m.transcript.AddUser(input)
				m.placeholderID = m.transcript.AddPlaceholder()
				m.updateViewport()
				m.viewport.GotoBottom()

				m.streaming = true
				m.err = nil
				m.notice = ""
				m.textarea.Reset()

				return m, tea.Batch(
					m.sendMessage(input),
					m.spinner.Tick,
					renderTick(),
				)
			}
		}

	case renderTickMsg:
		if m.streaming {
			if content, ok := m.stream.take(); ok {
				m.transcript.SetContent(m.placeholderID, content)
				m.updateViewport()
				m.viewport.GotoBottom()
			}
			cmds = append(cmds, renderTick())
		}

	case streamDoneMsg:
		m.streaming = false
		m.finishStream(msg)
		m.updateViewport()
		m.viewport.GotoBottom()

	case clearDoneMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.transcript.Clear()
			m.notice = "Conversation cleared"
			m.updateViewport()
		}

	case copyDoneMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.notice = "Response copied to clipboard"
		}

	case spinner.TickMsg:
		if m.streaming {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only pass KeyMsg to the textarea to prevent escape sequence leaks
	if !m.streaming {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// finishStream applies the outcome of a completed send to the transcript.
// A placeholder that received content is sealed even on failure; one that
// received nothing on a terminal failure is removed.
func (m *Model) finishStream(msg streamDoneMsg) {
	if msg.err == nil {
		m.transcript.SetContent(m.placeholderID, msg.content)
		m.transcript.Seal(m.placeholderID)
		m.placeholderID = ""
		return
	}

	m.err = msg.err
	if partial := apierrors.Partial(msg.err); partial != "" {
		m.transcript.SetContent(m.placeholderID, partial)
		m.transcript.Seal(m.placeholderID)
	} else {
		m.transcript.Remove(m.placeholderID)
	}
	m.placeholderID = ""
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	headerParts := []string{
		titleStyle.Render("✦ StreamChat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.BaseURL()),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	header := headerStyle.Width(contentWidth).Render(headerContent)
	sections = append(sections, header)

	var messagesContent string
	if m.transcript.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	var inputContent string
	if m.streaming {
		inputContent = fmt.Sprintf("%s %s",
			m.spinner.View(),
			streamingLabelStyle.Render("Receiving response..."),
		)
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}

	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.err != nil {
		sections = append(sections, FormatError(m.err))
	} else if m.notice != "" {
		sections = append(sections, hintStyle.Render("  "+m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("✦")
	title := welcomeTitleStyle.Width(width).Render("Welcome to StreamChat")
	subtitle := welcomeStyle.Width(width).Render("Start a conversation by typing a message below")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"/clear", "Reset"},
		{"Ctrl+Y", "Copy"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// sendMessage creates a command that streams a response from the API.
// Accumulated content flows through streamState; the returned message
// carries the final outcome.
func (m Model) sendMessage(message string) tea.Cmd {
	state := m.stream
	client := m.client
	return func() tea.Msg {
		content, err := client.SendMessage(context.Background(), message, func(accumulated string) {
			state.set(accumulated)
		})
		return streamDoneMsg{content: content, err: err}
	}
}

// clearConversation creates a command that resets the backend conversation
func (m Model) clearConversation() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return clearDoneMsg{err: client.ClearConversation(context.Background())}
	}
}

// copyLastResponse creates a command that copies the last sealed assistant
// message to the clipboard
func (m Model) copyLastResponse() tea.Cmd {
	messages := m.transcript.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleAssistant && messages[i].Final {
			content := messages[i].Content
			return func() tea.Msg {
				return copyDoneMsg{err: clipboard.WriteAll(content)}
			}
		}
	}
	return nil
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.transcript.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ Assistant")
			if !msg.Final {
				label += streamingLabelStyle.Render(" …")
			}

			body := msg.Content
			if msg.Final {
				// Markdown is rendered only once the message is sealed;
				// partial markdown mid-stream flickers badly.
				rendered, err := render.MarkdownWithWidth(msg.Content, bubbleWidth-4)
				if err == nil {
					body = strings.TrimRight(rendered, "\n")
				}
			}

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(body)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI
func RunChat(client api.ClientInterface) error {
	m := NewChatModel(client)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

package models

import (
	"github.com/google/uuid"
)

// Message is a single entry in the visible conversation.
//
// An assistant message starts life as a placeholder: it is appended to the
// transcript before the first byte of the response arrives, with empty
// content, and is mutated in place while the stream is read. Final marks a
// message whose content will no longer change.
type Message struct {
	ID      string
	Role    string
	Content string
	Final   bool
}

// NewUserMessage creates a finalized user message.
func NewUserMessage(content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: content,
		Final:   true,
	}
}

// NewPlaceholder creates an empty assistant message to be filled while
// streaming.
func NewPlaceholder() Message {
	return Message{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
	}
}

// Transcript owns the ordered list of visible messages for one conversation.
// It is not safe for concurrent use; callers serialize access (the TUI event
// loop and the one-shot command both do).
type Transcript struct {
	messages []Message
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a message and returns its ID.
func (t *Transcript) Append(msg Message) string {
	t.messages = append(t.messages, msg)
	return msg.ID
}

// AddUser appends a user message with the given content.
func (t *Transcript) AddUser(content string) string {
	return t.Append(NewUserMessage(content))
}

// AddPlaceholder appends an empty assistant message and returns its ID.
func (t *Transcript) AddPlaceholder() string {
	return t.Append(NewPlaceholder())
}

// SetContent replaces the content of the message with the given ID.
// Unknown IDs are ignored.
func (t *Transcript) SetContent(id, content string) {
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages[i].Content = content
			return
		}
	}
}

// Seal marks the message with the given ID as final.
func (t *Transcript) Seal(id string) {
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages[i].Final = true
			return
		}
	}
}

// Remove deletes the message with the given ID. Used only when a send fails
// with zero accumulated content; a placeholder that already holds text is
// sealed instead, never removed.
func (t *Transcript) Remove(id string) {
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages = append(t.messages[:i], t.messages[i+1:]...)
			return
		}
	}
}

// Get returns the message with the given ID.
func (t *Transcript) Get(id string) (Message, bool) {
	for i := range t.messages {
		if t.messages[i].ID == id {
			return t.messages[i], true
		}
	}
	return Message{}, false
}

// Last returns the most recent message.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Clear removes all messages. Clearing an empty transcript is a no-op.
func (t *Transcript) Clear() {
	t.messages = nil
}

// Messages returns a copy of the message list.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

package messageapi

import (
	"fmt"
	"time"

	domerrors "github.com/garyellow/badgerchat-fulfillment/internal/errors"
)

// createdLayouts are tried in order when parsing ChatMessage.Created.
var createdLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
}

// ChatMessage is one post in a chatroom.
type ChatMessage struct {
	Poster   string `json:"poster"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Chatroom string `json:"chatroom"`
	Created  string `json:"created"`
}

// CreatedAt parses Created. Layouts without a zone are read as UTC.
func (m ChatMessage) CreatedAt() (time.Time, error) {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, m.Created); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable created timestamp %q", domerrors.ErrMalformedResponse, m.Created)
}

// MessagePage is one page of a chatroom, most recent first.
type MessagePage struct {
	Chatroom string
	Page     int
	Messages []ChatMessage
}

// Latest returns the most recent message.
func (p *MessagePage) Latest() (ChatMessage, error) {
	if p == nil || len(p.Messages) == 0 {
		return ChatMessage{}, domerrors.ErrNoMessagesFound
	}
	return p.Messages[0], nil
}

// First returns up to n messages in upstream order.
func (p *MessagePage) First(n int) []ChatMessage {
	if p == nil || n <= 0 {
		return nil
	}
	return p.Messages[:min(n, len(p.Messages))]
}

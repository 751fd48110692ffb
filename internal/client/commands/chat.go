package commands

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

type SendChatMessage struct {
	ThreadID string
	Text     string
}

func (c SendChatMessage) Name() string   { return "reply" }
func (c SendChatMessage) Target() string { return c.ThreadID }

func (c SendChatMessage) Validate() error {
	var v validator
	v.check(strings.TrimSpace(c.ThreadID) != "", "thread", "required")
	v.check(strings.TrimSpace(c.Text) != "", "text", "message is empty")
	return v.err()
}

// Execute replaces the thread's messages with the server copy. When the
// reply carries none, the sent message is appended locally.
func (c SendChatMessage) Execute(ctx context.Context, api client.Client) (Outcome[models.ChatThread], error) {
	text := strings.TrimSpace(c.Text)
	reply, err := api.ReplyChat(ctx, c.ThreadID, text)
	if err != nil {
		return Outcome[models.ChatThread]{}, err
	}

	sentAt := time.Now()
	return patch(func(t models.ChatThread) models.ChatThread {
		if len(reply.Messages) > 0 {
			t.Messages = reply.Messages
			if !reply.LastActivity.IsZero() {
				t.LastActivity = reply.LastActivity
			}
			return t
		}
		msgs := make([]models.Message, 0, len(t.Messages)+1)
		msgs = append(msgs, t.Messages...)
		t.Messages = append(msgs, models.Message{Sender: "admin", Text: text, Timestamp: sentAt})
		t.LastActivity = sentAt
		return t
	}), nil
}

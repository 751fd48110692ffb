package models

import "time"

type Message struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatThread mirrors one user's conversation. Messages are append-only from
// the console's point of view.
type ChatThread struct {
	ID           string    `json:"id"`
	UserName     string    `json:"userName"`
	Mobile       string    `json:"mobile"`
	Messages     []Message `json:"messages"`
	LastActivity time.Time `json:"lastActivity"`
}

func (c ChatThread) RecordID() string { return c.ID }

func (c ChatThread) SearchFields() []string {
	return []string{c.UserName, c.Mobile, c.ID}
}

func (c ChatThread) When() time.Time { return c.LastActivity }

func (c ChatThread) LastMessage() string {
	if len(c.Messages) == 0 {
		return ""
	}
	return c.Messages[len(c.Messages)-1].Text
}

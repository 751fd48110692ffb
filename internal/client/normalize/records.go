package normalize

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

var depositStatuses = map[string]string{
	"PENDING":  models.DepositPending,
	"SUCCESS":  models.DepositSuccess,
	"APPROVED": models.DepositApproved,
	"REJECTED": models.DepositRejected,
	"FAILED":   "Failed",
}

// DepositStatus maps any spelling of a known status onto the fixed
// vocabulary. Missing values become Pending; unknown ones are kept trimmed.
func DepositStatus(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.DepositPending
	}
	if canon, ok := depositStatuses[strings.ToUpper(s)]; ok {
		return canon
	}
	return s
}

// SpinResult upper-cases a spin result, defaulting to PENDING.
func SpinResult(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "PENDING"
	}
	return s
}

func (b *Batch) User(raw map[string]any) models.User {
	u := models.User{
		ID:      b.id(raw, "_id"),
		Name:    text(raw, "name", unknown),
		Email:   text(raw, "email", na),
		Mobile:  text(raw, "mobile", na),
		Wallet:  number(raw, "wallet"),
		Blocked: boolean(raw, "blocked"),
	}
	if t, ok := timestamp(raw, "createdAt"); ok {
		u.CreatedAt = t
	} else if t, ok := objectIDTime(u.ID); ok {
		u.CreatedAt = t
	}
	return u
}

func (b *Batch) Deposit(raw map[string]any) models.Deposit {
	d := models.Deposit{
		ID:            b.id(raw, "_id"),
		TransactionID: text(raw, "transectionID", text(raw, "transactionID", "-")),
		Name:          text(raw, "userName", unknown),
		Status:        DepositStatus(text(raw, "status", "")),
		Amount:        number(raw, "amount"),
		TotalDeposits: integer(raw, "totalDeposits"),
		Lifetime:      number(raw, "cumulativeDeposit"),
		Mobile:        text(raw, "mobile", na),
	}
	d.CreatedAt, _ = timestamp(raw, "createdAt")
	return d
}

func (b *Batch) Spin(raw map[string]any) models.Spin {
	s := models.Spin{
		ID:              b.id(raw, "_id"),
		UserID:          text(raw, "userId", na),
		UserName:        text(raw, "userName", unknown),
		Mobile:          text(raw, "mobile", na),
		Amount:          number(raw, "spinAmount"),
		Result:          SpinResult(text(raw, "result", "")),
		Multiplier:      text(raw, "multiplier", na),
		MultiplierIndex: integer(raw, "multiplierIndex"),
		WinAmount:       number(raw, "winAmount"),
		WalletAfterSpin: number(raw, "walletAfterSpin"),
	}
	if t, ok := timestamp(raw, "createdAt"); ok {
		s.Timestamp = t
	} else {
		s.Timestamp = b.Now
	}
	return s
}

func (b *Batch) UpiEntry(raw map[string]any) models.UpiEntry {
	u := models.UpiEntry{
		ID:        b.id(raw, "_id"),
		UPI:       text(raw, "upi", na),
		Bank:      text(raw, "bank", na),
		UserName:  text(raw, "userName", unknown),
		Mobile:    text(raw, "mobile", na),
		Reference: text(raw, "reference", ""),
	}
	u.CreatedAt, _ = timestamp(raw, "createdAt")
	return u
}

func (b *Batch) Executive(raw map[string]any) models.Executive {
	return models.Executive{
		ID:          b.id(raw, "_id"),
		Name:        text(raw, "name", unknown),
		Email:       text(raw, "email", na),
		Mobile:      text(raw, "mobile", na),
		Designation: text(raw, "designation", "Executive"),
		Permission:  text(raw, "permission", na),
		Approved:    boolean(raw, "isApproved"),
		Blocked:     boolean(raw, "blocked"),
	}
}

func (b *Batch) Message(raw map[string]any) models.Message {
	m := models.Message{
		Sender: strings.ToLower(text(raw, "sender", "user")),
		Text:   text(raw, "text", ""),
	}
	if t, ok := timestamp(raw, "timestamp"); ok {
		m.Timestamp = t
	} else {
		m.Timestamp, _ = timestamp(raw, "createdAt")
	}
	return m
}

func (b *Batch) ChatThread(raw map[string]any) models.ChatThread {
	c := models.ChatThread{
		ID:       b.id(raw, "userId"),
		UserName: text(raw, "userName", unknown),
		Mobile:   text(raw, "mobile", na),
	}

	msgs := Slice(raw, "messages")
	c.Messages = make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		msg := b.Message(m)
		c.Messages = append(c.Messages, msg)
		if msg.Timestamp.After(c.LastActivity) {
			c.LastActivity = msg.Timestamp
		}
	}
	if c.LastActivity.IsZero() {
		c.LastActivity = latest(raw, "updatedAt", "createdAt")
	}
	return c
}

func (b *Batch) AdminIdentity(raw map[string]any) models.AdminIdentity {
	return models.AdminIdentity{
		ID:    b.id(raw, "_id"),
		Name:  text(raw, "name", unknown),
		Email: text(raw, "email", na),
		Role:  strings.ToLower(text(raw, "role", "")),
	}
}

func latest(raw map[string]any, keys ...string) time.Time {
	for _, k := range keys {
		if t, ok := timestamp(raw, k); ok {
			return t
		}
	}
	return time.Time{}
}

// Users normalizes a whole collection with a fresh batch.
func Users(raw []map[string]any) []models.User {
	return each(NewBatch("user"), raw, (*Batch).User)
}

func Deposits(raw []map[string]any) []models.Deposit {
	return each(NewBatch("deposit"), raw, (*Batch).Deposit)
}

func Spins(raw []map[string]any) []models.Spin {
	return each(NewBatch("bet"), raw, (*Batch).Spin)
}

func UpiEntries(raw []map[string]any) []models.UpiEntry {
	return each(NewBatch("upi"), raw, (*Batch).UpiEntry)
}

func Executives(raw []map[string]any) []models.Executive {
	return each(NewBatch("exec"), raw, (*Batch).Executive)
}

func ChatThreads(raw []map[string]any) []models.ChatThread {
	return each(NewBatch("chat"), raw, (*Batch).ChatThread)
}

func each[T any](b *Batch, raw []map[string]any, fn func(*Batch, map[string]any) T) []T {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		out = append(out, fn(b, r))
	}
	return out
}

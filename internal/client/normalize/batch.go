package normalize

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Batch normalizes the records of one load and hands out synthetic ids for
// records that lack one.
type Batch struct {
	prefix string
	run    string
	seq    atomic.Uint64

	// Now is the fallback timestamp for spins without createdAt.
	Now time.Time
}

func NewBatch(prefix string) *Batch {
	return &Batch{prefix: prefix, run: uuid.NewString(), Now: time.Now()}
}

// NextID returns "<prefix>-<uuid>-<n>" with n starting at 1.
func (b *Batch) NextID() string {
	return fmt.Sprintf("%s-%s-%d", b.prefix, b.run, b.seq.Add(1))
}

func (b *Batch) id(raw map[string]any, key string) string {
	if id := text(raw, key, ""); id != "" {
		return id
	}
	return b.NextID()
}

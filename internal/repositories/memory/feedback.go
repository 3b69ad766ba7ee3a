package memory

import (
	"context"
	"sync"

	"github.com/arvindrk/eatdecider/internal/models"
)

// FeedbackLog is an append-only in-memory feedback store, safe for
// concurrent writers. Same-user events are ordered by timestamp at read
// time, so concurrent appends need no stricter coordination than the
// mutex below.
type FeedbackLog struct {
	mu     sync.RWMutex
	events []models.FeedbackEvent
}

func NewFeedbackLog() *FeedbackLog {
	return &FeedbackLog{}
}

func (l *FeedbackLog) Append(ctx context.Context, event models.FeedbackEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return nil
}

func (l *FeedbackLog) ListByUser(ctx context.Context, userKey string) ([]models.FeedbackEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.FeedbackEvent
	for _, ev := range l.events {
		if ev.UserKey == userKey {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (l *FeedbackLog) ListAll(ctx context.Context) ([]models.FeedbackEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.FeedbackEvent, len(l.events))
	copy(out, l.events)
	return out, nil
}

package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/arvindrk/eatdecider/internal/models"
)

func TestFeedbackLogConcurrentAppends(t *testing.T) {
	log := NewFeedbackLog()
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ev := models.FeedbackEvent{
				ID:        fmt.Sprintf("ev-%d", i),
				UserKey:   fmt.Sprintf("user-%d", i%5),
				ItemID:    "A",
				Outcome:   models.OutcomeSelected,
				Timestamp: time.Now(),
			}
			if err := log.Append(ctx, ev); err != nil {
				t.Errorf("append failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	events, err := log.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != writers {
		t.Errorf("got %d events, want %d", len(events), writers)
	}

	byUser, err := log.ListByUser(ctx, "user-0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byUser) != writers/5 {
		t.Errorf("got %d events for user-0, want %d", len(byUser), writers/5)
	}
}

package models

import "time"

// Outcome of a feedback event. Only "selected" affects scoring today;
// "ignored" is accepted and stored for future use.
type Outcome string

const (
	OutcomeSelected Outcome = "selected"
	OutcomeIgnored  Outcome = "ignored"
)

// Valid reports whether the outcome is one the engine accepts.
func (o Outcome) Valid() bool {
	return o == OutcomeSelected || o == OutcomeIgnored
}

// FeedbackEvent records that a user committed to (or ignored) an item.
// Events are append-only; the engine never mutates or deletes them.
type FeedbackEvent struct {
	ID        string    `json:"id"`
	UserKey   string    `json:"user_key"`
	ItemID    string    `json:"item_id"`
	Outcome   Outcome   `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// ItemStats summarises one user's selections of a single item.
type ItemStats struct {
	Count        int
	LastSelected time.Time
}

// UserHistory maps item id to selection stats for one user. It is a
// derived view rebuilt from the feedback log on every request, never a
// long-lived cache.
type UserHistory map[string]ItemStats

// BuildUserHistory folds an event log into per-item stats. Only
// "selected" events count toward the novelty penalty.
func BuildUserHistory(events []FeedbackEvent) UserHistory {
	history := make(UserHistory, len(events))
	for _, ev := range events {
		if ev.Outcome != OutcomeSelected {
			continue
		}
		stats := history[ev.ItemID]
		stats.Count++
		if ev.Timestamp.After(stats.LastSelected) {
			stats.LastSelected = ev.Timestamp
		}
		history[ev.ItemID] = stats
	}
	return history
}

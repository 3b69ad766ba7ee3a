package postgres

import (
	"context"

	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

func (r *FeedbackRepository) Append(ctx context.Context, event models.FeedbackEvent) error {
	query := `
        INSERT INTO feedback_events (id, user_key, item_id, outcome, recorded_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.UserKey,
		event.ItemID,
		string(event.Outcome),
		event.Timestamp,
	)
	return err
}

func (r *FeedbackRepository) ListByUser(ctx context.Context, userKey string) ([]models.FeedbackEvent, error) {
	query := `
        SELECT id, user_key, item_id, outcome, recorded_at
        FROM feedback_events
        WHERE user_key = $1
        ORDER BY recorded_at
    `
	rows, err := r.pool.Query(ctx, query, userKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.FeedbackEvent
	for rows.Next() {
		var ev models.FeedbackEvent
		var outcome string
		if err := rows.Scan(&ev.ID, &ev.UserKey, &ev.ItemID, &outcome, &ev.Timestamp); err != nil {
			return nil, err
		}
		ev.Outcome = models.Outcome(outcome)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *FeedbackRepository) ListAll(ctx context.Context) ([]models.FeedbackEvent, error) {
	query := `
        SELECT id, user_key, item_id, outcome, recorded_at
        FROM feedback_events
        ORDER BY recorded_at
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.FeedbackEvent
	for rows.Next() {
		var ev models.FeedbackEvent
		var outcome string
		if err := rows.Scan(&ev.ID, &ev.UserKey, &ev.ItemID, &outcome, &ev.Timestamp); err != nil {
			return nil, err
		}
		ev.Outcome = models.Outcome(outcome)
		events = append(events, ev)
	}
	return events, rows.Err()
}

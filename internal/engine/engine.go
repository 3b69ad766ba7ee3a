package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/arvindrk/eatdecider/internal/repositories"
	"github.com/lucsky/cuid"
	"github.com/rs/zerolog"
)

const anonymousUser = "anonymous"

// EventPublisher streams accepted feedback events to an external topic.
// Publishing is best-effort; failures are logged, never surfaced.
type EventPublisher interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// Engine turns a catalog plus a user's constraints and history into
// recommendations. It holds no per-user state between requests: history
// is rebuilt from the feedback store every time, so concurrent requests
// need no coordination.
type Engine struct {
	cfg       *models.Config
	catalog   repositories.CatalogRepository
	feedback  repositories.FeedbackRepository
	fees      *FeeCalculator
	publisher EventPublisher
	logger    zerolog.Logger
	now       func() time.Time
}

func New(cfg *models.Config, catalog repositories.CatalogRepository, feedback repositories.FeedbackRepository, logger zerolog.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		catalog:  catalog,
		feedback: feedback,
		fees:     NewFeeCalculator(cfg.Fees),
		logger:   logger.With().Str("component", "engine").Logger(),
		now:      time.Now,
	}
}

// SetPublisher attaches an optional feedback event stream.
func (e *Engine) SetPublisher(p EventPublisher) {
	e.publisher = p
}

// Recommend runs the pipeline: validate, filter, score, select. An empty
// filtered set is a valid outcome carrying an explanatory note, never an
// error; constraints are never relaxed to invent results.
func (e *Engine) Recommend(ctx context.Context, cons models.Constraints) (*models.RecommendResponse, error) {
	if err := cons.Validate(); err != nil {
		return nil, err
	}
	if cons.UserKey == "" {
		cons.UserKey = anonymousUser
	}

	items, err := e.catalog.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog read: %v", models.ErrStoreUnavailable, err)
	}
	events, err := e.feedback.ListByUser(ctx, cons.UserKey)
	if err != nil {
		return nil, fmt.Errorf("%w: feedback read: %v", models.ErrStoreUnavailable, err)
	}
	history := models.BuildUserHistory(events)
	now := e.now()

	cands, el := e.filterCandidates(items, cons)
	if len(cands) == 0 {
		return &models.RecommendResponse{Picks: []models.Pick{}, Note: el.note()}, nil
	}

	if cons.RankedMode() {
		picks, total := e.buildRanked(cands, cons, history, now)
		resp := &models.RecommendResponse{Picks: picks, TotalCandidates: total}
		if len(picks) < cons.Limit {
			resp.Note = fmt.Sprintf("Only %d items qualify under your constraints.", len(picks))
		}
		return resp, nil
	}

	picks, note := e.buildBundle(cands, cons, history, now)
	return &models.RecommendResponse{Picks: picks, Note: note}, nil
}

// RecordFeedback appends one feedback event. Append failure wraps
// ErrWriteFailed so callers can report "feedback not recorded" without
// blocking the user's ability to order; the event is additionally
// published to Kafka when a publisher is attached.
func (e *Engine) RecordFeedback(ctx context.Context, userKey, itemID string, outcome models.Outcome) (models.FeedbackEvent, error) {
	if itemID == "" {
		return models.FeedbackEvent{}, &models.InvalidConstraintError{Field: "item_id", Reason: "must not be empty"}
	}
	if !outcome.Valid() {
		return models.FeedbackEvent{}, &models.InvalidConstraintError{Field: "outcome", Reason: `must be "selected" or "ignored"`}
	}
	if userKey == "" {
		userKey = anonymousUser
	}

	event := models.FeedbackEvent{
		ID:        cuid.New(),
		UserKey:   userKey,
		ItemID:    itemID,
		Outcome:   outcome,
		Timestamp: e.now().UTC(),
	}
	if err := e.feedback.Append(ctx, event); err != nil {
		return event, fmt.Errorf("%w: %v", models.ErrWriteFailed, err)
	}

	e.publish(event)
	return event, nil
}

func (e *Engine) publish(event models.FeedbackEvent) {
	if e.publisher == nil {
		return
	}
	msg, err := json.Marshal(event)
	if err != nil {
		e.logger.Error().Err(err).Str("event_id", event.ID).Msg("cannot serialize feedback event")
		return
	}
	if err := e.publisher.WriteMessage(e.cfg.Kafka.Topic, msg); err != nil {
		e.logger.Warn().Err(err).Str("event_id", event.ID).Msg("feedback event not published")
	}
}

package repositories

import (
	"context"

	"github.com/arvindrk/eatdecider/internal/models"
)

type CatalogRepository interface {
	BulkCreate(ctx context.Context, items []models.Item) error
	GetAll(ctx context.Context) ([]models.Item, error)
	Count(ctx context.Context) (int, error)
}

type FeedbackRepository interface {
	Append(ctx context.Context, event models.FeedbackEvent) error
	ListByUser(ctx context.Context, userKey string) ([]models.FeedbackEvent, error)
	ListAll(ctx context.Context) ([]models.FeedbackEvent, error)
}

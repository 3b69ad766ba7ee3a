package postgres

import (
	"context"

	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) BulkCreate(ctx context.Context, items []models.Item) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{
			"id", "restaurant", "name", "cuisine", "base_price",
			"rating", "eta_min", "veg", "spice", "oil_level", "tags", "zone",
		},
		pgx.CopyFromSlice(len(items), func(i int) ([]interface{}, error) {
			return []interface{}{
				items[i].ID,
				items[i].Restaurant,
				items[i].Name,
				items[i].Cuisine,
				items[i].BasePrice,
				items[i].Rating,
				items[i].EtaMin,
				items[i].Veg,
				items[i].Spice,
				string(items[i].OilLevel),
				items[i].Tags,
				items[i].Zone,
			}, nil
		}),
	)
	return err
}

func (r *CatalogRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	query := `
        SELECT
            id,
            restaurant,
            name,
            cuisine,
            base_price,
            rating,
            eta_min,
            veg,
            spice,
            oil_level,
            tags,
            zone
        FROM menu_items
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		var oilLevel string
		err := rows.Scan(
			&item.ID,
			&item.Restaurant,
			&item.Name,
			&item.Cuisine,
			&item.BasePrice,
			&item.Rating,
			&item.EtaMin,
			&item.Veg,
			&item.Spice,
			&oilLevel,
			&item.Tags,
			&item.Zone,
		)
		if err != nil {
			return nil, err
		}
		item.OilLevel = models.OilLevel(oilLevel)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

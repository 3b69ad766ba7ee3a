package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/arvindrk/eatdecider/internal/models"
)

// Catalog is an in-memory catalog store, loaded once from a JSON file or
// seeded programmatically. Reads are lock-free after construction except
// when BulkCreate is used concurrently, hence the RWMutex.
type Catalog struct {
	mu    sync.RWMutex
	items []models.Item
}

func NewCatalog(items []models.Item) *Catalog {
	return &Catalog{items: items}
}

// NewCatalogFromFile loads items from a JSON array file, the same shape
// the /menu endpoint serves.
func NewCatalogFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return NewCatalog(items), nil
}

func (c *Catalog) BulkCreate(ctx context.Context, items []models.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, items...)
	return nil
}

func (c *Catalog) GetAll(ctx context.Context) ([]models.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Item, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *Catalog) Count(ctx context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items), nil
}

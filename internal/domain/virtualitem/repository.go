package virtualitem

import (
	"context"
	"time"
)

// GroupCount is the number of items sharing one raw attribute value.
type GroupCount struct {
	Value string
	Count int64
}

// Repository exposes data access for virtual items. Implementations keep
// no business rules; the Service owns validation, ids and timestamps.
type Repository interface {
	Create(ctx context.Context, item *VirtualItem) error
	// FindByID returns nil, nil when no item has the id.
	FindByID(ctx context.Context, id string) (*VirtualItem, error)
	// FindByFilter returns matches newest first. A limit <= 0 returns every
	// match after skip.
	FindByFilter(ctx context.Context, filter Filter, skip, limit int) ([]*VirtualItem, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// Update writes the given known fields plus updatedAt and returns the
	// stored item, or nil, nil when no item has the id.
	Update(ctx context.Context, id string, fields Fields, updatedAt time.Time) (*VirtualItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	// DistinctValues returns the raw distinct values stored under key.
	DistinctValues(ctx context.Context, key string) ([]string, error)
	// CountBy groups every item by the raw value stored under key.
	CountBy(ctx context.Context, key string) ([]GroupCount, error)
}

package virtualitem

import (
	"context"
	"sync"
	"time"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
)

// InMemoryRepository is a thread-safe repository that keeps items for the
// lifetime of the process.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []*domain.VirtualItem
}

var _ domain.Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository returns an empty store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *domain.VirtualItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, item.Clone())
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*domain.VirtualItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.entries[i].Clone(), nil
	}
	return nil, nil
}

func (r *InMemoryRepository) FindByFilter(ctx context.Context, filter domain.Filter, skip, limit int) ([]*domain.VirtualItem, error) {
	r.mu.RLock()
	matches := make([]*domain.VirtualItem, 0, len(r.entries))
	for _, item := range r.entries {
		if filter.Matches(item) {
			matches = append(matches, item.Clone())
		}
	}
	r.mu.RUnlock()

	domain.SortNewestFirst(matches)

	if skip < 0 {
		skip = 0
	}
	if skip >= len(matches) {
		return []*domain.VirtualItem{}, nil
	}
	matches = matches[skip:]
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *InMemoryRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, item := range r.entries {
		if filter.Matches(item) {
			total++
		}
	}
	return total, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, fields domain.Fields, updatedAt time.Time) (*domain.VirtualItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	item := r.entries[i]
	item.Apply(fields)
	item.UpdatedAt = updatedAt
	return item.Clone(), nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return true, nil
}

func (r *InMemoryRepository) DistinctValues(ctx context.Context, key string) ([]string, error) {
	groups, err := r.CountBy(ctx, key)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(groups))
	for i, g := range groups {
		values[i] = g.Value
	}
	return values, nil
}

func (r *InMemoryRepository) CountBy(ctx context.Context, key string) ([]domain.GroupCount, error) {
	if _, ok := domain.LookupField(key); !ok {
		return nil, unknownField(ctx, key)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	index := make(map[string]int)
	groups := []domain.GroupCount{}
	for _, item := range r.entries {
		value, _ := item.Value(key)
		if i, seen := index[value]; seen {
			groups[i].Count++
			continue
		}
		index[value] = len(groups)
		groups = append(groups, domain.GroupCount{Value: value, Count: 1})
	}
	return groups, nil
}

func (r *InMemoryRepository) indexOf(id string) int {
	for i, item := range r.entries {
		if item.ID == id {
			return i
		}
	}
	return -1
}

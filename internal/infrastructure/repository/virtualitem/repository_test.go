package virtualitem

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/database"
)

type backend struct {
	name string
	open func(t *testing.T) domain.Repository
}

var backends = []backend{
	{"memory", func(t *testing.T) domain.Repository { return NewInMemoryRepository() }},
	{"sqlite", func(t *testing.T) domain.Repository {
		t.Helper()
		db, err := database.Connect(database.Config{
			Driver:   database.DriverSQLite,
			DSN:      ":memory:",
			LogLevel: gormlogger.Silent,
		}, zerolog.Nop())
		require.NoError(t, err)
		require.NoError(t, database.AutoMigrate(context.Background(), db, zerolog.Nop()))
		t.Cleanup(func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
		return NewGormRepository(db)
	}},
}

var baseTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newItem(n int, mutate func(*domain.VirtualItem)) *domain.VirtualItem {
	item := &domain.VirtualItem{
		ID:        fmt.Sprintf("00000000-0000-4000-8000-%012d", n),
		Platform:  "Roblox",
		Title:     fmt.Sprintf("Item %02d", n),
		Category:  "Wearable",
		Type:      "Hat",
		CreatedAt: baseTime.Add(time.Duration(n) * time.Microsecond),
	}
	item.UpdatedAt = item.CreatedAt
	if mutate != nil {
		mutate(item)
	}
	return item
}

func seed(t *testing.T, r domain.Repository, items ...*domain.VirtualItem) {
	t.Helper()
	for _, item := range items {
		require.NoError(t, r.Create(context.Background(), item))
	}
}

func titles(items []*domain.VirtualItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestRepositoryContract(t *testing.T) {
	for _, b := range backends {
		b := b
		t.Run(b.name, func(t *testing.T) {
			t.Run("create and find", func(t *testing.T) {
				r := b.open(t)
				item := newItem(1, func(v *domain.VirtualItem) {
					v.PurchaseCurrency1 = "USD"
					v.P2PSaleRoyalty = "5%"
					v.Set = "Genesis"
				})
				seed(t, r, item)

				got, err := r.FindByID(context.Background(), item.ID)
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, item, got)

				missing, err := r.FindByID(context.Background(), "nope")
				require.NoError(t, err)
				assert.Nil(t, missing)
			})

			t.Run("filter ordering and paging", func(t *testing.T) {
				r := b.open(t)
				seed(t, r,
					newItem(1, func(v *domain.VirtualItem) { v.Description = "100% cotton" }),
					newItem(2, func(v *domain.VirtualItem) { v.Platform = "Fortnite"; v.Artist = "Jane_Doe" }),
					newItem(3, func(v *domain.VirtualItem) { v.Rarity = "Rare" }),
					newItem(4, func(v *domain.VirtualItem) { v.IntellectualProperty = "Hero\\Saga" }),
				)
				ctx := context.Background()

				all, err := r.FindByFilter(ctx, domain.Filter{}, 0, 0)
				require.NoError(t, err)
				assert.Equal(t, []string{"Item 04", "Item 03", "Item 02", "Item 01"}, titles(all))

				page, err := r.FindByFilter(ctx, domain.Filter{}, 1, 2)
				require.NoError(t, err)
				assert.Equal(t, []string{"Item 03", "Item 02"}, titles(page))

				empty, err := r.FindByFilter(ctx, domain.Filter{}, 10, 2)
				require.NoError(t, err)
				assert.Empty(t, empty)

				cases := []struct {
					filter domain.Filter
					want   []string
				}{
					{domain.Filter{Platform: "ROB"}, []string{"Item 04", "Item 03", "Item 01"}},
					{domain.Filter{Platform: "rob", Rarity: "rar"}, []string{"Item 03"}},
					{domain.Filter{Search: "100%"}, []string{"Item 01"}},
					{domain.Filter{Search: "%"}, []string{"Item 01"}},
					{domain.Filter{Artist: "e_d"}, []string{"Item 02"}},
					{domain.Filter{Artist: "e-d"}, []string{}},
					{domain.Filter{Search: "o\\s"}, []string{"Item 04"}},
					{domain.Filter{Search: "item 0", Platform: "fort"}, []string{"Item 02"}},
				}
				for _, c := range cases {
					got, err := r.FindByFilter(ctx, c.filter, 0, 0)
					require.NoError(t, err)
					assert.Equal(t, c.want, titles(got), "filter %+v", c.filter)

					n, err := r.Count(ctx, c.filter)
					require.NoError(t, err)
					assert.Equal(t, int64(len(c.want)), n, "count %+v", c.filter)
				}
			})

			t.Run("non-ascii case folding", func(t *testing.T) {
				r := b.open(t)
				seed(t, r,
					newItem(1, func(v *domain.VirtualItem) { v.Platform = "ÉLAN World"; v.Title = "Ünicorn" }),
					newItem(2, nil),
				)
				ctx := context.Background()
				filter := domain.Filter{Platform: "élan", Search: "ünic"}

				got, err := r.FindByFilter(ctx, filter, 0, 0)
				require.NoError(t, err)
				assert.Equal(t, []string{"Ünicorn"}, titles(got))

				total, err := r.Count(ctx, filter)
				require.NoError(t, err)
				assert.Equal(t, int64(1), total)

				upper, err := r.FindByFilter(ctx, domain.Filter{Search: "ÜNICORN"}, 0, 0)
				require.NoError(t, err)
				assert.Equal(t, []string{"Ünicorn"}, titles(upper))
			})

			t.Run("update", func(t *testing.T) {
				r := b.open(t)
				item := newItem(1, nil)
				seed(t, r, item)
				ctx := context.Background()

				later := item.UpdatedAt.Add(time.Second)
				updated, err := r.Update(ctx, item.ID, domain.Fields{"rarity": "Epic", "set": "S1"}, later)
				require.NoError(t, err)
				require.NotNil(t, updated)
				assert.Equal(t, "Epic", updated.Rarity)
				assert.Equal(t, "S1", updated.Set)
				assert.Equal(t, item.Title, updated.Title)
				assert.Equal(t, item.CreatedAt, updated.CreatedAt)
				assert.Equal(t, later, updated.UpdatedAt)

				none, err := r.Update(ctx, "nope", domain.Fields{"rarity": "x"}, later)
				require.NoError(t, err)
				assert.Nil(t, none)
			})

			t.Run("delete", func(t *testing.T) {
				r := b.open(t)
				item := newItem(1, nil)
				seed(t, r, item)
				ctx := context.Background()

				ok, err := r.Delete(ctx, item.ID)
				require.NoError(t, err)
				assert.True(t, ok)

				ok, err = r.Delete(ctx, item.ID)
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("distinct and group counts", func(t *testing.T) {
				r := b.open(t)
				seed(t, r,
					newItem(1, func(v *domain.VirtualItem) { v.Rarity = "Rare" }),
					newItem(2, func(v *domain.VirtualItem) { v.Rarity = "Rare" }),
					newItem(3, nil),
				)
				ctx := context.Background()

				values, err := r.DistinctValues(ctx, domain.KeyRarity)
				require.NoError(t, err)
				assert.ElementsMatch(t, []string{"Rare", ""}, values)

				groups, err := r.CountBy(ctx, domain.KeyRarity)
				require.NoError(t, err)
				assert.ElementsMatch(t, []domain.GroupCount{{Value: "Rare", Count: 2}, {Value: "", Count: 1}}, groups)

				_, err = r.CountBy(ctx, "nope")
				assert.Error(t, err)
			})
		})
	}
}

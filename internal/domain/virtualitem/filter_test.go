package virtualitem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatches(t *testing.T) {
	item := &VirtualItem{
		Platform:             "Roblox",
		Category:             "Wearable",
		Title:                "Golden Sword",
		Description:          "A shiny blade",
		IntellectualProperty: "Heroes",
		Artist:               "Jane",
		Rarity:               "",
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter", Filter{}, true},
		{"blank values ignored", Filter{Platform: "  ", Search: " "}, true},
		{"case-insensitive substring", Filter{Platform: "ROB"}, true},
		{"all filters must match", Filter{Platform: "rob", Category: "weapon"}, false},
		{"search title", Filter{Search: "golden"}, true},
		{"search description", Filter{Search: "SHINY"}, true},
		{"search ip", Filter{Search: "hero"}, true},
		{"search artist", Filter{Search: "jan"}, true},
		{"search misses platform", Filter{Search: "roblox"}, false},
		{"search and filter combined", Filter{Platform: "rob", Search: "blade"}, true},
		{"filter on empty field", Filter{Rarity: "rare"}, false},
		{"regex characters are literal", Filter{Search: "gold.*"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(item))
		})
	}
}

func TestFilterTermsOrderAndTrim(t *testing.T) {
	terms := Filter{Rarity: " Rare ", Platform: "x"}.Terms()
	if assert.Len(t, terms, 2) {
		assert.Equal(t, KeyPlatform, terms[0].Field.Key)
		assert.Equal(t, KeyRarity, terms[1].Field.Key)
		assert.Equal(t, "Rare", terms[1].Value)
	}
	assert.True(t, Filter{Artist: " "}.IsEmpty())
	assert.False(t, Filter{Search: "a"}.IsEmpty())
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []*VirtualItem{
		{ID: "a", CreatedAt: base},
		{ID: "c", CreatedAt: base.Add(time.Second)},
		{ID: "b", CreatedAt: base},
	}
	SortNewestFirst(items)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "a", items[2].ID)
}

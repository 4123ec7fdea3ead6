package virtualitem

import (
	"sort"
	"strings"
)

// Filter narrows a listing. Every non-blank attribute filter must match
// (case-insensitive substring) and, when Search is set, at least one of the
// SearchFields must contain it.
type Filter struct {
	Platform             string `form:"platform" json:"platform,omitempty"`
	IntellectualProperty string `form:"intellectualProperty" json:"intellectualProperty,omitempty"`
	Category             string `form:"category" json:"category,omitempty"`
	Type                 string `form:"type" json:"type,omitempty"`
	Collection           string `form:"collection" json:"collection,omitempty"`
	Series               string `form:"series" json:"series,omitempty"`
	Artist               string `form:"artist" json:"artist,omitempty"`
	Rarity               string `form:"rarity" json:"rarity,omitempty"`
	Search               string `form:"search" json:"search,omitempty"`
}

// Term is one attribute constraint of a Filter.
type Term struct {
	Field Field
	Value string
}

// Terms returns the active attribute constraints in FilterableFields order.
func (f Filter) Terms() []Term {
	values := map[string]string{
		KeyPlatform:             f.Platform,
		KeyIntellectualProperty: f.IntellectualProperty,
		KeyCategory:             f.Category,
		KeyType:                 f.Type,
		KeyCollection:           f.Collection,
		KeySeries:               f.Series,
		KeyArtist:               f.Artist,
		KeyRarity:               f.Rarity,
	}
	var terms []Term
	for _, key := range FilterableFields {
		value := strings.TrimSpace(values[key])
		if value == "" {
			continue
		}
		field, _ := LookupField(key)
		terms = append(terms, Term{Field: field, Value: value})
	}
	return terms
}

// SearchTerm returns the trimmed free-text term.
func (f Filter) SearchTerm() string {
	return strings.TrimSpace(f.Search)
}

// IsEmpty reports whether the filter matches everything.
func (f Filter) IsEmpty() bool {
	return len(f.Terms()) == 0 && f.SearchTerm() == ""
}

// Matches evaluates the filter against a single item.
func (f Filter) Matches(item *VirtualItem) bool {
	for _, t := range f.Terms() {
		v, _ := item.Value(t.Field.Key)
		if !containsFold(v, t.Value) {
			return false
		}
	}
	search := f.SearchTerm()
	if search == "" {
		return true
	}
	for _, key := range SearchFields {
		v, _ := item.Value(key)
		if containsFold(v, search) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SortNewestFirst orders items by creation time descending, breaking ties by
// id descending.
func SortNewestFirst(items []*VirtualItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

package virtualitem

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

// UnknownRarity labels items whose rarity was left blank.
const UnknownRarity = "Unknown"

// FilterOptions lists the distinct values available for each filterable field.
type FilterOptions struct {
	Platforms              []string `json:"platforms"`
	IntellectualProperties []string `json:"intellectualProperties"`
	Categories             []string `json:"categories"`
	Types                  []string `json:"types"`
	Collections            []string `json:"collections"`
	Series                 []string `json:"series"`
	Artists                []string `json:"artists"`
	Rarities               []string `json:"rarities"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type RarityCount struct {
	Rarity string `json:"rarity"`
	Count  int64  `json:"count"`
}

// Stats aggregates the catalog.
type Stats struct {
	TotalItems int64           `json:"totalItems"`
	ByPlatform []PlatformCount `json:"byPlatform"`
	ByCategory []CategoryCount `json:"byCategory"`
	ByRarity   []RarityCount   `json:"byRarity"`
}

// SkippedRow records an import row that was not stored. Row is the 1-based
// position among the submitted data rows.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult is the outcome of a bulk import.
type ImportResult struct {
	Imported []*VirtualItem `json:"imported"`
	Skipped  []SkippedRow   `json:"skipped"`
}

// Service describes the business logic surface for virtual item operations.
type Service interface {
	Create(ctx context.Context, fields Fields) (*VirtualItem, error)
	GetByID(ctx context.Context, id string) (*VirtualItem, error)
	List(ctx context.Context, filter Filter) ([]*VirtualItem, error)
	ListPage(ctx context.Context, filter Filter, page PageRequest) (*Page, error)
	Update(ctx context.Context, id string, fields Fields) (*VirtualItem, error)
	Delete(ctx context.Context, id string) error
	UniqueValues(ctx context.Context, key string) ([]string, error)
	FilterOptions(ctx context.Context) (*FilterOptions, error)
	Stats(ctx context.Context) (*Stats, error)
	Import(ctx context.Context, rows []Fields) (*ImportResult, error)
	Export(ctx context.Context) ([]*VirtualItem, error)
}

// Option customises a service.
type Option func(*service)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.clock = newMonotonicClock(now)
	}
}

// WithIDGenerator replaces the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *service) {
		s.newID = newID
	}
}

type service struct {
	repo  Repository
	log   zerolog.Logger
	clock *monotonicClock
	newID func() string
}

// NewService wires the virtual item service with its repository.
func NewService(repo Repository, log zerolog.Logger, opts ...Option) Service {
	s := &service{
		repo:  repo,
		log:   log.With().Str("component", "virtual-item-service").Logger(),
		clock: newMonotonicClock(time.Now),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, fields Fields) (*VirtualItem, error) {
	known := fields.Known()
	if missing := known.Missing(RequiredFields); len(missing) > 0 {
		return nil, platformerrors.NewValidationError(ctx, platformerrors.LayerDomain,
			"missing required fields: "+strings.Join(missing, ", "), missing, "b403d0fe-49e0-4642-ba63-62eb477d1022")
	}
	return s.create(ctx, known)
}

func (s *service) create(ctx context.Context, fields Fields) (*VirtualItem, error) {
	item := &VirtualItem{}
	item.Apply(fields)
	item.ID = s.newID()
	now := s.clock.Next(time.Time{})
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create virtual item")
	}
	return item, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*VirtualItem, error) {
	if strings.TrimSpace(id) == "" {
		return nil, notFound(ctx, id)
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load virtual item")
	}
	if item == nil {
		return nil, notFound(ctx, id)
	}
	return item, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*VirtualItem, error) {
	items, err := s.repo.FindByFilter(ctx, filter, 0, 0)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list virtual items")
	}
	return items, nil
}

func (s *service) ListPage(ctx context.Context, filter Filter, page PageRequest) (*Page, error) {
	if page.Page < 1 || page.Limit < 1 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"page and limit must be positive integers", nil, "15b07f1e-2d82-4e76-bd38-82c33f6767bf")
	}
	if !page.InRange() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"page number out of range", nil, "c8e1f4d2-6a3b-4f0e-9d57-2b8a41e6f903")
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to count virtual items")
	}
	items, err := s.repo.FindByFilter(ctx, filter, page.Skip(), page.Limit)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list virtual items")
	}
	return &Page{
		Items: items,
		Total: total,
		Info:  NewPageInfo(page, total),
	}, nil
}

func (s *service) Update(ctx context.Context, id string, fields Fields) (*VirtualItem, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	known := fields.Known()
	var blanked []string
	for _, key := range RequiredFields {
		if v, ok := known[key]; ok && strings.TrimSpace(v) == "" {
			blanked = append(blanked, key)
		}
	}
	if len(blanked) > 0 {
		return nil, platformerrors.NewValidationError(ctx, platformerrors.LayerDomain,
			"required fields cannot be blank: "+strings.Join(blanked, ", "), blanked, "9c3d0c53-377b-4e16-9f16-7744ce1a9ff5")
	}

	updated, err := s.repo.Update(ctx, id, known, s.clock.Next(existing.UpdatedAt))
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update virtual item")
	}
	if updated == nil {
		return nil, notFound(ctx, id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return notFound(ctx, id)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete virtual item")
	}
	if !deleted {
		return notFound(ctx, id)
	}
	return nil
}

func (s *service) UniqueValues(ctx context.Context, key string) ([]string, error) {
	if _, ok := LookupField(key); !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unknown field %q", key), nil, "ab33a587-34fc-4901-afee-aae57cbbfd00")
	}
	raw, err := s.repo.DistinctValues(ctx, key)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load distinct values")
	}

	seen := make(map[string]struct{}, len(raw))
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

func (s *service) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	opts := &FilterOptions{}
	targets := []struct {
		key string
		dst *[]string
	}{
		{KeyPlatform, &opts.Platforms},
		{KeyIntellectualProperty, &opts.IntellectualProperties},
		{KeyCategory, &opts.Categories},
		{KeyType, &opts.Types},
		{KeyCollection, &opts.Collections},
		{KeySeries, &opts.Series},
		{KeyArtist, &opts.Artists},
		{KeyRarity, &opts.Rarities},
	}
	for _, t := range targets {
		values, err := s.UniqueValues(ctx, t.key)
		if err != nil {
			return nil, err
		}
		*t.dst = values
	}
	return opts, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.repo.Count(ctx, Filter{})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to count virtual items")
	}

	byPlatform, err := s.groups(ctx, KeyPlatform, "")
	if err != nil {
		return nil, err
	}
	byCategory, err := s.groups(ctx, KeyCategory, "")
	if err != nil {
		return nil, err
	}
	byRarity, err := s.groups(ctx, KeyRarity, UnknownRarity)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalItems: total,
		ByPlatform: make([]PlatformCount, 0, len(byPlatform)),
		ByCategory: make([]CategoryCount, 0, len(byCategory)),
		ByRarity:   make([]RarityCount, 0, len(byRarity)),
	}
	for _, g := range byPlatform {
		stats.ByPlatform = append(stats.ByPlatform, PlatformCount{Platform: g.Value, Count: g.Count})
	}
	for _, g := range byCategory {
		stats.ByCategory = append(stats.ByCategory, CategoryCount{Category: g.Value, Count: g.Count})
	}
	for _, g := range byRarity {
		stats.ByRarity = append(stats.ByRarity, RarityCount{Rarity: g.Value, Count: g.Count})
	}
	return stats, nil
}

// groups loads the counts for key, folds blank values into blankLabel when
// one is given, and orders the result by count descending then value.
func (s *service) groups(ctx context.Context, key, blankLabel string) ([]GroupCount, error) {
	raw, err := s.repo.CountBy(ctx, key)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to aggregate virtual items")
	}

	merged := make(map[string]int64, len(raw))
	for _, g := range raw {
		value := g.Value
		if blankLabel != "" && strings.TrimSpace(value) == "" {
			value = blankLabel
		}
		merged[value] += g.Count
	}

	out := make([]GroupCount, 0, len(merged))
	for value, count := range merged {
		out = append(out, GroupCount{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}

func (s *service) Import(ctx context.Context, rows []Fields) (*ImportResult, error) {
	result := &ImportResult{
		Imported: make([]*VirtualItem, 0, len(rows)),
		Skipped:  []SkippedRow{},
	}
	for i, row := range rows {
		known := row.Known()
		if missing := known.Missing(ImportRequiredFields); len(missing) > 0 {
			result.Skipped = append(result.Skipped, SkippedRow{
				Row:    i + 1,
				Reason: "missing required fields: " + strings.Join(missing, ", "),
			})
			continue
		}
		item, err := s.create(ctx, known)
		if err != nil {
			s.log.Error().Err(err).Int("row", i+1).Int("imported", len(result.Imported)).Msg("import stopped")
			return result, err
		}
		result.Imported = append(result.Imported, item)
	}

	event := s.log.Info()
	if len(result.Skipped) > 0 {
		event = s.log.Warn()
	}
	event.Int("rows", len(rows)).
		Int("imported", len(result.Imported)).
		Int("skipped", len(result.Skipped)).
		Msg("import finished")
	return result, nil
}

func (s *service) Export(ctx context.Context) ([]*VirtualItem, error) {
	items, err := s.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, nil
}

func notFound(ctx context.Context, id string) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
		"virtual item not found", nil, "ba4bca37-18de-4452-a317-47853d4963c7", map[string]any{"item_id": id})
}

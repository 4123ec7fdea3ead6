package virtualitem

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/database"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/database/entities"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

// GormRepository persists virtual items in PostgreSQL or SQLite using GORM.
type GormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*GormRepository)(nil)

// NewGormRepository creates a repository backed by the provided DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create implements domain.Repository.
func (r *GormRepository) Create(ctx context.Context, item *domain.VirtualItem) error {
	if err := r.db.WithContext(ctx).Create(entities.NewSchemaVirtualItem(item)).Error; err != nil {
		return dbError(ctx, err, "failed to insert virtual item", "2ab824c2-b98c-4776-8003-2a20fe2eafdb")
	}
	return nil
}

// FindByID implements domain.Repository.
func (r *GormRepository) FindByID(ctx context.Context, id string) (*domain.VirtualItem, error) {
	var rows []entities.VirtualItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, dbError(ctx, err, "failed to find virtual item", "268f62b1-2b55-4669-b1e7-5999e584a274")
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].EtoD(), nil
}

// FindByFilter implements domain.Repository.
func (r *GormRepository) FindByFilter(ctx context.Context, filter domain.Filter, skip, limit int) ([]*domain.VirtualItem, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&entities.VirtualItem{}), filter).
		Order("created_at DESC").
		Order("id DESC")
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []entities.VirtualItem
	if err := query.Find(&rows).Error; err != nil {
		return nil, dbError(ctx, err, "failed to list virtual items", "5493f54a-76f3-42dd-b610-61cbd32fe011")
	}

	result := make([]*domain.VirtualItem, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// Count implements domain.Repository.
func (r *GormRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	var total int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&entities.VirtualItem{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, dbError(ctx, err, "failed to count virtual items", "e00f25a9-3486-425d-89e8-50b412888144")
	}
	return total, nil
}

// Update implements domain.Repository.
func (r *GormRepository) Update(ctx context.Context, id string, fields domain.Fields, updatedAt time.Time) (*domain.VirtualItem, error) {
	updates := map[string]interface{}{
		"updated_at": updatedAt.UTC(),
	}
	for key, value := range fields {
		if f, ok := domain.LookupField(key); ok {
			updates[f.Column] = value
		}
	}

	result := r.db.WithContext(ctx).Model(&entities.VirtualItem{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, dbError(ctx, result.Error, "failed to update virtual item", "3fa93b7b-2305-4d98-9a93-6832ec8c46b1")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

// Delete implements domain.Repository.
func (r *GormRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.VirtualItem{})
	if result.Error != nil {
		return false, dbError(ctx, result.Error, "failed to delete virtual item", "df7643a1-653e-459e-a1d0-a108a97fcbaa")
	}
	return result.RowsAffected > 0, nil
}

// DistinctValues implements domain.Repository.
func (r *GormRepository) DistinctValues(ctx context.Context, key string) ([]string, error) {
	f, ok := domain.LookupField(key)
	if !ok {
		return nil, unknownField(ctx, key)
	}
	var values []string
	err := r.db.WithContext(ctx).Model(&entities.VirtualItem{}).
		Distinct().
		Pluck(f.Column, &values).Error
	if err != nil {
		return nil, dbError(ctx, err, "failed to load distinct values", "bcb8bcad-2ffb-4344-aa06-ec80f80deb0b")
	}
	return values, nil
}

type groupRow struct {
	Label string
	Total int64
}

// CountBy implements domain.Repository.
func (r *GormRepository) CountBy(ctx context.Context, key string) ([]domain.GroupCount, error) {
	f, ok := domain.LookupField(key)
	if !ok {
		return nil, unknownField(ctx, key)
	}
	var rows []groupRow
	err := r.db.WithContext(ctx).Model(&entities.VirtualItem{}).
		Select(r.quote(f.Column) + " AS label, COUNT(*) AS total").
		Group(f.Column).
		Scan(&rows).Error
	if err != nil {
		return nil, dbError(ctx, err, "failed to aggregate virtual items", "b975ca79-26bb-4dae-92b4-9eeb83c3f211")
	}

	groups := make([]domain.GroupCount, len(rows))
	for i, row := range rows {
		groups[i] = domain.GroupCount{Value: row.Label, Count: row.Total}
	}
	return groups, nil
}

// applyFilter translates a domain filter into case-insensitive LIKE
// conditions. User input is escaped so it always matches literally.
func (r *GormRepository) applyFilter(query *gorm.DB, filter domain.Filter) *gorm.DB {
	for _, term := range filter.Terms() {
		query = query.Where(r.likeClause(term.Field.Column), likePattern(term.Value))
	}

	search := filter.SearchTerm()
	if search == "" {
		return query
	}
	pattern := likePattern(search)
	clauses := make([]string, 0, len(domain.SearchFields))
	args := make([]interface{}, 0, len(domain.SearchFields))
	for _, key := range domain.SearchFields {
		f, _ := domain.LookupField(key)
		clauses = append(clauses, r.likeClause(f.Column))
		args = append(args, pattern)
	}
	return query.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func (r *GormRepository) likeClause(column string) string {
	return database.LowerExpr(r.db, r.quote(column)) + " LIKE ? ESCAPE '\\'"
}

func (r *GormRepository) quote(column string) string {
	return r.db.Statement.Quote(column)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}

func dbError(ctx context.Context, err error, message, code string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, message, err, code)
}

func unknownField(ctx context.Context, key string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeValidation,
		fmt.Sprintf("unknown field %q", key), nil, "502558fa-4284-43a7-a8c1-9d30da1b1ecd")
}

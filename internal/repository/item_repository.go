package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pizza-store/internal/domain"
)

// SortOrder controls ordering of catalog results by price.
type SortOrder string

const (
	SortNone       SortOrder = "none"
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// ItemFilter captures the optional catalog predicates. Absent fields
// impose no constraint; present fields combine as a conjunction. No
// OR combination exists by design.
type ItemFilter struct {
	MaxPrice *float64
	Type     *string
	Sort     SortOrder
}

// CacheKey renders the filter as a stable key for the catalog cache.
func (f ItemFilter) CacheKey() string {
	price := "-"
	if f.MaxPrice != nil {
		price = fmt.Sprintf("%.2f", *f.MaxPrice)
	}
	itemType := "-"
	if f.Type != nil {
		itemType = domain.NormalizeItemType(*f.Type)
	}
	sort := f.Sort
	if sort == "" {
		sort = SortNone
	}
	return fmt.Sprintf("catalog:%s:%s:%s", price, itemType, sort)
}

// ItemRepository encapsulates catalog persistence.
type ItemRepository interface {
	List(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
}

type itemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository instantiates repository.
func NewItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &itemRepository{pool: pool}
}

// BuildListQuery assembles the catalog query for a filter. Predicates
// become numbered placeholders joined with AND; the price ceiling is
// inclusive and the type match is exact after trimming and casefolding
// on both sides. Ordering is appended last.
func BuildListQuery(filter ItemFilter) (string, []any) {
	base := `SELECT itemName, ingredients, typeOfItem, price, description FROM Items`
	clauses := []string{}
	args := []any{}

	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, strings.TrimSpace(*filter.Type))
		clauses = append(clauses, fmt.Sprintf("LOWER(TRIM(typeOfItem)) = LOWER(TRIM($%d))", len(args)))
	}

	query := base
	if len(clauses) > 0 {
		query = fmt.Sprintf("%s WHERE %s", base, strings.Join(clauses, " AND "))
	}

	switch filter.Sort {
	case SortAscending:
		query += " ORDER BY price ASC"
	case SortDescending:
		query += " ORDER BY price DESC"
	}

	return query, args
}

// List returns the catalog entries matching the filter. An empty
// result is a normal outcome, not an error.
func (r *itemRepository) List(ctx context.Context, filter ItemFilter) ([]domain.Item, error) {
	query, args := BuildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	var result []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.Name,
			&item.Ingredients,
			&item.Type,
			&item.Price,
			&item.Description,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/web-shop/internal/model"
)

// DefaultMaxPrice is the open upper bound used when no max_price is
// supplied. Matches the storefront's sentinel for "no limit".
var DefaultMaxPrice = decimal.NewFromInt(9999999)

// ErrInvalidSortKey is returned when sort_by does not name a known
// ordering. The key set is closed: interpolating the raw parameter
// into ORDER BY would open the query to injection.
var ErrInvalidSortKey = errors.New("invalid sort key")

// ProductSearchQuery defines the conjunctive filters and pagination for
// product searches. Zero values mean "no constraint"; the price bounds
// default to [0, DefaultMaxPrice] when not supplied. HasMaxPrice keeps
// an explicit max of 0 (a valid, empty-range bound) apart from the
// Decimal zero value.
type ProductSearchQuery struct {
	SortBy        string          // empty means default name ordering
	MinPrice      decimal.Decimal // inclusive lower price bound
	MaxPrice      decimal.Decimal // inclusive upper price bound; consulted only when HasMaxPrice
	HasMaxPrice   bool            // distinguishes an explicit bound (even 0) from an absent one
	CategoryID    uint64          // 0 means all categories
	AvailableOnly bool
	Page          int
	PageSize      int
}

// ProductSearchResult carries one page of matches plus aggregates over
// the whole filtered set (not just the page).
type ProductSearchResult struct {
	Items    []model.Product
	Total    int64
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}

// sortColumns is the closed set of accepted sort keys. A leading dash
// flips the direction, mirroring the query-string convention.
var sortColumns = map[string]string{
	"name":     "name ASC",
	"-name":    "name DESC",
	"price":    "price ASC",
	"-price":   "price DESC",
	"created":  "created_at ASC",
	"-created": "created_at DESC",
}

// orderClause resolves a sort key to an ORDER BY fragment. Empty keys
// fall back to the catalog's name ordering.
func orderClause(sortBy string) (string, error) {
	if sortBy == "" {
		return "name ASC", nil
	}
	col, ok := sortColumns[sortBy]
	if !ok {
		return "", ErrInvalidSortKey
	}
	return col, nil
}

// filterConditions builds the WHERE clause pieces for a search. Every
// supplied filter is ANDed; price bounds are always present.
func filterConditions(q ProductSearchQuery) ([]string, []any) {
	where := []string{}
	args := []any{}

	min := q.MinPrice
	max := q.MaxPrice
	if !q.HasMaxPrice {
		max = DefaultMaxPrice
	}
	where = append(where, "price >= ?")
	args = append(args, min)
	where = append(where, "price <= ?")
	args = append(args, max)

	if q.CategoryID != 0 {
		where = append(where, "category_id = ?")
		args = append(args, q.CategoryID)
	}
	if q.AvailableOnly {
		where = append(where, "is_available = 1")
	}
	return where, args
}

// Search runs the filter engine: count, aggregate price range and one
// page of products satisfying all supplied constraints.
func (r *ProductRepo) Search(ctx context.Context, q ProductSearchQuery) (ProductSearchResult, error) {
	order, err := orderClause(q.SortBy)
	if err != nil {
		return ProductSearchResult{}, err
	}

	where, args := filterConditions(q)
	cond := strings.Join(where, " AND ")

	var res ProductSearchResult
	countSQL := "SELECT COUNT(*) FROM products WHERE " + cond
	if err := r.DB.QueryRowContext(ctx, countSQL, args...).Scan(&res.Total); err != nil {
		return ProductSearchResult{}, err
	}

	// Price range over the whole filtered set; the listing shows it so
	// clients can render range sliders. NULL aggregates (empty set)
	// collapse to zero.
	rangeSQL := "SELECT COALESCE(MIN(price),0), COALESCE(MAX(price),0) FROM products WHERE " + cond
	if err := r.DB.QueryRowContext(ctx, rangeSQL, args...).Scan(&res.MinPrice, &res.MaxPrice); err != nil {
		return ProductSearchResult{}, err
	}

	limit := q.PageSize
	if limit < 1 {
		limit = 9
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	dataSQL := "SELECT " + productColumns + " FROM products WHERE " + cond +
		" ORDER BY " + order + " LIMIT ? OFFSET ?"
	argsData := append(append([]any{}, args...), limit, offset)

	items, err := r.queryProducts(ctx, dataSQL, argsData...)
	if err != nil {
		return ProductSearchResult{}, err
	}
	res.Items = items
	return res, nil
}

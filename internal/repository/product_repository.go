package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/iliyamo/web-shop/internal/model"
)

type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

const productColumns = `id, category_id, name, slug, image, description,
	price, is_available, characteristics, created_at, updated_at`

// scanProduct reads one product row. Characteristics arrive as a raw
// JSON column and are decoded into the open-ended attribute map; a
// NULL or empty column yields an empty map.
func scanProduct(rows interface{ Scan(...any) error }) (model.Product, error) {
	var (
		p     model.Product
		chars []byte
	)
	err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Image,
		&p.Description, &p.Price, &p.IsAvailable, &chars, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Product{}, err
	}
	p.Characteristics = map[string]any{}
	if len(chars) > 0 {
		if err := json.Unmarshal(chars, &p.Characteristics); err != nil {
			return model.Product{}, err
		}
	}
	return p, nil
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Latest returns the n most recently added products (reverse id order).
func (r *ProductRepo) Latest(ctx context.Context, n int) ([]model.Product, error) {
	return r.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY id DESC LIMIT ?", n)
}

// GetBySlug fetches a product by slug inside the given category.
func (r *ProductRepo) GetBySlug(ctx context.Context, categoryID uint64, slug string) (model.Product, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE category_id=? AND slug=? LIMIT 1",
		categoryID, slug)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}

// GetByID fetches a product by id.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id=? LIMIT 1", id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}

// GetBySlugAnyCategory fetches a product by slug alone. Used by the buy
// flow, where the form carries only the product slug.
func (r *ProductRepo) GetBySlugAnyCategory(ctx context.Context, slug string) (model.Product, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE slug=? LIMIT 1", slug)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}

// ListBySlugs resolves purchased ledger slugs into products, ordered by
// name. Unknown slugs are skipped silently.
func (r *ProductRepo) ListBySlugs(ctx context.Context, slugs []string) ([]model.Product, error) {
	if len(slugs) == 0 {
		return []model.Product{}, nil
	}
	ph := strings.Repeat("?,", len(slugs))
	ph = ph[:len(ph)-1]
	args := make([]any, len(slugs))
	for i, s := range slugs {
		args[i] = s
	}
	return r.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products WHERE slug IN ("+ph+") ORDER BY name ASC",
		args...)
}

// listCandidates returns every product of a category except the one
// with the excluded slug, ordered by name. Input for the related picker.
func (r *ProductRepo) listCandidates(ctx context.Context, categoryID uint64, excludeSlug string) ([]model.Product, error) {
	return r.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products WHERE category_id=? AND slug<>? ORDER BY name ASC",
		categoryID, excludeSlug)
}

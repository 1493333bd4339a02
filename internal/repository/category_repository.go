package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/web-shop/internal/model"
)

type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

// ListAll returns every category ordered by name.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, slug FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID fetches a category by id.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (model.Category, error) {
	var c model.Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, slug FROM categories WHERE id=? LIMIT 1",
		id).Scan(&c.ID, &c.Name, &c.Slug)
	if err == sql.ErrNoRows {
		return model.Category{}, ErrCategoryNotFound
	}
	return c, err
}

// GetBySlug fetches a category by its unique slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (model.Category, error) {
	var c model.Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, slug FROM categories WHERE slug=? LIMIT 1",
		slug).Scan(&c.ID, &c.Name, &c.Slug)
	if err == sql.ErrNoRows {
		return model.Category{}, ErrCategoryNotFound
	}
	return c, err
}

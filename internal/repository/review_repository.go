package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/web-shop/internal/model"
)

type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// ListByProduct returns all reviews of a product in publish order.
func (r *ReviewRepo) ListByProduct(ctx context.Context, productID uint64) ([]model.ProductReview, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, product_id, author_id, content, is_recommend, published_at
		 FROM product_reviews WHERE product_id=? ORDER BY published_at ASC`,
		productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ProductReview{}
	for rows.Next() {
		var rv model.ProductReview
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.AuthorID, &rv.Content,
			&rv.IsRecommend, &rv.PublishedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// HasReviewByAuthor reports whether the author already reviewed the
// product. Tolerates an empty review set.
func (r *ReviewRepo) HasReviewByAuthor(ctx context.Context, productID, authorID uint64) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM product_reviews WHERE product_id=? AND author_id=?",
		productID, authorID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a review and returns its id.
func (r *ReviewRepo) Create(ctx context.Context, productID, authorID uint64, content string, isRecommend bool) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO product_reviews (product_id, author_id, content, is_recommend, published_at)
		 VALUES (?,?,?,?,NOW())`,
		productID, authorID, content, isRecommend)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single review.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (model.ProductReview, error) {
	var rv model.ProductReview
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, product_id, author_id, content, is_recommend, published_at
		 FROM product_reviews WHERE id=? LIMIT 1`,
		id).Scan(&rv.ID, &rv.ProductID, &rv.AuthorID, &rv.Content,
		&rv.IsRecommend, &rv.PublishedAt)
	if err == sql.ErrNoRows {
		return model.ProductReview{}, ErrReviewNotFound
	}
	return rv, err
}

// DeleteAsAuthor removes a review when the requester authored it. Any
// other requester gets ErrForbidden; nothing is soft-deleted.
func (r *ReviewRepo) DeleteAsAuthor(ctx context.Context, id, requesterID uint64) (model.ProductReview, error) {
	rv, err := r.GetByID(ctx, id)
	if err != nil {
		return model.ProductReview{}, err
	}
	if rv.AuthorID != requesterID {
		return model.ProductReview{}, ErrForbidden
	}
	if _, err := r.DB.ExecContext(ctx,
		"DELETE FROM product_reviews WHERE id=?", id); err != nil {
		return model.ProductReview{}, err
	}
	return rv, nil
}

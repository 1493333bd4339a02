package model

import "time"

// ProductReview is a customer review attached to a product.  The
// one-review-per-author rule is enforced by the review gate in the
// handler layer, not by a uniqueness constraint.
type ProductReview struct {
	ID          uint64    // product_reviews.id
	ProductID   uint64    // product_reviews.product_id
	AuthorID    uint64    // product_reviews.author_id
	Content     string    // product_reviews.content (max 2048 chars)
	IsRecommend bool      // product_reviews.is_recommend
	PublishedAt time.Time // product_reviews.published_at
}

// MaxReviewContentLen caps the length of review content.
const MaxReviewContentLen = 2048

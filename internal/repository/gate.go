package repository

import "context"

// gate.go implements the review gate: the authorization decision on
// whether a user may post a review for a product. Both checks must
// pass: the user has not reviewed the product yet, and the product's
// slug appears in the user's purchase ledger. Anonymous users always
// fail the purchase check, so the gate is false for them regardless of
// history.

// ReviewGate bundles the repositories the decision needs.
type ReviewGate struct {
	Reviews *ReviewRepo
	Ledger  *UserInfoRepo
}

func NewReviewGate(reviews *ReviewRepo, ledger *UserInfoRepo) *ReviewGate {
	return &ReviewGate{Reviews: reviews, Ledger: ledger}
}

// CanReview evaluates the gate for an authenticated user id (0 means
// anonymous). Evaluating the purchase check lazily creates an empty
// ledger row for the user; that side effect is idempotent and never a
// failure.
func (g *ReviewGate) CanReview(ctx context.Context, userID, productID uint64, productSlug string) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	has, err := g.Reviews.HasReviewByAuthor(ctx, productID, userID)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	return g.Ledger.HasPurchased(ctx, userID, productSlug)
}

// AllowReview is the pure form of the gate decision, split out so the
// rule is testable without a database.
func AllowReview(authenticated, alreadyReviewed bool, purchased []string, slug string) bool {
	if !authenticated || alreadyReviewed {
		return false
	}
	return containsSlug(purchased, slug)
}

package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/web-shop/internal/model"
)

// UserInfoRepo manages the per-user purchase ledger rows. The ledger
// update is a plain read-modify-write on the JSON blob: concurrent
// purchases by the same user can race and the last write wins. That is
// an accepted weakness, so no transaction wraps the update.
type UserInfoRepo struct{ DB *sql.DB }

func NewUserInfoRepo(db *sql.DB) *UserInfoRepo { return &UserInfoRepo{DB: db} }

// GetOrCreate fetches the ledger row for a user, creating an empty one
// on first access. This is the single creation path for user_info rows
// and is idempotent from the caller's point of view.
func (r *UserInfoRepo) GetOrCreate(ctx context.Context, userID uint64) (model.UserInfo, error) {
	var info model.UserInfo
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, user_id, purchased FROM user_info WHERE user_id=? LIMIT 1",
		userID).Scan(&info.ID, &info.UserID, &info.Purchased)
	if err == nil {
		return info, nil
	}
	if err != sql.ErrNoRows {
		return model.UserInfo{}, err
	}

	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_info (user_id, purchased) VALUES (?,?)",
		userID, emptyLedger)
	if err != nil {
		return model.UserInfo{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.UserInfo{}, err
	}
	return model.UserInfo{ID: uint64(id), UserID: userID, Purchased: emptyLedger}, nil
}

// RecordPurchase adds a product slug to the user's ledger. A missing
// or empty list is initialized to [slug]; a slug already present is a
// no-op; otherwise the slug is appended and the full blob rewritten.
func (r *UserInfoRepo) RecordPurchase(ctx context.Context, userID uint64, slug string) error {
	info, err := r.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	slugs, present, err := decodeLedger(info.Purchased)
	if err != nil {
		return err
	}
	next, changed := appendPurchase(slugs, present, slug)
	if !changed {
		return nil
	}
	blob, err := encodeLedger(next)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE user_info SET purchased=? WHERE id=?", blob, info.ID)
	return err
}

// PurchasedSlugs returns the slugs recorded for a user. When the row
// or the purchased_items key is absent it returns ErrNoPurchases; a
// present-but-empty list returns an empty slice.
func (r *UserInfoRepo) PurchasedSlugs(ctx context.Context, userID uint64) ([]string, error) {
	var raw []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT purchased FROM user_info WHERE user_id=? LIMIT 1",
		userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNoPurchases
	}
	if err != nil {
		return nil, err
	}
	slugs, present, err := decodeLedger(raw)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, ErrNoPurchases
	}
	return slugs, nil
}

// HasPurchased reports whether the user's ledger contains the slug.
// Evaluating this for a user without a ledger row creates an empty one,
// mirroring the lazy creation on first gate evaluation.
func (r *UserInfoRepo) HasPurchased(ctx context.Context, userID uint64, slug string) (bool, error) {
	info, err := r.GetOrCreate(ctx, userID)
	if err != nil {
		return false, err
	}
	slugs, _, err := decodeLedger(info.Purchased)
	if err != nil {
		return false, err
	}
	return containsSlug(slugs, slug), nil
}

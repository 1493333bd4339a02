// Package repository defines the data access layer together with the
// sentinel errors shared across repositories. These sentinel values let
// handlers distinguish between failure scenarios: ErrForbidden maps to
// HTTP 403, the *NotFound values map to HTTP 404, and ErrNoPurchases
// signals an absent ledger rather than a failure.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own, such as deleting another user's review.
var ErrForbidden = errors.New("forbidden")

// ErrCategoryNotFound is returned for an unknown category slug.
var ErrCategoryNotFound = errors.New("category not found")

// ErrProductNotFound is returned for an unknown product slug.
var ErrProductNotFound = errors.New("product not found")

// ErrReviewNotFound is returned for an unknown review id.
var ErrReviewNotFound = errors.New("review not found")

// ErrUserNotFound is returned for an unknown username.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when registration collides with an
// existing username.
var ErrUsernameExists = errors.New("username already exists")

// ErrRefreshTokenInvalid is returned when a refresh token hash matches
// no stored row, or the row is revoked or expired. Handlers map it to
// HTTP 401; any other error from the token repo is a server fault.
var ErrRefreshTokenInvalid = errors.New("refresh token invalid or expired")

// ErrNoPurchases is returned by the ledger read path when either the
// user_info row or its purchased_items key does not exist yet. An
// existing but empty list is not an error and yields an empty slice.
var ErrNoPurchases = errors.New("no purchases recorded")

package model

// UserInfo holds the per-user purchase ledger.  The Purchased column
// is a JSON blob shaped as {"purchased_items": ["slug-a", ...]}.  A
// row is created lazily on first purchase or first profile view and is
// never deleted.  The inner key may be absent on a fresh row; callers
// must treat a missing key as "no purchases", never as an error.
//
// UserID is intentionally not constrained unique at the DB level to
// mirror the lookup-or-create pattern; the repository provides a
// single creation path instead.
type UserInfo struct {
	ID        uint64 // user_info.id
	UserID    uint64 // user_info.user_id
	Purchased []byte // user_info.purchased (raw JSON blob)
}

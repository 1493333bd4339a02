// Package queue defines message payloads exchanged over the message broker.
package queue

// PurchaseCompletedEvent is published after a purchase is recorded in
// the user's ledger. It carries enough data for downstream consumers
// to log or notify without querying the primary database.
type PurchaseCompletedEvent struct {
	UserID      uint64 `json:"user_id"`
	Username    string `json:"username"`
	ProductID   uint64 `json:"product_id"`
	ProductSlug string `json:"product_slug"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	PurchasedAt string `json:"purchased_at"`
}

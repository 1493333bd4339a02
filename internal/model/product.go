package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a single catalog item belonging to a category.
// Prices are stored as DECIMAL(15,2) and handled with decimal.Decimal
// so band computations never go through floats.  Characteristics is an
// open-ended string-to-primitive mapping persisted as a JSON column;
// no fixed schema is enforced.
//
// Fields:
//  ID              – primary key identifier.
//  CategoryID      – owning category.
//  Name            – display name; listings order by it.
//  Slug            – URL-safe identifier, unique within its category.
//  Image           – path of the product image, may be empty.
//  Description     – free-form description, may be empty.
//  Price           – decimal price.
//  IsAvailable     – whether the product shows up in the shop listing.
//  Characteristics – schema-less attribute bag (JSON column).
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Product struct {
	ID              uint64          // products.id
	CategoryID      uint64          // products.category_id
	Name            string          // products.name
	Slug            string          // products.slug
	Image           string          // products.image
	Description     string          // products.description
	Price           decimal.Decimal // products.price
	IsAvailable     bool            // products.is_available
	Characteristics map[string]any  // products.characteristics (JSON)
	CreatedAt       time.Time       // products.created_at
	UpdatedAt       time.Time       // products.updated_at
}

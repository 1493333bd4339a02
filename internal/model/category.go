package model

// Category groups products under a unique URL slug. Categories are
// managed through the admin tooling and are long lived; listings are
// always ordered by name.
//
// Fields:
//  ID   – primary key identifier.
//  Name – display name shown in listings.
//  Slug – unique URL-safe identifier used in routes.
type Category struct {
	ID   uint64 // categories.id
	Name string // categories.name
	Slug string // categories.slug
}

package repository

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to name", sortBy: "", want: "name ASC"},
		{name: "name ascending", sortBy: "name", want: "name ASC"},
		{name: "name descending", sortBy: "-name", want: "name DESC"},
		{name: "price ascending", sortBy: "price", want: "price ASC"},
		{name: "price descending", sortBy: "-price", want: "price DESC"},
		{name: "created ascending", sortBy: "created", want: "created_at ASC"},
		{name: "created descending", sortBy: "-created", want: "created_at DESC"},
		{name: "unknown key rejected", sortBy: "evil; DROP TABLE", wantErr: true},
		{name: "column name is not a key", sortBy: "price ASC", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orderClause(tt.sortBy)
			if (err != nil) != tt.wantErr {
				t.Fatalf("orderClause(%q) err = %v, wantErr %v", tt.sortBy, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("orderClause(%q) = %q, want %q", tt.sortBy, got, tt.want)
			}
		})
	}
}

// The price bounds are always part of the WHERE clause, defaulting to
// [0, DefaultMaxPrice] when absent.
func TestFilterConditionsDefaults(t *testing.T) {
	where, args := filterConditions(ProductSearchQuery{})
	cond := strings.Join(where, " AND ")
	if !strings.Contains(cond, "price >= ?") || !strings.Contains(cond, "price <= ?") {
		t.Fatalf("price bounds missing from conditions: %q", cond)
	}
	if len(args) != 2 {
		t.Fatalf("want 2 args for default bounds, got %d", len(args))
	}
	if min, ok := args[0].(decimal.Decimal); !ok || !min.IsZero() {
		t.Errorf("default min price = %v, want 0", args[0])
	}
	if max, ok := args[1].(decimal.Decimal); !ok || !max.Equal(DefaultMaxPrice) {
		t.Errorf("default max price = %v, want %v", args[1], DefaultMaxPrice)
	}
}

// An explicit max_price of 0 is a real bound: only free products
// satisfy [0, 0]. It must not be widened to the open default.
func TestFilterConditionsExplicitZeroMax(t *testing.T) {
	q := ProductSearchQuery{
		MaxPrice:    decimal.NewFromInt(0),
		HasMaxPrice: true,
	}
	_, args := filterConditions(q)
	if len(args) != 2 {
		t.Fatalf("want 2 args, got %d", len(args))
	}
	max, ok := args[1].(decimal.Decimal)
	if !ok {
		t.Fatalf("max arg is %T, want decimal.Decimal", args[1])
	}
	if !max.IsZero() {
		t.Errorf("explicit max 0 became %v", max)
	}
}

func TestFilterConditionsConjunctive(t *testing.T) {
	q := ProductSearchQuery{
		MinPrice:      decimal.NewFromInt(10),
		MaxPrice:      decimal.NewFromInt(50),
		HasMaxPrice:   true,
		CategoryID:    7,
		AvailableOnly: true,
	}
	where, args := filterConditions(q)
	cond := strings.Join(where, " AND ")

	for _, want := range []string{"price >= ?", "price <= ?", "category_id = ?", "is_available = 1"} {
		if !strings.Contains(cond, want) {
			t.Errorf("conditions %q missing %q", cond, want)
		}
	}
	// min, max, category
	if len(args) != 3 {
		t.Fatalf("want 3 args, got %d", len(args))
	}
	if cat, ok := args[2].(uint64); !ok || cat != 7 {
		t.Errorf("category arg = %v, want 7", args[2])
	}
}

func TestFilterConditionsNoCategory(t *testing.T) {
	where, _ := filterConditions(ProductSearchQuery{MinPrice: decimal.NewFromInt(5)})
	cond := strings.Join(where, " AND ")
	if strings.Contains(cond, "category_id") {
		t.Errorf("no category constraint expected, got %q", cond)
	}
	if strings.Contains(cond, "is_available") {
		t.Errorf("no availability constraint expected, got %q", cond)
	}
}

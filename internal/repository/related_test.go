package repository

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/web-shop/internal/model"
)

func prod(slug string, price int64) model.Product {
	return model.Product{Slug: slug, Price: decimal.NewFromInt(price)}
}

func slugSet(ps []model.Product) map[string]bool {
	m := map[string]bool{}
	for _, p := range ps {
		m[p.Slug] = true
	}
	return m
}

func TestPickRelatedBand(t *testing.T) {
	source := prod("src", 100)
	candidates := []model.Product{
		prod("below-band", 84), // 84 < 85, outside
		prod("low-edge", 85),   // inclusive lower bound
		prod("mid", 100),
		prod("high-edge", 115),  // inclusive upper bound
		prod("above-band", 116), // 116 > 115, outside
	}

	got := PickRelated(source, candidates)
	if len(got) > 3 {
		t.Fatalf("got %d related products, cap is 3", len(got))
	}
	set := slugSet(got)
	if set["src"] {
		t.Error("related products must not contain the source")
	}
	// When the band is non-empty, the result must be a subset of it.
	for slug := range set {
		if slug == "below-band" || slug == "above-band" {
			t.Errorf("fallback item %q mixed into a non-empty band result", slug)
		}
	}
	if len(got) != 3 {
		t.Errorf("band has 3 members, want all of them, got %d", len(got))
	}
}

func TestPickRelatedFallback(t *testing.T) {
	source := prod("src", 100)
	candidates := []model.Product{
		prod("cheap", 1),
		prod("pricey", 1000),
	}

	got := PickRelated(source, candidates)
	if len(got) != 2 {
		t.Fatalf("fallback should return all %d candidates, got %d", len(candidates), len(got))
	}
	set := slugSet(got)
	if !set["cheap"] || !set["pricey"] {
		t.Errorf("fallback lost candidates: %v", set)
	}
}

func TestPickRelatedCap(t *testing.T) {
	source := prod("src", 100)
	candidates := []model.Product{
		prod("a", 90), prod("b", 95), prod("c", 100), prod("d", 105), prod("e", 110),
	}
	got := PickRelated(source, candidates)
	if len(got) != 3 {
		t.Fatalf("got %d items, want 3", len(got))
	}
}

func TestPickRelatedEmptyCategory(t *testing.T) {
	got := PickRelated(prod("src", 100), nil)
	if len(got) != 0 {
		t.Fatalf("empty category should yield no related products, got %d", len(got))
	}
}

// The shuffle must permute the picked items, never alter the set.
func TestPickRelatedShufflePreservesSet(t *testing.T) {
	source := prod("src", 100)
	candidates := []model.Product{prod("a", 100), prod("b", 100)}
	for i := 0; i < 20; i++ {
		got := PickRelated(source, candidates)
		set := slugSet(got)
		if len(got) != 2 || !set["a"] || !set["b"] {
			t.Fatalf("iteration %d: shuffle altered the set: %v", i, set)
		}
	}
}

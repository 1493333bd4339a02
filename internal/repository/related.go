package repository

import (
	"context"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/web-shop/internal/model"
)

// relatedLimit caps how many related products a detail page shows.
const relatedLimit = 3

var (
	relatedBandLow  = decimal.RequireFromString("0.85")
	relatedBandHigh = decimal.RequireFromString("1.15")
)

// PickRelated selects up to three candidates priced within ±15% of the
// source product (inclusive bounds). When the band is empty it falls
// back to any-price candidates from the same category. The two
// strategies never mix: a non-empty band result is always a subset of
// the band. The capped result is returned in uniformly shuffled order.
// Candidates must not contain the source product itself.
func PickRelated(source model.Product, candidates []model.Product) []model.Product {
	low := source.Price.Mul(relatedBandLow)
	high := source.Price.Mul(relatedBandHigh)

	band := []model.Product{}
	for _, p := range candidates {
		if p.Price.GreaterThanOrEqual(low) && p.Price.LessThanOrEqual(high) {
			band = append(band, p)
		}
	}

	picked := band
	if len(picked) == 0 {
		picked = candidates
	}
	if len(picked) > relatedLimit {
		picked = picked[:relatedLimit]
	}

	out := make([]model.Product, len(picked))
	copy(out, picked)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Related loads same-category candidates for a product and applies
// PickRelated. A category with no other products yields an empty slice.
func (r *ProductRepo) Related(ctx context.Context, p model.Product) ([]model.Product, error) {
	candidates, err := r.listCandidates(ctx, p.CategoryID, p.Slug)
	if err != nil {
		return nil, err
	}
	return PickRelated(p, candidates), nil
}

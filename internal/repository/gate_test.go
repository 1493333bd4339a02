package repository

import "testing"

func TestAllowReview(t *testing.T) {
	purchased := []string{"widget-1", "gadget-2"}

	tests := []struct {
		name            string
		authenticated   bool
		alreadyReviewed bool
		purchased       []string
		slug            string
		want            bool
	}{
		{
			name:          "anonymous user always denied",
			authenticated: false,
			purchased:     purchased,
			slug:          "widget-1",
			want:          false,
		},
		{
			name:            "anonymous denied even without prior review",
			authenticated:   false,
			alreadyReviewed: false,
			purchased:       purchased,
			slug:            "gadget-2",
			want:            false,
		},
		{
			name:            "existing review denies",
			authenticated:   true,
			alreadyReviewed: true,
			purchased:       purchased,
			slug:            "widget-1",
			want:            false,
		},
		{
			name:          "not purchased denies",
			authenticated: true,
			purchased:     purchased,
			slug:          "never-bought",
			want:          false,
		},
		{
			name:          "empty ledger denies",
			authenticated: true,
			purchased:     nil,
			slug:          "widget-1",
			want:          false,
		},
		{
			name:          "purchased and unreviewed allows",
			authenticated: true,
			purchased:     purchased,
			slug:          "widget-1",
			want:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllowReview(tt.authenticated, tt.alreadyReviewed, tt.purchased, tt.slug)
			if got != tt.want {
				t.Errorf("AllowReview(%v, %v, %v, %q) = %v, want %v",
					tt.authenticated, tt.alreadyReviewed, tt.purchased, tt.slug, got, tt.want)
			}
		})
	}
}

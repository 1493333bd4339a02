package repository

import (
	"reflect"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantSlugs   []string
		wantPresent bool
		wantErr     bool
	}{
		{
			name:        "fresh ledger without key",
			raw:         `{}`,
			wantSlugs:   nil,
			wantPresent: false,
		},
		{
			name:        "empty blob behaves like fresh ledger",
			raw:         ``,
			wantSlugs:   nil,
			wantPresent: false,
		},
		{
			name:        "present but empty list",
			raw:         `{"purchased_items":[]}`,
			wantSlugs:   []string{},
			wantPresent: true,
		},
		{
			name:        "populated list",
			raw:         `{"purchased_items":["widget-1","gadget-2"]}`,
			wantSlugs:   []string{"widget-1", "gadget-2"},
			wantPresent: true,
		},
		{
			name:        "null list normalizes to empty",
			raw:         `{"purchased_items":null}`,
			wantSlugs:   []string{},
			wantPresent: true,
		},
		{
			name:    "malformed blob",
			raw:     `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slugs, present, err := decodeLedger([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeLedger(%q) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if present != tt.wantPresent {
				t.Errorf("decodeLedger(%q) present = %v, want %v", tt.raw, present, tt.wantPresent)
			}
			if !reflect.DeepEqual(slugs, tt.wantSlugs) {
				t.Errorf("decodeLedger(%q) slugs = %#v, want %#v", tt.raw, slugs, tt.wantSlugs)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []string{"widget-1", "gadget-2", "thing-3"}
	blob, err := encodeLedger(in)
	if err != nil {
		t.Fatalf("encodeLedger: %v", err)
	}
	out, present, err := decodeLedger(blob)
	if err != nil {
		t.Fatalf("decodeLedger: %v", err)
	}
	if !present {
		t.Fatal("round-trip lost the purchased_items key")
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round-trip = %#v, want %#v", out, in)
	}
}

func TestAppendPurchase(t *testing.T) {
	tests := []struct {
		name        string
		slugs       []string
		present     bool
		slug        string
		wantSlugs   []string
		wantChanged bool
	}{
		{
			name:        "missing key initializes",
			slugs:       nil,
			present:     false,
			slug:        "widget-1",
			wantSlugs:   []string{"widget-1"},
			wantChanged: true,
		},
		{
			name:        "empty list is treated like missing",
			slugs:       []string{},
			present:     true,
			slug:        "widget-1",
			wantSlugs:   []string{"widget-1"},
			wantChanged: true,
		},
		{
			name:        "duplicate slug is a no-op",
			slugs:       []string{"widget-1", "gadget-2"},
			present:     true,
			slug:        "widget-1",
			wantSlugs:   []string{"widget-1", "gadget-2"},
			wantChanged: false,
		},
		{
			name:        "new slug appends",
			slugs:       []string{"widget-1"},
			present:     true,
			slug:        "gadget-2",
			wantSlugs:   []string{"widget-1", "gadget-2"},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, changed := appendPurchase(tt.slugs, tt.present, tt.slug)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if !reflect.DeepEqual(next, tt.wantSlugs) {
				t.Errorf("next = %#v, want %#v", next, tt.wantSlugs)
			}
		})
	}
}

// Applying the same purchase twice must leave the ledger unchanged
// after the second call.
func TestAppendPurchaseIdempotent(t *testing.T) {
	first, changed := appendPurchase(nil, false, "widget-1")
	if !changed {
		t.Fatal("first purchase should change the ledger")
	}
	second, changed := appendPurchase(first, true, "widget-1")
	if changed {
		t.Error("second identical purchase should be a no-op")
	}
	if !reflect.DeepEqual(second, first) {
		t.Errorf("ledger changed on repeat purchase: %#v -> %#v", first, second)
	}
}

func TestContainsSlug(t *testing.T) {
	slugs := []string{"widget-1", "gadget-2"}
	if !containsSlug(slugs, "widget-1") {
		t.Error("expected widget-1 to be found")
	}
	if containsSlug(slugs, "missing") {
		t.Error("did not expect missing to be found")
	}
	if containsSlug(nil, "widget-1") {
		t.Error("nil list should contain nothing")
	}
}

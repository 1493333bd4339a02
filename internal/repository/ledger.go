package repository

import "encoding/json"

// ledger.go holds the pure codec for the per-user purchase ledger. The
// ledger is a JSON blob shaped as {"purchased_items": ["slug", ...]}.
// A fresh row stores "{}" with no inner key; callers distinguish a
// missing key (never purchased) from a present-but-empty list (ledger
// explicitly emptied), which are separate states on the read path.

const ledgerKey = "purchased_items"

// emptyLedger is the blob written when a user_info row is first created.
var emptyLedger = []byte("{}")

// decodeLedger parses a raw ledger blob. It returns the slug list and
// whether the purchased_items key was present at all. A nil or empty
// blob behaves like "{}".
func decodeLedger(raw []byte) (slugs []string, present bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, err
	}
	inner, ok := doc[ledgerKey]
	if !ok {
		return nil, false, nil
	}
	var list []string
	if err := json.Unmarshal(inner, &list); err != nil {
		return nil, false, err
	}
	if list == nil {
		list = []string{}
	}
	return list, true, nil
}

// encodeLedger serializes a slug list back into the blob form.
func encodeLedger(slugs []string) ([]byte, error) {
	if slugs == nil {
		slugs = []string{}
	}
	return json.Marshal(map[string][]string{ledgerKey: slugs})
}

// appendPurchase applies the purchase rule to a decoded ledger: a
// missing key or empty list is initialized to the single slug, a
// duplicate slug is a no-op, anything else appends. The changed flag
// tells callers whether a write-back is needed.
func appendPurchase(slugs []string, present bool, slug string) (next []string, changed bool) {
	if !present || len(slugs) == 0 {
		return []string{slug}, true
	}
	for _, s := range slugs {
		if s == slug {
			return slugs, false
		}
	}
	return append(slugs, slug), true
}

// containsSlug reports whether a slug is in the ledger list.
func containsSlug(slugs []string, slug string) bool {
	for _, s := range slugs {
		if s == slug {
			return true
		}
	}
	return false
}

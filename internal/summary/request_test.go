package summary

import "testing"

func TestRequestKeyDeterministic(t *testing.T) {
	a := Request{Model: "ecommerce", Explore: "order_items", Field: "orders.status", Kind: KindValues}
	b := Request{Model: "ecommerce", Explore: "order_items", Field: "orders.status", Kind: KindValues}
	if a.Key() != b.Key() {
		t.Errorf("equal requests must serialize identically: %q vs %q", a.Key(), b.Key())
	}
}

func TestRequestKeyDistinguishesKind(t *testing.T) {
	a := Request{Model: "m", Explore: "e", Field: "f", Kind: KindValues}
	b := a
	b.Kind = KindDistribution
	if a.Key() == b.Key() {
		t.Errorf("requests differing only by kind must not collide: %q", a.Key())
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("values"); err != nil || k != KindValues {
		t.Errorf("ParseKind(values) = (%v, %v)", k, err)
	}
	if k, err := ParseKind("distribution"); err != nil || k != KindDistribution {
		t.Errorf("ParseKind(distribution) = (%v, %v)", k, err)
	}
	if _, err := ParseKind("pie"); err == nil {
		t.Errorf("ParseKind(pie) should fail")
	}
}

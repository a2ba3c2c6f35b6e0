package summary

import (
	"testing"

	"github.com/jkdabbert/app-data-dictionary/internal/lookml"
)

func TestCompanionCountFieldMatchesViewLabel(t *testing.T) {
	explore := &lookml.Explore{
		Name: "orders",
		Fields: lookml.ExploreFields{
			Dimensions: []lookml.Field{
				{Name: "orders.region", LabelShort: "Region", ViewLabel: "Orders", Category: lookml.CategoryDimension, Type: "string"},
			},
			Measures: []lookml.Field{
				{Name: "products.count", LabelShort: "Count", ViewLabel: "Products", Category: lookml.CategoryMeasure},
				{Name: "orders.count", LabelShort: "Count", ViewLabel: "Orders", Category: lookml.CategoryMeasure},
			},
		},
	}
	region, _ := explore.Field("orders.region")
	count, ok := CompanionCountField(explore, region)
	if !ok {
		t.Fatalf("expected a companion count field")
	}
	if count.Name != "orders.count" {
		t.Errorf("companion = %s, want orders.count (same view label)", count.Name)
	}
	if !CanComputeTopValues(explore, region) {
		t.Errorf("top values should be computable for region")
	}
}

func TestNoCompanionWithoutSharedViewLabel(t *testing.T) {
	explore := &lookml.Explore{
		Name: "orders",
		Fields: lookml.ExploreFields{
			Dimensions: []lookml.Field{
				{Name: "users.city", LabelShort: "City", ViewLabel: "Users", Category: lookml.CategoryDimension, Type: "string"},
			},
			Measures: []lookml.Field{
				{Name: "orders.count", LabelShort: "Count", ViewLabel: "Orders", Category: lookml.CategoryMeasure},
				{Name: "orders.total", LabelShort: "Total", ViewLabel: "Users", Category: lookml.CategoryMeasure},
			},
		},
	}
	city, _ := explore.Field("users.city")
	if _, ok := CompanionCountField(explore, city); ok {
		t.Errorf("expected no companion count for a view label with no Count measure")
	}
	if CanComputeTopValues(explore, city) {
		t.Errorf("top values should not be computable without a companion count")
	}
}

func TestCanComputeTopValuesRejectsMeasures(t *testing.T) {
	explore := testExplore()
	count, _ := explore.Field("orders.count")
	if CanComputeTopValues(explore, count) {
		t.Errorf("top values should not be computable for a measure")
	}
}

func TestCanComputeDistribution(t *testing.T) {
	cases := []struct {
		name  string
		field lookml.Field
		want  bool
	}{
		{"numeric dimension", lookml.Field{Category: lookml.CategoryDimension, Type: "number"}, true},
		{"string dimension", lookml.Field{Category: lookml.CategoryDimension, Type: "string"}, false},
		{"numeric measure", lookml.Field{Category: lookml.CategoryMeasure, Type: "number"}, false},
	}
	for _, c := range cases {
		if got := CanComputeDistribution(c.field); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

package summary

import (
	"context"

	"github.com/jkdabbert/app-data-dictionary/internal/api"
	"github.com/jkdabbert/app-data-dictionary/internal/lookml"
)

// fakeRunner replays canned results in call order and records every query it
// was handed.
type fakeRunner struct {
	queries []api.InlineQuery
	results []*api.QueryResult
	errs    []error
}

func (f *fakeRunner) RunInlineQuery(_ context.Context, q api.InlineQuery) (*api.QueryResult, error) {
	i := len(f.queries)
	f.queries = append(f.queries, q)
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.results) {
		return f.results[i], nil
	}
	return &api.QueryResult{}, nil
}

func num(v float64) api.Cell { return api.Cell{Value: v} }

func testExplore() *lookml.Explore {
	return &lookml.Explore{
		Name: "order_items",
		Fields: lookml.ExploreFields{
			Dimensions: []lookml.Field{
				{Name: "orders.status", LabelShort: "Status", ViewLabel: "Orders", Category: lookml.CategoryDimension, Type: "string"},
				{Name: "orders.price", LabelShort: "Price", ViewLabel: "Orders", Category: lookml.CategoryDimension, Type: "number"},
				{Name: "products.category", LabelShort: "Category", ViewLabel: "Products", Category: lookml.CategoryDimension, Type: "string"},
			},
			Measures: []lookml.Field{
				{Name: "orders.count", LabelShort: "Count", ViewLabel: "Orders", Category: lookml.CategoryMeasure, Type: "count"},
			},
		},
	}
}

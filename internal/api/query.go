package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// InlineQuery is an ad-hoc aggregate query against one view of a model.
// Grouping is implicit: every non-aggregate field in Fields groups the result.
type InlineQuery struct {
	Model         string         `json:"model"`
	View          string         `json:"view"`
	Fields        []string       `json:"fields"`
	DynamicFields []DynamicField `json:"dynamic_fields,omitempty"`
	Sorts         []string       `json:"sorts,omitempty"`
	Limit         int            `json:"limit,omitempty"`
	Total         bool           `json:"total,omitempty"`
}

// DynamicField defines a derived dimension or measure computed server-side.
// Exactly one of Dimension or Measure names the new field; Expression holds a
// dimension's defining expression, BasedOn+Type a measure's aggregation.
type DynamicField struct {
	Dimension  string `json:"dimension,omitempty"`
	Measure    string `json:"measure,omitempty"`
	Type       string `json:"type,omitempty"`
	BasedOn    string `json:"based_on,omitempty"`
	Expression string `json:"expression,omitempty"`
	Label      string `json:"label,omitempty"`
}

// Cell is one raw result cell as returned by the query API. Value may be a
// number, string, or null; Rendered and Links are optional.
type Cell struct {
	Value    any    `json:"value"`
	Rendered string `json:"rendered,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

type Link struct {
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

// Row maps field name to cell for one result row.
type Row map[string]Cell

// QueryResult is the decoded response of an inline query: ordered data rows
// plus, when requested, a totals row keyed the same way.
type QueryResult struct {
	Rows   []Row `json:"data"`
	Totals Row   `json:"totals_data,omitempty"`
}

// RunInlineQuery executes q and returns its rows. Each call carries a
// client-generated correlation id so failures can be traced server-side.
func (c *Client) RunInlineQuery(ctx context.Context, q InlineQuery) (*QueryResult, error) {
	if q.Model == "" || q.View == "" {
		return nil, fmt.Errorf("inline query requires model and view")
	}
	if len(q.Fields) == 0 {
		return nil, fmt.Errorf("inline query requires at least one field")
	}
	var out QueryResult
	path := "/queries/run/json_detail?client_request_id=" + uuid.NewString()
	if err := c.post(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

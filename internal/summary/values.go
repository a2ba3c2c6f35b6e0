package summary

import (
	"context"
	"fmt"

	"github.com/jkdabbert/app-data-dictionary/internal/api"
	"github.com/jkdabbert/app-data-dictionary/internal/lookml"
)

// topValuesLimit caps how many groups a top-values summary shows.
const topValuesLimit = 10

// topValues builds and interprets the grouped top-N frequency query: group by
// the field, count rows per group, keep the most frequent groups.
func (s *Service) topValues(ctx context.Context, req Request, explore *lookml.Explore, field lookml.Field) (*Result, error) {
	countField, ok := CompanionCountField(explore, field)
	if !ok {
		return nil, fmt.Errorf("explore %s has no count measure for view label %q", explore.Name, field.ViewLabel)
	}
	q := api.InlineQuery{
		Model:  req.Model,
		View:   req.Explore,
		Fields: []string{field.Name, countField.Name},
		Sorts:  []string{countField.Name + " desc"},
		Limit:  topValuesLimit,
		Total:  true,
	}
	resp, err := s.runner.RunInlineQuery(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("top values query: %w", err)
	}

	res := &Result{
		Align: []Alignment{AlignLeft, AlignRight},
		Data:  make([][]Datum, 0, len(resp.Rows)),
		Max:   make([]*float64, 2),
	}
	for _, row := range resp.Rows {
		res.Data = append(res.Data, []Datum{
			formatCell(row[field.Name]),
			formatCell(row[countField.Name]),
		})
	}
	// Rows arrive sorted descending by count, so the first row carries the
	// column maximum.
	if len(res.Data) > 0 {
		res.Max[1] = res.Data[0][1].N
	}
	if total, ok := resp.Totals[countField.Name]; ok {
		if n, ok := numericValue(total.Value); ok {
			res.Aux = localizeNumber(n) + " rows"
		}
	}
	return res, nil
}

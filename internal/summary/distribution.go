package summary

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jkdabbert/app-data-dictionary/internal/api"
	"github.com/jkdabbert/app-data-dictionary/internal/lookml"
)

// histogramBins is the fixed bin count for distribution histograms.
const histogramBins = 20

// binDimension names the derived bin-assignment dimension in the histogram query.
const binDimension = "bin"

// distribution builds and interprets the min/max/average query, then derives
// histogram bins and a second query counting rows per bin.
func (s *Service) distribution(ctx context.Context, req Request, explore *lookml.Explore, field lookml.Field) (*Result, error) {
	short := shortFieldName(field.Name)
	minName := "min_of_" + short
	maxName := "max_of_" + short
	avgName := "average_of_" + short
	q := api.InlineQuery{
		Model:  req.Model,
		View:   req.Explore,
		Fields: []string{minName, maxName, avgName},
		DynamicFields: []api.DynamicField{
			{Measure: minName, Type: "min", BasedOn: field.Name},
			{Measure: maxName, Type: "max", BasedOn: field.Name},
			{Measure: avgName, Type: "average", BasedOn: field.Name},
		},
	}
	resp, err := s.runner.RunInlineQuery(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("distribution stats query: %w", err)
	}
	var stats api.Row
	if len(resp.Rows) > 0 {
		stats = resp.Rows[0]
	}

	res := &Result{
		Align: []Alignment{AlignLeft, AlignRight},
		Data: [][]Datum{
			statRow("Min", stats[minName]),
			statRow("Max", stats[maxName]),
			statRow("Average", stats[avgName]),
		},
		Max: make([]*float64, 2),
	}

	// Histogram only when a nonzero minimum came back. A zero minimum is
	// indistinguishable from a missing one here; the observable skip is kept.
	minVal, minOK := numericValue(stats[minName].Value)
	maxVal, maxOK := numericValue(stats[maxName].Value)
	if minOK && maxOK && minVal != 0 {
		hist, err := s.histogram(ctx, req, explore, field, minVal, maxVal)
		if err != nil {
			return nil, err
		}
		res.Histogram = hist
	}
	return res, nil
}

// statRow builds one ["Label", value] grid row. The value renders with
// thousands separators when nonzero, else as an empty cell.
func statRow(label string, c api.Cell) []Datum {
	v := Datum{}
	if n, ok := numericValue(c.Value); ok {
		v.N = &n
		if n != 0 {
			v.V = localizeNumber(n)
		}
	}
	return []Datum{{V: label}, v}
}

// histogram issues the per-bin count query and assembles exactly histogramBins
// ascending contiguous bins covering [min, max]. Bins with no matching result
// row count zero.
func (s *Service) histogram(ctx context.Context, req Request, explore *lookml.Explore, field lookml.Field, min, max float64) (*Histogram, error) {
	binSize := math.Abs(max-min) / histogramBins
	edges := make([]float64, histogramBins+1)
	for i := range edges {
		edges[i] = min + float64(i)*binSize
	}
	edges[histogramBins] = max

	countField, ok := CompanionCountField(explore, field)
	if !ok {
		// No count measure to group against; the stats grid stands alone.
		return nil, nil
	}
	expr := binAssignmentExpr(field.Name, min, binSize, histogramBins)
	q := api.InlineQuery{
		Model:  req.Model,
		View:   req.Explore,
		Fields: []string{binDimension, countField.Name},
		DynamicFields: []api.DynamicField{
			{Dimension: binDimension, Type: "number", Expression: Serialize(expr)},
		},
		Sorts: []string{binDimension},
	}
	resp, err := s.runner.RunInlineQuery(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("histogram query: %w", err)
	}

	counts := make(map[int]float64, len(resp.Rows))
	for _, row := range resp.Rows {
		idx, ok := numericValue(row[binDimension].Value)
		if !ok {
			continue
		}
		if n, ok := numericValue(row[countField.Name].Value); ok {
			counts[int(idx)] = n
		}
	}
	hist := &Histogram{Bins: make([]Bin, histogramBins)}
	for i := 0; i < histogramBins; i++ {
		hist.Bins[i] = Bin{Count: counts[i], Min: edges[i], Max: edges[i+1]}
	}
	return hist, nil
}

// shortFieldName strips the view qualifier from a fully qualified field name,
// e.g. "orders.price" -> "price".
func shortFieldName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

package summary

// Alignment tells a caller how to align one output column.
type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// Datum is one display cell: a display string, an optional hyperlink, and the
// underlying numeric value when the raw value was numeric.
type Datum struct {
	V string   `json:"v"`
	L string   `json:"l,omitempty"`
	N *float64 `json:"n,omitempty"`
}

// Result is the uniform display-ready output of a summary. Data is
// rectangular: every row has len(Align) cells. Max holds a per-column maximum
// for bar scaling, nil where scaling is unsupported. Aux is an optional
// caption. Histogram is attached only for distribution summaries that could
// compute one.
type Result struct {
	Align     []Alignment `json:"align"`
	Data      [][]Datum   `json:"data"`
	Max       []*float64  `json:"max"`
	Aux       string      `json:"aux,omitempty"`
	Histogram *Histogram  `json:"histogram,omitempty"`
}

// Histogram holds ascending contiguous bins covering the field's [min, max].
type Histogram struct {
	Bins []Bin `json:"data"`
}

// Bin is one [Min, Max) sub-range and the number of rows falling in it.
type Bin struct {
	Count float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

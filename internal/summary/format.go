package summary

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jkdabbert/app-data-dictionary/internal/api"
)

// formatCell narrows one loose query cell into a display datum. A missing or
// null value yields an empty datum; nothing errors here.
func formatCell(c api.Cell) Datum {
	var d Datum
	if len(c.Links) > 0 {
		d.L = c.Links[0].URL
	}
	if n, ok := numericValue(c.Value); ok {
		d.N = &n
	}
	switch {
	case c.Rendered != "":
		d.V = c.Rendered
	case d.N != nil:
		d.V = strconv.FormatFloat(*d.N, 'f', -1, 64)
	case c.Value != nil:
		d.V = fmt.Sprintf("%v", c.Value)
	}
	return d
}

// numericValue narrows the dynamic cell value to a float64 when its runtime
// type is numeric. JSON decoding normally hands us float64, but values that
// passed through other layers may arrive as ints or json.Number.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

var localePrinter = message.NewPrinter(language.English)

// localizeNumber renders n with thousands separators, e.g. 1650000 -> "1,650,000".
func localizeNumber(n float64) string {
	return localePrinter.Sprintf("%v", number.Decimal(n))
}

package summary

import "fmt"

// Kind selects which class of summary a request asks for.
type Kind int

const (
	KindValues Kind = iota
	KindDistribution
)

func (k Kind) String() string {
	switch k {
	case KindValues:
		return "values"
	case KindDistribution:
		return "distribution"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a user-supplied kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "values":
		return KindValues, nil
	case "distribution":
		return KindDistribution, nil
	default:
		return 0, fmt.Errorf("unknown summary kind %q (use values|distribution)", s)
	}
}

// Request identifies one summary computation: a field within an explore of a
// model, and the kind of summary wanted. Requests are immutable values and
// double as the unit of memoization.
type Request struct {
	Model   string
	Explore string
	Field   string
	Kind    Kind
}

// Key returns the canonical serialization used as the cache key. Equal
// requests always produce identical keys.
func (r Request) Key() string {
	return fmt.Sprintf("%s/%s/%s#%s", r.Model, r.Explore, r.Field, r.Kind)
}

package lookml

// Category distinguishes groupable fields from aggregated ones.
type Category string

const (
	CategoryDimension Category = "dimension"
	CategoryMeasure   Category = "measure"
)

// Model describes one semantic data model and the explores it exposes.
type Model struct {
	Name     string       `json:"name"`
	Label    string       `json:"label,omitempty"`
	Project  string       `json:"project_name,omitempty"`
	Explores []ExploreRef `json:"explores,omitempty"`
}

// ExploreRef is the lightweight listing entry for an explore within a model.
type ExploreRef struct {
	Name        string `json:"name"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// Explore is one queryable view within a model, with its full field metadata.
type Explore struct {
	Name        string        `json:"name"`
	ModelName   string        `json:"model_name,omitempty"`
	Label       string        `json:"label,omitempty"`
	Description string        `json:"description,omitempty"`
	Fields      ExploreFields `json:"fields"`
}

type ExploreFields struct {
	Dimensions []Field `json:"dimensions"`
	Measures   []Field `json:"measures"`
}

// Field describes one dimension or measure of an explore. All attributes are
// read-only inputs supplied by the metadata API.
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label,omitempty"`
	LabelShort  string   `json:"label_short,omitempty"`
	ViewLabel   string   `json:"view_label,omitempty"`
	Category    Category `json:"category"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	SQL         string   `json:"sql,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
}

// Field looks up a field by name across the explore's dimensions and measures.
func (e *Explore) Field(name string) (Field, bool) {
	for _, f := range e.Fields.Dimensions {
		if f.Name == name {
			return f, true
		}
	}
	for _, f := range e.Fields.Measures {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

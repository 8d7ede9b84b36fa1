package domain

// Scope selects the subset of the document a query traverses.
type Scope string

const (
	ScopeCurrentPage      Scope = "current-page"
	ScopeAllPages         Scope = "all-pages"
	ScopeCurrentSelection Scope = "current-selection"
)

// ElementKind pre-filters candidates by node type before the filter set
// runs. Besides node kinds it accepts the boolean-operation subtypes
// (UNION, SUBTRACT, INTERSECT, EXCLUDE) and the pseudo-kinds below.
type ElementKind string

const (
	ElementAny      ElementKind = "ANY"
	ElementStyle    ElementKind = "STYLE"
	ElementVariable ElementKind = "VARIABLE"
)

// Action is the bulk operation applied to the matched subset.
type Action string

const (
	ActionNone      Action = ""
	ActionSelect    Action = "select"
	ActionRename    Action = "rename"
	ActionDuplicate Action = "duplicate"
	ActionDelete    Action = "delete"
	ActionExport    Action = "export"
)

// Query is one filter/action request, constructed fresh from user input
// per invocation.
type Query struct {
	Scope       Scope       `json:"scope" yaml:"scope" mapstructure:"scope"`
	ElementKind ElementKind `json:"element_kind" yaml:"element_kind" mapstructure:"element_kind"`
	Filters     []Filter    `json:"filters" yaml:"filters" mapstructure:"filters"`
	Action      Action      `json:"action" yaml:"action" mapstructure:"action"`

	// RenameTemplate carries the {id},{name},{page},{date},{alphabet}
	// placeholder template; RenameReplace optionally restricts the
	// rename to regex matches inside the existing name.
	RenameTemplate string `json:"rename_template,omitempty" yaml:"rename_template,omitempty" mapstructure:"rename_template"`
	RenameReplace  string `json:"rename_replace,omitempty" yaml:"rename_replace,omitempty" mapstructure:"rename_replace"`

	Export ExportOverrides `json:"export,omitempty" yaml:"export,omitempty" mapstructure:"export"`

	// SelectedIDs is the user's checkbox sub-selection of the matched
	// set. Nil means "all matches".
	SelectedIDs []string `json:"selected_ids,omitempty" yaml:"selected_ids,omitempty" mapstructure:"selected_ids"`
}

// ElementSummary is the per-match row reported to the presentation layer.
type ElementSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PageName string `json:"page_name"`
	Selected bool   `json:"selected"`
}

// StyleSummary is the per-style row for STYLE queries.
type StyleSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StyleType string `json:"style_type"`
	Selected  bool   `json:"selected"`
}

// VariableSummary is one collection/mode/variable row for VARIABLE
// queries, with the value already normalized to a display string.
type VariableSummary struct {
	Collection string `json:"collection"`
	Mode       string `json:"mode"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	Selected   bool   `json:"selected"`
}

// QueryResult is the outcome of one query run. Match results are
// ephemeral: nothing is cached between invocations.
type QueryResult struct {
	RunID string `json:"run_id"`
	Count int    `json:"count"`

	// CurrentPageCount is how many traversal candidates sit on the
	// current page, independent of how many matched.
	CurrentPageCount int               `json:"current_page_count"`
	Elements         []ElementSummary  `json:"elements,omitempty"`
	Styles           []StyleSummary    `json:"styles,omitempty"`
	Variables        []VariableSummary `json:"variables,omitempty"`

	// Download is set when the action produced a file for the user.
	Download *ExportFile `json:"download,omitempty"`
}

// AttributeValue is one row of a single-element attribute snapshot.
// Value is the display value: numbers, booleans, strings, "Mixed" for
// heterogeneous corners and "N/A" for attributes the kind lacks.
type AttributeValue struct {
	Key   AttributeKey `json:"key"`
	Value any          `json:"value"`
}

// LoadingState is the progress snapshot flushed at traversal checkpoints.
type LoadingState struct {
	Active    bool `json:"active"`
	Count     int  `json:"count"`
	PageCount int  `json:"page_count"`
	NodeCount int  `json:"node_count"`
}

package runner

import "github.com/atelier-tools/sift/pkg/domain"

// Inbound message types.
const (
	MsgFilterElements  = "filter-elements"
	MsgInitializeCount = "initialize-count"
	MsgUpdateScope     = "update-scope"
	MsgIdentify        = "identify"
	MsgLoadSelection   = "load-selection"
	MsgSelectElement   = "select-element"
	MsgGetFilename     = "get-filename"
	MsgResizeWindow    = "resize-window"
)

// Outbound message types.
const (
	MsgLoading            = "loading"
	MsgUpdateElementCount = "update-element-count"
	MsgUpdateResults      = "update-results"
	MsgResultsInvalidated = "results-invalidated"
	MsgDownloadFile       = "download-file"
	MsgNotify             = "notify"
	MsgScopeStart         = "scope-start"
	MsgFilename           = "filename"
	MsgIdentifyResult     = "identify-result"
	MsgSelection          = "selection"
	MsgError              = "error"
)

// Envelope is one line of the JSON message stream, both directions.
type Envelope struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// UpdateScopePayload switches the traversal scope.
type UpdateScopePayload struct {
	Scope domain.Scope `json:"scope" mapstructure:"scope"`
}

// IdentifyPayload asks for one attribute of the selected element.
type IdentifyPayload struct {
	Key domain.AttributeKey `json:"key" mapstructure:"key"`
}

// SelectElementPayload navigates the host to one element.
type SelectElementPayload struct {
	ID string `json:"id" mapstructure:"id"`
}

// ResizeWindowPayload carries the presentation surface size. The engine
// has no window; the payload is validated and acknowledged so front ends
// can share one message channel.
type ResizeWindowPayload struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

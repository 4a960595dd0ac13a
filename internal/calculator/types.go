package calculator

import "github.com/hsinghweb/eag-v2-s13/internal/automation"

// RunRequest is the JSON body for POST /calculator/run.
type RunRequest struct {
	Instruction string `json:"instruction"`
}

// PressRequest is the JSON body for POST /calculator/press.
type PressRequest struct {
	Button string `json:"button"`
}

// RunResponse is the JSON response for run and press. FailedIndex is -1
// when every press succeeded; on a partial failure it marks how far the
// sequence got, and Error carries the reason.
type RunResponse struct {
	Instruction string                   `json:"instruction,omitempty"`
	Symbols     []string                 `json:"symbols"`
	Clicks      []automation.ClickResult `json:"clicks"`
	FailedIndex int                      `json:"failed_index"`
	Error       string                   `json:"error,omitempty"`
	RequestID   string                   `json:"request_id,omitempty"`
}

// OpenResponse is the JSON response for POST /calculator/open.
type OpenResponse struct {
	Opened    bool   `json:"opened"`
	RequestID string `json:"request_id,omitempty"`
}

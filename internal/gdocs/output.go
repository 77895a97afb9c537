package gdocs

import (
	"fmt"
	"strings"

	docs "google.golang.org/api/docs/v1"
)

// OutputFormat selects how the request list is packaged.
type OutputFormat string

const (
	// OutputSingle wraps all requests in one batchUpdate body.
	OutputSingle OutputFormat = "single"
	// OutputMultiple additionally lists every request with a sequential id.
	OutputMultiple OutputFormat = "multiple"
)

// OutputFormats lists the accepted formats.
var OutputFormats = []OutputFormat{OutputSingle, OutputMultiple}

// ParseOutputFormat validates a format name. Empty defaults to single.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return OutputSingle, nil
	case string(OutputSingle), string(OutputMultiple):
		return OutputFormat(v), nil
	}
	return "", fmt.Errorf("invalid output format %q, must be 'single' or 'multiple'", s)
}

// Output is the packaged result of a conversion, ready to be sent as a
// documents.create body followed by a documents.batchUpdate body.
type Output struct {
	DocumentTitle         string                          `json:"documentTitle"`
	CreateDocumentRequest *docs.Document                  `json:"createDocumentRequest"`
	BatchUpdateRequest    *docs.BatchUpdateDocumentRequest `json:"batchUpdateRequest"`
	Requests              []NumberedRequest               `json:"requests,omitempty"`
}

// NumberedRequest is one request of the multiple format.
type NumberedRequest struct {
	RequestID string        `json:"requestId"`
	Request   *docs.Request `json:"request"`
}

// Package wraps requests in the chosen output format.
func Package(title string, reqs []*docs.Request, format OutputFormat) *Output {
	if reqs == nil {
		reqs = []*docs.Request{}
	}
	out := &Output{
		DocumentTitle:         title,
		CreateDocumentRequest: &docs.Document{Title: title},
		BatchUpdateRequest:    &docs.BatchUpdateDocumentRequest{Requests: reqs},
	}
	if format == OutputMultiple {
		out.Requests = make([]NumberedRequest, len(reqs))
		for i, r := range reqs {
			out.Requests[i] = NumberedRequest{
				RequestID: fmt.Sprintf("request_%d", i+1),
				Request:   r,
			}
		}
	}
	return out
}

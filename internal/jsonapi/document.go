package jsonapi

import "time"

// MediaType is the only media type the API accepts and produces.
const MediaType = "application/vnd.api+json"

// TimeLayout renders timestamps in UTC with a fixed six digit fraction, so the
// same instant always has the same textual form.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// Document is a top-level document carrying primary data. Data is either a
// ResourceObject or a slice of them.
type Document struct {
	Data any `json:"data"`
}

// ResourceObject represents one entity inside a document.
type ResourceObject struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes any    `json:"attributes"`
}

// FormatTime renders t using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a timestamp produced by FormatTime.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Author-specific validation errors
var (
	// ErrAuthorNameEmpty is returned when an author's name is empty or whitespace.
	ErrAuthorNameEmpty = errors.New("author name cannot be empty")

	// ErrAuthorTimestamps is returned when UpdatedAt precedes CreatedAt.
	ErrAuthorTimestamps = errors.New("author updated_at cannot precede created_at")
)

// TimePrecision is the resolution at which author timestamps are kept.
// It matches PostgreSQL timestamptz so values survive a storage round trip.
const TimePrecision = time.Microsecond

// Author is the single resource exposed by the API.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorAttributes holds the client-writable fields of an Author.
// Updates replace every attribute; there is no partial patch of name.
type AuthorAttributes struct {
	Name string `json:"name"`
}

// Validate checks the attributes before they reach a store.
func (a AuthorAttributes) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAuthorNameEmpty
	}
	return nil
}

// NewAuthor builds an unsaved Author stamped with the given time.
// The ID is left at zero; stores assign it on insert.
func NewAuthor(attrs AuthorAttributes, now time.Time) (*Author, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	ts := Timestamp(now)
	return &Author{
		Name:      attrs.Name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// Apply overwrites the writable fields and refreshes UpdatedAt.
// CreatedAt and ID are never touched. UpdatedAt never moves backwards,
// even if the supplied clock does.
func (a *Author) Apply(attrs AuthorAttributes, now time.Time) error {
	if err := attrs.Validate(); err != nil {
		return err
	}

	a.Name = attrs.Name
	ts := Timestamp(now)
	if ts.Before(a.UpdatedAt) {
		ts = a.UpdatedAt
	}
	a.UpdatedAt = ts
	return nil
}

// Validate checks if the Author has valid data.
func (a *Author) Validate() error {
	if a.ID < 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrAuthorNameEmpty
	}
	if a.UpdatedAt.Before(a.CreatedAt) {
		return ErrAuthorTimestamps
	}
	return nil
}

// StringID renders the ID the way JSON:API documents carry it.
func (a *Author) StringID() string {
	return strconv.FormatInt(a.ID, 10)
}

// ParseAuthorID parses a path or document id. Only positive integers name an author.
func ParseAuthorID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// Timestamp normalises a time to UTC at TimePrecision.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(TimePrecision)
}

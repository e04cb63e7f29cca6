package interfaces

import (
	"context"
	"encoding/json"
	"time"
)

// Location identifies the remote directory that holds news documents. Sources
// that are not repository backed (e.g. a local filesystem) only read Path.
type Location struct {
	Owner string
	Repo  string
	Path  string
	Ref   string
}

// Entry is a single item of a document listing.
type Entry struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// Fetcher enumerates candidate documents and retrieves their raw text.
type Fetcher interface {
	ListDocuments(ctx context.Context, location Location) ([]Entry, error)
	FetchContent(ctx context.Context, downloadURL string) (string, error)
}

// Post is a normalised news post derived from a markdown document. ID and Slug
// carry the same value; consumers address posts by either name.
type Post struct {
	ID            string  `json:"id"`
	Slug          string  `json:"slug"`
	Title         string  `json:"title"`
	Date          string  `json:"date"`
	FormattedDate string  `json:"formattedDate"`
	Summary       string  `json:"summary"`
	Image         *string `json:"image"`
	Body          string  `json:"body"`

	// FrontMatter keeps every extracted key, including the ones that have no
	// dedicated field above.
	FrontMatter map[string]string `json:"-"`
	// PublishedAt is the calendar interpretation of Date. Zero when Date is
	// missing or unparsable.
	PublishedAt time.Time `json:"-"`
}

// FallbackPost is the reduced record served when the document batch could not
// be loaded at all.
type FallbackPost struct {
	ID            int     `json:"id"`
	Date          string  `json:"date"`
	FormattedDate string  `json:"formattedDate"`
	Title         string  `json:"title"`
	Summary       string  `json:"summary"`
	Image         *string `json:"image"`
}

// Feed is the outcome of a news load. Exactly one of Posts or Fallback is the
// active list: Fallback when Degraded is true, Posts otherwise.
type Feed struct {
	Posts    []Post
	Fallback []FallbackPost
	Degraded bool
	// Cause records the batch level failure that triggered the fallback.
	Cause error
}

// Len reports the number of records in the active list.
func (f Feed) Len() int {
	if f.Degraded {
		return len(f.Fallback)
	}
	return len(f.Posts)
}

// MarshalJSON encodes the active list as a plain JSON array.
func (f Feed) MarshalJSON() ([]byte, error) {
	if f.Degraded {
		if f.Fallback == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(f.Fallback)
	}
	if f.Posts == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.Posts)
}

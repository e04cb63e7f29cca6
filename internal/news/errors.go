package news

import "fmt"

// ListingError reports that the document listing could not be obtained. It
// always fails the batch.
type ListingError struct {
	Location string
	Err      error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("news: list documents %s: %v", e.Location, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

// RetrievalError reports that a single document's content could not be
// downloaded.
type RetrievalError struct {
	Name string
	URL  string
	Err  error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("news: fetch %s: %v", e.Name, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

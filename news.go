package newsfeed

import (
	"context"
	"io"
	"net/http"

	newscmd "github.com/goliatone/go-newsfeed/internal/commands/news"
	"github.com/goliatone/go-newsfeed/internal/di"
	"github.com/goliatone/go-newsfeed/internal/news"
	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

type (
	Post         = interfaces.Post
	FallbackPost = interfaces.FallbackPost
	Feed         = interfaces.Feed
	Location     = interfaces.Location
	Entry        = interfaces.Entry
	Fetcher      = interfaces.Fetcher

	Logger         = interfaces.Logger
	LoggerProvider = interfaces.LoggerProvider

	// ListingError reports a failed directory listing.
	ListingError = news.ListingError
	// RetrievalError reports a failed document download.
	RetrievalError = news.RetrievalError

	// ExportNewsCommand writes the feed as JSON.
	ExportNewsCommand = newscmd.ExportNewsCommand
	// ExportNewsHandler executes ExportNewsCommand.
	ExportNewsHandler = newscmd.ExportNewsHandler
)

// ErrFeedDegraded is returned by the export handler when FailOnDegraded is set
// and the fallback posts were served.
var ErrFeedDegraded = newscmd.ErrFeedDegraded

// Option customises the module during construction.
type Option = di.Option

// WithFetcher replaces the document source selected by Config.Source.
func WithFetcher(fetcher Fetcher) Option {
	return di.WithFetcher(fetcher)
}

// WithLoggerProvider replaces the logger provider selected by Config.Logging.
func WithLoggerProvider(provider LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// WithHTTPClient sets the HTTP client used by the GitHub source.
func WithHTTPClient(client *http.Client) Option {
	return di.WithHTTPClient(client)
}

// Module is the top level newsfeed façade.
type Module struct {
	container *di.Container
}

// New validates cfg and wires the news pipeline.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// LoadNews lists, fetches and parses every news document and returns the
// posts newest first. It never fails: when the batch cannot be loaded the
// fallback posts are returned with Degraded set.
func (m *Module) LoadNews(ctx context.Context) Feed {
	return m.container.NewsService().LoadNews(ctx)
}

// LoadAll is LoadNews without the fallback: it returns the batch level
// failure (*ListingError, *RetrievalError) instead of substituting the
// placeholder posts. Callers that need the never-failing feed use LoadNews.
func (m *Module) LoadAll(ctx context.Context) ([]Post, error) {
	return m.container.NewsService().LoadAll(ctx)
}

// ParsePost converts a single document into a post using the configured
// parser. Documents without a frontmatter block yield an error.
func (m *Module) ParsePost(content, filename string) (Post, error) {
	return m.container.Parser().Parse(content, filename)
}

// ExportNews returns a handler for ExportNewsCommand. A nil stdout selects
// os.Stdout.
func (m *Module) ExportNews(stdout io.Writer) *ExportNewsHandler {
	return m.container.ExportNewsHandler(stdout)
}

// Fallback returns a fresh copy of the placeholder posts served when loading
// fails.
func Fallback() []FallbackPost {
	return news.Fallback()
}

// SortNewestFirst orders posts by date, newest first. Posts without a
// parsable date keep their relative order after the dated ones.
func SortNewestFirst(posts []Post) {
	news.SortNewestFirst(posts)
}

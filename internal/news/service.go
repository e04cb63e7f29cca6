package news

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-newsfeed/internal/logging"
	"github.com/goliatone/go-newsfeed/internal/markdown"
	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

// PostParser converts one raw document into a post.
type PostParser interface {
	Parse(content, filename string) (interfaces.Post, error)
	Extension() string
}

// Config controls a batch load.
type Config struct {
	Location interfaces.Location
	// Concurrency caps in-flight document fetches. Zero means unbounded.
	Concurrency int
	// TolerateRetrievalFailures drops documents whose download fails instead
	// of failing the batch.
	TolerateRetrievalFailures bool
}

// Service assembles the news feed from a fetcher and a parser.
type Service struct {
	fetcher interfaces.Fetcher
	parser  PostParser
	cfg     Config
	logger  interfaces.Logger
}

// NewService wires a batch loader. A nil parser selects markdown defaults.
func NewService(fetcher interfaces.Fetcher, parser PostParser, cfg Config, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	if parser == nil {
		parser = markdown.NewParser(markdown.Options{Logger: logger})
	}
	return &Service{
		fetcher: fetcher,
		parser:  parser,
		cfg:     cfg,
		logger:  logger,
	}
}

// LoadNews returns the feed and never fails. When the batch fails as a whole
// the fallback posts are served instead and the cause is recorded on
// the feed.
func (s *Service) LoadNews(ctx context.Context) interfaces.Feed {
	logger := s.runLogger()
	posts, err := s.load(ctx, logger)
	if err != nil {
		logger.Error("news.load.fallback", "location", describeLocation(s.cfg.Location), "error", err)
		return interfaces.Feed{
			Fallback: Fallback(),
			Degraded: true,
			Cause:    err,
		}
	}

	logger.Info("news.load.completed", "count", len(posts))
	return interfaces.Feed{Posts: posts}
}

// LoadAll lists the configured location, fetches and parses every document
// with the recognised extension, and returns the posts newest first.
//
// Documents that fail to parse are dropped. A listing failure, a retrieval
// failure (unless tolerated) or a panic fails the whole batch.
// LoadNews wraps it with the fallback substitution.
func (s *Service) LoadAll(ctx context.Context) ([]interfaces.Post, error) {
	return s.load(ctx, s.runLogger())
}

// runLogger tags every entry of one load with a shared load_id.
func (s *Service) runLogger() interfaces.Logger {
	return logging.WithFields(s.logger, map[string]any{"load_id": uuid.NewString()})
}

func (s *Service) load(ctx context.Context, logger interfaces.Logger) (posts []interfaces.Post, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	defer func() {
		if r := recover(); r != nil {
			posts = nil
			err = fmt.Errorf("news: load panicked: %v", r)
		}
	}()

	entries, err := s.fetcher.ListDocuments(ctx, s.cfg.Location)
	if err != nil {
		return nil, &ListingError{Location: describeLocation(s.cfg.Location), Err: err}
	}

	candidates := filterEntries(entries, s.parser.Extension())
	logger.Debug("news.load.listed", "entries", len(entries), "candidates", len(candidates))

	slots := make([]*interfaces.Post, len(candidates))

	var group errgroup.Group
	if s.cfg.Concurrency > 0 {
		group.SetLimit(s.cfg.Concurrency)
	}
	for i, entry := range candidates {
		group.Go(func() error {
			return s.loadDocument(ctx, logger, entry, &slots[i])
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	posts = make([]interfaces.Post, 0, len(slots))
	for _, post := range slots {
		if post != nil {
			posts = append(posts, *post)
		}
	}
	SortNewestFirst(posts)
	return posts, nil
}

// loadDocument fetches and parses a single entry into slot. Parse failures
// leave the slot empty and return nil; retrieval failures are returned unless
// the loader tolerates them.
func (s *Service) loadDocument(ctx context.Context, logger interfaces.Logger, entry interfaces.Entry, slot **interfaces.Post) (err error) {
	logger = logging.WithDocumentContext(logger, entry.Name, entry.DownloadURL)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("news: process %s panicked: %v", entry.Name, r)
		}
	}()

	content, err := s.fetcher.FetchContent(ctx, entry.DownloadURL)
	if err != nil {
		retrieval := &RetrievalError{Name: entry.Name, URL: entry.DownloadURL, Err: err}
		if s.cfg.TolerateRetrievalFailures {
			logger.Warn("news.fetch.skipped", "error", retrieval)
			return nil
		}
		return retrieval
	}

	post, err := s.documentParser(logger).Parse(content, entry.Name)
	if err != nil {
		if !markdown.IsParseFailure(err) {
			logger.Error("news.parse.failed", "error", err)
		}
		return nil
	}

	*slot = &post
	return nil
}

// documentParser scopes the markdown parser to the document logger so its
// entries carry load_id and download_url. Other parsers are used as is.
func (s *Service) documentParser(logger interfaces.Logger) PostParser {
	if parser, ok := s.parser.(*markdown.Parser); ok {
		return parser.WithLogger(logger)
	}
	return s.parser
}

func filterEntries(entries []interfaces.Entry, extension string) []interfaces.Entry {
	out := make([]interfaces.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name, extension) {
			out = append(out, entry)
		}
	}
	return out
}

// SortNewestFirst orders posts by PublishedAt, newest first. Posts without a
// usable date go last and keep their relative order.
func SortNewestFirst(posts []interfaces.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].PublishedAt, posts[j].PublishedAt
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		return a.After(b)
	})
}

func describeLocation(loc interfaces.Location) string {
	var b strings.Builder
	if loc.Owner != "" || loc.Repo != "" {
		b.WriteString(loc.Owner)
		b.WriteString("/")
		b.WriteString(loc.Repo)
		b.WriteString(":")
	}
	b.WriteString(loc.Path)
	if loc.Ref != "" {
		b.WriteString("@")
		b.WriteString(loc.Ref)
	}
	return b.String()
}

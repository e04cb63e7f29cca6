package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-newsfeed/internal/logging"
	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

const (
	defaultExtension     = ".md"
	defaultUntitledTitle = "Untitled"
)

// Syntax selects how the frontmatter block is decoded.
type Syntax string

const (
	// SyntaxLines reads one "key: value" pair per line.
	SyntaxLines Syntax = "lines"
	// SyntaxYAML decodes the block as structured front matter.
	SyntaxYAML Syntax = "yaml"
)

// FailureKind classifies why a document produced no post.
type FailureKind string

const (
	FailureNoFrontMatter FailureKind = "no_frontmatter"
	FailureInternal      FailureKind = "internal_error"
)

// ParseFailure reports a document that could not be turned into a post. It is
// always local to that document.
type ParseFailure struct {
	Kind     FailureKind
	Filename string
	Err      error
}

func (f *ParseFailure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("parse %s: %s", f.Filename, f.Kind)
	}
	return fmt.Sprintf("parse %s: %s: %v", f.Filename, f.Kind, f.Err)
}

func (f *ParseFailure) Unwrap() error {
	return f.Err
}

// IsParseFailure reports whether err carries a *ParseFailure.
func IsParseFailure(err error) bool {
	var failure *ParseFailure
	return errors.As(err, &failure)
}

// Options configures a Parser. Zero values select the defaults.
type Options struct {
	Extension     string
	Syntax        Syntax
	UntitledTitle string
	Formatter     DateFormatter
	Logger        interfaces.Logger
}

// Parser converts raw documents into posts. It holds no mutable state and can
// be shared between goroutines.
type Parser struct {
	extension     string
	syntax        Syntax
	untitledTitle string
	formatter     DateFormatter
	logger        interfaces.Logger
}

// NewParser constructs a parser from opts.
func NewParser(opts Options) *Parser {
	p := &Parser{
		extension:     opts.Extension,
		syntax:        opts.Syntax,
		untitledTitle: opts.UntitledTitle,
		formatter:     opts.Formatter,
		logger:        opts.Logger,
	}
	if p.extension == "" {
		p.extension = defaultExtension
	}
	if p.syntax == "" {
		p.syntax = SyntaxLines
	}
	if p.untitledTitle == "" {
		p.untitledTitle = defaultUntitledTitle
	}
	if p.formatter == nil {
		p.formatter = NewLocaleFormatter("", "")
	}
	if p.logger == nil {
		p.logger = logging.NoOp()
	}
	return p
}

// Extension returns the file extension recognised as a news document.
func (p *Parser) Extension() string {
	return p.extension
}

// WithLogger returns a copy of the parser that logs through logger. The
// receiver is left untouched.
func (p *Parser) WithLogger(logger interfaces.Logger) *Parser {
	if logger == nil {
		return p
	}
	clone := *p
	clone.logger = logger
	return &clone
}

// Parse turns content into a post. A document without a leading frontmatter
// block, or one that trips an unexpected failure, yields a *ParseFailure and
// is logged; Parse never panics.
func (p *Parser) Parse(content, filename string) (post interfaces.Post, err error) {
	logger := logging.WithDocumentContext(p.logger, filename, "")

	defer func() {
		if r := recover(); r != nil {
			post = interfaces.Post{}
			err = &ParseFailure{
				Kind:     FailureInternal,
				Filename: filename,
				Err:      fmt.Errorf("panic: %v", r),
			}
			logger.Error("news.parse.failed", "error", err)
		}
	}()

	fm, body, err := p.split(content)
	if err != nil {
		if errors.Is(err, errNoFrontMatter) {
			logger.Warn("news.parse.no_frontmatter")
			return interfaces.Post{}, &ParseFailure{Kind: FailureNoFrontMatter, Filename: filename}
		}
		logger.Error("news.parse.failed", "error", err)
		return interfaces.Post{}, &ParseFailure{Kind: FailureInternal, Filename: filename, Err: err}
	}

	id := strings.TrimSuffix(filename, p.extension)
	if !slug.IsValid(id) {
		logger.Debug("news.parse.slug_not_normalized", "slug", id)
	}

	date := fm.String("date", "")
	publishedAt, formatted := FormatDate(date, p.formatter)

	return interfaces.Post{
		ID:            id,
		Slug:          id,
		Title:         fm.String("title", p.untitledTitle),
		Date:          date,
		FormattedDate: formatted,
		Summary:       fm.String("summary", ""),
		Image:         fm.Optional("image"),
		Body:          body,
		FrontMatter:   fm,
		PublishedAt:   publishedAt,
	}, nil
}

func (p *Parser) split(content string) (FrontMatter, string, error) {
	if p.syntax == SyntaxYAML {
		return SplitYAMLFrontMatter(content)
	}
	return SplitFrontMatter(content)
}

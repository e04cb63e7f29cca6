package di

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-newsfeed/internal/commands"
	newscmd "github.com/goliatone/go-newsfeed/internal/commands/news"
	"github.com/goliatone/go-newsfeed/internal/logging"
	"github.com/goliatone/go-newsfeed/internal/logging/gologger"
	"github.com/goliatone/go-newsfeed/internal/markdown"
	"github.com/goliatone/go-newsfeed/internal/news"
	"github.com/goliatone/go-newsfeed/internal/runtimeconfig"
	"github.com/goliatone/go-newsfeed/internal/sources"
	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

// Container wires the news pipeline from runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	httpClient     *http.Client
	fetcher        interfaces.Fetcher
	parser         *markdown.Parser
	newsSvc        *news.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider derived from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithFetcher overrides the document source selected by Source.Provider.
func WithFetcher(fetcher interfaces.Fetcher) Option {
	return func(c *Container) {
		if fetcher != nil {
			c.fetcher = fetcher
		}
	}
}

// WithHTTPClient sets the client used by the GitHub source.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewContainer validates cfg and builds every service it describes.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureFetcher(); err != nil {
		return nil, err
	}
	c.configureParser()
	c.configureNews()
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "noop":
		c.loggerProvider = noopProvider{}
	default:
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure logger: %w", err)
		}
		c.loggerProvider = provider
	}
	return nil
}

func (c *Container) configureFetcher() error {
	if c.fetcher != nil {
		return nil
	}

	src := c.Config.Source
	logger := logging.SourcesLogger(c.loggerProvider)

	switch strings.ToLower(strings.TrimSpace(src.Provider)) {
	case runtimeconfig.SourceProviderFilesystem:
		fsSource, err := sources.NewDirSource(src.ContentDir)
		if err != nil {
			return fmt.Errorf("di: configure filesystem source: %w", err)
		}
		c.fetcher = fsSource
		logger.Debug("sources.configured", "provider", runtimeconfig.SourceProviderFilesystem, "content_dir", src.ContentDir)
	default:
		c.fetcher = sources.NewGitHubClient(sources.GitHubConfig{
			BaseURL:      src.APIBaseURL,
			HTTPClient:   c.httpClient,
			Timeout:      src.Timeout,
			MaxBodyBytes: src.MaxBodyBytes,
			UserAgent:    src.UserAgent,
			Logger:       logger,
		})
		logger.Debug("sources.configured", "provider", runtimeconfig.SourceProviderGitHub, "base_url", src.APIBaseURL)
	}
	return nil
}

func (c *Container) configureParser() {
	posts := c.Config.Posts
	c.parser = markdown.NewParser(markdown.Options{
		Extension:     strings.TrimSpace(posts.Extension),
		Syntax:        markdown.Syntax(strings.ToLower(strings.TrimSpace(posts.FrontMatterSyntax))),
		UntitledTitle: posts.UntitledTitle,
		Formatter:     markdown.NewLocaleFormatter(posts.DateLocale, posts.DateLayout),
		Logger:        logging.ParserLogger(c.loggerProvider),
	})
}

func (c *Container) configureNews() {
	src := c.Config.Source
	c.newsSvc = news.NewService(c.fetcher, c.parser, news.Config{
		Location: interfaces.Location{
			Owner: src.Owner,
			Repo:  src.Repo,
			Path:  src.Path,
			Ref:   src.Ref,
		},
		Concurrency:               c.Config.Loader.Concurrency,
		TolerateRetrievalFailures: c.Config.Loader.TolerateRetrievalFailures,
	}, logging.NewsLogger(c.loggerProvider))
}

// LoggerProvider exposes the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Fetcher exposes the configured document source.
func (c *Container) Fetcher() interfaces.Fetcher {
	return c.fetcher
}

// Parser returns the configured post parser.
func (c *Container) Parser() *markdown.Parser {
	return c.parser
}

// NewsService returns the batch loader.
func (c *Container) NewsService() *news.Service {
	return c.newsSvc
}

// ExportNewsHandler builds an export command handler bound to the news
// service. A nil stdout selects os.Stdout.
func (c *Container) ExportNewsHandler(stdout io.Writer, opts ...commands.HandlerOption[newscmd.ExportNewsCommand]) *newscmd.ExportNewsHandler {
	return newscmd.NewExportNewsHandler(c.newsSvc, stdout, logging.CommandsLogger(c.loggerProvider), opts...)
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }

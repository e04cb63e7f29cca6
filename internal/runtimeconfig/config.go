package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrSourceProviderUnknown = errors.New("newsfeed config: source provider is invalid")
var ErrSourceRepositoryRequired = errors.New("newsfeed config: github source requires owner and repo")
var ErrSourceBaseURLRequired = errors.New("newsfeed config: github source requires an API base URL")
var ErrSourceContentDirRequired = errors.New("newsfeed config: filesystem source requires a content directory")
var ErrSourceTimeoutInvalid = errors.New("newsfeed config: source timeout must be zero or positive")
var ErrPostsExtensionInvalid = errors.New("newsfeed config: posts extension must start with a dot")
var ErrFrontMatterSyntaxUnknown = errors.New("newsfeed config: frontmatter syntax is invalid")
var ErrLoaderConcurrencyInvalid = errors.New("newsfeed config: loader concurrency must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("newsfeed config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("newsfeed config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("newsfeed config: logging format is invalid")

const (
	SourceProviderGitHub     = "github"
	SourceProviderFilesystem = "filesystem"

	FrontMatterSyntaxLines = "lines"
	FrontMatterSyntaxYAML  = "yaml"
)

// DefaultOwner and DefaultRepo name the repository that hosts the site news.
const (
	DefaultOwner = "waougri"
	DefaultRepo  = "cpspd"
)

// Config is the top level runtime configuration of the newsfeed module.
type Config struct {
	Source  SourceConfig
	Posts   PostsConfig
	Loader  LoaderConfig
	Logging LoggingConfig
}

// SourceConfig describes where news documents are listed and downloaded from.
type SourceConfig struct {
	// Provider selects the fetcher: "github" or "filesystem".
	Provider string
	// APIBaseURL is the root of the repository hosting API.
	APIBaseURL string
	Owner      string
	Repo       string
	// Path is the directory inside the repository that holds the documents.
	Path string
	// Ref pins a branch, tag or commit. Empty uses the default branch.
	Ref string
	// ContentDir is the local root used by the filesystem provider. Path is
	// resolved inside it.
	ContentDir string
	// Timeout bounds each HTTP request. Zero disables the client timeout.
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

// PostsConfig controls how individual documents are turned into posts.
type PostsConfig struct {
	Extension         string
	FrontMatterSyntax string
	DateLocale        string
	DateLayout        string
	UntitledTitle     string
}

// LoaderConfig controls the batch loader.
type LoaderConfig struct {
	// Concurrency caps in-flight document fetches. Zero means unbounded.
	Concurrency int
	// TolerateRetrievalFailures drops documents whose content cannot be fetched
	// instead of failing the whole batch.
	TolerateRetrievalFailures bool
}

// LoggingConfig selects the logger backend.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	// Focus limits go-logger output to the named module loggers
	// (e.g. "newsfeed.parser"). Empty logs every module.
	Focus []string
}

// DefaultConfig returns defaults matching the GitHub contents API and the
// news directory layout used by the site.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Provider:     SourceProviderGitHub,
			APIBaseURL:   "https://api.github.com",
			Owner:        DefaultOwner,
			Repo:         DefaultRepo,
			Path:         "content/news",
			ContentDir:   ".",
			Timeout:      15 * time.Second,
			MaxBodyBytes: 2 << 20,
			UserAgent:    "go-newsfeed",
		},
		Posts: PostsConfig{
			Extension:         ".md",
			FrontMatterSyntax: FrontMatterSyntaxLines,
			DateLocale:        "en_US",
			DateLayout:        "January 2, 2006",
			UntitledTitle:     "Untitled",
		},
		Loader: LoaderConfig{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs consistency checks and reports the first problem found.
func (cfg Config) Validate() error {
	switch normalize(cfg.Source.Provider) {
	case SourceProviderGitHub:
		if strings.TrimSpace(cfg.Source.APIBaseURL) == "" {
			return ErrSourceBaseURLRequired
		}
		if strings.TrimSpace(cfg.Source.Owner) == "" || strings.TrimSpace(cfg.Source.Repo) == "" {
			return ErrSourceRepositoryRequired
		}
	case SourceProviderFilesystem:
		if strings.TrimSpace(cfg.Source.ContentDir) == "" {
			return ErrSourceContentDirRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrSourceProviderUnknown, cfg.Source.Provider)
	}
	if cfg.Source.Timeout < 0 {
		return ErrSourceTimeoutInvalid
	}

	if ext := strings.TrimSpace(cfg.Posts.Extension); len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("%w: %q", ErrPostsExtensionInvalid, cfg.Posts.Extension)
	}
	switch normalize(cfg.Posts.FrontMatterSyntax) {
	case "", FrontMatterSyntaxLines, FrontMatterSyntaxYAML:
	default:
		return fmt.Errorf("%w: %s", ErrFrontMatterSyntaxUnknown, cfg.Posts.FrontMatterSyntax)
	}

	if cfg.Loader.Concurrency < 0 {
		return ErrLoaderConcurrencyInvalid
	}

	provider := normalize(cfg.Logging.Provider)
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "", "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

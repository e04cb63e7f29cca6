package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-newsfeed"
)

var moduleBuilder = func(cfg newsfeed.Config) (*newsfeed.Module, error) {
	return newsfeed.New(cfg)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runExport(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("newsfeed: %v", err)
	}
}

func runExport(ctx context.Context, args []string, stdout io.Writer) error {
	cfg := newsfeed.DefaultConfig()

	fs := flag.NewFlagSet("newsfeed", flag.ContinueOnError)
	fs.StringVar(&cfg.Source.Provider, "source", cfg.Source.Provider, "Document source: github or filesystem")
	fs.StringVar(&cfg.Source.Owner, "owner", cfg.Source.Owner, "Repository owner (github source)")
	fs.StringVar(&cfg.Source.Repo, "repo", cfg.Source.Repo, "Repository name (github source)")
	fs.StringVar(&cfg.Source.Path, "path", cfg.Source.Path, "Directory holding the news documents")
	fs.StringVar(&cfg.Source.Ref, "ref", cfg.Source.Ref, "Branch, tag or commit to read (github source)")
	fs.StringVar(&cfg.Source.APIBaseURL, "api-url", cfg.Source.APIBaseURL, "GitHub API base URL")
	fs.StringVar(&cfg.Source.ContentDir, "content-dir", cfg.Source.ContentDir, "Local content root (filesystem source)")
	fs.DurationVar(&cfg.Source.Timeout, "timeout", cfg.Source.Timeout, "Per request HTTP timeout")
	fs.StringVar(&cfg.Posts.FrontMatterSyntax, "frontmatter-syntax", cfg.Posts.FrontMatterSyntax, "Frontmatter decoding: lines or yaml")
	fs.StringVar(&cfg.Posts.DateLocale, "date-locale", cfg.Posts.DateLocale, "Locale used for formatted dates")
	fs.StringVar(&cfg.Posts.DateLayout, "date-layout", cfg.Posts.DateLayout, "Go time layout used for formatted dates")
	fs.IntVar(&cfg.Loader.Concurrency, "concurrency", cfg.Loader.Concurrency, "Maximum concurrent downloads (0 means unbounded)")
	fs.BoolVar(&cfg.Loader.TolerateRetrievalFailures, "tolerate-retrieval-failures", cfg.Loader.TolerateRetrievalFailures, "Skip documents whose download fails instead of serving the fallback")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format: console, json or pretty")
	logFocus := fs.String("log-focus", "", "Comma separated module loggers to restrict output to (e.g. newsfeed.parser)")
	output := fs.String("output", "-", "Destination file for the JSON feed (- for stdout)")
	pretty := fs.Bool("pretty", false, "Indent the JSON feed")
	failOnDegraded := fs.Bool("fail-on-degraded", false, "Exit with an error when the fallback posts are served")
	retries := fs.Int("retries", 0, "Retry the export this many times on failure")
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Logging.Focus = splitList(*logFocus)

	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	sub := dispatcher.SubscribeCommand(module.ExportNews(stdout), runner.WithMaxRetries(*retries))
	defer sub.Unsubscribe()

	cmd := newsfeed.ExportNewsCommand{
		Output:         *output,
		Pretty:         *pretty,
		FailOnDegraded: *failOnDegraded,
	}
	if err := dispatcher.Dispatch(ctx, cmd); err != nil {
		return fmt.Errorf("execute export command: %w", err)
	}
	return nil
}

// splitList parses a comma separated flag value into trimmed, non-empty items.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

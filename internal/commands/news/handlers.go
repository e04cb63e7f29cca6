package newscmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-newsfeed/internal/commands"
	"github.com/goliatone/go-newsfeed/internal/logging"
	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

const exportOperation = "news.export"

// ErrFeedDegraded is returned by the export handler when FailOnDegraded is set
// and the feed fell back to the placeholder posts.
var ErrFeedDegraded = errors.New("news export: feed degraded to fallback posts")

// FeedLoader is the part of the news service the export handler needs.
type FeedLoader interface {
	LoadNews(ctx context.Context) interfaces.Feed
}

var _ command.Commander[ExportNewsCommand] = (*ExportNewsHandler)(nil)

// ExportNewsHandler runs ExportNewsCommand through the shared handler.
type ExportNewsHandler struct {
	inner *commands.Handler[ExportNewsCommand]
}

// NewExportNewsHandler binds the handler to loader. stdout receives the
// document when the command targets "-"; nil selects os.Stdout.
func NewExportNewsHandler(loader FeedLoader, stdout io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[ExportNewsCommand]) *ExportNewsHandler {
	if loader == nil {
		panic("newscmd: feed loader cannot be nil")
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	exec := func(ctx context.Context, msg ExportNewsCommand) error {
		feed := loader.LoadNews(ctx)

		data, err := encodeFeed(feed, msg.Pretty)
		if err != nil {
			return err
		}
		if err := writeOutput(msg.Output, stdout, data); err != nil {
			return err
		}

		logging.WithFields(logger, map[string]any{
			"count":    feed.Len(),
			"degraded": feed.Degraded,
			"output":   msg.Output,
		}).Info("news.command.export.completed")

		if feed.Degraded && msg.FailOnDegraded {
			return fmt.Errorf("%w: %v", ErrFeedDegraded, feed.Cause)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportNewsCommand]{
		commands.WithLogger[ExportNewsCommand](logger),
		commands.WithOperation[ExportNewsCommand](exportOperation),
		commands.WithMessageFields(func(msg ExportNewsCommand) map[string]any {
			fields := map[string]any{"output": msg.Output}
			if msg.FailOnDegraded {
				fields["fail_on_degraded"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DurationTelemetry[ExportNewsCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportNewsHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ExportNewsCommand].
func (h *ExportNewsHandler) Execute(ctx context.Context, msg ExportNewsCommand) error {
	return h.inner.Execute(ctx, msg)
}

func encodeFeed(feed interfaces.Feed, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(feed, "", "  ")
	} else {
		data, err = json.Marshal(feed)
	}
	if err != nil {
		return nil, fmt.Errorf("news export: encode feed: %w", err)
	}
	return append(data, '\n'), nil
}

func writeOutput(target string, stdout io.Writer, data []byte) error {
	target = strings.TrimSpace(target)
	if target == StdoutOutput {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("news export: write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("news export: write %s: %w", target, err)
	}
	return nil
}

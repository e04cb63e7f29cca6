package newscmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-newsfeed/pkg/interfaces"
	"github.com/goliatone/go-newsfeed/pkg/testsupport"
)

type stubLoader struct {
	feed  interfaces.Feed
	calls int
}

func (s *stubLoader) LoadNews(context.Context) interfaces.Feed {
	s.calls++
	return s.feed
}

func TestExportNewsCommandValidate(t *testing.T) {
	if err := (ExportNewsCommand{Output: "-"}).Validate(); err != nil {
		t.Fatalf("expected stdout output to validate, got %v", err)
	}
	if err := (ExportNewsCommand{Output: "   "}).Validate(); err == nil {
		t.Fatal("expected blank output to fail validation")
	}
	if err := (ExportNewsCommand{}).Validate(); err == nil {
		t.Fatal("expected missing output to fail validation")
	}
}

func TestExportNewsHandlerWritesPostsToStdout(t *testing.T) {
	loader := &stubLoader{feed: interfaces.Feed{Posts: []interfaces.Post{
		{ID: "b", Slug: "b", Title: "B", Date: "2024-02-01", FormattedDate: "February 1, 2024"},
		{ID: "a", Slug: "a", Title: "A", Date: "2024-01-01", FormattedDate: "January 1, 2024"},
	}}}
	var out bytes.Buffer
	rec := testsupport.NewRecordingLogger()

	handler := NewExportNewsHandler(loader, &out, rec)
	if err := handler.Execute(context.Background(), ExportNewsCommand{Output: StdoutOutput}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected one load, got %d", loader.calls)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(decoded) != 2 || decoded[0]["id"] != "b" || decoded[1]["id"] != "a" {
		t.Fatalf("unexpected output order: %v", decoded)
	}
	if _, ok := decoded[0]["formattedDate"]; !ok {
		t.Fatalf("expected formattedDate key in %v", decoded[0])
	}
	if decoded[0]["image"] != nil {
		t.Fatalf("expected null image, got %v", decoded[0]["image"])
	}

	entries := rec.Find("news.command.export.completed")
	if len(entries) != 1 {
		t.Fatalf("expected one completion log entry, got %d", len(entries))
	}
	if entries[0].Fields["count"] != 2 {
		t.Fatalf("expected count field 2, got %v", entries[0].Fields["count"])
	}
	if len(rec.Find("command.execute.success")) != 1 {
		t.Fatal("expected telemetry success entry")
	}
}

func TestExportNewsHandlerWritesPrettyFile(t *testing.T) {
	loader := &stubLoader{feed: interfaces.Feed{Posts: []interfaces.Post{{ID: "only", Slug: "only", Title: "Only"}}}}
	target := filepath.Join(t.TempDir(), "news.json")

	handler := NewExportNewsHandler(loader, nil, nil)
	if err := handler.Execute(context.Background(), ExportNewsCommand{Output: target, Pretty: true}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n  {") {
		t.Fatalf("expected indented JSON, got %q", data)
	}
}

func TestExportNewsHandlerEmptyFeedEncodesEmptyArray(t *testing.T) {
	var out bytes.Buffer
	handler := NewExportNewsHandler(&stubLoader{}, &out, nil)
	if err := handler.Execute(context.Background(), ExportNewsCommand{Output: StdoutOutput}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestExportNewsHandlerDegradedFeed(t *testing.T) {
	cause := errors.New("listing unavailable")
	feed := interfaces.Feed{
		Degraded: true,
		Cause:    cause,
		Fallback: []interfaces.FallbackPost{{ID: 1, Title: "Fallback"}},
	}

	var out bytes.Buffer
	handler := NewExportNewsHandler(&stubLoader{feed: feed}, &out, nil)
	if err := handler.Execute(context.Background(), ExportNewsCommand{Output: StdoutOutput}); err != nil {
		t.Fatalf("degraded feed without FailOnDegraded should succeed, got %v", err)
	}
	if !strings.Contains(out.String(), `"id":1`) {
		t.Fatalf("expected fallback posts in output, got %s", out.String())
	}

	out.Reset()
	err := handler.Execute(context.Background(), ExportNewsCommand{Output: StdoutOutput, FailOnDegraded: true})
	if !errors.Is(err, ErrFeedDegraded) {
		t.Fatalf("expected ErrFeedDegraded, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !strings.Contains(out.String(), "Fallback") {
		t.Fatal("expected fallback to be written before failing")
	}
}

func TestExportNewsHandlerRejectsInvalidCommand(t *testing.T) {
	loader := &stubLoader{}
	handler := NewExportNewsHandler(loader, &bytes.Buffer{}, nil)
	err := handler.Execute(context.Background(), ExportNewsCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if loader.calls != 0 {
		t.Fatal("loader must not run for invalid commands")
	}
}

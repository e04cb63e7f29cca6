package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "newsfeed.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = NewsLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != newsModule {
		t.Fatalf("expected module %s, got %v", newsModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != newsModule {
		t.Fatalf("expected module field %s, got %v", newsModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestModuleLoggerIgnoresNilFromProvider(t *testing.T) {
	provider := &stubProvider{}
	logger := SourcesLogger(provider)
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger when provider returns nil, got %T", logger)
	}
}

func TestWithDocumentContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	WithDocumentContext(rec, " post.md ", "")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldFilename] != "post.md" {
		t.Fatalf("expected trimmed filename, got %v", rec.fields[0][fieldFilename])
	}
	if _, ok := rec.fields[0][fieldDownloadURL]; ok {
		t.Fatalf("expected download_url to be omitted, got %v", rec.fields[0])
	}

	WithDocumentContext(rec, "", "")
	if len(rec.fields) != 1 {
		t.Fatalf("expected empty context to skip WithFields, got %d calls", len(rec.fields))
	}
}

func TestWithFieldsCopiesInput(t *testing.T) {
	rec := &recordingLogger{}
	fields := map[string]any{"count": 1}

	WithFields(rec, fields)
	fields["count"] = 2

	if rec.fields[0]["count"] != 1 {
		t.Fatalf("expected fields to be copied, got %v", rec.fields[0]["count"])
	}
}

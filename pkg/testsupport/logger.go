package testsupport

import (
	"context"
	"sync"

	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Args    []any
	Fields  map[string]any
}

// Arg returns the value following key in the entry's variadic arguments.
func (e LogEntry) Arg(key string) (any, bool) {
	for i := 0; i+1 < len(e.Args); i += 2 {
		if k, ok := e.Args[i].(string); ok && k == key {
			return e.Args[i+1], true
		}
	}
	return nil, false
}

// RecordingLogger captures entries so tests can assert on emitted events. It is
// safe for concurrent use; children created through WithFields share the same
// entry log.
type RecordingLogger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  map[string]any
}

var (
	_ interfaces.Logger         = (*RecordingLogger)(nil)
	_ interfaces.FieldsLogger   = (*RecordingLogger)(nil)
	_ interfaces.LoggerProvider = (*RecordingLogger)(nil)
)

// NewRecordingLogger returns an empty recorder.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{
		mu:      &sync.Mutex{},
		entries: &[]LogEntry{},
		fields:  map[string]any{},
	}
}

func (r *RecordingLogger) Trace(msg string, args ...any) { r.record("trace", msg, args) }
func (r *RecordingLogger) Debug(msg string, args ...any) { r.record("debug", msg, args) }
func (r *RecordingLogger) Info(msg string, args ...any)  { r.record("info", msg, args) }
func (r *RecordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg, args) }
func (r *RecordingLogger) Error(msg string, args ...any) { r.record("error", msg, args) }
func (r *RecordingLogger) Fatal(msg string, args ...any) { r.record("fatal", msg, args) }

func (r *RecordingLogger) WithContext(context.Context) interfaces.Logger { return r }

// WithFields returns a child recorder carrying fields on every entry.
func (r *RecordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &RecordingLogger{mu: r.mu, entries: r.entries, fields: merged}
}

// GetLogger lets the recorder act as a provider for module loggers.
func (r *RecordingLogger) GetLogger(string) interfaces.Logger { return r }

// Entries returns a snapshot of everything recorded so far.
func (r *RecordingLogger) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogEntry(nil), (*r.entries)...)
}

// Find returns the entries whose message equals msg.
func (r *RecordingLogger) Find(msg string) []LogEntry {
	var out []LogEntry
	for _, entry := range r.Entries() {
		if entry.Message == msg {
			out = append(out, entry)
		}
	}
	return out
}

func (r *RecordingLogger) record(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, LogEntry{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Fields:  r.fields,
	})
}

package logging

import (
	"context"
	"maps"
	"strings"

	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

const (
	rootModule     = "newsfeed"
	newsModule     = "newsfeed.news"
	parserModule   = "newsfeed.parser"
	sourcesModule  = "newsfeed.sources"
	commandsModule = "newsfeed.commands"
)

const (
	fieldFilename    = "filename"
	fieldDownloadURL = "download_url"
)

// ModuleLogger returns a logger scoped to module, falling back to a no-op
// logger when provider is nil or hands back nothing. The module name is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// NewsLogger returns the logger used by the batch loader.
func NewsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, newsModule)
}

// ParserLogger returns the logger used by the post parser.
func ParserLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, parserModule)
}

// SourcesLogger returns the logger used by document sources.
func SourcesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sourcesModule)
}

// CommandsLogger returns the logger used by command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithFields attaches structured fields when the logger implements
// interfaces.FieldsLogger. The map is copied before it is handed over.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// WithDocumentContext enriches logger with the filename and download URL of the
// document being processed. Empty values are skipped.
func WithDocumentContext(logger interfaces.Logger, filename, downloadURL string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(filename); trimmed != "" {
		fields[fieldFilename] = trimmed
	}
	if trimmed := strings.TrimSpace(downloadURL); trimmed != "" {
		fields[fieldDownloadURL] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

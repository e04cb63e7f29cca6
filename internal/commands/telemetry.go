package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

// TelemetryStatus is the outcome category of a command run.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo describes a finished command run.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	// Logger already carries Fields.
	Logger interfaces.Logger
}

// Telemetry is invoked once per command run.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DurationTelemetry logs the outcome together with the run duration.
func DurationTelemetry[T command.Message]() Telemetry[T] {
	return func(_ context.Context, _ T, info TelemetryInfo) {
		args := []any{"duration_ms", info.Duration.Milliseconds(), "status", string(info.Status)}
		if info.Error != nil {
			info.Logger.Error("command.execute.failed", append(args, "error", info.Error)...)
			return
		}
		info.Logger.Info("command.execute.success", args...)
	}
}

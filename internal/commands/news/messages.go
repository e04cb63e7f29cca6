package newscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const exportNewsMessageType = "newsfeed.news.export"

// StdoutOutput selects standard output as the export destination.
const StdoutOutput = "-"

// ExportNewsCommand loads the news feed and writes it as a JSON array.
type ExportNewsCommand struct {
	// Output is a file path, or "-" for standard output.
	Output string `json:"output"`
	// Pretty indents the JSON document.
	Pretty bool `json:"pretty,omitempty"`
	// FailOnDegraded makes the command fail when the fallback posts were
	// served. The fallback is still written.
	FailOnDegraded bool `json:"fail_on_degraded,omitempty"`
}

// Type implements command.Message.
func (ExportNewsCommand) Type() string { return exportNewsMessageType }

// Validate ensures an output destination is present.
func (cmd ExportNewsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Output, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("newsfeed.news.export.output_required", "output is required")
			}
			return nil
		})),
	)
}

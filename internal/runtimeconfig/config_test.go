package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-newsfeed/internal/runtimeconfig"
)

func validConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Source.Owner = "acme"
	cfg.Source.Repo = "site"
	return cfg
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() returned %v", err)
	}
	if cfg.Source.Owner != "waougri" || cfg.Source.Repo != "cpspd" || cfg.Source.Path != "content/news" {
		t.Fatalf("unexpected default location %+v", cfg.Source)
	}
}

func TestConfigValidate_GitHubRequiresRepository(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Source.Repo = " "
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSourceRepositoryRequired) {
		t.Fatalf("expected ErrSourceRepositoryRequired, got %v", err)
	}
}

func TestConfigValidate_AcceptsGitHubSource(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_FilesystemNeedsContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Source.Provider = "Filesystem"
	cfg.Source.ContentDir = " "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSourceContentDirRequired) {
		t.Fatalf("expected ErrSourceContentDirRequired, got %v", err)
	}

	cfg.Source.ContentDir = "testdata"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RejectsUnknownSource(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Provider = "gitlab"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSourceProviderUnknown) {
		t.Fatalf("expected ErrSourceProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsBadExtension(t *testing.T) {
	for _, ext := range []string{"", "md", "."} {
		cfg := validConfig()
		cfg.Posts.Extension = ext
		if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrPostsExtensionInvalid) {
			t.Fatalf("extension %q: expected ErrPostsExtensionInvalid, got %v", ext, err)
		}
	}
}

func TestConfigValidate_RejectsUnknownFrontMatterSyntax(t *testing.T) {
	cfg := validConfig()
	cfg.Posts.FrontMatterSyntax = "toml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrFrontMatterSyntaxUnknown) {
		t.Fatalf("expected ErrFrontMatterSyntaxUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeConcurrency(t *testing.T) {
	cfg := validConfig()
	cfg.Loader.Concurrency = -1

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoaderConcurrencyInvalid) {
		t.Fatalf("expected ErrLoaderConcurrencyInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Timeout = -1

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSourceTimeoutInvalid) {
		t.Fatalf("expected ErrSourceTimeoutInvalid, got %v", err)
	}
}

func TestConfigValidate_Logging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg = validConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg = validConfig()
	cfg.Logging.Provider = "noop"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("noop provider should ignore format, got %v", err)
	}
}

package newsfeed

import "github.com/goliatone/go-newsfeed/internal/runtimeconfig"

var (
	ErrSourceProviderUnknown    = runtimeconfig.ErrSourceProviderUnknown
	ErrSourceRepositoryRequired = runtimeconfig.ErrSourceRepositoryRequired
	ErrSourceBaseURLRequired    = runtimeconfig.ErrSourceBaseURLRequired
	ErrSourceContentDirRequired = runtimeconfig.ErrSourceContentDirRequired
	ErrSourceTimeoutInvalid     = runtimeconfig.ErrSourceTimeoutInvalid
	ErrPostsExtensionInvalid    = runtimeconfig.ErrPostsExtensionInvalid
	ErrFrontMatterSyntaxUnknown = runtimeconfig.ErrFrontMatterSyntaxUnknown
	ErrLoaderConcurrencyInvalid = runtimeconfig.ErrLoaderConcurrencyInvalid
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

const (
	SourceProviderGitHub     = runtimeconfig.SourceProviderGitHub
	SourceProviderFilesystem = runtimeconfig.SourceProviderFilesystem
	FrontMatterSyntaxLines   = runtimeconfig.FrontMatterSyntaxLines
	FrontMatterSyntaxYAML    = runtimeconfig.FrontMatterSyntaxYAML
)

type (
	Config        = runtimeconfig.Config
	SourceConfig  = runtimeconfig.SourceConfig
	PostsConfig   = runtimeconfig.PostsConfig
	LoaderConfig  = runtimeconfig.LoaderConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

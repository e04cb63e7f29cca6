package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-newsfeed/internal/logging"
	"github.com/goliatone/go-newsfeed/pkg/interfaces"
)

const (
	defaultGitHubBaseURL = "https://api.github.com"
	defaultMaxBodyBytes  = 2 << 20
	maxErrorBodyBytes    = 512
	githubAcceptHeader   = "application/vnd.github+json"
)

// ErrInvalidListing is returned when the contents endpoint answers with
// something other than a directory listing (e.g. a single file object).
var ErrInvalidListing = errors.New("sources: response is not a directory listing")

// StatusError reports a non-2xx answer from the remote API.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sources: GET %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("sources: GET %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
}

// GitHubConfig configures the contents API client.
type GitHubConfig struct {
	BaseURL      string
	HTTPClient   *http.Client
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
	Logger       interfaces.Logger
}

// GitHubClient lists repository directories through the GitHub contents API
// and downloads raw file bodies.
type GitHubClient struct {
	baseURL      string
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
	logger       interfaces.Logger
}

var _ interfaces.Fetcher = (*GitHubClient)(nil)

// NewGitHubClient constructs a client. When cfg.HTTPClient is nil a client
// with cfg.Timeout is created.
func NewGitHubClient(cfg GitHubConfig) *GitHubClient {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultGitHubBaseURL
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &GitHubClient{
		baseURL:      baseURL,
		client:       client,
		maxBodyBytes: maxBody,
		userAgent:    cfg.UserAgent,
		logger:       logger,
	}
}

type contentsEntry struct {
	Name        string  `json:"name"`
	DownloadURL *string `json:"download_url"`
}

// ListDocuments returns the entries of location.Path in owner/repo.
func (c *GitHubClient) ListDocuments(ctx context.Context, location interfaces.Location) ([]interfaces.Entry, error) {
	endpoint, err := c.contentsURL(location)
	if err != nil {
		return nil, err
	}

	data, err := c.get(ctx, endpoint, githubAcceptHeader)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %s", ErrInvalidListing, endpoint)
	}

	var raw []contentsEntry
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("sources: decode listing %s: %w", endpoint, err)
	}

	entries := make([]interfaces.Entry, 0, len(raw))
	for _, item := range raw {
		entry := interfaces.Entry{Name: item.Name}
		if item.DownloadURL != nil {
			entry.DownloadURL = *item.DownloadURL
		}
		entries = append(entries, entry)
	}

	c.logger.Debug("sources.github.listed", "url", endpoint, "count", len(entries))
	return entries, nil
}

// FetchContent downloads the raw body behind downloadURL.
func (c *GitHubClient) FetchContent(ctx context.Context, downloadURL string) (string, error) {
	if strings.TrimSpace(downloadURL) == "" {
		return "", errors.New("sources: empty download url")
	}
	data, err := c.get(ctx, downloadURL, "")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *GitHubClient) contentsURL(location interfaces.Location) (string, error) {
	owner := strings.TrimSpace(location.Owner)
	repo := strings.TrimSpace(location.Repo)
	if owner == "" || repo == "" {
		return "", errors.New("sources: github location requires owner and repo")
	}

	segments := []string{"repos", url.PathEscape(owner), url.PathEscape(repo), "contents"}
	for _, part := range strings.Split(strings.Trim(location.Path, "/"), "/") {
		if part != "" {
			segments = append(segments, url.PathEscape(part))
		}
	}

	endpoint := c.baseURL + "/" + strings.Join(segments, "/")
	if ref := strings.TrimSpace(location.Ref); ref != "" {
		endpoint += "?ref=" + url.QueryEscape(ref)
	}
	return endpoint, nil
}

func (c *GitHubClient) get(ctx context.Context, target, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("sources: build request %s: %w", target, err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sources: GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &StatusError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("sources: read %s: %w", target, err)
	}
	if int64(len(data)) > c.maxBodyBytes {
		return nil, fmt.Errorf("sources: body of %s exceeds %d bytes", target, c.maxBodyBytes)
	}
	return data, nil
}

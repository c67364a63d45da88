// Package selfupdate checks GitHub releases for newer versions and can
// replace the running binary in place.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
	defaultOwner           = "lamila"
	defaultRepo            = "fundabuddy"
)

// Checker talks to the GitHub releases API.
type Checker struct {
	client          *http.Client
	baseURL         string
	downloadBaseURL string
	owner           string
	repo            string
	execPath        func() (string, error)
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithBaseURL overrides the GitHub API base URL. Used in tests.
func WithBaseURL(url string) CheckerOption {
	return func(c *Checker) { c.baseURL = url }
}

// WithDownloadBaseURL overrides the release asset base URL. Used in tests.
func WithDownloadBaseURL(url string) CheckerOption {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) CheckerOption {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithRepo overrides the GitHub owner/repo the checker queries.
func WithRepo(owner, repo string) CheckerOption {
	return func(c *Checker) {
		c.owner = owner
		c.repo = repo
	}
}

func withExecPath(fn func() (string, error)) CheckerOption {
	return func(c *Checker) { c.execPath = fn }
}

// NewChecker creates a Checker with defaults pointing at the public
// GitHub release feed.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: 10 * time.Second},
		baseURL:         defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		owner:           defaultOwner,
		repo:            defaultRepo,
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput carries the currently running version.
type CheckInput struct {
	Version string
}

// CheckResult reports the latest published release.
type CheckResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it against the
// running version. Dev builds always report no update.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	result := &CheckResult{CurrentVersion: input.Version}
	if input.Version == "(devel)" {
		return result, nil
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.baseURL, "/"), c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github API returned HTTP %d", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}

	result.LatestVersion = release.TagName
	result.ReleaseURL = release.HTMLURL
	result.UpdateAvailable = semver.IsValid(release.TagName) &&
		semver.IsValid(canonicalVersion(input.Version)) &&
		semver.Compare(release.TagName, canonicalVersion(input.Version)) > 0

	return result, nil
}

// canonicalVersion normalizes a version string to the "vX.Y.Z" form
// semver expects; goreleaser tags already carry the v prefix but
// ldflags-injected versions may not.
func canonicalVersion(v string) string {
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/emailfinder/pkg/httputil"
	"github.com/matzehuels/emailfinder/pkg/integrations"
)

const (
	// DefaultBaseURL is the public GitHub REST API root.
	DefaultBaseURL = "https://api.github.com"

	// UserAgent is sent with every request; GitHub rejects requests without one.
	UserAgent = "GitHub-Email-Finder"

	// PerPage is the page size requested from every paginated endpoint.
	// It is also the largest page GitHub serves.
	PerPage = 100
)

// Config holds the settings a Client is built from.
type Config struct {
	// Token is sent as "Authorization: token {Token}" when non-empty.
	Token string

	// BaseURL overrides DefaultBaseURL, e.g. for GitHub Enterprise
	// (https://ghe.example.com/api/v3) or tests.
	BaseURL string

	// Timeout bounds a single request.
	Timeout time.Duration

	// Retry controls retries of transient failures.
	Retry httputil.RetryPolicy
}

// Client provides access to the GitHub REST API v3.
// It is configured once and shared for the whole run.
type Client struct {
	*integrations.Client
	baseURL    string
	enterprise bool
}

// NewClient creates a GitHub API client. Pass an empty token to use
// unauthenticated requests (60 requests/hour instead of 5000).
func NewClient(cfg Config) *Client {
	headers := map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": UserAgent,
	}
	if cfg.Token != "" {
		headers["Authorization"] = "token " + cfg.Token
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(headers, integrations.Options{Timeout: cfg.Timeout, Retry: cfg.Retry}),
		baseURL:    baseURL,
		enterprise: baseURL != DefaultBaseURL,
	}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// ValidateOwner checks a username against the login rules of the server:
// [ValidateOwner] for github.com, [ValidateEnterpriseOwner] for any other
// base URL.
func (c *Client) ValidateOwner(owner string) error {
	if c.enterprise {
		return ValidateEnterpriseOwner(owner)
	}
	return ValidateOwner(owner)
}

// ListUserRepos fetches one page of GET /users/{username}/repos.
func (c *Client) ListUserRepos(ctx context.Context, username string, page int) ([]Repo, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(PerPage))
	q.Set("page", strconv.Itoa(page))

	var repos []Repo
	u := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())
	if err := c.Get(ctx, u, &repos); err != nil {
		return nil, fmt.Errorf("list repos of %s (page %d): %w", username, page, err)
	}
	return repos, nil
}

// SearchIssues runs an issue/pull-request search and returns the first page
// of PerPage results. Only one page is ever requested.
func (c *Client) SearchIssues(ctx context.Context, query string) (IssueSearch, error) {
	var data IssueSearch
	u := fmt.Sprintf("%s/search/issues?q=%s&per_page=%d", c.baseURL, integrations.URLEncode(query), PerPage)
	if err := c.Get(ctx, u, &data); err != nil {
		return IssueSearch{}, fmt.Errorf("search issues %q: %w", query, err)
	}
	return data, nil
}

// ListCommits fetches one page of GET /repos/{owner}/{repo}/commits filtered
// by author. repo must be an "owner/name" identifier.
func (c *Client) ListCommits(ctx context.Context, repo, author string, page int) ([]Commit, error) {
	owner, name, err := parseRepoRef(repo, c.ValidateOwner)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("author", author)
	q.Set("per_page", strconv.Itoa(PerPage))
	q.Set("page", strconv.Itoa(page))

	var commits []Commit
	u := fmt.Sprintf("%s/repos/%s/%s/commits?%s", c.baseURL, url.PathEscape(owner), url.PathEscape(name), q.Encode())
	if err := c.Get(ctx, u, &commits); err != nil {
		return nil, fmt.Errorf("list commits of %s (page %d): %w", repo, page, err)
	}
	return commits, nil
}

// MergedPullRequestsQuery builds the search query that samples repositories
// username has contributed to through merged pull requests.
func MergedPullRequestsQuery(username string) string {
	return fmt.Sprintf("author:%s type:pr is:merged", username)
}

package emails

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/emailfinder/pkg/httputil"
	"github.com/matzehuels/emailfinder/pkg/integrations"
	"github.com/matzehuels/emailfinder/pkg/integrations/github"
	"github.com/matzehuels/emailfinder/pkg/observability"
)

// DefaultPageDelay is the minimum spacing between API requests.
const DefaultPageDelay = 500 * time.Millisecond

// Source is the subset of the GitHub API the collector reads from.
// [github.Client] implements it.
type Source interface {
	ListUserRepos(ctx context.Context, username string, page int) ([]github.Repo, error)
	SearchIssues(ctx context.Context, query string) (github.IssueSearch, error)
	ListCommits(ctx context.Context, repo, author string, page int) ([]github.Commit, error)
}

// Options configures a Collector.
type Options struct {
	// Pacer spaces out requests. Nil selects a pacer with DefaultPageDelay.
	Pacer *httputil.Pacer

	// Logger receives skip and error diagnostics. Nil selects log.Default().
	Logger *log.Logger
}

// Collector gathers commit email addresses for a GitHub user.
//
// A Collector issues requests strictly one after another and is not safe
// for concurrent use.
type Collector struct {
	src    Source
	pacer  *httputil.Pacer
	logger *log.Logger
}

// NewCollector creates a Collector reading from src.
func NewCollector(src Source, opts Options) *Collector {
	pacer := opts.Pacer
	if pacer == nil {
		pacer = httputil.NewPacer(DefaultPageDelay)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Collector{src: src, pacer: pacer, logger: logger}
}

// FindEmails scans the repositories owned by username, and with
// includeContributions also a sample of repositories they contributed to,
// and aggregates the email addresses found in username's commits.
//
// Per-repository failures only reduce the data collected; the returned
// error is non-nil only when ctx is cancelled, together with the partial
// aggregate built so far.
func (c *Collector) FindEmails(ctx context.Context, username string, includeContributions bool) (Aggregate, error) {
	agg := make(Aggregate)

	c.logger.Info("finding repositories", "user", username)
	owned, err := c.EnumerateOwnedRepositories(ctx, username)
	if err != nil {
		return agg, err
	}

	var contributed []string
	if includeContributions {
		c.logger.Info("finding contributed repositories", "user", username)
		contributed, err = c.EnumerateContributedRepositories(ctx, username)
		if err != nil {
			return agg, err
		}
	}

	repos := UnionRepos(owned, contributed)
	if len(repos) == 0 {
		c.logger.Warn("no repositories found", "user", username)
		return agg, nil
	}

	c.logger.Info("scanning repositories for email addresses", "repos", len(repos))
	for _, repo := range repos {
		counts, err := c.EnumerateCommitEmails(ctx, repo, username)
		agg.Merge(repo, counts)
		if err != nil {
			return agg, err
		}
	}
	return agg, nil
}

// EnumerateOwnedRepositories lists the "owner/name" identifiers of
// username's public repositories. A failed page ends the listing and the
// repositories read so far are returned.
func (c *Collector) EnumerateOwnedRepositories(ctx context.Context, username string) ([]string, error) {
	hooks := observability.Collector()
	hooks.OnEnumerateStart(ctx, observability.SourceOwned, username)

	var repos []string
	res, err := paginate(ctx, c.pacer, github.PerPage,
		func(ctx context.Context, n int) ([]github.Repo, error) {
			return c.src.ListUserRepos(ctx, username, n)
		},
		nil,
		func(batch []github.Repo) {
			for _, r := range batch {
				if r.FullName != "" {
					repos = append(repos, r.FullName)
				}
			}
		},
	)
	if err != nil {
		return repos, err
	}
	if res.err != nil {
		c.logger.Warn("error fetching repositories", "user", username, "pages", res.pages, "err", res.err)
	}

	hooks.OnEnumerateComplete(ctx, observability.SourceOwned, username, len(repos), res.err)
	return repos, nil
}

// EnumerateContributedRepositories samples repositories username has
// contributed to, derived from one page of their merged pull requests.
//
// The result is best-effort: it never covers more than one search page and
// misses contributions made without pull requests. On failure it is empty.
func (c *Collector) EnumerateContributedRepositories(ctx context.Context, username string) ([]string, error) {
	hooks := observability.Collector()
	hooks.OnEnumerateStart(ctx, observability.SourceContributed, username)

	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	search, err := c.src.SearchIssues(ctx, github.MergedPullRequestsQuery(username))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("error finding contributions", "user", username, "err", err)
		hooks.OnEnumerateComplete(ctx, observability.SourceContributed, username, 0, err)
		return nil, nil
	}

	if search.IncompleteResults {
		c.logger.Warn("contribution search incomplete", "user", username)
	}
	if search.TotalCount > len(search.Items) {
		c.logger.Debug("sampling contributions", "user", username, "matches", search.TotalCount, "sampled", len(search.Items))
	}

	names := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if name, ok := item.RepoFullName(); ok {
			names = append(names, name)
		}
	}
	repos := UnionRepos(names)

	hooks.OnEnumerateComplete(ctx, observability.SourceContributed, username, len(repos), nil)
	return repos, nil
}

// EnumerateCommitEmails counts the email addresses on username's commits in
// repo. Each commit counts once per distinct non-noreply address found in its
// author and committer fields. A missing or inaccessible repository yields an
// empty result; other failures return the counts read so far.
func (c *Collector) EnumerateCommitEmails(ctx context.Context, repo, username string) (map[string]int, error) {
	hooks := observability.Collector()
	hooks.OnScanStart(ctx, repo)
	start := time.Now()

	counts := make(map[string]int)
	res, err := paginate(ctx, c.pacer, github.PerPage,
		func(ctx context.Context, n int) ([]github.Commit, error) {
			return c.src.ListCommits(ctx, repo, username, n)
		},
		isUnavailable,
		func(batch []github.Commit) {
			for _, commit := range batch {
				countCommit(counts, commit)
			}
		},
	)
	if err != nil {
		return counts, err
	}

	switch res.outcome {
	case observability.OutcomeSkipped:
		c.logger.Debug("skipping repository", "repo", repo, "reason", res.err)
	case observability.OutcomeFailed:
		c.logger.Debug("error scanning repository", "repo", repo, "pages", res.pages, "err", res.err)
	}

	hooks.OnScanComplete(ctx, repo, len(counts), res.outcome, time.Since(start))
	return counts, nil
}

// countCommit increments counts for the addresses on one commit.
func countCommit(counts map[string]int, commit github.Commit) {
	author, _ := commit.AuthorEmail()
	committer, _ := commit.CommitterEmail()
	author, committer = normalize(author), normalize(committer)

	if author != "" {
		counts[author]++
	}
	if committer != "" && committer != author {
		counts[committer]++
	}
}

// normalize lowercases email and blanks it out when it is a noreply address.
func normalize(email string) string {
	email = strings.ToLower(email)
	if IsNoreply(email) {
		return ""
	}
	return email
}

// isUnavailable reports whether err means the repository is missing or the
// credential may not read it.
func isUnavailable(err error) bool {
	return errors.Is(err, integrations.ErrNotFound) || errors.Is(err, integrations.ErrForbidden)
}

package github

import (
	"net/url"
	"strings"
)

// Repo is the subset of a repository object this client consumes.
type Repo struct {
	FullName string `json:"full_name"`
}

// Issue is the subset of an issue-search result this client consumes.
// Pull requests are issues in the search API.
type Issue struct {
	Number        int    `json:"number"`
	RepositoryURL string `json:"repository_url"`
}

// RepoFullName derives "owner/name" from the issue's repository URL, which
// has the form https://api.github.com/repos/{owner}/{name}.
// Returns ok=false when the URL is missing or has fewer than two path segments.
func (i Issue) RepoFullName() (string, bool) {
	if i.RepositoryURL == "" {
		return "", false
	}
	path := i.RepositoryURL
	if u, err := url.Parse(i.RepositoryURL); err == nil && u.Path != "" {
		path = u.Path
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", false
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1], true
}

// Commit is one entry of the commit listing. Every nested object may be null
// or absent in API responses, so fields are pointers and read through the
// accessor methods.
type Commit struct {
	SHA    string        `json:"sha"`
	Commit *CommitDetail `json:"commit"`
}

// CommitDetail holds the git-level metadata of a commit.
type CommitDetail struct {
	Author    *Signature `json:"author"`
	Committer *Signature `json:"committer"`
}

// Signature is a git author or committer identity.
type Signature struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

// AuthorEmail returns commit.author.email. ok is false when any level is
// missing or the address is empty.
func (c Commit) AuthorEmail() (string, bool) {
	if c.Commit == nil {
		return "", false
	}
	return c.Commit.Author.email()
}

// CommitterEmail returns commit.committer.email. ok is false when any level
// is missing or the address is empty.
func (c Commit) CommitterEmail() (string, bool) {
	if c.Commit == nil {
		return "", false
	}
	return c.Commit.Committer.email()
}

func (s *Signature) email() (string, bool) {
	if s == nil || s.Email == nil || *s.Email == "" {
		return "", false
	}
	return *s.Email, true
}

// IssueSearch is one page of GET /search/issues. TotalCount counts all
// matches, not just Items; IncompleteResults is set when GitHub timed out
// before finishing the search.
type IssueSearch struct {
	TotalCount        int     `json:"total_count"`
	IncompleteResults bool    `json:"incomplete_results"`
	Items             []Issue `json:"items"`
}

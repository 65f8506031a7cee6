package emails

import (
	"cmp"
	"slices"
)

// Aggregate maps an email address to the number of matching commits found in
// each repository. Addresses are stored lowercased.
type Aggregate map[string]map[string]int

// RepoCount is one repository's contribution to an email's total.
type RepoCount struct {
	Repo  string `json:"repo"`
	Count int    `json:"count"`
}

// Entry is one ranked row of an [Aggregate].
type Entry struct {
	Email   string      `json:"email"`
	Total   int         `json:"total"`
	Sources []RepoCount `json:"sources"`
}

// Merge adds the per-email counts found in repo. Counts for the same
// (email, repo) pair are summed; other repositories are left untouched.
// Non-positive counts are ignored so no empty records appear.
func (a Aggregate) Merge(repo string, counts map[string]int) {
	for email, n := range counts {
		if n <= 0 {
			continue
		}
		repos, ok := a[email]
		if !ok {
			repos = make(map[string]int)
			a[email] = repos
		}
		repos[repo] += n
	}
}

// Total returns the occurrence count of email summed over all repositories.
func (a Aggregate) Total(email string) int {
	total := 0
	for _, n := range a[email] {
		total += n
	}
	return total
}

// Ranked returns the aggregate as entries sorted by total descending, then
// by email ascending. Each entry's sources are sorted by count descending,
// then by repository name.
func (a Aggregate) Ranked() []Entry {
	entries := make([]Entry, 0, len(a))
	for email, repos := range a {
		e := Entry{Email: email, Sources: make([]RepoCount, 0, len(repos))}
		for repo, n := range repos {
			e.Total += n
			e.Sources = append(e.Sources, RepoCount{Repo: repo, Count: n})
		}
		slices.SortFunc(e.Sources, func(x, y RepoCount) int {
			if c := cmp.Compare(y.Count, x.Count); c != 0 {
				return c
			}
			return cmp.Compare(x.Repo, y.Repo)
		})
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(x, y Entry) int {
		if c := cmp.Compare(y.Total, x.Total); c != 0 {
			return c
		}
		return cmp.Compare(x.Email, y.Email)
	})
	return entries
}

// UnionRepos concatenates repository lists, dropping empty identifiers and
// duplicates while keeping first-seen order.
func UnionRepos(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, repo := range list {
			if repo == "" {
				continue
			}
			if _, dup := seen[repo]; dup {
				continue
			}
			seen[repo] = struct{}{}
			out = append(out, repo)
		}
	}
	return out
}

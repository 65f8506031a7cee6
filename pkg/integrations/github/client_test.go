package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/emailfinder/pkg/httputil"
	"github.com/matzehuels/emailfinder/pkg/integrations"
)

func testClient(t *testing.T, serverURL, token string) *Client {
	t.Helper()
	return NewClient(Config{Token: token, BaseURL: serverURL, Retry: httputil.NoRetry})
}

func TestNewClient(t *testing.T) {
	c := NewClient(Config{Token: "test-token"})
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}

	c = NewClient(Config{BaseURL: "https://ghe.example.com/api/v3/"})
	if c.BaseURL() != "https://ghe.example.com/api/v3" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", c.BaseURL())
	}
}

func TestClientHeaders(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantAuth string
	}{
		{name: "with token", token: "s3cret", wantAuth: "token s3cret"},
		{name: "anonymous", token: "", wantAuth: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got http.Header
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Clone()
				json.NewEncoder(w).Encode([]Repo{})
			}))
			defer server.Close()

			c := testClient(t, server.URL, tt.token)
			if _, err := c.ListUserRepos(context.Background(), "alice", 1); err != nil {
				t.Fatalf("ListUserRepos() error: %v", err)
			}

			if v := got.Get("Accept"); v != "application/vnd.github.v3+json" {
				t.Errorf("Accept = %q", v)
			}
			if v := got.Get("User-Agent"); v != UserAgent {
				t.Errorf("User-Agent = %q, want %q", v, UserAgent)
			}
			if v := got.Get("Authorization"); v != tt.wantAuth {
				t.Errorf("Authorization = %q, want %q", v, tt.wantAuth)
			}
		})
	}
}

func TestListUserRepos(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/{username}/repos", func(w http.ResponseWriter, req *http.Request) {
		if u := chi.URLParam(req, "username"); u != "alice" {
			t.Errorf("username = %q, want alice", u)
		}
		if pp := req.URL.Query().Get("per_page"); pp != "100" {
			t.Errorf("per_page = %q, want 100", pp)
		}
		if p := req.URL.Query().Get("page"); p != "2" {
			t.Errorf("page = %q, want 2", p)
		}
		w.Write([]byte(`[{"full_name":"alice/repoA","fork":false},{"full_name":"alice/repoB","fork":true}]`))
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := testClient(t, server.URL, "")

	repos, err := c.ListUserRepos(context.Background(), "alice", 2)
	if err != nil {
		t.Fatalf("ListUserRepos() error: %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("got %d repos, want 2", len(repos))
	}
	if repos[0].FullName != "alice/repoA" || repos[1].FullName != "alice/repoB" {
		t.Errorf("unexpected repos: %+v", repos)
	}
}

func TestSearchIssues(t *testing.T) {
	var gotQuery, gotPerPage string
	r := chi.NewRouter()
	r.Get("/search/issues", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query().Get("q")
		gotPerPage = req.URL.Query().Get("per_page")
		w.Write([]byte(`{"total_count":7,"incomplete_results":true,"items":[
			{"number":1,"repository_url":"https://api.github.com/repos/golang/go"},
			{"number":2,"repository_url":"https://api.github.com/repos/spf13/cobra"}
		]}`))
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := testClient(t, server.URL, "")

	res, err := c.SearchIssues(context.Background(), MergedPullRequestsQuery("alice"))
	if err != nil {
		t.Fatalf("SearchIssues() error: %v", err)
	}
	if res.TotalCount != 7 || !res.IncompleteResults {
		t.Errorf("TotalCount, IncompleteResults = %d, %v; want 7, true", res.TotalCount, res.IncompleteResults)
	}
	items := res.Items
	if gotQuery != "author:alice type:pr is:merged" {
		t.Errorf("q = %q", gotQuery)
	}
	if gotPerPage != "100" {
		t.Errorf("per_page = %q, want 100", gotPerPage)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if name, ok := items[1].RepoFullName(); !ok || name != "spf13/cobra" {
		t.Errorf("RepoFullName() = %q, %v; want spf13/cobra, true", name, ok)
	}
}

func TestListCommits(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/repos/{owner}/{repo}/commits", func(w http.ResponseWriter, req *http.Request) {
		if got := chi.URLParam(req, "owner") + "/" + chi.URLParam(req, "repo"); got != "alice/repo.go" {
			t.Errorf("repo = %q, want alice/repo.go", got)
		}
		if a := req.URL.Query().Get("author"); a != "alice" {
			t.Errorf("author = %q, want alice", a)
		}
		w.Write([]byte(`[
			{"sha":"1","commit":{"author":{"name":"A","email":"a@x.com"},"committer":{"name":"GitHub","email":"noreply@github.com"}}},
			{"sha":"2","commit":{"author":{"name":"A"},"committer":null}},
			{"sha":"3"}
		]`))
	})
	server := httptest.NewServer(r)
	defer server.Close()

	c := testClient(t, server.URL, "")

	commits, err := c.ListCommits(context.Background(), "alice/repo.go", "alice", 1)
	if err != nil {
		t.Fatalf("ListCommits() error: %v", err)
	}
	if len(commits) != 3 {
		t.Fatalf("got %d commits, want 3", len(commits))
	}
	if email, ok := commits[0].AuthorEmail(); !ok || email != "a@x.com" {
		t.Errorf("commits[0].AuthorEmail() = %q, %v", email, ok)
	}
	if email, ok := commits[0].CommitterEmail(); !ok || email != "noreply@github.com" {
		t.Errorf("commits[0].CommitterEmail() = %q, %v", email, ok)
	}
	if _, ok := commits[1].AuthorEmail(); ok {
		t.Error("commits[1] has no author email")
	}
	if _, ok := commits[1].CommitterEmail(); ok {
		t.Error("commits[1] has a null committer")
	}
	if _, ok := commits[2].AuthorEmail(); ok {
		t.Error("commits[2] has no commit object")
	}
}

func TestListCommitsNotFound(t *testing.T) {
	server := httptest.NewServer(chi.NewRouter())
	defer server.Close()

	c := testClient(t, server.URL, "")

	_, err := c.ListCommits(context.Background(), "alice/missing", "alice", 1)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("ListCommits() error = %v, want ErrNotFound", err)
	}
}

func TestListCommitsInvalidRepo(t *testing.T) {
	c := testClient(t, "http://127.0.0.1:0", "")

	if _, err := c.ListCommits(context.Background(), "not-a-repo", "alice", 1); err == nil {
		t.Error("ListCommits() should reject identifiers without owner/name")
	}
}

func TestRepoFullName(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{url: "https://api.github.com/repos/golang/go", want: "golang/go", wantOK: true},
		{url: "https://ghe.example.com/api/v3/repos/team/tool/", want: "team/tool", wantOK: true},
		{url: "repos/a/b", want: "a/b", wantOK: true},
		{url: "https://api.github.com/", wantOK: false},
		{url: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Issue{RepositoryURL: tt.url}.RepoFullName()
		if ok != tt.wantOK {
			t.Errorf("RepoFullName(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
		}
		if ok && got != tt.want {
			t.Errorf("RepoFullName(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestValidateOwner(t *testing.T) {
	tests := []struct {
		owner   string
		wantErr bool
	}{
		{"alice", false},
		{"a-b-c", false},
		{"A1", false},
		{"", true},
		{"-alice", true},
		{"alice/bob", true},
		{"al ice", true},
		{"a234567890123456789012345678901234567890", true},
	}

	for _, tt := range tests {
		err := ValidateOwner(tt.owner)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOwner(%q) error = %v, wantErr %v", tt.owner, err, tt.wantErr)
		}
	}
}

func TestValidateEnterpriseOwner(t *testing.T) {
	tests := []struct {
		owner   string
		wantErr bool
	}{
		{"alice", false},
		{"alice_acme", false},
		{"a-b_c", false},
		{"", true},
		{"_alice", true},
		{"-alice", true},
		{"alice/bob", true},
	}

	for _, tt := range tests {
		err := ValidateEnterpriseOwner(tt.owner)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEnterpriseOwner(%q) error = %v, wantErr %v", tt.owner, err, tt.wantErr)
		}
	}
}

func TestClientValidateOwnerByHost(t *testing.T) {
	public := NewClient(Config{})
	if err := public.ValidateOwner("alice_acme"); err == nil {
		t.Error("github.com client should reject underscores")
	}

	ghe := NewClient(Config{BaseURL: "https://ghe.example.com/api/v3"})
	if err := ghe.ValidateOwner("alice_acme"); err != nil {
		t.Errorf("enterprise client ValidateOwner() error: %v", err)
	}
}

func TestListCommitsEnterpriseOwner(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, "")
	if _, err := c.ListCommits(context.Background(), "alice_acme/tools", "alice_acme", 1); err != nil {
		t.Fatalf("ListCommits() error: %v", err)
	}
	if gotPath != "/repos/alice_acme/tools/commits" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestParseRepoRef(t *testing.T) {
	owner, repo, err := ParseRepoRef("alice/repo_A.v2")
	if err != nil {
		t.Fatalf("ParseRepoRef() error: %v", err)
	}
	if owner != "alice" || repo != "repo_A.v2" {
		t.Errorf("ParseRepoRef() = %q, %q", owner, repo)
	}

	for _, bad := range []string{"alice", "alice/", "/repo", "alice/re po"} {
		if _, _, err := ParseRepoRef(bad); err == nil {
			t.Errorf("ParseRepoRef(%q) should fail", bad)
		}
	}
}

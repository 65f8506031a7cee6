// Package github provides an HTTP client for the GitHub REST API v3.
//
// # Overview
//
// The client covers the three endpoints the email collector needs:
//
//   - [Client.ListUserRepos]: GET /users/{username}/repos
//   - [Client.SearchIssues]: GET /search/issues
//   - [Client.ListCommits]: GET /repos/{owner}/{repo}/commits?author={username}
//
// Each call fetches exactly one page of [PerPage] items; paging is left to
// the caller so it can decide when to stop and how to pace requests.
//
// # Usage
//
//	client := github.NewClient(github.Config{Token: os.Getenv("GITHUB_TOKEN")})
//
//	repos, err := client.ListUserRepos(ctx, "octocat", 1)
//	commits, err := client.ListCommits(ctx, "octocat/hello-world", "octocat", 1)
//
// # Authentication
//
// A personal access token is optional but recommended to avoid rate limits.
// Without a token, the API allows 60 requests/hour; with one, 5000.
//
// # Optional fields
//
// API objects are decoded into small typed structs. Nested values that may be
// null, such as commit.author.email, are read through accessors that report
// absence explicitly ([Commit.AuthorEmail], [Issue.RepoFullName]).
package github

// Package emails discovers the email addresses a GitHub user commits with.
//
// # Overview
//
// A [Collector] walks the GitHub REST API one request at a time:
//
//  1. List the user's repositories ([Collector.EnumerateOwnedRepositories])
//  2. Optionally sample repositories with merged pull requests by the user
//     ([Collector.EnumerateContributedRepositories])
//  3. List the user's commits in each repository and count the author and
//     committer addresses ([Collector.EnumerateCommitEmails])
//
// Results accumulate in an [Aggregate] of email → repository → count,
// which [Aggregate.Ranked] orders for display.
//
// # Filtering
//
// GitHub's synthetic noreply addresses are dropped ([IsNoreply]). Addresses
// are lowercased before counting.
//
// # Failure policy
//
// Failures degrade to less data. A failed page ends that listing and keeps
// what was read before it; a repository answering 404 or 403 is skipped.
// Only cancellation of the context is returned as an error, so that an
// interrupted run stops instead of rendering a truncated result.
package emails

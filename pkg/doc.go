// Package pkg provides the libraries behind emailfinder, which lists the email
// addresses found in a GitHub user's commit history.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. [emails] - Domain logic (repository enumeration, commit scanning, noreply
//     filtering, aggregation and ranking)
//  2. [integrations] - External API clients (the shared JSON client and GitHub)
//  3. Support packages: [httputil] (retry and request pacing), [observability]
//     (event hooks), [errors] (error codes), [config] (settings) and
//     [buildinfo] (version stamping)
//
// # Architecture
//
// The typical data flow through emailfinder:
//
//	GitHub REST API
//	       ↓
//	[integrations/github] (typed endpoints over [integrations].Client)
//	       ↓
//	[emails].Collector (owned + contributed repos → commits → addresses)
//	       ↓
//	[emails].Aggregate (email → repository → count, ranked)
//	       ↓
//	table / plain / JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/emailfinder/pkg/emails"
//	    "github.com/matzehuels/emailfinder/pkg/integrations/github"
//	)
//
//	client := github.NewClient(github.Config{Token: os.Getenv("GITHUB_TOKEN")})
//	collector := emails.NewCollector(client, emails.Options{})
//
//	agg, err := collector.FindEmails(ctx, "octocat", false)
//	if err != nil {
//	    return err // only on cancellation; agg holds what was collected
//	}
//	for _, e := range agg.Ranked() {
//	    fmt.Println(e.Email, e.Total)
//	}
//
// Requests are issued one at a time and spaced by a shared pacer; see
// [httputil.Pacer].
//
// [emails]: https://pkg.go.dev/github.com/matzehuels/emailfinder/pkg/emails
// [integrations]: https://pkg.go.dev/github.com/matzehuels/emailfinder/pkg/integrations
// [httputil]: https://pkg.go.dev/github.com/matzehuels/emailfinder/pkg/httputil
// [httputil.Pacer]: https://pkg.go.dev/github.com/matzehuels/emailfinder/pkg/httputil#Pacer
// [observability]: https://pkg.go.dev/github.com/matzehuels/emailfinder/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/emailfinder/pkg/errors
// [config]: https://pkg.go.dev/github.com/matzehuels/emailfinder/pkg/config
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/emailfinder/pkg/buildinfo
package pkg

package emails

import "strings"

// noreplyPatterns are the synthetic addresses GitHub substitutes for a
// user's real email on web-based and privacy-protected commits.
var noreplyPatterns = []string{
	"@users.noreply.github.com",
	"noreply@github.com",
	"@noreply.github.com",
	"@noreply.githubassets.com",
}

// IsNoreply reports whether email contains any GitHub noreply pattern.
//
// Matching is by substring, not by suffix: an address that merely contains
// "noreply@github.com" in its local part is excluded too.
func IsNoreply(email string) bool {
	for _, p := range noreplyPatterns {
		if strings.Contains(email, p) {
			return true
		}
	}
	return false
}

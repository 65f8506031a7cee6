package github

import (
	"regexp"
	"strings"

	apperrors "github.com/matzehuels/emailfinder/pkg/errors"
)

// Regex patterns for GitHub resource validation.
var (
	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub Enterprise logins may also carry underscores, e.g. managed users
	// named {handle}_{shortcode}
	validEnterpriseOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,99}$`)
	// GitHub repo names: 1-100 alphanumeric, hyphen, underscore, or dot
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ValidateOwner validates a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "username is required")
	}
	if !validOwner.MatchString(owner) {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"invalid username %q: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen", owner)
	}
	return nil
}

// ValidateEnterpriseOwner validates a GitHub Enterprise username or
// organization name. Unlike [ValidateOwner] it allows underscores.
func ValidateEnterpriseOwner(owner string) error {
	if owner == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "username is required")
	}
	if !validEnterpriseOwner.MatchString(owner) {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"invalid username %q: must be 1-100 alphanumeric characters, hyphens or underscores, cannot start with hyphen or underscore", owner)
	}
	return nil
}

// ParseRepoRef splits an "owner/repo" identifier and validates both parts
// with the github.com rules.
func ParseRepoRef(ref string) (owner, repo string, err error) {
	return parseRepoRef(ref, ValidateOwner)
}

func parseRepoRef(ref string, validateOwner func(string) error) (owner, repo string, err error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidInput, "invalid repository %q: use owner/repo", ref)
	}
	owner, repo = parts[0], parts[1]
	if err := validateOwner(owner); err != nil {
		return "", "", err
	}
	if !validRepo.MatchString(repo) {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidInput,
			"invalid repository name %q: must be 1-100 alphanumeric characters, hyphens, underscores, or dots", repo)
	}
	return owner, repo, nil
}

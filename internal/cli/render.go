package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/emailfinder/pkg/emails"
	apperrors "github.com/matzehuels/emailfinder/pkg/errors"
)

// Output formats.
const (
	formatTable = "table"
	formatPlain = "plain"
	formatJSON  = "json"
)

// renderFunc writes the ranked entries found for username to w.
type renderFunc func(w io.Writer, username string, entries []emails.Entry) error

var renderers = map[string]renderFunc{
	formatTable: renderTable,
	formatPlain: renderPlain,
	formatJSON:  renderJSON,
}

// rendererFor returns the renderer for format.
func rendererFor(format string) (renderFunc, error) {
	r, ok := renderers[strings.ToLower(format)]
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %s (must be '%s', '%s', or '%s')", format, formatTable, formatPlain, formatJSON)
	}
	return r, nil
}

// renderTable prints a summary box followed by a table of addresses.
func renderTable(w io.Writer, username string, entries []emails.Entry) error {
	if len(entries) == 0 {
		printWarning(w, "No email addresses found for %s.", username)
		return nil
	}

	summary := fmt.Sprintf("Found %s unique email address(es) for %s",
		StyleNumber.Bold(true).Render(strconv.Itoa(len(entries))),
		StyleRepo.Bold(true).Render(username))
	fmt.Fprintln(w, styleSummary.Render(summary))

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Email, strconv.Itoa(e.Total), formatSources(e.Sources)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Email", "Occurrences", "Sources").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			switch col {
			case 0:
				return cell.Foreground(colorCyan)
			case 1:
				return cell.Foreground(colorGreen).Align(lipgloss.Right)
			default:
				return cell.Foreground(colorBlue)
			}
		})

	fmt.Fprintln(w, StyleTitle.Render("Email Addresses for "+username))
	fmt.Fprintln(w, t.Render())
	return nil
}

// renderPlain prints one unstyled line per address.
func renderPlain(w io.Writer, username string, entries []emails.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintf(w, "No email addresses found for %s.\n", username)
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s  %d  %s\n", e.Email, e.Total, formatSources(e.Sources)); err != nil {
			return err
		}
	}
	return nil
}

// renderJSON prints the entries as an indented JSON array. No results
// encode as [].
func renderJSON(w io.Writer, _ string, entries []emails.Entry) error {
	if entries == nil {
		entries = []emails.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// formatSources joins sources as "repo (n), repo (m)".
func formatSources(sources []emails.RepoCount) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = fmt.Sprintf("%s (%d)", s.Repo, s.Count)
	}
	return strings.Join(parts, ", ")
}

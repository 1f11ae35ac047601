// Package render holds the shared text-rendering helpers for the booking
// tools: error classification, the failure template with its Troubleshooting
// section, and the pagination block computed from upstream-reported values.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
)

// Classify maps an error to its user-facing message using the neobookings
// error taxonomy. Anything outside the taxonomy is reported as unexpected,
// with the error's type name included.
func Classify(err error) string {
	var (
		validationErr *neobookings.ValidationError
		authErr       *neobookings.AuthError
		apiErr        *neobookings.APIError
	)

	switch {
	case errors.As(err, &validationErr):
		return "Validation error: " + validationErr.Message
	case errors.As(err, &authErr):
		return "Authentication failed: " + authErr.Message
	case errors.As(err, &apiErr):
		return "API error: " + apiErr.Message
	default:
		return fmt.Sprintf("Unexpected error: %v (%T)", err, err)
	}
}

// Failure renders the failure template: title, classified error, and a
// Troubleshooting section with the given remediation hints.
func Failure(title string, err error, hints []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "Error: %s\n", Classify(err))

	b.WriteString("\nTroubleshooting:\n")
	for _, h := range hints {
		fmt.Fprintf(&b, "- %s\n", h)
	}
	b.WriteString("- Contact support if the issue persists\n")

	return b.String()
}

// Pagination carries the paging numbers as reported by the API. The next and
// previous flags derive from those values; nothing is recomputed locally.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalRecords int
	PageSize     int
}

// HasNextPage reports whether the API indicated pages after the current one.
func (p Pagination) HasNextPage() bool { return p.CurrentPage < p.TotalPages }

// HasPreviousPage reports whether the API indicated pages before the current one.
func (p Pagination) HasPreviousPage() bool { return p.CurrentPage > 1 }

// Block renders the standard pagination section.
func (p Pagination) Block() string {
	var b strings.Builder

	b.WriteString("Pagination:\n")
	fmt.Fprintf(&b, "- Current Page: %d of %d\n", p.CurrentPage, p.TotalPages)
	fmt.Fprintf(&b, "- Total Records: %d\n", p.TotalRecords)
	fmt.Fprintf(&b, "- Results Per Page: %d\n", p.PageSize)
	fmt.Fprintf(&b, "- Has Next Page: %s\n", YesNo(p.HasNextPage()))
	fmt.Fprintf(&b, "- Has Previous Page: %s\n", YesNo(p.HasPreviousPage()))

	return b.String()
}

// Rule is the fixed-width separator used between entity blocks.
func Rule() string { return strings.Repeat("=", 50) }

// OrNA substitutes "N/A" for an empty string value.
func OrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// YesNo renders a boolean as Yes or No.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Package budget provides the budget management tools: delete, details,
// properties-update, and search. Each tool validates its arguments, performs
// the authenticate-then-call sequence against the Neobookings API, and
// renders a text summary of the outcome.
package budget

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
	"github.com/neomcp/neobookings-mcp/pkg/tools/toolbox"
)

// Budget provides the budget tools. It holds only read-only configuration;
// every invocation constructs its own client and authenticates fresh.
type Budget struct {
	cfg neobookings.Config
	log *slog.Logger
}

// New creates a Budget toolset with the given API configuration.
func New(cfg neobookings.Config, log *slog.Logger) *Budget {
	if log == nil {
		log = slog.Default()
	}
	return &Budget{cfg: cfg, log: log}
}

// Tools returns a ToolBox containing the budget tools.
func (b *Budget) Tools() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(
		b.deleteTool(),
		b.detailsTool(),
		b.updateTool(),
		b.searchTool(),
	)

	return tb
}

// newClient returns the per-invocation API client.
func (b *Budget) newClient() *neobookings.Client {
	return neobookings.NewClient(b.cfg, neobookings.WithLogger(b.log))
}

// language validates an optional language argument, defaulting empty to
// neobookings.DefaultLanguage.
func language(lang string) (string, error) {
	if lang == "" {
		return neobookings.DefaultLanguage, nil
	}
	if !neobookings.ValidLanguage(lang) {
		return "", &neobookings.ValidationError{
			Message: fmt.Sprintf("Invalid language code: %s. Valid options: %s", lang, strings.Join(neobookings.Languages, ", ")),
		}
	}
	return lang, nil
}

// sanitizeBudgetIDs checks that every element is a non-empty string and
// returns the sanitized list. Arguments arrive as []any so that a non-string
// element is reported as an invalid id rather than a decode failure.
func sanitizeBudgetIDs(raw []any) ([]string, error) {
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, &neobookings.ValidationError{Message: fmt.Sprintf("Invalid budget ID: %v", v)}
		}
		ids = append(ids, neobookings.Sanitize(s))
	}
	return ids, nil
}

// sanitizeOptionalIDs sanitizes an optional id filter list, silently skipping
// elements that are not non-empty strings.
func sanitizeOptionalIDs(raw []any) []string {
	var ids []string
	for _, v := range raw {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			ids = append(ids, neobookings.Sanitize(s))
		}
	}
	return ids
}

// Package hotel provides the hotel inventory tools. Currently it exposes the
// hotel search tool, which filters the hotel catalogue by name, location, and
// category with pagination.
package hotel

import (
	"log/slog"

	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
	"github.com/neomcp/neobookings-mcp/pkg/tools/toolbox"
)

// Hotel provides the hotel inventory tools. It holds only read-only
// configuration; every invocation constructs its own client and
// authenticates fresh.
type Hotel struct {
	cfg neobookings.Config
	log *slog.Logger
}

// New creates a Hotel toolset with the given API configuration.
func New(cfg neobookings.Config, log *slog.Logger) *Hotel {
	if log == nil {
		log = slog.Default()
	}
	return &Hotel{cfg: cfg, log: log}
}

// Tools returns a ToolBox containing the hotel tools.
func (h *Hotel) Tools() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(h.searchTool())

	return tb
}

func (h *Hotel) newClient() *neobookings.Client {
	return neobookings.NewClient(h.cfg, neobookings.WithLogger(h.log))
}

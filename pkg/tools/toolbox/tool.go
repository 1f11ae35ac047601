package toolbox

import (
	"context"
	"encoding/json"
)

// Handler executes a tool with the given JSON input and returns a text result.
//
// Handlers in this repository absorb their own failures: validation,
// authentication, and API errors are rendered into the returned text, so a
// non-nil error indicates a defect in the handler itself, not a failed
// operation.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool represents an executable tool with a name, description, JSON Schema, and handler.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

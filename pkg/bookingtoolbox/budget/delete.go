package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neomcp/neobookings-mcp/pkg/bookingtoolbox/render"
	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
	"github.com/neomcp/neobookings-mcp/pkg/tools/toolbox"
)

// maxDeleteIDs bounds one deletion batch.
const maxDeleteIDs = 50

const deleteSchema = `{
  "type": "object",
  "properties": {
    "budget_ids": {
      "type": "array",
      "description": "List of budget identifiers to delete",
      "items": {"type": "string", "description": "Budget identifier"},
      "minItems": 1,
      "maxItems": 50
    },
    "language": {
      "type": "string",
      "description": "Language code for the request",
      "enum": ["es", "en", "fr", "de", "it", "pt"],
      "default": "es"
    }
  },
  "required": ["budget_ids"],
  "additionalProperties": false
}`

type deleteInput struct {
	BudgetIDs []any  `json:"budget_ids"`
	Language  string `json:"language"`
}

type deletePayload struct {
	Request  neobookings.Envelope `json:"Request"`
	BudgetID []string             `json:"BudgetId"`
}

type deleteResult struct {
	DeletedIDs []string
	Language   string
	Envelope   neobookings.Envelope
	API        neobookings.ResponseInfo
}

func (b *Budget) deleteTool() toolbox.Tool {
	return toolbox.Tool{
		Name: "budget_delete_rq",
		Description: "Delete one or more budgets from the Neobookings system. " +
			"Deletion is irreversible; up to 50 budgets can be removed in a single operation.",
		InputSchema: json.RawMessage(deleteSchema),
		Handler:     b.handleDelete,
	}
}

func (b *Budget) handleDelete(ctx context.Context, input json.RawMessage) (string, error) {
	var in deleteInput
	if err := json.Unmarshal(input, &in); err != nil {
		return renderDeleteFailure(&neobookings.ValidationError{Message: "invalid arguments: " + err.Error()}), nil
	}

	res, err := b.executeDelete(ctx, &in)
	if err != nil {
		b.log.Error("budget deletion failed", "error", err)
		return renderDeleteFailure(err), nil
	}

	return renderDeleteSuccess(res), nil
}

func (b *Budget) executeDelete(ctx context.Context, in *deleteInput) (*deleteResult, error) {
	if len(in.BudgetIDs) == 0 {
		return nil, &neobookings.ValidationError{Message: "At least one budget ID is required (budget_ids)"}
	}
	if len(in.BudgetIDs) > maxDeleteIDs {
		return nil, &neobookings.ValidationError{Message: fmt.Sprintf("At most %d budget IDs can be deleted per call", maxDeleteIDs)}
	}

	ids, err := sanitizeBudgetIDs(in.BudgetIDs)
	if err != nil {
		return nil, err
	}

	lang, err := language(in.Language)
	if err != nil {
		return nil, err
	}

	b.log.Info("deleting budgets", "budget_count", len(ids), "language", lang)

	env := neobookings.NewEnvelope(lang)
	client := b.newClient()

	if _, err := client.Authenticate(ctx, env); err != nil {
		return nil, err
	}

	var out neobookings.BudgetDeleteResponse
	if err := client.Post(ctx, "/BudgetDeleteRQ", deletePayload{Request: env, BudgetID: ids}, &out, true); err != nil {
		return nil, err
	}

	b.log.Info("budgets deleted", "budget_count", len(ids), "request_id", env.RequestID)

	return &deleteResult{
		DeletedIDs: ids,
		Language:   lang,
		Envelope:   env,
		API:        out.Response,
	}, nil
}

func renderDeleteSuccess(res *deleteResult) string {
	var b strings.Builder

	b.WriteString("Budget Deletion Completed\n\n")
	b.WriteString("Operation Summary:\n")
	b.WriteString("- Operation: Delete\n")
	b.WriteString("- Resource Type: Budget\n")
	fmt.Fprintf(&b, "- Budgets Deleted: %d\n", len(res.DeletedIDs))
	fmt.Fprintf(&b, "- Language: %s\n", strings.ToUpper(res.Language))

	b.WriteString("\nDeleted Budget IDs:\n")
	for i, id := range res.DeletedIDs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, id)
	}

	b.WriteString("\nRequest Details:\n")
	fmt.Fprintf(&b, "- Request ID: %s\n", res.Envelope.RequestID)
	fmt.Fprintf(&b, "- Timestamp: %s\n", res.Envelope.Timestamp)

	b.WriteString("\nImportant Note:\n")
	b.WriteString("The deleted budgets cannot be recovered. Make sure this was the intended action.\n")

	fmt.Fprintf(&b, "\nResponse Time: %dms\n", res.API.TimeResponse)

	return b.String()
}

func renderDeleteFailure(err error) string {
	return render.Failure("Budget Deletion Failed", err, []string{
		"Verify the budget IDs exist and are valid",
		"Check that you have permission to delete these budgets",
		"Ensure the budget IDs are not currently in use",
		"Verify your authentication credentials",
	})
}

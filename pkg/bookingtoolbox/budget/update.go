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

const updateSchema = `{
  "type": "object",
  "properties": {
    "budget_id": {
      "type": "string",
      "description": "Identifier of the budget to update"
    },
    "sent_date": {
      "type": "string",
      "description": "Mark the budget as sent at this datetime (YYYY-MM-DDThh:mm:ss)"
    },
    "copied_date": {
      "type": "string",
      "description": "Mark the budget as copied at this datetime (YYYY-MM-DDThh:mm:ss)"
    },
    "clear_sent_date": {
      "type": "boolean",
      "description": "Clear the sent date, marking the budget as not sent",
      "default": false
    },
    "clear_copied_date": {
      "type": "boolean",
      "description": "Clear the copied date, marking the budget as not copied",
      "default": false
    },
    "language": {
      "type": "string",
      "description": "Language code for the request",
      "enum": ["es", "en", "fr", "de", "it", "pt"],
      "default": "es"
    }
  },
  "required": ["budget_id"],
  "additionalProperties": false
}`

type updateInput struct {
	BudgetID        string `json:"budget_id"`
	SentDate        string `json:"sent_date"`
	CopiedDate      string `json:"copied_date"`
	ClearSentDate   bool   `json:"clear_sent_date"`
	ClearCopiedDate bool   `json:"clear_copied_date"`
	Language        string `json:"language"`
}

// updatePayload omits the set/clear fields when unused so the API only sees
// the properties actually being changed.
type updatePayload struct {
	Request         neobookings.Envelope `json:"Request"`
	BudgetID        string               `json:"BudgetId"`
	SentDate        string               `json:"SentDate,omitempty"`
	CopiedDate      string               `json:"CopiedDate,omitempty"`
	ClearSentDate   bool                 `json:"ClearSentDate,omitempty"`
	ClearCopiedDate bool                 `json:"ClearCopiedDate,omitempty"`
}

type updateResult struct {
	BudgetID string
	Updates  []string
	Detail   *neobookings.BudgetBasicDetail
	Language string
	Envelope neobookings.Envelope
	API      neobookings.ResponseInfo
}

func (b *Budget) updateTool() toolbox.Tool {
	return toolbox.Tool{
		Name: "budget_properties_update_rq",
		Description: "Update the sent/copied properties of a budget. Each property can be set to a " +
			"datetime or cleared, but not both in the same call; at least one update must be specified.",
		InputSchema: json.RawMessage(updateSchema),
		Handler:     b.handleUpdate,
	}
}

func (b *Budget) handleUpdate(ctx context.Context, input json.RawMessage) (string, error) {
	var in updateInput
	if err := json.Unmarshal(input, &in); err != nil {
		return renderUpdateFailure(&neobookings.ValidationError{Message: "invalid arguments: " + err.Error()}), nil
	}

	res, err := b.executeUpdate(ctx, &in)
	if err != nil {
		b.log.Error("budget properties update failed", "budget_id", in.BudgetID, "error", err)
		return renderUpdateFailure(err), nil
	}

	return renderUpdateSuccess(res), nil
}

func (b *Budget) executeUpdate(ctx context.Context, in *updateInput) (*updateResult, error) {
	if strings.TrimSpace(in.BudgetID) == "" {
		return nil, &neobookings.ValidationError{Message: "Budget ID is required and must be a non-empty string"}
	}
	budgetID := neobookings.Sanitize(in.BudgetID)

	if in.SentDate != "" && !neobookings.ValidDateTime(in.SentDate) {
		return nil, &neobookings.ValidationError{Message: "Invalid datetime format for sent_date. Expected format: YYYY-MM-DDThh:mm:ss"}
	}
	if in.CopiedDate != "" && !neobookings.ValidDateTime(in.CopiedDate) {
		return nil, &neobookings.ValidationError{Message: "Invalid datetime format for copied_date. Expected format: YYYY-MM-DDThh:mm:ss"}
	}
	if in.SentDate != "" && in.ClearSentDate {
		return nil, &neobookings.ValidationError{Message: "Cannot set sent_date and clear_sent_date at the same time"}
	}
	if in.CopiedDate != "" && in.ClearCopiedDate {
		return nil, &neobookings.ValidationError{Message: "Cannot set copied_date and clear_copied_date at the same time"}
	}
	if in.SentDate == "" && in.CopiedDate == "" && !in.ClearSentDate && !in.ClearCopiedDate {
		return nil, &neobookings.ValidationError{Message: "At least one property update must be specified"}
	}

	lang, err := language(in.Language)
	if err != nil {
		return nil, err
	}

	var updates []string
	switch {
	case in.SentDate != "":
		updates = append(updates, "Sent Date set to "+in.SentDate)
	case in.ClearSentDate:
		updates = append(updates, "Sent Date cleared")
	}
	switch {
	case in.CopiedDate != "":
		updates = append(updates, "Copied Date set to "+in.CopiedDate)
	case in.ClearCopiedDate:
		updates = append(updates, "Copied Date cleared")
	}

	b.log.Info("updating budget properties", "budget_id", budgetID, "updates", len(updates))

	env := neobookings.NewEnvelope(lang)
	client := b.newClient()

	if _, err := client.Authenticate(ctx, env); err != nil {
		return nil, err
	}

	payload := updatePayload{
		Request:         env,
		BudgetID:        budgetID,
		SentDate:        in.SentDate,
		CopiedDate:      in.CopiedDate,
		ClearSentDate:   in.ClearSentDate,
		ClearCopiedDate: in.ClearCopiedDate,
	}

	var out neobookings.BudgetUpdateResponse
	if err := client.Post(ctx, "/BudgetPropertiesUpdateRQ", payload, &out, true); err != nil {
		return nil, err
	}

	b.log.Info("budget properties updated", "budget_id", budgetID, "request_id", env.RequestID)

	return &updateResult{
		BudgetID: budgetID,
		Updates:  updates,
		Detail:   out.BudgetDetails,
		Language: lang,
		Envelope: env,
		API:      out.Response,
	}, nil
}

func renderUpdateSuccess(res *updateResult) string {
	var b strings.Builder

	b.WriteString("Budget Properties Updated\n\n")
	b.WriteString("Operation Summary:\n")
	fmt.Fprintf(&b, "- Budget ID: %s\n", res.BudgetID)
	fmt.Fprintf(&b, "- Language: %s\n", strings.ToUpper(res.Language))

	b.WriteString("\nApplied Updates:\n")
	for i, u := range res.Updates {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, u)
	}

	if d := res.Detail; d != nil {
		b.WriteString("\nCurrent Budget State:\n")
		fmt.Fprintf(&b, "- Budget ID: %s\n", render.OrNA(d.BudgetID))
		fmt.Fprintf(&b, "- Hotel ID: %s\n", render.OrNA(d.HotelID))
		fmt.Fprintf(&b, "- Status: %s\n", render.OrNA(d.Status))
		fmt.Fprintf(&b, "- Sent: %s (%s)\n", render.YesNo(d.IsSent), render.OrNA(d.SentDate))
		fmt.Fprintf(&b, "- Copied: %s (%s)\n", render.YesNo(d.IsCopied), render.OrNA(d.CopiedDate))
		fmt.Fprintf(&b, "- Creation Date: %s\n", render.OrNA(d.CreationDate))
	}

	b.WriteString("\nRequest Details:\n")
	fmt.Fprintf(&b, "- Request ID: %s\n", res.Envelope.RequestID)
	fmt.Fprintf(&b, "- Timestamp: %s\n", res.Envelope.Timestamp)
	fmt.Fprintf(&b, "- Response Time: %dms\n", res.API.TimeResponse)

	return b.String()
}

func renderUpdateFailure(err error) string {
	return render.Failure("Budget Properties Update Failed", err, []string{
		"Verify the budget ID exists and is valid",
		"Check the datetime format is YYYY-MM-DDThh:mm:ss",
		"Ensure you are not setting and clearing the same property",
		"Verify your authentication credentials",
	})
}

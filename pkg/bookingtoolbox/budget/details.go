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

// maxDetailIDs bounds one details lookup.
const maxDetailIDs = 20

const detailsSchema = `{
  "type": "object",
  "properties": {
    "budget_ids": {
      "type": "array",
      "description": "List of budget identifiers to retrieve details for",
      "items": {"type": "string", "description": "Budget identifier"},
      "minItems": 1,
      "maxItems": 20
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

type detailsInput struct {
	BudgetIDs []any  `json:"budget_ids"`
	Language  string `json:"language"`
}

type detailsPayload struct {
	Request  neobookings.Envelope `json:"Request"`
	BudgetID []string             `json:"BudgetId"`
}

type detailsResult struct {
	RequestedIDs []string
	Details      []neobookings.BudgetDetail
	Language     string
	Envelope     neobookings.Envelope
	API          neobookings.ResponseInfo
}

// foundCount is the number of records the API actually returned, which may
// be lower than the number of ids requested.
func (r *detailsResult) foundCount() int { return len(r.Details) }

func (b *Budget) detailsTool() toolbox.Tool {
	return toolbox.Tool{
		Name: "budget_details_rq",
		Description: "Retrieve detailed information about one or more budgets, including customer, " +
			"basket, amounts, and billing data. Budgets that cannot be found are omitted from the result.",
		InputSchema: json.RawMessage(detailsSchema),
		Handler:     b.handleDetails,
	}
}

func (b *Budget) handleDetails(ctx context.Context, input json.RawMessage) (string, error) {
	var in detailsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return renderDetailsFailure(&neobookings.ValidationError{Message: "invalid arguments: " + err.Error()}), nil
	}

	res, err := b.executeDetails(ctx, &in)
	if err != nil {
		b.log.Error("budget details retrieval failed", "error", err)
		return renderDetailsFailure(err), nil
	}

	return renderDetailsSuccess(res), nil
}

func (b *Budget) executeDetails(ctx context.Context, in *detailsInput) (*detailsResult, error) {
	if len(in.BudgetIDs) == 0 {
		return nil, &neobookings.ValidationError{Message: "At least one budget ID is required (budget_ids)"}
	}
	if len(in.BudgetIDs) > maxDetailIDs {
		return nil, &neobookings.ValidationError{Message: fmt.Sprintf("At most %d budget IDs can be requested per call", maxDetailIDs)}
	}

	ids, err := sanitizeBudgetIDs(in.BudgetIDs)
	if err != nil {
		return nil, err
	}

	lang, err := language(in.Language)
	if err != nil {
		return nil, err
	}

	b.log.Info("retrieving budget details", "budget_count", len(ids), "language", lang)

	env := neobookings.NewEnvelope(lang)
	client := b.newClient()

	if _, err := client.Authenticate(ctx, env); err != nil {
		return nil, err
	}

	var out neobookings.BudgetDetailsResponse
	if err := client.Post(ctx, "/BudgetDetailsRQ", detailsPayload{Request: env, BudgetID: ids}, &out, true); err != nil {
		return nil, err
	}

	b.log.Info("budget details retrieved",
		"requested_count", len(ids),
		"found_count", len(out.BudgetDetails),
		"request_id", env.RequestID)

	return &detailsResult{
		RequestedIDs: ids,
		Details:      out.BudgetDetails,
		Language:     lang,
		Envelope:     env,
		API:          out.Response,
	}, nil
}

func renderDetailsSuccess(res *detailsResult) string {
	var b strings.Builder

	b.WriteString("Budget Details Retrieved\n\n")
	b.WriteString("Query Summary:\n")
	fmt.Fprintf(&b, "- Requested: %d budget(s)\n", len(res.RequestedIDs))
	fmt.Fprintf(&b, "- Found: %d budget(s)\n", res.foundCount())
	fmt.Fprintf(&b, "- Language: %s\n", strings.ToUpper(res.Language))

	for i, d := range res.Details {
		fmt.Fprintf(&b, "\n%s\n", render.Rule())
		fmt.Fprintf(&b, "Budget #%d: %s\n", i+1, render.OrNA(d.ID))
		fmt.Fprintf(&b, "%s\n\n", render.Rule())

		b.WriteString("Basic Information:\n")
		fmt.Fprintf(&b, "- Budget ID: %s\n", render.OrNA(d.ID))
		fmt.Fprintf(&b, "- Hotel ID: %s\n", render.OrNA(d.HotelID))
		fmt.Fprintf(&b, "- Status: %s\n", render.OrNA(d.Status))
		fmt.Fprintf(&b, "- Language: %s\n", render.OrNA(d.BudgetLang))
		fmt.Fprintf(&b, "- Created By: %s\n", render.OrNA(d.CreationUser))

		b.WriteString("\nDates:\n")
		fmt.Fprintf(&b, "- Created: %s\n", render.OrNA(d.CreationDate))
		fmt.Fprintf(&b, "- Last Updated: %s\n", render.OrNA(d.LastUpdate))
		fmt.Fprintf(&b, "- Sent: %s (%s)\n", render.YesNo(d.IsSent), render.OrNA(d.SentDate))
		fmt.Fprintf(&b, "- Copied: %s (%s)\n", render.YesNo(d.IsCopied), render.OrNA(d.CopiedDate))

		writeCustomer(&b, d.Customer)
		writeBasket(&b, d.Basket)
		writeBilling(&b, d.Billing)
	}

	b.WriteString("\nRequest Details:\n")
	fmt.Fprintf(&b, "- Request ID: %s\n", res.Envelope.RequestID)
	fmt.Fprintf(&b, "- Timestamp: %s\n", res.Envelope.Timestamp)
	fmt.Fprintf(&b, "- Response Time: %dms\n", res.API.TimeResponse)

	return b.String()
}

func writeCustomer(b *strings.Builder, c *neobookings.CustomerDetail) {
	if c == nil {
		return
	}

	b.WriteString("\nCustomer Information:\n")
	fmt.Fprintf(b, "- Name: %s %s\n", c.Name, c.Surname)
	fmt.Fprintf(b, "- Email: %s\n", render.OrNA(c.Email))
	fmt.Fprintf(b, "- Phone: %s\n", render.OrNA(c.Phone))
	fmt.Fprintf(b, "- Country: %s\n", render.OrNA(c.Country))
	fmt.Fprintf(b, "- City: %s\n", render.OrNA(c.City))
	fmt.Fprintf(b, "- Address: %s\n", render.OrNA(c.Address))
	if c.AdsAuthorization != nil {
		fmt.Fprintf(b, "- Ads Authorization: %s\n", render.YesNo(*c.AdsAuthorization))
	}
	if c.LoyaltyAuthorization != nil {
		fmt.Fprintf(b, "- Loyalty Authorization: %s\n", render.YesNo(*c.LoyaltyAuthorization))
	}
}

func writeBasket(b *strings.Builder, bk *neobookings.BasketDetail) {
	if bk == nil {
		return
	}

	b.WriteString("\nBasket Information:\n")
	fmt.Fprintf(b, "- Origin: %s\n", render.OrNA(bk.Origin))
	fmt.Fprintf(b, "- Rewards: %s\n", render.YesNo(bk.Rewards))
	fmt.Fprintf(b, "- Allow Deposit: %s\n", render.YesNo(bk.AllowDeposit))
	fmt.Fprintf(b, "- Allow Full Payment: %s\n", render.YesNo(bk.AllowFullPayment))
	fmt.Fprintf(b, "- Allow Installments: %s\n", render.YesNo(bk.AllowInstallments))
	fmt.Fprintf(b, "- Allow Establishment Payment: %s\n", render.YesNo(bk.AllowEstablishment))

	writeAmounts(b, bk.Amounts)
}

func writeAmounts(b *strings.Builder, a *neobookings.AmountsDetail) {
	if a == nil {
		return
	}

	b.WriteString("\nPricing Details:\n")
	fmt.Fprintf(b, "- Currency: %s\n", render.OrNA(a.Currency))
	fmt.Fprintf(b, "- Final Amount: %.2f\n", a.AmountFinal)
	fmt.Fprintf(b, "- Total Amount: %.2f\n", a.AmountTotal)
	fmt.Fprintf(b, "- Base Amount: %.2f\n", a.AmountBase)
	fmt.Fprintf(b, "- Taxes: %.2f\n", a.AmountTaxes)
	fmt.Fprintf(b, "- Tourist Tax: %.2f\n", a.AmountTouristTax)
	fmt.Fprintf(b, "- Offers: %.2f\n", a.AmountOffers)
	fmt.Fprintf(b, "- Discounts: %.2f\n", a.AmountDiscounts)
	fmt.Fprintf(b, "- Extras: %.2f\n", a.AmountExtras)
	fmt.Fprintf(b, "- Deposit: %.2f\n", a.AmountDeposit)
}

func writeBilling(b *strings.Builder, bl *neobookings.BillingDetails) {
	if bl == nil {
		return
	}

	b.WriteString("\nBilling Information:\n")
	fmt.Fprintf(b, "- Name: %s\n", render.OrNA(bl.Name))
	fmt.Fprintf(b, "- CIF: %s\n", render.OrNA(bl.Cif))
	fmt.Fprintf(b, "- Address: %s\n", render.OrNA(bl.Address))
	fmt.Fprintf(b, "- City: %s\n", render.OrNA(bl.City))
	fmt.Fprintf(b, "- Country: %s\n", render.OrNA(bl.Country))
}

func renderDetailsFailure(err error) string {
	return render.Failure("Failed to Retrieve Budget Details", err, []string{
		"Verify the budget IDs exist and are accessible",
		"Check your authentication credentials",
		"Ensure you have permission to view these budgets",
		"Verify the budget IDs format is correct",
	})
}

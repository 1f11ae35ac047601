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

const (
	defaultSearchPageSize = 10
	maxSearchPageSize     = 100
)

const searchSchema = `{
  "type": "object",
  "properties": {
    "budget_ids": {
      "type": "array",
      "description": "List of specific budget IDs to search for",
      "items": {"type": "string", "description": "Budget identifier"},
      "maxItems": 50
    },
    "hotel_ids": {
      "type": "array",
      "description": "List of hotel IDs to filter by",
      "items": {"type": "string", "description": "Hotel identifier"},
      "maxItems": 20
    },
    "date_from": {
      "type": "string",
      "description": "Start date for filtering (YYYY-MM-DD format)",
      "pattern": "^\\d{4}-\\d{2}-\\d{2}$"
    },
    "date_to": {
      "type": "string",
      "description": "End date for filtering (YYYY-MM-DD format)",
      "pattern": "^\\d{4}-\\d{2}-\\d{2}$"
    },
    "date_by": {
      "type": "string",
      "description": "Date field to filter by",
      "enum": ["creationdate", "lastupdate"],
      "default": "creationdate"
    },
    "filter_by": {
      "type": "object",
      "description": "Additional filters for budget search",
      "properties": {
        "name": {"type": "string", "description": "Filter by customer name"},
        "surname": {"type": "string", "description": "Filter by customer surname"},
        "country": {"type": "string", "description": "Filter by customer country"},
        "document": {"type": "string", "description": "Filter by customer document/passport"},
        "address": {"type": "string", "description": "Filter by customer address"},
        "user": {"type": "string", "description": "Filter by user who created the budget"},
        "status": {
          "type": "array",
          "description": "Filter by budget status",
          "items": {"type": "string", "enum": ["deleted", "expired", "booked", "pending"]}
        },
        "client": {
          "type": "object",
          "description": "Client contact information filter",
          "properties": {
            "email": {"type": "string", "description": "Customer email filter"},
            "phone": {
              "type": "object",
              "description": "Phone number filter",
              "properties": {
                "prefix": {"type": "string", "description": "Phone prefix"},
                "number": {"type": "string", "description": "Phone number"}
              },
              "required": ["prefix", "number"],
              "additionalProperties": false
            }
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    },
    "page": {
      "type": "integer",
      "description": "Page number for pagination",
      "minimum": 1,
      "default": 1
    },
    "num_results": {
      "type": "integer",
      "description": "Number of results per page",
      "minimum": 1,
      "maximum": 100,
      "default": 10
    },
    "order_by": {
      "type": "string",
      "description": "Field to order results by",
      "enum": ["id", "hotelid", "name", "price", "creationdate", "lastupdate", "arrivaldate", "departuredate", "status", "user"]
    },
    "order_type": {
      "type": "string",
      "description": "Sort order for results",
      "enum": ["asc", "desc"]
    },
    "language": {
      "type": "string",
      "description": "Language code for the request",
      "enum": ["es", "en", "fr", "de", "it", "pt"],
      "default": "es"
    }
  },
  "required": ["order_by", "order_type"],
  "additionalProperties": false
}`

type searchInput struct {
	BudgetIDs  []any        `json:"budget_ids"`
	HotelIDs   []any        `json:"hotel_ids"`
	DateFrom   string       `json:"date_from"`
	DateTo     string       `json:"date_to"`
	DateBy     string       `json:"date_by"`
	FilterBy   *filterInput `json:"filter_by"`
	Page       int          `json:"page"`
	NumResults int          `json:"num_results"`
	OrderBy    string       `json:"order_by"`
	OrderType  string       `json:"order_type"`
	Language   string       `json:"language"`
}

type filterInput struct {
	Name     string             `json:"name"`
	Surname  string             `json:"surname"`
	Country  string             `json:"country"`
	Document string             `json:"document"`
	Address  string             `json:"address"`
	User     string             `json:"user"`
	Status   []string           `json:"status"`
	Client   *clientFilterInput `json:"client"`
}

type clientFilterInput struct {
	Email string            `json:"email"`
	Phone *phoneFilterInput `json:"phone"`
}

type phoneFilterInput struct {
	Prefix string `json:"prefix"`
	Number string `json:"number"`
}

// searchPayload keeps defaults off the wire: page 1, page size 10, and the
// creationdate date field are the API's own defaults and are never sent.
type searchPayload struct {
	Request    neobookings.Envelope `json:"Request"`
	OrderBy    string               `json:"OrderBy"`
	OrderType  string               `json:"OrderType"`
	BudgetID   []string             `json:"BudgetId,omitempty"`
	HotelID    []string             `json:"HotelId,omitempty"`
	DateFrom   string               `json:"DateFrom,omitempty"`
	DateTo     string               `json:"DateTo,omitempty"`
	DateBy     string               `json:"DateBy,omitempty"`
	Page       int                  `json:"Page,omitempty"`
	NumResults int                  `json:"NumResults,omitempty"`
	FilterBy   *searchFilter        `json:"FilterBy,omitempty"`
}

type searchFilter struct {
	Name     string        `json:"Name,omitempty"`
	Surname  string        `json:"Surname,omitempty"`
	Country  string        `json:"Country,omitempty"`
	Document string        `json:"Document,omitempty"`
	Address  string        `json:"Address,omitempty"`
	User     string        `json:"User,omitempty"`
	Status   []string      `json:"Status,omitempty"`
	Client   *clientFilter `json:"Client,omitempty"`
}

type clientFilter struct {
	Email string       `json:"Email,omitempty"`
	Phone *phoneFilter `json:"Phone,omitempty"`
}

type phoneFilter struct {
	Prefix string `json:"Prefix"`
	Number string `json:"Number"`
}

type searchResult struct {
	Budgets    []neobookings.BudgetBasicDetail
	Pagination render.Pagination
	OrderBy    string
	OrderType  string
	Language   string
	Envelope   neobookings.Envelope
	API        neobookings.ResponseInfo
}

func (b *Budget) searchTool() toolbox.Tool {
	return toolbox.Tool{
		Name: "budget_search_rq",
		Description: "Search for budgets with filters for ids, hotels, date ranges, customer data, " +
			"and status, with pagination and mandatory ordering.",
		InputSchema: json.RawMessage(searchSchema),
		Handler:     b.handleSearch,
	}
}

func (b *Budget) handleSearch(ctx context.Context, input json.RawMessage) (string, error) {
	var in searchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return renderSearchFailure(&neobookings.ValidationError{Message: "invalid arguments: " + err.Error()}), nil
	}

	res, err := b.executeSearch(ctx, &in)
	if err != nil {
		b.log.Error("budget search failed", "error", err)
		return renderSearchFailure(err), nil
	}

	return renderSearchSuccess(res), nil
}

func (b *Budget) executeSearch(ctx context.Context, in *searchInput) (*searchResult, error) {
	if in.OrderBy == "" {
		return nil, &neobookings.ValidationError{Message: "order_by is required"}
	}
	if in.OrderType == "" {
		return nil, &neobookings.ValidationError{Message: "order_type is required"}
	}

	if in.DateFrom != "" && !neobookings.ValidDate(in.DateFrom) {
		return nil, &neobookings.ValidationError{Message: "Invalid date format for date_from. Expected format: YYYY-MM-DD"}
	}
	if in.DateTo != "" && !neobookings.ValidDate(in.DateTo) {
		return nil, &neobookings.ValidationError{Message: "Invalid date format for date_to. Expected format: YYYY-MM-DD"}
	}
	if in.DateFrom != "" && in.DateTo != "" && in.DateFrom > in.DateTo {
		return nil, &neobookings.ValidationError{Message: "date_from cannot be later than date_to"}
	}

	page := in.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, &neobookings.ValidationError{Message: "Page number must be at least 1"}
	}

	numResults := in.NumResults
	if numResults == 0 {
		numResults = defaultSearchPageSize
	}
	if numResults < 1 || numResults > maxSearchPageSize {
		return nil, &neobookings.ValidationError{Message: fmt.Sprintf("Number of results must be between 1 and %d", maxSearchPageSize)}
	}

	dateBy := in.DateBy
	if dateBy == "" {
		dateBy = "creationdate"
	}

	lang, err := language(in.Language)
	if err != nil {
		return nil, err
	}

	budgetIDs := sanitizeOptionalIDs(in.BudgetIDs)
	hotelIDs := sanitizeOptionalIDs(in.HotelIDs)

	b.log.Info("searching budgets",
		"budget_ids_count", len(budgetIDs),
		"hotel_ids_count", len(hotelIDs),
		"page", page,
		"num_results", numResults,
		"order_by", in.OrderBy,
		"order_type", in.OrderType,
		"language", lang)

	env := neobookings.NewEnvelope(lang)

	payload := searchPayload{
		Request:   env,
		OrderBy:   in.OrderBy,
		OrderType: in.OrderType,
		BudgetID:  budgetIDs,
		HotelID:   hotelIDs,
		DateFrom:  in.DateFrom,
		DateTo:    in.DateTo,
		FilterBy:  buildSearchFilter(in.FilterBy),
	}
	if dateBy != "creationdate" {
		payload.DateBy = dateBy
	}
	if page != 1 {
		payload.Page = page
	}
	if numResults != defaultSearchPageSize {
		payload.NumResults = numResults
	}

	client := b.newClient()
	if _, err := client.Authenticate(ctx, env); err != nil {
		return nil, err
	}

	var out neobookings.BudgetSearchResponse
	if err := client.Post(ctx, "/BudgetSearchRQ", payload, &out, true); err != nil {
		return nil, err
	}

	currentPage := out.CurrentPage
	if currentPage == 0 {
		currentPage = page
	}

	b.log.Info("budget search completed",
		"found_budgets", len(out.BudgetBasicDetail),
		"total_records", out.TotalRecords,
		"current_page", currentPage,
		"total_pages", out.TotalPages,
		"request_id", env.RequestID)

	return &searchResult{
		Budgets: out.BudgetBasicDetail,
		Pagination: render.Pagination{
			CurrentPage:  currentPage,
			TotalPages:   out.TotalPages,
			TotalRecords: out.TotalRecords,
			PageSize:     numResults,
		},
		OrderBy:   in.OrderBy,
		OrderType: in.OrderType,
		Language:  lang,
		Envelope:  env,
		API:       out.Response,
	}, nil
}

// buildSearchFilter maps the snake_case filter arguments onto the
// capitalized field names the API expects. A phone filter is only forwarded
// when both prefix and number are present.
func buildSearchFilter(in *filterInput) *searchFilter {
	if in == nil {
		return nil
	}

	f := &searchFilter{
		Name:     neobookings.Sanitize(in.Name),
		Surname:  neobookings.Sanitize(in.Surname),
		Country:  neobookings.Sanitize(in.Country),
		Document: neobookings.Sanitize(in.Document),
		Address:  neobookings.Sanitize(in.Address),
		User:     neobookings.Sanitize(in.User),
		Status:   in.Status,
	}

	if c := in.Client; c != nil {
		cf := &clientFilter{Email: neobookings.Sanitize(c.Email)}
		if p := c.Phone; p != nil && p.Prefix != "" && p.Number != "" {
			cf.Phone = &phoneFilter{
				Prefix: neobookings.Sanitize(p.Prefix),
				Number: neobookings.Sanitize(p.Number),
			}
		}
		if cf.Email != "" || cf.Phone != nil {
			f.Client = cf
		}
	}

	if f.Name == "" && f.Surname == "" && f.Country == "" && f.Document == "" &&
		f.Address == "" && f.User == "" && len(f.Status) == 0 && f.Client == nil {
		return nil
	}
	return f
}

func renderSearchSuccess(res *searchResult) string {
	var b strings.Builder

	b.WriteString("Budget Search Completed\n\n")
	fmt.Fprintf(&b, "Found %d budget(s) on page %d of %d\n\n",
		len(res.Budgets), res.Pagination.CurrentPage, res.Pagination.TotalPages)

	b.WriteString("Search Criteria:\n")
	fmt.Fprintf(&b, "- Order By: %s (%s)\n", res.OrderBy, res.OrderType)
	fmt.Fprintf(&b, "- Language: %s\n", strings.ToUpper(res.Language))

	for i, d := range res.Budgets {
		fmt.Fprintf(&b, "\n%s\n", render.Rule())
		fmt.Fprintf(&b, "Budget #%d: %s\n", i+1, render.OrNA(d.BudgetID))
		fmt.Fprintf(&b, "%s\n\n", render.Rule())

		fmt.Fprintf(&b, "- Hotel ID: %s\n", render.OrNA(d.HotelID))
		fmt.Fprintf(&b, "- Origin: %s\n", render.OrNA(d.Origin))
		fmt.Fprintf(&b, "- Rate: %s\n", render.OrNA(d.RateName))
		fmt.Fprintf(&b, "- Board: %s\n", render.OrNA(d.BoardName))
		fmt.Fprintf(&b, "- Status: %s\n", render.OrNA(d.Status))
		fmt.Fprintf(&b, "- Arrival: %s\n", render.OrNA(d.ArrivalDate))
		fmt.Fprintf(&b, "- Departure: %s\n", render.OrNA(d.DepartureDate))
		fmt.Fprintf(&b, "- Created: %s by %s\n", render.OrNA(d.CreationDate), render.OrNA(d.CreationUser))
		fmt.Fprintf(&b, "- Sent: %s (%s)\n", render.YesNo(d.IsSent), render.OrNA(d.SentDate))
		fmt.Fprintf(&b, "- Copied: %s (%s)\n", render.YesNo(d.IsCopied), render.OrNA(d.CopiedDate))

		if c := d.Customer; c != nil {
			b.WriteString("\nCustomer:\n")
			fmt.Fprintf(&b, "- Name: %s %s\n", c.Name, c.Surname)
			fmt.Fprintf(&b, "- Email: %s\n", render.OrNA(c.Email))
			fmt.Fprintf(&b, "- Phone: %s\n", render.OrNA(c.Phone))
			fmt.Fprintf(&b, "- Country: %s\n", render.OrNA(c.Country))
		}

		if a := d.Amounts; a != nil {
			b.WriteString("\nAmounts:\n")
			fmt.Fprintf(&b, "- Currency: %s\n", render.OrNA(a.Currency))
			fmt.Fprintf(&b, "- Final: %.2f\n", a.AmountFinal)
			fmt.Fprintf(&b, "- Total: %.2f\n", a.AmountTotal)
			fmt.Fprintf(&b, "- Base: %.2f\n", a.AmountBase)
		}
	}

	b.WriteString("\n" + res.Pagination.Block())

	b.WriteString("\nRequest Details:\n")
	fmt.Fprintf(&b, "- Request ID: %s\n", res.Envelope.RequestID)
	fmt.Fprintf(&b, "- Timestamp: %s\n", res.Envelope.Timestamp)
	fmt.Fprintf(&b, "- Response Time: %dms\n", res.API.TimeResponse)

	return b.String()
}

func renderSearchFailure(err error) string {
	return render.Failure("Budget Search Failed", err, []string{
		"Verify the search criteria are valid",
		"Check the date formats are YYYY-MM-DD",
		"Ensure order_by and order_type are provided",
		"Verify your authentication credentials",
	})
}

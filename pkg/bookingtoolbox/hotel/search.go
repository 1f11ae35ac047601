package hotel

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
	defaultSearchPageSize = 25
	maxSearchPageSize     = 100
)

const searchSchema = `{
  "type": "object",
  "properties": {
    "hotel_names": {
      "type": "array",
      "description": "List of hotel names to search for (partial matches allowed)",
      "items": {"type": "string", "description": "Hotel name or partial name"},
      "maxItems": 10
    },
    "countries": {
      "type": "array",
      "description": "List of country codes (ISO 3166-1) to filter by",
      "items": {"type": "string", "description": "Country code (e.g., 'ES' for Spain, 'FR' for France)"},
      "maxItems": 10
    },
    "zones": {
      "type": "array",
      "description": "List of zone codes defined by Neobookings to filter by",
      "items": {"type": "string", "description": "Zone code (e.g., 'MAD' for Madrid, 'BCN' for Barcelona)"},
      "maxItems": 20
    },
    "hotel_categories": {
      "type": "array",
      "description": "List of minimum hotel category levels to filter by",
      "items": {"type": "string", "description": "Hotel category (e.g., '3', '4', '5')"},
      "maxItems": 5
    },
    "page": {
      "type": "integer",
      "description": "Page number for pagination (starts at 1)",
      "minimum": 1,
      "maximum": 1000,
      "default": 1
    },
    "num_results": {
      "type": "integer",
      "description": "Number of results per page",
      "minimum": 1,
      "maximum": 100,
      "default": 25
    },
    "language": {
      "type": "string",
      "description": "Language code for the request",
      "enum": ["es", "en", "fr", "de", "it", "pt"],
      "default": "es"
    }
  },
  "additionalProperties": false
}`

type searchInput struct {
	HotelNames      []any  `json:"hotel_names"`
	Countries       []any  `json:"countries"`
	Zones           []any  `json:"zones"`
	HotelCategories []any  `json:"hotel_categories"`
	Page            int    `json:"page"`
	NumResults      int    `json:"num_results"`
	Language        string `json:"language"`
}

// searchPayload keeps defaults off the wire: the first page and the default
// page size of 25 are never sent.
type searchPayload struct {
	Request       neobookings.Envelope `json:"Request"`
	HotelName     []string             `json:"HotelName,omitempty"`
	Country       []string             `json:"Country,omitempty"`
	Zone          []string             `json:"Zone,omitempty"`
	HotelCategory []string             `json:"HotelCategory,omitempty"`
	Page          int                  `json:"Page,omitempty"`
	NumResults    int                  `json:"NumResults,omitempty"`
}

type searchResult struct {
	Hotels     []neobookings.HotelBasicDetail
	Pagination render.Pagination
	Criteria   searchCriteria
	Language   string
	Envelope   neobookings.Envelope
	API        neobookings.ResponseInfo
}

type searchCriteria struct {
	HotelNames []string
	Countries  []string
	Zones      []string
	Categories []string
}

func (h *Hotel) searchTool() toolbox.Tool {
	return toolbox.Tool{
		Name: "hotel_search_rq",
		Description: "Search for hotels by name, country, zone, and category. Returns matching hotels " +
			"with location, amenities, guest types, and media, with pagination.",
		InputSchema: json.RawMessage(searchSchema),
		Handler:     h.handleSearch,
	}
}

func (h *Hotel) handleSearch(ctx context.Context, input json.RawMessage) (string, error) {
	var in searchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return renderSearchFailure(&neobookings.ValidationError{Message: "invalid arguments: " + err.Error()}), nil
	}

	res, err := h.executeSearch(ctx, &in)
	if err != nil {
		h.log.Error("hotel search failed", "error", err)
		return renderSearchFailure(err), nil
	}

	return renderSearchSuccess(res), nil
}

func (h *Hotel) executeSearch(ctx context.Context, in *searchInput) (*searchResult, error) {
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

	names, err := sanitizeTerms(in.HotelNames, "Invalid hotel name: %v")
	if err != nil {
		return nil, err
	}
	countries, err := sanitizeCountries(in.Countries)
	if err != nil {
		return nil, err
	}
	zones, err := sanitizeTerms(in.Zones, "Invalid zone code: %v")
	if err != nil {
		return nil, err
	}
	categories, err := sanitizeTerms(in.HotelCategories, "Invalid hotel category: %v")
	if err != nil {
		return nil, err
	}

	lang, err := language(in.Language)
	if err != nil {
		return nil, err
	}

	h.log.Info("performing hotel search",
		"hotel_names_count", len(names),
		"countries_count", len(countries),
		"zones_count", len(zones),
		"categories_count", len(categories),
		"page", page,
		"num_results", numResults,
		"language", lang)

	env := neobookings.NewEnvelope(lang)

	payload := searchPayload{
		Request:       env,
		HotelName:     names,
		Country:       countries,
		Zone:          zones,
		HotelCategory: categories,
	}
	if page > 1 {
		payload.Page = page
	}
	if numResults != defaultSearchPageSize {
		payload.NumResults = numResults
	}

	client := h.newClient()
	if _, err := client.Authenticate(ctx, env); err != nil {
		return nil, err
	}

	var out neobookings.HotelSearchResponse
	if err := client.Post(ctx, "/HotelSearchRQ", payload, &out, true); err != nil {
		return nil, err
	}

	currentPage := out.CurrentPage
	if currentPage == 0 {
		currentPage = 1
	}
	totalPages := out.TotalPages
	if totalPages == 0 {
		totalPages = 1
	}

	h.log.Info("hotel search completed",
		"found_hotels", len(out.HotelBasicDetail),
		"total_records", out.TotalRecords,
		"current_page", currentPage,
		"total_pages", totalPages,
		"request_id", env.RequestID)

	return &searchResult{
		Hotels: out.HotelBasicDetail,
		Pagination: render.Pagination{
			CurrentPage:  currentPage,
			TotalPages:   totalPages,
			TotalRecords: out.TotalRecords,
			PageSize:     numResults,
		},
		Criteria: searchCriteria{
			HotelNames: names,
			Countries:  countries,
			Zones:      zones,
			Categories: categories,
		},
		Language: lang,
		Envelope: env,
		API:      out.Response,
	}, nil
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

// sanitizeTerms validates that every element is a non-empty string, using
// format to report the offending element.
func sanitizeTerms(raw []any, format string) ([]string, error) {
	terms := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, &neobookings.ValidationError{Message: fmt.Sprintf(format, v)}
		}
		terms = append(terms, neobookings.Sanitize(s))
	}
	if len(terms) == 0 {
		return nil, nil
	}
	return terms, nil
}

// sanitizeCountries uppercases country codes and enforces the two-letter
// ISO 3166-1 form.
func sanitizeCountries(raw []any) ([]string, error) {
	codes := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, &neobookings.ValidationError{Message: fmt.Sprintf("Invalid country code: %v", v)}
		}
		code := strings.ToUpper(strings.TrimSpace(s))
		if len(code) != 2 {
			return nil, &neobookings.ValidationError{Message: fmt.Sprintf("Country code must be 2 characters: %s", s)}
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, nil
	}
	return codes, nil
}

func renderSearchSuccess(res *searchResult) string {
	var b strings.Builder

	b.WriteString("Hotel Search Completed\n\n")
	fmt.Fprintf(&b, "Found %d hotel(s) on page %d of %d\n\n",
		len(res.Hotels), res.Pagination.CurrentPage, res.Pagination.TotalPages)

	b.WriteString("Search Criteria:\n")
	fmt.Fprintf(&b, "- Hotel Names: %s\n", orAny(res.Criteria.HotelNames))
	fmt.Fprintf(&b, "- Countries: %s\n", orAny(res.Criteria.Countries))
	fmt.Fprintf(&b, "- Zones: %s\n", orAny(res.Criteria.Zones))
	fmt.Fprintf(&b, "- Categories: %s\n", orAny(res.Criteria.Categories))
	fmt.Fprintf(&b, "- Language: %s\n", strings.ToUpper(res.Language))

	for i, ht := range res.Hotels {
		fmt.Fprintf(&b, "\n%s\n", render.Rule())
		fmt.Fprintf(&b, "Hotel #%d: %s\n", i+1, render.OrNA(ht.HotelName))
		fmt.Fprintf(&b, "%s\n\n", render.Rule())

		b.WriteString("Basic Information:\n")
		fmt.Fprintf(&b, "- Hotel ID: %s\n", render.OrNA(ht.HotelID))
		fmt.Fprintf(&b, "- Currency: %s\n", render.OrNA(ht.Currency))
		fmt.Fprintf(&b, "- Mode: %s\n", render.OrNA(ht.HotelMode))
		fmt.Fprintf(&b, "- View: %s\n", render.OrNA(ht.HotelView))
		fmt.Fprintf(&b, "- Time Zone: %s\n", render.OrNA(ht.TimeZone))
		fmt.Fprintf(&b, "- Rewards: %s\n", render.YesNo(ht.Rewards))
		fmt.Fprintf(&b, "- Opening Date: %s\n", render.OrNA(ht.OpeningDate))
		fmt.Fprintf(&b, "- First Day With Price: %s\n", render.OrNA(ht.FirstDayWithPrice))

		if len(ht.Categories) > 0 {
			b.WriteString("\nCategories:\n")
			for _, c := range ht.Categories {
				fmt.Fprintf(&b, "- %s (%s)\n", c.Name, c.Code)
			}
		}

		if len(ht.HotelTypes) > 0 {
			b.WriteString("\nHotel Types:\n")
			for _, t := range ht.HotelTypes {
				fmt.Fprintf(&b, "- %s (%s)\n", t.Name, t.Code)
			}
		}

		writeLocation(&b, ht.Location)

		if len(ht.GuestTypes) > 0 {
			b.WriteString("\nGuest Types:\n")
			for _, g := range ht.GuestTypes {
				fmt.Fprintf(&b, "- %s: ages %d-%d\n", g.GuestType, g.MinAge, g.MaxAge)
			}
		}

		if len(ht.Amenities) > 0 {
			b.WriteString("\nAmenities:\n")
			for _, a := range ht.Amenities {
				fmt.Fprintf(&b, "- %s (%s)\n", a.Name, a.Code)
			}
		}

		if len(ht.Media) > 0 {
			fmt.Fprintf(&b, "\nMedia: %d item(s)\n", len(ht.Media))
			for _, m := range ht.Media {
				if m.Main {
					fmt.Fprintf(&b, "- Main image: %s\n", m.URL)
					break
				}
			}
		}
	}

	b.WriteString("\n" + res.Pagination.Block())

	b.WriteString("\nRequest Details:\n")
	fmt.Fprintf(&b, "- Request ID: %s\n", res.Envelope.RequestID)
	fmt.Fprintf(&b, "- Timestamp: %s\n", res.Envelope.Timestamp)
	fmt.Fprintf(&b, "- Response Time: %dms\n", res.API.TimeResponse)

	return b.String()
}

func writeLocation(b *strings.Builder, loc *neobookings.HotelLocation) {
	if loc == nil {
		return
	}

	b.WriteString("\nLocation:\n")
	fmt.Fprintf(b, "- Address: %s\n", render.OrNA(loc.Address))
	fmt.Fprintf(b, "- City: %s\n", render.OrNA(loc.City))
	fmt.Fprintf(b, "- Postal Code: %s\n", render.OrNA(loc.PostalCode))
	if loc.Latitude != 0 || loc.Longitude != 0 {
		fmt.Fprintf(b, "- Coordinates: %.5f, %.5f\n", loc.Latitude, loc.Longitude)
	}
	if len(loc.Zones) > 0 {
		zones := make([]string, 0, len(loc.Zones))
		for _, z := range loc.Zones {
			zones = append(zones, fmt.Sprintf("%s (%s)", z.Name, z.Code))
		}
		fmt.Fprintf(b, "- Zones: %s\n", strings.Join(zones, ", "))
	}
	if loc.State != nil {
		fmt.Fprintf(b, "- State: %s (%s)\n", loc.State.Name, loc.State.Code)
	}
	if loc.Country != nil {
		fmt.Fprintf(b, "- Country: %s (%s)\n", loc.Country.Name, loc.Country.Code)
	}
}

func orAny(terms []string) string {
	if len(terms) == 0 {
		return "Any"
	}
	return strings.Join(terms, ", ")
}

func renderSearchFailure(err error) string {
	return render.Failure("Hotel Search Failed", err, []string{
		"Verify the search criteria are valid",
		"Check that country codes are 2-character ISO codes",
		"Ensure pagination values are within bounds",
		"Verify your authentication credentials",
	})
}

package hotel

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
)

const searchBody = `{
	"HotelBasicDetail": [{
		"HotelId": "HTL9",
		"HotelName": "Palace Hotel",
		"Currency": "EUR",
		"HotelMode": "open",
		"TimeZone": "Europe/Madrid",
		"Rewards": true,
		"OpeningDate": "2026-03-01",
		"HotelGuestType": [{"GuestType": "Adult", "MinAge": 18, "MaxAge": 99}],
		"HotelType": [{"Code": "H", "Name": "Hotel"}],
		"HotelCategory": [{"Code": "4", "Name": "4 Stars"}],
		"HotelLocation": {
			"Address": "Gran Via 1",
			"City": "Madrid",
			"PostalCode": "28013",
			"Latitude": 40.42,
			"Longitude": -3.7,
			"Zone": [{"Code": "MAD", "Name": "Madrid Centro"}],
			"Country": {"Code": "ES", "Name": "Spain"}
		},
		"HotelAmenity": [{"Code": "WIFI", "Name": "Free WiFi", "Filterable": true}],
		"Media": [{"MediaType": "image", "Url": "https://img.example.com/1.jpg", "Main": true, "Order": 1}]
	}],
	"CurrentPage": 1,
	"TotalPages": 2,
	"TotalRecords": 30,
	"Response": {"StatusCode": 200, "TimeResponse": 55}
}`

func newUpstream(t *testing.T, token, body string, domainCalls *atomic.Int64) neobookings.Config {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == neobookings.AuthPath {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"Token":    token,
				"Response": map[string]any{"StatusCode": 200},
			})
			return
		}

		if domainCalls != nil {
			domainCalls.Add(1)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return neobookings.Config{
		ClientCode: "neo",
		SystemCode: "XML",
		Username:   "user",
		Password:   "pass",
		BaseURL:    srv.URL,
	}
}

func newCapturingUpstream(t *testing.T, body string, captured *map[string]any) neobookings.Config {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == neobookings.AuthPath {
			_ = json.NewEncoder(w).Encode(map[string]any{"Token": "tok"})
			return
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return neobookings.Config{Username: "user", Password: "pass", BaseURL: srv.URL}
}

func callTool(t *testing.T, cfg neobookings.Config, args string) string {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tb := New(cfg, log).Tools()

	out, err := tb.Call(context.Background(), "hotel_search_rq", json.RawMessage(args))
	require.NoError(t, err)

	return out
}

func TestToolsRegistersSearch(t *testing.T) {
	tb := New(neobookings.Config{}, nil).Tools()

	_, ok := tb.Get("hotel_search_rq")
	assert.True(t, ok)
	assert.Len(t, tb.Tools(), 1)
}

func TestSearchSuccess(t *testing.T) {
	cfg := newUpstream(t, "tok", searchBody, nil)

	out := callTool(t, cfg, `{"countries":["es"]}`)

	assert.Contains(t, out, "Hotel Search Completed")
	assert.Contains(t, out, "Found 1 hotel(s) on page 1 of 2")
	assert.Contains(t, out, "Countries: ES")

	assert.Contains(t, out, "Hotel #1: Palace Hotel")
	assert.Contains(t, out, "Hotel ID: HTL9")
	assert.Contains(t, out, "Rewards: Yes")
	assert.Contains(t, out, "4 Stars (4)")
	assert.Contains(t, out, "Address: Gran Via 1")
	assert.Contains(t, out, "Country: Spain (ES)")
	assert.Contains(t, out, "Zones: Madrid Centro (MAD)")
	assert.Contains(t, out, "Adult: ages 18-99")
	assert.Contains(t, out, "Free WiFi (WIFI)")
	assert.Contains(t, out, "Main image: https://img.example.com/1.jpg")

	assert.Contains(t, out, "Current Page: 1 of 2")
	assert.Contains(t, out, "Total Records: 30")
	assert.Contains(t, out, "Results Per Page: 25")
	assert.Contains(t, out, "Has Next Page: Yes")
	assert.Contains(t, out, "Response Time: 55ms")
}

func TestSearchNoFilters(t *testing.T) {
	body := `{"HotelBasicDetail":[],"TotalRecords":0,"Response":{"StatusCode":200}}`
	cfg := newUpstream(t, "tok", body, nil)

	out := callTool(t, cfg, `{}`)

	assert.Contains(t, out, "Found 0 hotel(s) on page 1 of 1")
	assert.Contains(t, out, "Hotel Names: Any")
	assert.Contains(t, out, "Countries: Any")
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{"long country code", `{"countries":["Spain"]}`, "Country code must be 2 characters: Spain"},
		{"non-string country", `{"countries":[42]}`, "Invalid country code: 42"},
		{"non-string hotel name", `{"hotel_names":[42]}`, "Invalid hotel name: 42"},
		{"empty zone", `{"zones":["  "]}`, "Invalid zone code:"},
		{"non-string category", `{"hotel_categories":[4]}`, "Invalid hotel category: 4"},
		{"page below one", `{"page":-2}`, "Page number must be at least 1"},
		{"num_results too large", `{"num_results":500}`, "Number of results must be between 1 and 100"},
		{"invalid language", `{"language":"zz"}`, "Invalid language code: zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newUpstream(t, "tok", searchBody, nil)

			out := callTool(t, cfg, tt.args)

			assert.Contains(t, out, "Hotel Search Failed")
			assert.Contains(t, out, "Validation error: "+tt.want)
			assert.Contains(t, out, "Troubleshooting:")
		})
	}
}

func TestSearchPayloadOmitsDefaults(t *testing.T) {
	var captured map[string]any
	cfg := newCapturingUpstream(t, searchBody, &captured)

	callTool(t, cfg, `{"page":1,"num_results":25}`)

	assert.NotContains(t, captured, "Page")
	assert.NotContains(t, captured, "NumResults")
	assert.NotContains(t, captured, "HotelName")
	assert.NotContains(t, captured, "Country")
}

func TestSearchPayloadUppercasesCountries(t *testing.T) {
	var captured map[string]any
	cfg := newCapturingUpstream(t, searchBody, &captured)

	callTool(t, cfg, `{"countries":["es","fr"],"zones":[" MAD "],"page":2,"num_results":50}`)

	assert.Equal(t, []any{"ES", "FR"}, captured["Country"])
	assert.Equal(t, []any{"MAD"}, captured["Zone"])
	assert.Equal(t, float64(2), captured["Page"])
	assert.Equal(t, float64(50), captured["NumResults"])
}

func TestSearchAuthFailureSkipsDomainCall(t *testing.T) {
	var domainCalls atomic.Int64
	cfg := newUpstream(t, "", searchBody, &domainCalls)

	out := callTool(t, cfg, `{}`)

	assert.Contains(t, out, "Hotel Search Failed")
	assert.Contains(t, out, "Authentication failed: no authentication token received from API")
	assert.Equal(t, int64(0), domainCalls.Load())
}

package budget

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

const okResponse = `{"Response":{"StatusCode":200,"TimeResponse":42}}`

// newUpstream starts a mock API that answers the auth path with token and
// every other path with body. Domain calls (everything but auth) are counted.
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

// newCapturingUpstream additionally decodes the domain request body into a
// generic map for payload-shape assertions.
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

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// callTool runs one budget tool through the ToolBox, asserting the handler
// itself never errors.
func callTool(t *testing.T, cfg neobookings.Config, name, args string) string {
	t.Helper()

	tb := New(cfg, testLogger()).Tools()
	out, err := tb.Call(context.Background(), name, json.RawMessage(args))
	require.NoError(t, err)

	return out
}

func TestToolsRegistersAll(t *testing.T) {
	tb := New(neobookings.Config{}, nil).Tools()

	names := make([]string, 0, len(tb.Tools()))
	for _, tool := range tb.Tools() {
		names = append(names, tool.Name)
	}

	assert.ElementsMatch(t, []string{
		"budget_delete_rq",
		"budget_details_rq",
		"budget_properties_update_rq",
		"budget_search_rq",
	}, names)
}

func TestLanguageDefaults(t *testing.T) {
	lang, err := language("")
	require.NoError(t, err)
	assert.Equal(t, neobookings.DefaultLanguage, lang)
}

func TestLanguageInvalid(t *testing.T) {
	_, err := language("xx")
	require.Error(t, err)

	var validationErr *neobookings.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "Invalid language code: xx")
}

func TestSanitizeBudgetIDs(t *testing.T) {
	ids, err := sanitizeBudgetIDs([]any{" BDG1 ", "BDG2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BDG1", "BDG2"}, ids)
}

func TestSanitizeBudgetIDsRejectsNonStrings(t *testing.T) {
	tests := []struct {
		name string
		ids  []any
		want string
	}{
		{"number", []any{"BDG1", float64(123)}, "Invalid budget ID: 123"},
		{"null", []any{nil}, "Invalid budget ID: <nil>"},
		{"empty string", []any{"  "}, "Invalid budget ID:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sanitizeBudgetIDs(tt.ids)
			require.Error(t, err)

			var validationErr *neobookings.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Message, tt.want)
		})
	}
}

func TestSanitizeOptionalIDsSkipsInvalid(t *testing.T) {
	ids := sanitizeOptionalIDs([]any{"HTL1", float64(7), "", " HTL2 "})
	assert.Equal(t, []string{"HTL1", "HTL2"}, ids)
}

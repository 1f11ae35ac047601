package budget

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

const detailsBody = `{
	"BudgetDetails": [{
		"Id": "BDG1",
		"HotelId": "HTL9",
		"Status": "pending",
		"BudgetLang": "es",
		"CreationUser": "agent1",
		"CreationDate": "2026-01-10T09:00:00",
		"IsSent": true,
		"sentDate": "2026-01-11T10:00:00",
		"CustomerDetail": {
			"Name": "Ana",
			"Surname": "Garcia",
			"Email": "ana@example.com",
			"AdsAuthorization": true
		},
		"BasketDetail": {
			"Origin": "web",
			"AllowDeposit": true,
			"AmountsDetail": {"Currency": "EUR", "AmountFinal": 150.5, "AmountTotal": 160.0}
		},
		"BillingDetails": {"Name": "Ana Garcia SL", "Cif": "B12345678"}
	}],
	"Response": {"StatusCode": 200, "TimeResponse": 17}
}`

func TestDetailsSuccess(t *testing.T) {
	cfg := newUpstream(t, "tok", detailsBody, nil)

	out := callTool(t, cfg, "budget_details_rq", `{"budget_ids":["BDG1","BDG2"]}`)

	assert.Contains(t, out, "Budget Details Retrieved")
	assert.Contains(t, out, "Requested: 2 budget(s)")
	assert.Contains(t, out, "Found: 1 budget(s)")
	assert.Contains(t, out, "Budget #1: BDG1")
	assert.Contains(t, out, "Hotel ID: HTL9")
	assert.Contains(t, out, "Sent: Yes (2026-01-11T10:00:00)")

	assert.Contains(t, out, "Customer Information:")
	assert.Contains(t, out, "Name: Ana Garcia")
	assert.Contains(t, out, "Ads Authorization: Yes")
	assert.NotContains(t, out, "Loyalty Authorization")

	assert.Contains(t, out, "Basket Information:")
	assert.Contains(t, out, "Allow Deposit: Yes")
	assert.Contains(t, out, "Pricing Details:")
	assert.Contains(t, out, "Final Amount: 150.50")

	assert.Contains(t, out, "Billing Information:")
	assert.Contains(t, out, "CIF: B12345678")
	assert.Contains(t, out, "Response Time: 17ms")
}

func TestDetailsOmitsAbsentSections(t *testing.T) {
	body := `{"BudgetDetails":[{"Id":"BDG2","Status":"expired"}],"Response":{"StatusCode":200}}`
	cfg := newUpstream(t, "tok", body, nil)

	out := callTool(t, cfg, "budget_details_rq", `{"budget_ids":["BDG2"]}`)

	assert.Contains(t, out, "Budget #1: BDG2")
	assert.NotContains(t, out, "Customer Information:")
	assert.NotContains(t, out, "Basket Information:")
	assert.NotContains(t, out, "Billing Information:")
}

func TestDetailsValidation(t *testing.T) {
	tooMany := make([]string, maxDetailIDs+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf(`"BDG%d"`, i)
	}

	tests := []struct {
		name string
		args string
		want string
	}{
		{"empty ids", `{"budget_ids":[]}`, "At least one budget ID is required"},
		{"too many ids", `{"budget_ids":[` + strings.Join(tooMany, ",") + `]}`, "At most 20 budget IDs can be requested per call"},
		{"non-string id", `{"budget_ids":[true]}`, "Invalid budget ID: true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newUpstream(t, "tok", detailsBody, nil)

			out := callTool(t, cfg, "budget_details_rq", tt.args)

			assert.Contains(t, out, "Failed to Retrieve Budget Details")
			assert.Contains(t, out, "Validation error: "+tt.want)
		})
	}
}

func TestDetailsAuthFailureSkipsDomainCall(t *testing.T) {
	var domainCalls atomic.Int64
	cfg := newUpstream(t, "", detailsBody, &domainCalls)

	out := callTool(t, cfg, "budget_details_rq", `{"budget_ids":["BDG1"]}`)

	assert.Contains(t, out, "Failed to Retrieve Budget Details")
	assert.Contains(t, out, "Authentication failed:")
	assert.Equal(t, int64(0), domainCalls.Load())
}

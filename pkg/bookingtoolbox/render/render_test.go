package render

import (
	"errors"
	"testing"

	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"validation error",
			&neobookings.ValidationError{Message: "order_by is required"},
			"Validation error: order_by is required",
		},
		{
			"auth error",
			&neobookings.AuthError{Message: "no authentication token received from API"},
			"Authentication failed: no authentication token received from API",
		},
		{
			"api error",
			&neobookings.APIError{Message: "API returned status code 500"},
			"API error: API returned status code 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassifyUnexpected(t *testing.T) {
	got := Classify(errors.New("boom"))
	assert.Contains(t, got, "Unexpected error: boom")
	assert.Contains(t, got, "errorString")
}

func TestFailure(t *testing.T) {
	err := &neobookings.ValidationError{Message: "budget_id is required"}
	got := Failure("Budget Deletion Failed", err, []string{"Verify the budget IDs exist and are valid"})

	assert.Contains(t, got, "Budget Deletion Failed")
	assert.Contains(t, got, "Validation error: budget_id is required")
	assert.Contains(t, got, "Troubleshooting:")
	assert.Contains(t, got, "- Verify the budget IDs exist and are valid")
	assert.Contains(t, got, "- Contact support if the issue persists")
}

func TestFailureIdempotent(t *testing.T) {
	err := &neobookings.APIError{Message: "down"}
	a := Failure("Search Failed", err, []string{"Try again"})
	b := Failure("Search Failed", err, []string{"Try again"})
	assert.Equal(t, a, b)
}

func TestPagination(t *testing.T) {
	p := Pagination{CurrentPage: 1, TotalPages: 3, TotalRecords: 25, PageSize: 10}

	assert.True(t, p.HasNextPage())
	assert.False(t, p.HasPreviousPage())

	block := p.Block()
	assert.Contains(t, block, "Current Page: 1 of 3")
	assert.Contains(t, block, "Total Records: 25")
	assert.Contains(t, block, "Has Next Page: Yes")
	assert.Contains(t, block, "Has Previous Page: No")
}

func TestPaginationLastPage(t *testing.T) {
	p := Pagination{CurrentPage: 3, TotalPages: 3, TotalRecords: 25, PageSize: 10}
	assert.False(t, p.HasNextPage())
	assert.True(t, p.HasPreviousPage())
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", OrNA(""))
	assert.Equal(t, "BDG123", OrNA("BDG123"))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true))
	assert.Equal(t, "No", YesNo(false))
}

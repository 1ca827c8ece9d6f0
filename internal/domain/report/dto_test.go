package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

func TestMonthlyReportRequestValidate(t *testing.T) {
	valid := MonthlyReportRequest{EmployeeID: "1", Month: 5, Year: 2025}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		req   MonthlyReportRequest
		field string
	}{
		{"missing employee", MonthlyReportRequest{Month: 5, Year: 2025}, "employee_id"},
		{"month too low", MonthlyReportRequest{EmployeeID: "1", Month: 0, Year: 2025}, "month"},
		{"month too high", MonthlyReportRequest{EmployeeID: "1", Month: 13, Year: 2025}, "month"},
		{"year not four digits", MonthlyReportRequest{EmployeeID: "1", Month: 5, Year: 25}, "year"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestPayrollOverviewRequestValidate(t *testing.T) {
	valid := PayrollOverviewRequest{Month: 12, Year: 2025}
	assert.NoError(t, valid.Validate())

	invalid := PayrollOverviewRequest{Month: 0, Year: 0}
	err := invalid.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

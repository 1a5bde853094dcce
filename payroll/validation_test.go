package payroll

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/payroll-go/apperror"
)

func decodeCreate(t *testing.T, body string) CreateRequest {
	t.Helper()
	var req CreateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func decodeUpdate(t *testing.T, body string) UpdateRequest {
	t.Helper()
	var req UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func assertTaxonomy(t *testing.T, err error, want apperror.ErrorType) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok, "expected *AppError, got %T: %v", err, err)
	assert.Equal(t, want, appErr.Type, "unexpected error: %v", err)
}

func TestValidator_Create(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	fields, err := v.Create(decodeCreate(t, `{"employee_name":"  Juan Pérez ","salary":15000,"pay_date":"2024-01-15"}`))
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", fields.EmployeeName)
	assert.Equal(t, Amount(1_500_000), fields.Salary)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), fields.PayDate)

	fields, err = v.Create(decodeCreate(t, `{"employee_name":"Ana","salary":"2500.75","pay_date":"2024-02-29"}`))
	require.NoError(t, err)
	assert.Equal(t, Amount(250_075), fields.Salary)

	// The column limit counts characters, not bytes.
	longest := strings.Repeat("é", 255)
	fields, err = v.Create(decodeCreate(t, `{"employee_name":"`+longest+`","salary":1,"pay_date":"2024-01-15"}`))
	require.NoError(t, err)
	assert.Equal(t, longest, fields.EmployeeName)
}

func TestValidator_Create_Failures(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	tests := []struct {
		name string
		body string
		want apperror.ErrorType
	}{
		{"empty body", `{}`, apperror.MissingFieldsError},
		{"missing name", `{"salary":100,"pay_date":"2024-01-15"}`, apperror.MissingFieldsError},
		{"blank name", `{"employee_name":"   ","salary":100,"pay_date":"2024-01-15"}`, apperror.MissingFieldsError},
		{"missing salary", `{"employee_name":"Ana","pay_date":"2024-01-15"}`, apperror.MissingFieldsError},
		{"null salary", `{"employee_name":"Ana","salary":null,"pay_date":"2024-01-15"}`, apperror.MissingFieldsError},
		{"empty pay date", `{"employee_name":"Ana","salary":100,"pay_date":""}`, apperror.MissingFieldsError},
		{"negative salary", `{"employee_name":"Ana","salary":-1000,"pay_date":"2024-01-15"}`, apperror.InvalidSalaryError},
		{"zero salary", `{"employee_name":"Ana","salary":0,"pay_date":"2024-01-15"}`, apperror.InvalidSalaryError},
		{"text salary", `{"employee_name":"Ana","salary":"lots","pay_date":"2024-01-15"}`, apperror.InvalidSalaryError},
		{"boolean salary", `{"employee_name":"Ana","salary":true,"pay_date":"2024-01-15"}`, apperror.InvalidSalaryError},
		{"salary too large", `{"employee_name":"Ana","salary":100000000,"pay_date":"2024-01-15"}`, apperror.InvalidSalaryError},
		{"slashed date", `{"employee_name":"Ana","salary":100,"pay_date":"15/01/2024"}`, apperror.InvalidDateFormatError},
		{"impossible date", `{"employee_name":"Ana","salary":100,"pay_date":"2023-02-30"}`, apperror.InvalidDateFormatError},
		{"date with time", `{"employee_name":"Ana","salary":100,"pay_date":"2024-01-15T00:00:00Z"}`, apperror.InvalidDateFormatError},
		{"missing beats salary", `{"salary":-1,"pay_date":"bad"}`, apperror.MissingFieldsError},
		{"salary beats date", `{"employee_name":"Ana","salary":-1,"pay_date":"bad"}`, apperror.InvalidSalaryError},
		{"name too long", `{"employee_name":"` + strings.Repeat("a", 256) + `","salary":100,"pay_date":"2024-01-15"}`, apperror.BadRequestError},
		{"date beats long name", `{"employee_name":"` + strings.Repeat("a", 256) + `","salary":100,"pay_date":"bad"}`, apperror.InvalidDateFormatError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Create(decodeCreate(t, tt.body))
			assertTaxonomy(t, err, tt.want)
		})
	}
}

func TestValidator_Update(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	changes, err := v.Update(decodeUpdate(t, `{"salary":16000}`))
	require.NoError(t, err)
	require.NotNil(t, changes.Salary)
	assert.Equal(t, Amount(1_600_000), *changes.Salary)
	assert.Nil(t, changes.EmployeeName)
	assert.Nil(t, changes.PayDate)

	changes, err = v.Update(decodeUpdate(t, `{"employee_name":" Ana ","salary":null,"pay_date":"2024-03-01"}`))
	require.NoError(t, err)
	assert.Equal(t, "Ana", *changes.EmployeeName)
	assert.Nil(t, changes.Salary)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *changes.PayDate)

	changes, err = v.Update(decodeUpdate(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, Changes{}, *changes)
}

func TestValidator_Update_Failures(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	tests := []struct {
		name string
		body string
		want apperror.ErrorType
	}{
		{"blank name", `{"employee_name":"  "}`, apperror.MissingFieldsError},
		{"negative salary", `{"salary":-1000}`, apperror.InvalidSalaryError},
		{"empty salary", `{"salary":""}`, apperror.InvalidSalaryError},
		{"empty date", `{"pay_date":""}`, apperror.InvalidDateFormatError},
		{"bad date", `{"pay_date":"2024-13-01"}`, apperror.InvalidDateFormatError},
		{"salary beats date", `{"salary":0,"pay_date":"x"}`, apperror.InvalidSalaryError},
		{"name too long", `{"employee_name":"` + strings.Repeat("ñ", 256) + `"}`, apperror.BadRequestError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Update(decodeUpdate(t, tt.body))
			assertTaxonomy(t, err, tt.want)
		})
	}
}

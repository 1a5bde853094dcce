// Package payroll is responsible for everything related to payroll records:
// the owner-scoped store, field validation, the CRUD/statistics pipeline and its HTTP handlers.
// It follows the modular structure seen in other parts of the application (e.g., `auth`, `users`),
// akin to a "PayrollModule" in Nest.js.
package payroll

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted pay date format.
const DateLayout = "2006-01-02"

// Amount is a money value counted in cents.
// Salaries never pass through float64 on their way to or from the database.
type Amount int64

// MaxAmount is the largest salary NUMERIC(10,2) can hold: 99,999,999.99.
const MaxAmount Amount = 9_999_999_999

// maxIntegerDigits keeps parsed values well inside int64 cents.
const maxIntegerDigits = 15

// ErrInvalidAmount is returned for text that is not a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a decimal number ("15000", "15000.5", "-1000", "1.5e4") into cents.
// Digits past the second decimal are rounded half up, as NUMERIC(10,2) does.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.ContainsAny(s, "eE") {
		return parseFloatAmount(s)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, frac, hasDot := strings.Cut(s, ".")
	if (intPart == "" && frac == "") || (hasDot && frac == "") {
		return 0, ErrInvalidAmount
	}
	if !allDigits(intPart) || !allDigits(frac) || len(intPart) > maxIntegerDigits {
		return 0, ErrInvalidAmount
	}

	var cents int64
	if intPart != "" {
		whole, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		cents = whole * 100
	}
	if len(frac) > 0 {
		cents += int64(frac[0]-'0') * 10
	}
	if len(frac) > 1 {
		cents += int64(frac[1] - '0')
	}
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}

	if negative {
		cents = -cents
	}
	return Amount(cents), nil
}

func parseFloatAmount(s string) (Amount, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.Pow10(maxIntegerDigits) {
		return 0, ErrInvalidAmount
	}
	return Amount(math.Round(f * 100)), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String formats the amount with exactly two decimals.
func (a Amount) String() string {
	sign := ""
	cents := int64(a)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON encodes the amount as a fixed two-decimal string, e.g. "15000.00".
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// NumericInput holds the raw text of a salary as sent by the client.
// Both JSON numbers and JSON strings are accepted; the validator decides whether
// the text is a usable amount, so decoding itself never fails on this field.
type NumericInput string

// UnmarshalJSON keeps the literal text of numbers and the content of strings.
func (n *NumericInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = NumericInput(s)
		return nil
	}
	*n = NumericInput(data)
	return nil
}

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// MarshalJSON encodes the date without a time component.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// Payroll is one salary payment recorded by a user.
type Payroll struct {
	ID           int64     `json:"id" example:"1"`
	UserID       int64     `json:"user_id" example:"1"`
	EmployeeName string    `json:"employee_name" example:"Juan Pérez"`
	Salary       Amount    `json:"salary" swaggertype:"string" example:"15000.00"`
	PayDate      Date      `json:"pay_date" swaggertype:"string" example:"2024-01-15"`
	CreatedAt    time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt    time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}

// Fields are the validated values of a new record.
type Fields struct {
	EmployeeName string
	Salary       Amount
	PayDate      time.Time
}

// Changes are the validated values of a partial update. Nil means "leave unchanged".
type Changes struct {
	EmployeeName *string
	Salary       *Amount
	PayDate      *time.Time
}

package payroll

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/user/payroll-go/apperror"
)

var payDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Failure ranks: when several fields fail, the lowest rank is reported.
const (
	rankMissing = iota
	rankSalary
	rankDate
	rankLength
)

// Validator checks payroll input and turns it into store-ready values.
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers the payroll rules on a fresh go-playground validator.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on programmer error (empty tag, nil func).
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "salary", validSalary)
	mustRegister(v, "paydate", validPayDate)
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func validSalary(fl validator.FieldLevel) bool {
	amount, err := ParseAmount(fl.Field().String())
	return err == nil && amount > 0 && amount <= MaxAmount
}

func validPayDate(fl validator.FieldLevel) bool {
	_, err := parsePayDate(fl.Field().String())
	return err == nil
}

func parsePayDate(s string) (time.Time, error) {
	if !payDatePattern.MatchString(s) {
		return time.Time{}, errors.New("pay date must be YYYY-MM-DD")
	}
	return time.Parse(DateLayout, s)
}

// Create validates a new record in required mode.
func (v *Validator) Create(req CreateRequest) (*Fields, error) {
	if err := v.check(req); err != nil {
		return nil, err
	}
	// Both parses are guaranteed to succeed after check.
	salary, _ := ParseAmount(string(req.Salary))
	payDate, _ := parsePayDate(req.PayDate)
	return &Fields{
		EmployeeName: strings.TrimSpace(req.EmployeeName),
		Salary:       salary,
		PayDate:      payDate,
	}, nil
}

// Update validates a partial update in optional mode.
func (v *Validator) Update(req UpdateRequest) (*Changes, error) {
	if err := v.check(req); err != nil {
		return nil, err
	}
	changes := &Changes{}
	if req.EmployeeName != nil {
		name := strings.TrimSpace(*req.EmployeeName)
		changes.EmployeeName = &name
	}
	if req.Salary != nil {
		salary, _ := ParseAmount(string(*req.Salary))
		changes.Salary = &salary
	}
	if req.PayDate != nil {
		payDate, _ := parsePayDate(*req.PayDate)
		changes.PayDate = &payDate
	}
	return changes, nil
}

// check runs the struct tags and maps the highest-precedence failure to the error taxonomy.
func (v *Validator) check(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("failed to validate payroll", err)
	}

	worst := rankLength + 1
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required", "notblank":
			worst = min(worst, rankMissing)
		case "salary":
			worst = min(worst, rankSalary)
		case "paydate":
			worst = min(worst, rankDate)
		case "max":
			worst = min(worst, rankLength)
		}
	}

	switch worst {
	case rankMissing:
		return apperror.NewMissingFieldsError("employee name, salary and pay date are required")
	case rankSalary:
		return apperror.NewInvalidSalaryError("salary must be a number greater than 0 and at most 99999999.99")
	case rankDate:
		return apperror.NewInvalidDateFormatError("pay date must be a valid date in YYYY-MM-DD format")
	case rankLength:
		return apperror.NewBadRequestError("employee name must be at most 255 characters", err)
	default:
		return apperror.NewInternalError("unexpected validation failure", err)
	}
}

package payroll

// CreateRequest is the body of POST /payrolls.
// Every field is required; an empty string counts as absent.
type CreateRequest struct {
	EmployeeName string       `json:"employee_name" validate:"required,notblank,max=255" example:"Juan Pérez"`
	Salary       NumericInput `json:"salary" validate:"required,salary" swaggertype:"number" example:"15000"`
	PayDate      string       `json:"pay_date" validate:"required,paydate" example:"2024-01-15"`
}

// UpdateRequest is the body of PUT /payrolls/{id}.
// Absent or null fields are left unchanged; present fields follow the create rules.
type UpdateRequest struct {
	EmployeeName *string       `json:"employee_name,omitempty" validate:"omitnil,notblank,max=255" example:"Juan Pérez"`
	Salary       *NumericInput `json:"salary,omitempty" validate:"omitnil,salary" swaggertype:"number" example:"16000"`
	PayDate      *string       `json:"pay_date,omitempty" validate:"omitnil,paydate" example:"2024-02-15"`
}

// ListQuery carries the raw query string of GET /payrolls.
type ListQuery struct {
	Page   string
	Limit  string
	SortBy string
	Order  string
}

// ListParams is a ListQuery after normalization: integers in range and a whitelisted ordering.
type ListParams struct {
	Page   int
	Limit  int
	SortBy string
	Order  string
}

// Offset is the number of rows skipped before the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes where a page sits in the full result.
type Pagination struct {
	CurrentPage  int   `json:"currentPage" example:"1"`
	TotalPages   int   `json:"totalPages" example:"3"`
	TotalRecords int64 `json:"totalRecords" example:"25"`
	Limit        int   `json:"limit" example:"10"`
	HasNext      bool  `json:"hasNext" example:"true"`
	HasPrev      bool  `json:"hasPrev" example:"false"`
}

// ListResponse is returned by GET /payrolls.
type ListResponse struct {
	Payrolls   []Payroll  `json:"payrolls"`
	Pagination Pagination `json:"pagination"`
}

// PayrollResponse wraps a single record, with a message for mutations.
type PayrollResponse struct {
	Message string  `json:"message,omitempty" example:"payroll created successfully"`
	Payroll Payroll `json:"payroll"`
}

// GeneralStats aggregates every record of a user.
type GeneralStats struct {
	TotalPayrolls   int64  `json:"total_payrolls" example:"12"`
	TotalSalary     Amount `json:"total_salary" swaggertype:"string" example:"180000.00"`
	AverageSalary   Amount `json:"average_salary" swaggertype:"string" example:"15000.00"`
	HighestSalary   Amount `json:"highest_salary" swaggertype:"string" example:"16000.00"`
	LowestSalary    Amount `json:"lowest_salary" swaggertype:"string" example:"14000.00"`
	UniqueEmployees int64  `json:"unique_employees" example:"3"`
}

// MonthlyStats aggregates the records of one calendar month.
type MonthlyStats struct {
	Month         string `json:"month" example:"2024-01"`
	PayrollsCount int64  `json:"payrolls_count" example:"4"`
	TotalPaid     Amount `json:"total_paid" swaggertype:"string" example:"60000.00"`
}

// Stats is returned by GET /payrolls/stats.
type Stats struct {
	General GeneralStats   `json:"general"`
	Monthly []MonthlyStats `json:"monthly"`
}

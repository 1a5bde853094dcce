package payroll

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/user/payroll-go/db"
)

// ErrNotFound is returned when no record matches both the id and the owner.
var ErrNotFound = errors.New("payroll not found")

// selectColumns is shared by every query returning records. Salary comes back as text
// so it can be parsed into exact cents.
const selectColumns = `id, user_id, employee_name, salary::text, pay_date, created_at, updated_at`

// sortColumns whitelists the columns a list may be ordered by.
var sortColumns = map[string]struct{}{
	"id":            {},
	"employee_name": {},
	"salary":        {},
	"pay_date":      {},
	"created_at":    {},
	"updated_at":    {},
}

const (
	defaultSortColumn = "created_at"
	defaultSortOrder  = "DESC"
)

// Store is the record store. Every query is filtered by the owning user.
type Store struct {
	db      db.Querier
	timeout time.Duration
}

// NewStore creates a new Store. Every call is bounded by `timeout`.
func NewStore(q db.Querier, timeout time.Duration) *Store {
	return &Store{db: q, timeout: timeout}
}

// scanPayroll reads one row laid out as selectColumns.
func scanPayroll(row pgx.Row) (*Payroll, error) {
	var p Payroll
	var salary string
	if err := row.Scan(&p.ID, &p.UserID, &p.EmployeeName, &salary, &p.PayDate.Time, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	amount, err := ParseAmount(salary)
	if err != nil {
		return nil, fmt.Errorf("unexpected salary %q in store: %w", salary, err)
	}
	p.Salary = amount
	return &p, nil
}

// scanOne maps pgx.ErrNoRows to ErrNotFound.
func scanOne(row pgx.Row, action string) (*Payroll, error) {
	p, err := scanPayroll(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to %s payroll: %w", action, err)
	}
	return p, nil
}

// List returns one page of the user's records in the requested order.
// The ordering comes from the whitelist only, never from raw input.
func (s *Store) List(ctx context.Context, userID int64, params ListParams) ([]Payroll, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	column, order := orderBy(params.SortBy, params.Order)
	query := fmt.Sprintf(`SELECT %s FROM payrolls WHERE user_id = $1 ORDER BY %s %s, id %s LIMIT $2 OFFSET $3`,
		selectColumns, column, order, order)

	rows, err := s.db.Query(ctx, query, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	payrolls := make([]Payroll, 0, params.Limit)
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payroll row: %w", err)
		}
		payrolls = append(payrolls, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll rows: %w", err)
	}
	return payrolls, nil
}

// orderBy resolves the sort column and direction, falling back to created_at DESC.
func orderBy(sortBy, order string) (string, string) {
	column := defaultSortColumn
	if _, ok := sortColumns[sortBy]; ok {
		column = sortBy
	}
	direction := defaultSortOrder
	switch strings.ToUpper(order) {
	case "ASC":
		direction = "ASC"
	case "DESC":
		direction = "DESC"
	}
	return column, direction
}

// Count returns the total number of records the user owns.
func (s *Store) Count(ctx context.Context, userID int64) (int64, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM payrolls WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count payrolls: %w", err)
	}
	return total, nil
}

// Get returns one record. Missing and not-owned look the same.
func (s *Store) Get(ctx context.Context, userID, id int64) (*Payroll, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := s.db.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM payrolls WHERE id = $1 AND user_id = $2`, id, userID)
	return scanOne(row, "get")
}

// Create inserts a record owned by userID.
func (s *Store) Create(ctx context.Context, userID int64, f Fields) (*Payroll, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := s.db.QueryRow(ctx,
		`INSERT INTO payrolls (user_id, employee_name, salary, pay_date) VALUES ($1, $2, $3, $4) RETURNING `+selectColumns,
		userID, f.EmployeeName, f.Salary.String(), f.PayDate)
	return scanOne(row, "create")
}

// Update applies the supplied changes in one conditional statement and returns the new state.
func (s *Store) Update(ctx context.Context, userID, id int64, c Changes) (*Payroll, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	query, args := buildUpdate(c, id, userID)
	return scanOne(s.db.QueryRow(ctx, query, args...), "update")
}

// Delete removes a record and returns the deleted snapshot.
func (s *Store) Delete(ctx context.Context, userID, id int64) (*Payroll, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	row := s.db.QueryRow(ctx,
		`DELETE FROM payrolls WHERE id = $1 AND user_id = $2 RETURNING `+selectColumns, id, userID)
	return scanOne(row, "delete")
}

// updateBuilder accumulates SET clauses with positional parameters.
type updateBuilder struct {
	sets []string
	args []any
}

func (b *updateBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, column+" = $"+strconv.Itoa(len(b.args)))
}

// buildUpdate produces an UPDATE touching exactly the supplied fields plus updated_at,
// always in the order employee_name, salary, pay_date.
func buildUpdate(c Changes, id, userID int64) (string, []any) {
	var b updateBuilder
	if c.EmployeeName != nil {
		b.set("employee_name", *c.EmployeeName)
	}
	if c.Salary != nil {
		b.set("salary", c.Salary.String())
	}
	if c.PayDate != nil {
		b.set("pay_date", *c.PayDate)
	}
	b.sets = append(b.sets, "updated_at = CURRENT_TIMESTAMP")

	n := len(b.args)
	query := fmt.Sprintf(`UPDATE payrolls SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(b.sets, ", "), n+1, n+2, selectColumns)
	return query, append(b.args, id, userID)
}

const generalStatsQuery = `SELECT COUNT(*),
	COALESCE(SUM(salary), 0)::text,
	COALESCE(ROUND(AVG(salary), 2), 0)::text,
	COALESCE(MAX(salary), 0)::text,
	COALESCE(MIN(salary), 0)::text,
	COUNT(DISTINCT employee_name)
FROM payrolls WHERE user_id = $1`

const monthlyStatsQuery = `SELECT to_char(date_trunc('month', pay_date), 'YYYY-MM'),
	COUNT(*),
	SUM(salary)::text
FROM payrolls WHERE user_id = $1
GROUP BY date_trunc('month', pay_date)
ORDER BY date_trunc('month', pay_date) DESC
LIMIT 12`

// Stats aggregates the user's records overall and for the 12 most recent months with records.
func (s *Store) Stats(ctx context.Context, userID int64) (*Stats, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	var general GeneralStats
	var total, avg, highest, lowest string
	err := s.db.QueryRow(ctx, generalStatsQuery, userID).Scan(
		&general.TotalPayrolls, &total, &avg, &highest, &lowest, &general.UniqueEmployees)
	if err != nil {
		return nil, fmt.Errorf("failed to compute payroll stats: %w", err)
	}
	for _, f := range []struct {
		dst *Amount
		raw string
	}{{&general.TotalSalary, total}, {&general.AverageSalary, avg}, {&general.HighestSalary, highest}, {&general.LowestSalary, lowest}} {
		if *f.dst, err = ParseAmount(f.raw); err != nil {
			return nil, fmt.Errorf("unexpected aggregate %q: %w", f.raw, err)
		}
	}

	rows, err := s.db.Query(ctx, monthlyStatsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly stats: %w", err)
	}
	defer rows.Close()

	monthly := []MonthlyStats{}
	for rows.Next() {
		var m MonthlyStats
		var paid string
		if err := rows.Scan(&m.Month, &m.PayrollsCount, &paid); err != nil {
			return nil, fmt.Errorf("error scanning monthly stats row: %w", err)
		}
		if m.TotalPaid, err = ParseAmount(paid); err != nil {
			return nil, fmt.Errorf("unexpected monthly total %q: %w", paid, err)
		}
		monthly = append(monthly, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly stats rows: %w", err)
	}

	return &Stats{General: general, Monthly: monthly}, nil
}

package payroll

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memRepo is an in-memory Repository. It orders lists by id only.
type memRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]Payroll
	clock   time.Time
	// vanishOnUpdate deletes the record right before an update, like a concurrent delete would.
	vanishOnUpdate bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		records: map[int64]Payroll{},
		clock:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (m *memRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memRepo) owned(userID int64) []Payroll {
	var out []Payroll
	for _, p := range m.records {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memRepo) List(_ context.Context, userID int64, params ListParams) ([]Payroll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.owned(userID)
	start := min(params.Offset(), len(all))
	end := min(start+params.Limit, len(all))
	return append([]Payroll{}, all[start:end]...), nil
}

func (m *memRepo) Count(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.owned(userID))), nil
}

func (m *memRepo) Get(_ context.Context, userID, id int64) (*Payroll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.records[id]
	if !ok || p.UserID != userID {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *memRepo) Create(_ context.Context, userID int64, f Fields) (*Payroll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	now := m.tick()
	p := Payroll{
		ID:           m.nextID,
		UserID:       userID,
		EmployeeName: f.EmployeeName,
		Salary:       f.Salary,
		PayDate:      Date{f.PayDate},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.records[p.ID] = p
	return &p, nil
}

func (m *memRepo) Update(_ context.Context, userID, id int64, c Changes) (*Payroll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vanishOnUpdate {
		delete(m.records, id)
	}
	p, ok := m.records[id]
	if !ok || p.UserID != userID {
		return nil, ErrNotFound
	}
	if c.EmployeeName != nil {
		p.EmployeeName = *c.EmployeeName
	}
	if c.Salary != nil {
		p.Salary = *c.Salary
	}
	if c.PayDate != nil {
		p.PayDate = Date{*c.PayDate}
	}
	p.UpdatedAt = m.tick()
	m.records[id] = p
	return &p, nil
}

func (m *memRepo) Delete(_ context.Context, userID, id int64) (*Payroll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.records[id]
	if !ok || p.UserID != userID {
		return nil, ErrNotFound
	}
	delete(m.records, id)
	return &p, nil
}

func (m *memRepo) Stats(_ context.Context, userID int64) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &Stats{Monthly: []MonthlyStats{}}
	names := map[string]struct{}{}
	for i, p := range m.owned(userID) {
		stats.General.TotalPayrolls++
		stats.General.TotalSalary += p.Salary
		if i == 0 || p.Salary > stats.General.HighestSalary {
			stats.General.HighestSalary = p.Salary
		}
		if i == 0 || p.Salary < stats.General.LowestSalary {
			stats.General.LowestSalary = p.Salary
		}
		names[p.EmployeeName] = struct{}{}
	}
	if n := stats.General.TotalPayrolls; n > 0 {
		stats.General.AverageSalary = stats.General.TotalSalary / Amount(n)
	}
	stats.General.UniqueEmployees = int64(len(names))
	return stats, nil
}

package document

import (
	"context"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/diary"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
)

type employeeRepositoryImpl struct {
	store *Store
}

// NewEmployeeRepository creates a new employee repository backed by the store
func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var found employee.Employee
	err := r.store.View(func(doc *Document) error {
		for _, emp := range doc.Employees {
			if emp.ID == id {
				found = emp
				return nil
			}
		}
		return employee.ErrEmployeeNotFound
	})
	return found, err
}

func (r *employeeRepositoryImpl) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	var found employee.Employee
	err := r.store.View(func(doc *Document) error {
		for _, emp := range doc.Employees {
			if emp.Username == username {
				found = emp
				return nil
			}
		}
		return employee.ErrEmployeeNotFound
	})
	return found, err
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	err := r.store.View(func(doc *Document) error {
		out = append([]employee.Employee(nil), doc.Employees...)
		return nil
	})
	return out, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	err := r.store.Mutate(func(doc *Document) error {
		for _, emp := range doc.Employees {
			if emp.Username == newEmployee.Username {
				return employee.ErrUsernameExists
			}
		}
		doc.Employees = append(doc.Employees, newEmployee)
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	return r.store.Mutate(func(doc *Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID != emp.ID {
				continue
			}
			for j := range doc.Employees {
				if j != i && doc.Employees[j].Username == emp.Username {
					return employee.ErrUsernameExists
				}
			}
			doc.Employees[i] = emp
			return nil
		}
		return employee.ErrEmployeeNotFound
	})
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.Mutate(func(doc *Document) error {
		idx := -1
		for i := range doc.Employees {
			if doc.Employees[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return employee.ErrEmployeeNotFound
		}
		doc.Employees = append(doc.Employees[:idx], doc.Employees[idx+1:]...)

		// Cascade the employee's per-day rows.
		kept := doc.Attendance[:0]
		for _, att := range doc.Attendance {
			if att.EmployeeID != id {
				kept = append(kept, att)
			}
		}
		doc.Attendance = kept

		keptLeaves := doc.LeaveRequests[:0]
		for _, lr := range doc.LeaveRequests {
			if lr.EmployeeID != id {
				keptLeaves = append(keptLeaves, lr)
			}
		}
		doc.LeaveRequests = keptLeaves

		keptDiary := doc.DayDiary[:0]
		for _, entry := range doc.DayDiary {
			if entry.EmployeeID != id {
				keptDiary = append(keptDiary, entry)
			}
		}
		doc.DayDiary = keptDiary
		return nil
	})
}

func (r *employeeRepositoryImpl) Clear(ctx context.Context) error {
	return r.store.Mutate(func(doc *Document) error {
		doc.Employees = []employee.Employee{}
		doc.Attendance = []attendance.Attendance{}
		doc.LeaveRequests = []leave.LeaveRequest{}
		doc.DayDiary = []diary.Entry{}
		return nil
	})
}

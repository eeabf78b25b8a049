package document

import (
	"context"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	store *Store
}

// NewLeaveRequestRepository creates a new leave request repository backed by the store
func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	err := r.store.Mutate(func(doc *Document) error {
		doc.LeaveRequests = append(doc.LeaveRequests, req)
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	var found leave.LeaveRequest
	err := r.store.View(func(doc *Document) error {
		for _, lr := range doc.LeaveRequests {
			if lr.ID == id {
				found = lr
				return nil
			}
		}
		return leave.ErrLeaveRequestNotFound
	})
	return found, err
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, req leave.LeaveRequest) error {
	return r.store.Mutate(func(doc *Document) error {
		for i := range doc.LeaveRequests {
			if doc.LeaveRequests[i].ID == req.ID {
				doc.LeaveRequests[i] = req
				return nil
			}
		}
		return leave.ErrLeaveRequestNotFound
	})
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	err := r.store.View(func(doc *Document) error {
		out = append([]leave.LeaveRequest(nil), doc.LeaveRequests...)
		return nil
	})
	return out, err
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	err := r.store.View(func(doc *Document) error {
		for _, lr := range doc.LeaveRequests {
			if lr.EmployeeID == employeeID {
				out = append(out, lr)
			}
		}
		return nil
	})
	return out, err
}

package employee

import "context"

// EmployeeRepository reads the employee directory. The directory is owned by
// an upstream system; this service never creates, mutates or deletes entries.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
}

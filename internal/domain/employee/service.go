package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context) (ListEmployeesResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

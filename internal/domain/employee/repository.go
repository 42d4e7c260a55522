package employee

import "context"

// Repository defines data access for employees.
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// List returns active employees, optionally narrowed to one group or one
	// employee, ordered by employee code.
	List(ctx context.Context, filter Filter) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}

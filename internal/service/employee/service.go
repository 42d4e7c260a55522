package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/sathish136/mo-sub000/internal/domain/employee"
	"github.com/sathish136/mo-sub000/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.Repository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{
		db:         db,
		Repository: employeeRepo,
	}
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.Repository.Create(ctx, employee.Employee{
		Code:     req.Code,
		FullName: req.FullName,
		Group:    req.Group,
		Active:   true,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, error) {
	employees, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Group != nil {
		emp.Group = *req.Group
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	if err := s.Repository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.Repository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

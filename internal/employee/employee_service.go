package employee

import (
	"context"
	"errors"

	employeeerrors "go-hris-etl/internal/employee/errors"
	"go-hris-etl/internal/shared/contextutil"
	"go-hris-etl/internal/tax"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	AddEmployees(ctx context.Context, records []EmployeeRecord) error
	GetEmployee(ctx context.Context, tenantID string, employeeID int64) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) AddEmployees(ctx context.Context, records []EmployeeRecord) error {
	if len(records) == 0 {
		return employeeerrors.ErrPersistence.WithCause(employeeerrors.ErrNoRecords)
	}

	if err := s.repo.CreateBatch(ctx, records); err != nil {
		s.logger.Error("persist employee records failed",
			append(contextutil.ExtractMetadata(ctx).Fields(),
				zap.Int("count", len(records)),
				zap.Error(err),
			)...,
		)
		return employeeerrors.ErrPersistence.WithCause(err)
	}

	s.logger.Info("employee records persisted",
		append(contextutil.ExtractMetadata(ctx).Fields(), zap.Int("count", len(records)))...,
	)
	return nil
}

func (s *service) GetEmployee(ctx context.Context, tenantID string, employeeID int64) (EmployeeResponse, error) {
	if employeeID <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	record, err := s.repo.FindLatestByEmployeeID(ctx, tenantID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get employee failed",
			zap.String("tenant_id", tenantID),
			zap.Int64("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	return mapToResponse(*record), nil
}

func mapToResponse(r EmployeeRecord) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:      r.EmployeeID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		BirthDate:       r.BirthDate.Format("2006-01-02"),
		NetAnnualIncome: tax.FromCents(r.NetAnnualIncome),
	}
}

package employee

import (
	"strings"

	employeeerrors "go-hris-etl/internal/employee/errors"
	"go-hris-etl/internal/tax"

	"github.com/google/uuid"
)

// Mapper turns extracted rows into persistence-ready records.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts raw one-to-one, preserving order, computing the net income of
// every row and stamping tenantID on all of them. A nil raw slice means the
// extraction produced nothing and is reported as a mapping failure rather than
// an empty result.
func (m *Mapper) Map(raw []RawEmployeeRecord, tenantID string) ([]EmployeeRecord, error) {
	if raw == nil {
		return nil, employeeerrors.ErrMapping.WithCause(employeeerrors.ErrNoRawRecords)
	}
	if strings.TrimSpace(tenantID) == "" {
		return nil, employeeerrors.ErrMapping.WithCause(employeeerrors.ErrTenantRequired)
	}

	records := make([]EmployeeRecord, len(raw))
	for i, r := range raw {
		records[i] = EmployeeRecord{
			ID:              uuid.New(),
			EmployeeID:      r.EmployeeID,
			TenantID:        tenantID,
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			BirthDate:       r.DateOfBirth,
			NetAnnualIncome: tax.NetAnnualIncome(r.GrossAnnualSalary),
		}
	}

	return records, nil
}

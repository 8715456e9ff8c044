package auth

import (
	"errors"
	"strings"

	autherrors "go-hris-etl/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const tenantNameConstraint = "uq_tenant_name"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == tenantNameConstraint {
			return autherrors.ErrTenantExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, tenantNameConstraint) {
		return autherrors.ErrTenantExists
	}

	return err
}

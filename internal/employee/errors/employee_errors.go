package employeeerrors

import (
	"errors"
	"net/http"

	"go-hris-etl/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Could not find employee.",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)

	// Pipeline-side failures. They never reach an HTTP client; the status
	// tracker is the only channel that reports them.
	ErrMapping = apperror.New(
		apperror.CodeInternalError,
		"Failed to map employee records",
		http.StatusInternalServerError,
	)
	ErrPersistence = apperror.New(
		apperror.CodeInternalError,
		"Failed to persist employee records",
		http.StatusInternalServerError,
	)
)

var (
	ErrNoRawRecords   = errors.New("no extracted records to map")
	ErrTenantRequired = errors.New("tenant id is required")
	ErrNoRecords      = errors.New("no employee records to persist")
)

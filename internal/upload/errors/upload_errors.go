package uploaderrors

import (
	"net/http"

	"go-hris-etl/internal/shared/apperror"
)

var (
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"File is required",
		http.StatusBadRequest,
	)
	ErrFileNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"File name is required",
		http.StatusBadRequest,
	)
	ErrTenantRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Tenant context is missing",
		http.StatusUnauthorized,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeUnsupportedFormat,
		"Invalid file format.",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"File is too large",
		http.StatusRequestEntityTooLarge,
	)
	ErrStorageWrite = apperror.New(
		apperror.CodeStorageFailure,
		"Failed to store uploaded file",
		http.StatusInternalServerError,
	)
	ErrEnqueue = apperror.New(
		apperror.CodeQueueFailure,
		"Failed to schedule processing",
		http.StatusInternalServerError,
	)
)

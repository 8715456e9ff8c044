package jobstatuserrors

import (
	"net/http"

	"go-hris-etl/internal/shared/apperror"
)

var (
	ErrJobInProgress = apperror.New(
		apperror.CodeJobInProgress,
		"Could not find job. Processing data might not finished.",
		http.StatusNotFound,
	)
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job ID",
		http.StatusBadRequest,
	)
	// ErrStatusStore is only ever logged.
	ErrStatusStore = apperror.New(
		apperror.CodeInternalError,
		"Status store unavailable",
		http.StatusInternalServerError,
	)
)

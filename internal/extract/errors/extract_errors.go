package extracterrors

import (
	"errors"
	"net/http"

	"go-hris-etl/internal/shared/apperror"
)

var ErrExtraction = apperror.New(
	apperror.CodeInternalError,
	"Failed to extract employee data",
	http.StatusInternalServerError,
)

var (
	ErrObjectNotFound    = errors.New("uploaded object not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedRow      = errors.New("malformed row")
	ErrNegativeSalary    = errors.New("gross annual salary is negative")
)

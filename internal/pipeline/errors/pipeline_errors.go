package pipelineerrors

import (
	"errors"
	"net/http"

	"go-hris-etl/internal/shared/apperror"
)

// ErrMalformedMessage is fatal to the invocation: no status is written and
// the delivery is left unacknowledged.
var ErrMalformedMessage = apperror.New(
	apperror.CodeInvalidInput,
	"Malformed pipeline message",
	http.StatusBadRequest,
)

var (
	ErrNoData       = errors.New("stage produced no records")
	ErrPersistPanic = errors.New("persistence panicked")
	ErrAcknowledge  = errors.New("acknowledge delivery failed")
)

package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeJobInProgress     = "JOB_IN_PROGRESS"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeStorageFailure     = "STORAGE_FAILURE"
	CodeQueueFailure       = "QUEUE_FAILURE"
)

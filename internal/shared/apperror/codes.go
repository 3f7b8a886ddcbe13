package apperror

const (
	// Input/data errors
	CodeInvalidInput      = "INVALID_INPUT"
	CodeMalformedDate     = "MALFORMED_DATE"
	CodeMalformedLocation = "MALFORMED_LOCATION"
	CodeDivisionByZero    = "DIVISION_BY_ZERO"
	CodeNotFound          = "NOT_FOUND"

	// Infrastructure errors
	CodeInternalError     = "INTERNAL_ERROR"
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
)

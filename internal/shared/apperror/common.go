package apperror

var (
	ErrMalformedDate = New(
		CodeMalformedDate,
		"hire_date does not match the expected DD-MM-YYYY format",
	)

	ErrMalformedLocation = New(
		CodeMalformedLocation,
		"location has no comma separating city and country",
	)

	ErrDivisionByZero = New(
		CodeDivisionByZero,
		"denominator is zero for this group",
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
	)

	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
	)

	ErrSourceUnavailable = New(
		CodeSourceUnavailable,
		"The dataset source could not be reached",
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
	)
)

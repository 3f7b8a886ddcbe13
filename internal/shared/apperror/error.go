package apperror

import "fmt"

type AppError struct {
	Code    string // Error code (e.g., MALFORMED_DATE)
	Message string // User-friendly message
	Err     error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match two AppErrors by code, so wrapped row-level
// errors still compare equal to the package sentinels.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError without wrapping
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

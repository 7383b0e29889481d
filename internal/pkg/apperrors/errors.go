package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Not found errors for placement entities. Each one unwraps to ErrResourceNotFound.
var (
	ErrAdminNotFound        = NewResourceNotFoundError("admin not found")
	ErrStudentNotFound      = NewResourceNotFoundError("student not found")
	ErrCompanyNotFound      = NewResourceNotFoundError("company not found")
	ErrJobNotFound          = NewResourceNotFoundError("job not found")
	ErrApplicationNotFound  = NewResourceNotFoundError("application not found")
	ErrAnnouncementNotFound = NewResourceNotFoundError("announcement not found")
	ErrAnalyticNotFound     = NewResourceNotFoundError("analytics not found")
)

// Conflict errors
var (
	ErrDuplicateApplication = NewConflictError("already applied to this job")
	ErrDuplicateAnalytic    = NewConflictError("analytics already exists for this job")
	ErrCompanyAlreadyExists = NewConflictError("company with this name already exists")
	ErrEmailAlreadyExists   = NewConflictError("email already exists")
	ErrRegNoAlreadyExists   = NewConflictError("registration number already exists")
	ErrIllegalTransition    = NewConflictError("illegal application status transition")
	ErrJobClosed            = NewConflictError("job is not accepting applications")
	ErrStillReferenced      = NewConflictError("resource is still referenced by other records")
)

// ErrInvalidStatus is returned when a status outside the application status enum is supplied.
var ErrInvalidStatus = &CustomError{Err: ErrValidationFailed, Message: "invalid status", Code: "APP_001"}

// ErrNotEligible is returned when a student applies to a job whose criteria they do not meet.
var ErrNotEligible = NewForbiddenError("student does not meet the eligibility criteria for this job")

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewUnauthorizedError creates a new custom error for a missing or unusable principal
func NewUnauthorizedError(message string) error {
	return &CustomError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation error bound to a request field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}

// Message extracts the most specific user-facing message carried by err.
// The outermost CustomError wins; plain errors fall back to fallback.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

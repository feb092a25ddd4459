package core

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	// The underlying error
	Err error

	// User-friendly message to display
	UserMessage string

	// Whether this error should be shown to the user
	ShowToUser bool

	// HTTP-like status code for categorization
	Code int
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrorCodeBadRequest  = 400
	ErrorCodeNotFound    = 404
	ErrorCodeRateLimited = 429
	ErrorCodeInternal    = 500
	ErrorCodeUnavailable = 503
)

// Fallback messages when nothing more specific is known
const (
	CommandErrorMessage = "An error occurred while processing your command. Please try again!"
	ButtonErrorMessage  = "An error occurred while processing your request!"
)

// NewHandlerError creates a new handler error
func NewHandlerError(err error, userMessage string, code int) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: userMessage,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewInternalError creates an error whose cause is logged but not shown
func NewInternalError(err error) *HandlerError {
	return &HandlerError{
		Err:  err,
		Code: ErrorCodeInternal,
	}
}

// NewUserError creates an error with a user-friendly message
func NewUserError(message string, code int) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewNotFoundError wraps a lookup failure with the message shown to the user
func NewNotFoundError(err error, message string) *HandlerError {
	return NewHandlerError(err, message, ErrorCodeNotFound)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *HandlerError {
	return NewUserError(message, ErrorCodeBadRequest)
}

// FallbackMessage is the generic message for the kind of event
func FallbackMessage(kind EventKind) string {
	if kind == EventButton {
		return ButtonErrorMessage
	}
	return CommandErrorMessage
}

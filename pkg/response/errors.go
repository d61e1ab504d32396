package response

// HTTPError is an error that already knows how it should be rendered.
type HTTPError struct {
	Status  int
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code equals the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: status, Message: message}
}

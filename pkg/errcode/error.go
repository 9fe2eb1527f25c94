package errcode

// Error is one standardized error: a code, a default message, and the
// system where it arose. It describes a single handling outcome.
type Error struct {
	Code     Code   `json:"errorCode"`
	Message  string `json:"errorMsg"`
	Location string `json:"location"`
}

// NewError builds an Error from its parts.
func NewError(code Code, message, location string) *Error {
	return &Error{Code: code, Message: message, Location: location}
}

// Digest returns the short code@location form used in digest logs.
func (e *Error) Digest() string {
	return e.Code.String() + "@" + e.Location
}

// Error implements error with the full code@location::message form.
func (e *Error) Error() string {
	return e.Digest() + "::" + e.Message
}

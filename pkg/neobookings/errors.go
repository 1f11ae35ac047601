package neobookings

// ValidationError reports caller input that violates a tool's schema or a
// cross-field rule. It is produced before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthError reports a failed authentication step: either the token endpoint
// returned no usable token, or a call that requires a token was attempted
// without one.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// APIError reports a failed domain call. Transport failures and
// upstream-reported business errors are collapsed into this one kind; Code
// carries the first upstream error code when the API reported one.
type APIError struct {
	Message string
	Code    string
}

func (e *APIError) Error() string { return e.Message }

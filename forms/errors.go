package forms

// ValidationError is a missing or unparsable form field, caught before any store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

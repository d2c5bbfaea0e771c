package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // message safe to show to the shopper
	Fields    map[string]string // form/validation field errors (optional)
	Err       error             // internal error (for logs)
}

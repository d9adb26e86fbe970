package types

const (
	ErrInvalidInput    = "Invalid input"
	ErrInvalidCategory = "Invalid employee category"
	ErrDatabaseError   = "Database error"
	ErrUnauthorized    = "Unauthorized access"
	ErrInternalError   = "internal server error"
)

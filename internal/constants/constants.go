package constants

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "current_user"
)

// Pagination bounds for list endpoints.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

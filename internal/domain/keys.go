package domain

// CtxKey names a request-scoped value set by the auth middleware. Gin keys
// values by plain strings, so readers convert with string(key).
type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
)

package types

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserID    ContextKey = "ctx_user_id"

	// HeaderRequestID is the response header carrying the request id
	HeaderRequestID = "X-Request-ID"
)

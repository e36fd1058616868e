package domain

type CtxKey string

const (
	// KeyRequestID carries the per-request correlation id in both the gin
	// context and the request's context.Context.
	KeyRequestID CtxKey = "RequestID"
)

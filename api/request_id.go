package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the request ID in both directions.
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID is the gin context key holding the uuid.UUID.
	ContextRequestID = "request_id"
)

// RequestID tags each request with a UUID. A well-formed incoming
// X-Request-ID is kept; anything else is replaced by a fresh one.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := uuid.Parse(ctx.GetHeader(HeaderRequestID))
		if err != nil {
			id = uuid.New()
		}
		ctx.Set(ContextRequestID, id)
		ctx.Header(HeaderRequestID, id.String())
		ctx.Next()
	}
}

// RequestIDFrom returns the ID set by RequestID, or a new one when the
// middleware did not run.
func RequestIDFrom(ctx *gin.Context) uuid.UUID {
	if v, ok := ctx.Get(ContextRequestID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}

	return uuid.New()
}

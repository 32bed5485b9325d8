package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/hypnotizedent/printshop-os-sub011/internal/types"
)

// RequestIDMiddleware propagates or assigns the request id and echoes it
// back on the response.
func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUID()
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)
	c.Request = c.Request.WithContext(ctx)

	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}

package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Team-gohypemedia/catalance-matching/internal/requestcontext"
)

// HeaderTenantID is the header key for tenant ID
const HeaderTenantID = "X-Tenant-ID"

func Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()

			// get request id from header
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := req.Context()
			ctx = requestcontext.SetRequestID(ctx, requestID)
			ctx = requestcontext.SetMethod(ctx, req.Method)
			ctx = requestcontext.SetRoute(ctx, req.URL.Path)
			ctx = requestcontext.SetRemoteIP(ctx, c.RealIP())
			ctx = requestcontext.SetTenantID(ctx, req.Header.Get(HeaderTenantID))

			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

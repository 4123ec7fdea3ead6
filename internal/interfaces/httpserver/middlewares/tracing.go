package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

// TracingMiddleware opens a server span per request, continuing any trace
// propagated by the caller. Spans are named by route template.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	tracer := otel.Tracer(serviceName)
	propagator := otel.GetTextMapPropagator

	return func(c *gin.Context) {
		parent := propagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := routeLabel(c)
		ctx, span := tracer.Start(parent, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String("http.target", c.Request.URL.Path),
				attribute.String("http.user_agent", c.Request.UserAgent()),
			),
		)
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		if requestID := RequestIDFromContext(c); requestID != "" {
			span.SetAttributes(attribute.String("request.id", requestID))
		}
		if id := c.Param("id"); id != "" {
			span.SetAttributes(attribute.String("catalog.item_id", id))
		}

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if last := c.Errors.Last(); last != nil {
			if platformErr := platformerrors.GetPlatformError(last.Err); platformErr != nil {
				span.SetAttributes(
					attribute.String("error.code", platformErr.GetUUID()),
					attribute.String("error.type", string(platformErr.GetErrorType())),
				)
			}
			if status >= 500 {
				span.RecordError(last.Err)
			}
		}
		if status >= 500 {
			span.SetStatus(codes.Error, c.Errors.String())
		}
	}
}

// routeLabel is the matched route template, or the raw path for requests
// that matched nothing.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return c.Request.URL.Path
}

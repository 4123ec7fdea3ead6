package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDKey is the context key under which the request id middleware
// stores the current request id.
type RequestIDKey struct{}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(RequestIDKey{}).(string)
	return requestID
}

// ErrorType classifies a failure and decides its HTTP status.
type ErrorType string

const (
	ErrorTypeNotFound      ErrorType = "NOT_FOUND"
	ErrorTypeValidation    ErrorType = "VALIDATION"
	ErrorTypeInternal      ErrorType = "INTERNAL"
	ErrorTypeDatabaseError ErrorType = "DATABASE_ERROR"
)

var httpStatusByType = map[ErrorType]int{
	ErrorTypeNotFound:      http.StatusNotFound,
	ErrorTypeValidation:    http.StatusBadRequest,
	ErrorTypeInternal:      http.StatusInternalServerError,
	ErrorTypeDatabaseError: http.StatusInternalServerError,
}

// Layer names the part of the service that raised the error.
type Layer string

const (
	LayerRepository     Layer = "repository"
	LayerDomain         Layer = "domain"
	LayerHandler        Layer = "handler"
	LayerRoute          Layer = "route"
	LayerInfrastructure Layer = "infrastructure"
)

// PlatformError carries a stable error code (UUID) through the layers so a
// response, a log line and a span can be matched to the line that raised it.
// Fields lists the item fields a validation error refers to.
type PlatformError struct {
	UUID      string
	Type      ErrorType
	Message   string
	Err       error
	Fields    []string
	Context   map[string]any
	RequestID string
	Layer     Layer
	Timestamp time.Time
}

func (e *PlatformError) Error() string {
	prefix := fmt.Sprintf("[%s][%s][%s] %s", e.Layer, e.Type, e.UUID, e.Message)
	if e.Err == nil {
		return prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *PlatformError) Unwrap() error { return e.Err }

func (e *PlatformError) GetErrorType() ErrorType { return e.Type }

func (e *PlatformError) GetRequestID() string { return e.RequestID }

func (e *PlatformError) GetUUID() string { return e.UUID }

// NewError builds a PlatformError stamped with the request id found in ctx.
// An empty code gets a random one.
func NewError(ctx context.Context, layer Layer, errorType ErrorType, message string, err error, code string) *PlatformError {
	return NewErrorWithContext(ctx, layer, errorType, message, err, code, nil)
}

// NewErrorWithContext is NewError with extra key/values for the log line.
func NewErrorWithContext(ctx context.Context, layer Layer, errorType ErrorType, message string, err error, code string, contextFields map[string]any) *PlatformError {
	if code == "" {
		code = uuid.NewString()
	}
	fields := make(map[string]any, len(contextFields))
	for k, v := range contextFields {
		fields[k] = v
	}
	return &PlatformError{
		UUID:      code,
		Type:      errorType,
		Message:   message,
		Err:       err,
		Context:   fields,
		RequestID: requestIDFromContext(ctx),
		Layer:     layer,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError reports invalid input that names the offending fields.
func NewValidationError(ctx context.Context, layer Layer, message string, fields []string, code string) *PlatformError {
	e := NewError(ctx, layer, ErrorTypeValidation, message, nil, code)
	e.Fields = append([]string(nil), fields...)
	return e
}

// AsError re-raises err at layer. A PlatformError keeps its type, code and
// fields with message prepended; anything else becomes an internal error.
func AsError(ctx context.Context, layer Layer, err error, message string) *PlatformError {
	if err == nil {
		return nil
	}
	inner := GetPlatformError(err)
	if inner == nil {
		return NewError(ctx, layer, ErrorTypeInternal, message, err, "")
	}
	wrapped := NewError(ctx, layer, inner.Type, message+": "+inner.Message, inner, inner.UUID)
	wrapped.Fields = inner.Fields
	return wrapped
}

// ErrorTypeToHTTPStatus maps an error type to its response status. Unknown
// types are treated as internal errors.
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	if status, ok := httpStatusByType[errorType]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsErrorType reports whether the outermost PlatformError in err's chain has
// the given type.
func IsErrorType(err error, errorType ErrorType) bool {
	platformErr := GetPlatformError(err)
	return platformErr != nil && platformErr.Type == errorType
}

// GetPlatformError returns the outermost PlatformError in the chain, if any.
func GetPlatformError(err error) *PlatformError {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return nil
}

// LogError writes err as one structured line. Client errors log at warn.
func LogError(logger zerolog.Logger, err *PlatformError) {
	if err == nil {
		return
	}

	event := logger.Error()
	if ErrorTypeToHTTPStatus(err.Type) < http.StatusInternalServerError {
		event = logger.Warn()
	}
	event = event.
		Str("error_code", err.UUID).
		Str("error_type", string(err.Type)).
		Str("layer", string(err.Layer)).
		Time("raised_at", err.Timestamp)
	if err.RequestID != "" {
		event = event.Str("request_id", err.RequestID)
	}
	if len(err.Fields) > 0 {
		event = event.Strs("fields", err.Fields)
	}
	for k, v := range err.Context {
		event = event.Interface(k, v)
	}
	if err.Err != nil {
		event = event.Err(err.Err)
	}
	event.Msg(err.Message)
}

package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

// InternalErrorMessage replaces the message of every 5xx response.
const InternalErrorMessage = "internal server error"

// Envelope is the JSON body of every API response.
type Envelope struct {
	Success       bool                `json:"success"`
	Data          any                 `json:"data,omitempty"`
	Count         *int                `json:"count,omitempty"`
	Pagination    *domain.PageInfo    `json:"pagination,omitempty"`
	Message       string              `json:"message,omitempty"`
	Error         string              `json:"error,omitempty"`
	Code          string              `json:"code,omitempty"`
	RequestID     string              `json:"requestId,omitempty"`
	MissingFields []string            `json:"missingFields,omitempty"`
	Skipped       []domain.SkippedRow `json:"skipped,omitempty"`
}

// OK writes a successful envelope around data.
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// List writes an unpaginated listing with its count.
func List(c *gin.Context, items []*domain.VirtualItem) {
	count := len(items)
	c.JSON(http.StatusOK, Envelope{Success: true, Data: items, Count: &count})
}

// Page writes one page of a listing.
func Page(c *gin.Context, page *domain.Page) {
	count := len(page.Items)
	info := page.Info
	c.JSON(http.StatusOK, Envelope{Success: true, Data: page.Items, Count: &count, Pagination: &info})
}

// HandleError maps an error onto a status code and envelope. Messages of
// 5xx responses are replaced with a generic text; the error itself is
// attached to the gin context for the access log and the trace span.
func HandleError(reqCtx *gin.Context, err error, message string) {
	_ = reqCtx.Error(err)
	statusCode, resp := errorEnvelope(err, message)
	reqCtx.AbortWithStatusJSON(statusCode, resp)
}

// HandleImportError reports an import that stopped early. Rows stored before
// the failure stay in the catalog, so their count is part of the envelope.
func HandleImportError(reqCtx *gin.Context, err error, message string, result *domain.ImportResult) {
	_ = reqCtx.Error(err)
	statusCode, resp := errorEnvelope(err, message)
	if result != nil {
		count := len(result.Imported)
		resp.Count = &count
		resp.Skipped = result.Skipped
	}
	reqCtx.AbortWithStatusJSON(statusCode, resp)
}

func errorEnvelope(err error, message string) (int, Envelope) {
	var platformErr *platformerrors.PlatformError
	if !errors.As(err, &platformErr) {
		return http.StatusInternalServerError, Envelope{
			Error:   InternalErrorMessage,
			Message: message,
		}
	}

	statusCode := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())
	resp := Envelope{
		Code:          platformErr.GetUUID(),
		Error:         platformErr.Message,
		RequestID:     platformErr.GetRequestID(),
		MissingFields: platformErr.Fields,
	}
	if statusCode >= http.StatusInternalServerError {
		resp.Error = InternalErrorMessage
		resp.Message = message
		resp.MissingFields = nil
	}
	return statusCode, resp
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	err := platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, uuid)
	HandleError(reqCtx, err, message)
}

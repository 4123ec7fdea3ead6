package requests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/itemcsv"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

// ImportRequest carries rows already parsed on the client.
type ImportRequest struct {
	CSVData []itemcsv.Row `json:"csvData"`
}

// GetFilterFromQuery reads the attribute filters and search term.
func GetFilterFromQuery(reqCtx *gin.Context) domain.Filter {
	return domain.Filter{
		Platform:             reqCtx.Query("platform"),
		IntellectualProperty: reqCtx.Query("intellectualProperty"),
		Category:             reqCtx.Query("category"),
		Type:                 reqCtx.Query("type"),
		Collection:           reqCtx.Query("collection"),
		Series:               reqCtx.Query("series"),
		Artist:               reqCtx.Query("artist"),
		Rarity:               reqCtx.Query("rarity"),
		Search:               reqCtx.Query("search"),
	}
}

// GetPageFromQuery returns nil when neither page nor limit is present, which
// selects the unpaginated listing. Limits above maxLimit are capped.
func GetPageFromQuery(reqCtx *gin.Context, defaultLimit, maxLimit int) (*domain.PageRequest, error) {
	pageStr, hasPage := reqCtx.GetQuery("page")
	limitStr, hasLimit := reqCtx.GetQuery("limit")
	if !hasPage && !hasLimit {
		return nil, nil
	}

	page := 1
	if hasPage {
		n, err := strconv.Atoi(strings.TrimSpace(pageStr))
		if err != nil || n < 1 {
			return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
				"invalid page number", err, "5dff260c-0e2f-46e0-9802-1cd2ce3d6809")
		}
		page = n
	}

	limit := defaultLimit
	if hasLimit {
		n, err := strconv.Atoi(strings.TrimSpace(limitStr))
		if err != nil || n < 1 {
			return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
				"invalid limit number", err, "0b5f9309-3b6d-4404-bc98-e1228c7b379c")
		}
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	req := &domain.PageRequest{Page: page, Limit: limit}
	if !req.InRange() {
		return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"page number out of range", nil, "7e2d9b14-3c5a-4f86-a0e1-95b3c6d2f748")
	}
	return req, nil
}

// ReadBody reads at most maxBytes of the request body.
func ReadBody(reqCtx *gin.Context, maxBytes int64) ([]byte, error) {
	reqCtx.Request.Body = http.MaxBytesReader(reqCtx.Writer, reqCtx.Request.Body, maxBytes)
	data, err := io.ReadAll(reqCtx.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
				"request body too large", err, "a3155de7-8424-452f-ae64-6aeacdc740d3")
		}
		return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"failed to read request body", err, "98bf1aa5-db22-4c09-95fa-8a79c457b5d2")
	}
	return data, nil
}

// DecodeJSON reads and decodes a JSON body of at most maxBytes.
func DecodeJSON(reqCtx *gin.Context, maxBytes int64, dst any) error {
	data, err := ReadBody(reqCtx, maxBytes)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"invalid JSON body", err, "71887fa3-0d93-49c7-97b2-90826e64d4cd")
	}
	return nil
}

// ReadCSVUpload returns the CSV text from a multipart "file" field, or the
// raw body for any other content type.
func ReadCSVUpload(reqCtx *gin.Context, maxBytes int64) (string, error) {
	if !strings.HasPrefix(reqCtx.ContentType(), "multipart/form-data") {
		data, err := ReadBody(reqCtx, maxBytes)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	reqCtx.Request.Body = http.MaxBytesReader(reqCtx.Writer, reqCtx.Request.Body, maxBytes)
	fileHeader, err := reqCtx.FormFile("file")
	if err != nil {
		return "", platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"a CSV file is required in the \"file\" field", err, "94e0cfcd-7096-4cda-8b23-51f47930d922")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"failed to open uploaded file", err, "d43c1a9b-2371-4b7f-a52f-5187ae4d8b09")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes))
	if err != nil {
		return "", platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"failed to read uploaded file", err, "8fe10fd5-7f07-40a1-a8bc-600012824b14")
	}
	return string(data), nil
}

package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/handlers"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/requests"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/responses"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

func registerVirtualItemRoutes(router gin.IRoutes, handler *handlers.VirtualItemHandler, cfg *config.Config) {
	router.GET("", listVirtualItems(handler, cfg))
	router.POST("", createVirtualItem(handler, cfg))
	router.GET("/filters", getFilterOptions(handler))
	router.GET("/stats", getStats(handler))
	router.GET("/export", exportVirtualItems(handler))
	router.GET("/export.csv", exportVirtualItemsCSV(handler))
	router.POST("/import", importVirtualItems(handler, cfg))
	router.POST("/import/csv", importVirtualItemsCSV(handler, cfg))
	router.GET("/:id", getVirtualItem(handler))
	router.PUT("/:id", updateVirtualItem(handler, cfg))
	router.DELETE("/:id", deleteVirtualItem(handler))
}

// listVirtualItems godoc
// @Summary      List virtual items
// @Description  Filters are case-insensitive substring matches combined with AND; search spans title, description, intellectual property and artist. Supplying page or limit switches to paginated mode.
// @Tags         virtual-items
// @Produce      json
// @Param        platform              query  string  false  "Platform filter"
// @Param        intellectualProperty  query  string  false  "Intellectual property filter"
// @Param        category              query  string  false  "Category filter"
// @Param        type                  query  string  false  "Type filter"
// @Param        collection            query  string  false  "Collection filter"
// @Param        series                query  string  false  "Series filter"
// @Param        artist                query  string  false  "Artist filter"
// @Param        rarity                query  string  false  "Rarity filter"
// @Param        search                query  string  false  "Free-text search"
// @Param        page                  query  int     false  "1-based page number"
// @Param        limit                 query  int     false  "Page size"
// @Success      200  {object}  responses.Envelope
// @Failure      400  {object}  responses.Envelope
// @Failure      500  {object}  responses.Envelope
// @Router       /v1/virtual-items [get]
func listVirtualItems(handler *handlers.VirtualItemHandler, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := requests.GetFilterFromQuery(c)
		page, err := requests.GetPageFromQuery(c, cfg.DefaultPageSize, cfg.MaxPageSize)
		if err != nil {
			responses.HandleError(c, err, "invalid pagination")
			return
		}

		if page == nil {
			items, err := handler.List(c.Request.Context(), filter)
			if err != nil {
				responses.HandleError(c, err, "failed to fetch virtual items")
				return
			}
			responses.List(c, items)
			return
		}

		result, err := handler.ListPage(c.Request.Context(), filter, *page)
		if err != nil {
			responses.HandleError(c, err, "failed to fetch virtual items")
			return
		}
		responses.Page(c, result)
	}
}

// createVirtualItem godoc
// @Summary      Create a virtual item
// @Description  platform, title, category and type are required. id and timestamps are assigned by the server.
// @Tags         virtual-items
// @Accept       json
// @Produce      json
// @Param        item  body      map[string]string  true  "Item fields keyed by JSON name"
// @Success      201   {object}  responses.Envelope
// @Failure      400   {object}  responses.Envelope
// @Failure      500   {object}  responses.Envelope
// @Router       /v1/virtual-items [post]
func createVirtualItem(handler *handlers.VirtualItemHandler, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields domain.Fields
		if err := requests.DecodeJSON(c, cfg.MaxImportBytes, &fields); err != nil {
			responses.HandleError(c, err, "invalid request body")
			return
		}
		item, err := handler.Create(c.Request.Context(), fields)
		if err != nil {
			responses.HandleError(c, err, "failed to create virtual item")
			return
		}
		responses.OK(c, http.StatusCreated, item)
	}
}

// getVirtualItem godoc
// @Summary      Fetch a virtual item
// @Tags         virtual-items
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Failure      500  {object}  responses.Envelope
// @Router       /v1/virtual-items/{id} [get]
func getVirtualItem(handler *handlers.VirtualItemHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := handler.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			responses.HandleError(c, err, "failed to fetch virtual item")
			return
		}
		responses.OK(c, http.StatusOK, item)
	}
}

// updateVirtualItem godoc
// @Summary      Update a virtual item
// @Description  Only supplied fields change. id, createdAt and updatedAt in the body are ignored. Required fields cannot be blanked.
// @Tags         virtual-items
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Item id"
// @Param        item  body      map[string]string  true  "Fields to change"
// @Success      200   {object}  responses.Envelope
// @Failure      400   {object}  responses.Envelope
// @Failure      404   {object}  responses.Envelope
// @Failure      500   {object}  responses.Envelope
// @Router       /v1/virtual-items/{id} [put]
func updateVirtualItem(handler *handlers.VirtualItemHandler, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields domain.Fields
		if err := requests.DecodeJSON(c, cfg.MaxImportBytes, &fields); err != nil {
			responses.HandleError(c, err, "invalid request body")
			return
		}
		item, err := handler.Update(c.Request.Context(), c.Param("id"), fields)
		if err != nil {
			responses.HandleError(c, err, "failed to update virtual item")
			return
		}
		responses.OK(c, http.StatusOK, item)
	}
}

// deleteVirtualItem godoc
// @Summary      Delete a virtual item
// @Tags         virtual-items
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Failure      500  {object}  responses.Envelope
// @Router       /v1/virtual-items/{id} [delete]
func deleteVirtualItem(handler *handlers.VirtualItemHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler.Delete(c.Request.Context(), c.Param("id")); err != nil {
			responses.HandleError(c, err, "failed to delete virtual item")
			return
		}
		c.JSON(http.StatusOK, responses.Envelope{Success: true, Message: "Virtual item deleted successfully"})
	}
}

// getFilterOptions godoc
// @Summary      Distinct values per filterable field
// @Tags         virtual-items
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      500  {object}  responses.Envelope
// @Router       /v1/virtual-items/filters [get]
func getFilterOptions(handler *handlers.VirtualItemHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := handler.FilterOptions(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to fetch filter options")
			return
		}
		responses.OK(c, http.StatusOK, opts)
	}
}

// getStats godoc
// @Summary      Aggregate counts
// @Description  Totals grouped by platform, category and rarity, largest group first. Blank rarity is reported as Unknown.
// @Tags         virtual-items
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      500  {object}  responses.Envelope
// @Router       /v1/virtual-items/stats [get]
func getStats(handler *handlers.VirtualItemHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := handler.Stats(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to fetch statistics")
			return
		}
		responses.OK(c, http.StatusOK, stats)
	}
}

// exportVirtualItems godoc
// @Summary      Export as row objects
// @Description  Every item as an object keyed by spreadsheet column label, oldest first.
// @Tags         virtual-items
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Failure      500  {object}  responses.Envelope
// @Router       /v1/virtual-items/export [get]
func exportVirtualItems(handler *handlers.VirtualItemHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := handler.Export(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to export virtual items")
			return
		}
		count := len(rows)
		c.JSON(http.StatusOK, responses.Envelope{Success: true, Data: rows, Count: &count})
	}
}

// exportVirtualItemsCSV godoc
// @Summary      Export as CSV file
// @Tags         virtual-items
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      500  {object}  responses.Envelope
// @Router       /v1/virtual-items/export.csv [get]
func exportVirtualItemsCSV(handler *handlers.VirtualItemHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := handler.ExportCSV(c.Request.Context(), &buf); err != nil {
			responses.HandleError(c, err, "failed to export virtual items")
			return
		}
		filename := "virtual-items-" + time.Now().UTC().Format("2006-01-02") + ".csv"
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}

// importVirtualItems godoc
// @Summary      Import row objects
// @Description  Rows keyed by spreadsheet column label. Rows without Platform or Title are skipped and reported.
// @Tags         virtual-items
// @Accept       json
// @Produce      json
// @Param        body  body      requests.ImportRequest  true  "Rows to import"
// @Success      200   {object}  responses.Envelope
// @Failure      400   {object}  responses.Envelope
// @Failure      500   {object}  responses.Envelope
// @Router       /v1/virtual-items/import [post]
func importVirtualItems(handler *handlers.VirtualItemHandler, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ImportRequest
		if err := requests.DecodeJSON(c, cfg.MaxImportBytes, &req); err != nil {
			responses.HandleError(c, err, "invalid request body")
			return
		}
		if req.CSVData == nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "csvData must be an array of rows", "c214c132-7121-44f4-9684-c222d4a1202b")
			return
		}
		result, err := handler.ImportRows(c.Request.Context(), req.CSVData)
		writeImportResult(c, result, err)
	}
}

// importVirtualItemsCSV godoc
// @Summary      Import a CSV file
// @Description  Accepts a multipart upload in the "file" field or raw CSV text as the body. Lines before the header row are ignored.
// @Tags         virtual-items
// @Accept       multipart/form-data
// @Accept       text/csv
// @Produce      json
// @Param        file  formData  file  false  "CSV file"
// @Success      200   {object}  responses.Envelope
// @Failure      400   {object}  responses.Envelope
// @Failure      500   {object}  responses.Envelope
// @Router       /v1/virtual-items/import/csv [post]
func importVirtualItemsCSV(handler *handlers.VirtualItemHandler, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		text, err := requests.ReadCSVUpload(c, cfg.MaxImportBytes)
		if err != nil {
			responses.HandleError(c, err, "invalid upload")
			return
		}
		result, err := handler.ImportCSV(c.Request.Context(), text)
		writeImportResult(c, result, err)
	}
}

func writeImportResult(c *gin.Context, result *domain.ImportResult, err error) {
	if err != nil {
		responses.HandleImportError(c, err, "failed to import virtual items", result)
		return
	}
	count := len(result.Imported)
	c.JSON(http.StatusOK, responses.Envelope{
		Success: true,
		Data:    result.Imported,
		Count:   &count,
		Message: importMessage(count, len(result.Skipped)),
		Skipped: result.Skipped,
	})
}

func importMessage(imported, skipped int) string {
	msg := fmt.Sprintf("Imported %d items", imported)
	if skipped > 0 {
		msg += fmt.Sprintf(", skipped %d rows", skipped)
	}
	return msg
}

// Package ui serves the server-rendered browser console for the catalog.
package ui

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Usamahafiz8/nft-distribution-tool/internal/config"
	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/handlers"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/requests"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/interfaces/httpserver/responses"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

var notices = map[string]string{
	"created": "Item created.",
	"updated": "Item updated.",
	"deleted": "Item deleted.",
}

type pageData struct {
	Title string
	Flash string
	Error string
}

type filterControl struct {
	Key      string
	Label    string
	Options  []string
	Selected string
}

type listPage struct {
	pageData
	Filter    domain.Filter
	Controls  []filterControl
	Items     []*domain.VirtualItem
	Info      domain.PageInfo
	PageSizes []int
}

// PageURL links to another page of the same filtered listing.
func (p *listPage) PageURL(page int) string {
	values := url.Values{}
	for _, term := range p.Filter.Terms() {
		values.Set(term.Field.Key, term.Value)
	}
	if search := p.Filter.SearchTerm(); search != "" {
		values.Set("search", search)
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(p.Info.Limit))
	return "/?" + values.Encode()
}

type formField struct {
	Key      string
	Label    string
	Value    string
	Required bool
	Missing  bool
}

type formPage struct {
	pageData
	Action string
	ItemID string
	Fields []formField
}

type importPage struct {
	pageData
	Result *domain.ImportResult
}

type statsPage struct {
	pageData
	Stats *domain.Stats
}

// Console renders the browser pages on top of the same handler the JSON API
// uses.
type Console struct {
	handler   *handlers.VirtualItemHandler
	templates *Templates
	cfg       *config.Config
	log       zerolog.Logger
}

// NewConsole builds the console.
func NewConsole(handler *handlers.VirtualItemHandler, templates *Templates, cfg *config.Config, log zerolog.Logger) *Console {
	return &Console{
		handler:   handler,
		templates: templates,
		cfg:       cfg,
		log:       log.With().Str("component", "console").Logger(),
	}
}

// Register attaches the console pages to the engine.
func (con *Console) Register(router gin.IRoutes) {
	router.GET("/", con.listItems)
	router.GET("/items/new", con.newItem)
	router.POST("/items", con.createItem)
	router.GET("/items/:id/edit", con.editItem)
	router.POST("/items/:id", con.updateItem)
	router.POST("/items/:id/delete", con.deleteItem)
	router.GET("/import", con.importForm)
	router.POST("/import", con.importUpload)
	router.GET("/stats", con.stats)
}

func (con *Console) listItems(c *gin.Context) {
	ctx := c.Request.Context()
	data := &listPage{
		pageData:  pageData{Title: "Items", Flash: notices[c.Query("notice")]},
		Filter:    requests.GetFilterFromQuery(c),
		PageSizes: domain.PageSizes,
	}

	page, err := requests.GetPageFromQuery(c, con.cfg.DefaultPageSize, con.cfg.MaxPageSize)
	if err != nil {
		data.Error = errorMessage(err)
		page = nil
	}
	if page == nil {
		page = &domain.PageRequest{Page: 1, Limit: con.cfg.DefaultPageSize}
	}

	result, err := con.handler.ListPage(ctx, data.Filter, *page)
	if err != nil {
		con.renderError(c, err)
		return
	}
	options, err := con.handler.FilterOptions(ctx)
	if err != nil {
		con.renderError(c, err)
		return
	}

	data.Items = result.Items
	data.Info = result.Info
	data.Controls = filterControls(data.Filter, options)
	con.render(c, http.StatusOK, "items", data)
}

func (con *Console) newItem(c *gin.Context) {
	con.render(c, http.StatusOK, "item_form", &formPage{
		pageData: pageData{Title: "New item"},
		Action:   "/items",
		Fields:   formFields(nil, nil),
	})
}

func (con *Console) createItem(c *gin.Context) {
	fields := fieldsFromForm(c)
	if _, err := con.handler.Create(c.Request.Context(), fields); err != nil {
		con.renderFormError(c, err, &formPage{
			pageData: pageData{Title: "New item"},
			Action:   "/items",
		}, fields)
		return
	}
	c.Redirect(http.StatusSeeOther, "/?notice=created")
}

func (con *Console) editItem(c *gin.Context) {
	item, err := con.handler.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		con.renderError(c, err)
		return
	}
	con.render(c, http.StatusOK, "item_form", &formPage{
		pageData: pageData{Title: "Edit " + item.Title},
		Action:   "/items/" + item.ID,
		ItemID:   item.ID,
		Fields:   formFields(item.Fields(), nil),
	})
}

func (con *Console) updateItem(c *gin.Context) {
	id := c.Param("id")
	fields := fieldsFromForm(c)
	if _, err := con.handler.Update(c.Request.Context(), id, fields); err != nil {
		con.renderFormError(c, err, &formPage{
			pageData: pageData{Title: "Edit item"},
			Action:   "/items/" + id,
			ItemID:   id,
		}, fields)
		return
	}
	c.Redirect(http.StatusSeeOther, "/?notice=updated")
}

func (con *Console) deleteItem(c *gin.Context) {
	if err := con.handler.Delete(c.Request.Context(), c.Param("id")); err != nil {
		con.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/?notice=deleted")
}

func (con *Console) importForm(c *gin.Context) {
	con.render(c, http.StatusOK, "import", &importPage{pageData: pageData{Title: "Import"}})
}

func (con *Console) importUpload(c *gin.Context) {
	data := &importPage{pageData: pageData{Title: "Import"}}

	text, err := requests.ReadCSVUpload(c, con.cfg.MaxImportBytes)
	if err != nil {
		_ = c.Error(err)
		data.Error = errorMessage(err)
		con.render(c, errorStatus(err), "import", data)
		return
	}

	result, err := con.handler.ImportCSV(c.Request.Context(), text)
	data.Result = result
	if err != nil {
		_ = c.Error(err)
		data.Error = errorMessage(err)
		con.render(c, errorStatus(err), "import", data)
		return
	}
	con.render(c, http.StatusOK, "import", data)
}

func (con *Console) stats(c *gin.Context) {
	stats, err := con.handler.Stats(c.Request.Context())
	if err != nil {
		con.renderError(c, err)
		return
	}
	con.render(c, http.StatusOK, "stats", &statsPage{pageData: pageData{Title: "Statistics"}, Stats: stats})
}

func (con *Console) renderFormError(c *gin.Context, err error, data *formPage, submitted domain.Fields) {
	_ = c.Error(err)
	var missing []string
	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil {
		missing = platformErr.Fields
	}
	data.Error = errorMessage(err)
	data.Fields = formFields(submitted, missing)
	con.render(c, errorStatus(err), "item_form", data)
}

func (con *Console) renderError(c *gin.Context, err error) {
	_ = c.Error(err)
	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil && errorStatus(err) >= http.StatusInternalServerError {
		platformerrors.LogError(con.log, platformErr)
	}
	con.render(c, errorStatus(err), "error", &pageData{Title: "Error", Error: errorMessage(err)})
}

func (con *Console) render(c *gin.Context, status int, page string, data any) {
	var buf bytes.Buffer
	if err := con.templates.Render(&buf, page, data); err != nil {
		con.log.Error().Err(err).Str("page", page).Msg("render page")
		c.String(http.StatusInternalServerError, responses.InternalErrorMessage)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func errorStatus(err error) int {
	platformErr := platformerrors.GetPlatformError(err)
	if platformErr == nil {
		return http.StatusInternalServerError
	}
	return platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())
}

func errorMessage(err error) string {
	platformErr := platformerrors.GetPlatformError(err)
	if platformErr == nil || errorStatus(err) >= http.StatusInternalServerError {
		return responses.InternalErrorMessage
	}
	return platformErr.Message
}

// fieldsFromForm collects every schema field present in the submitted form.
func fieldsFromForm(c *gin.Context) domain.Fields {
	fields := domain.Fields{}
	for _, field := range domain.Schema() {
		if value, ok := c.GetPostForm(field.Key); ok {
			fields[field.Key] = value
		}
	}
	return fields
}

func formFields(values domain.Fields, missing []string) []formField {
	required := make(map[string]bool, len(domain.RequiredFields))
	for _, key := range domain.RequiredFields {
		required[key] = true
	}
	isMissing := make(map[string]bool, len(missing))
	for _, key := range missing {
		isMissing[key] = true
	}

	schema := domain.Schema()
	out := make([]formField, 0, len(schema))
	for _, field := range schema {
		out = append(out, formField{
			Key:      field.Key,
			Label:    field.Label,
			Value:    values[field.Key],
			Required: required[field.Key],
			Missing:  isMissing[field.Key],
		})
	}
	return out
}

func filterControls(filter domain.Filter, options *domain.FilterOptions) []filterControl {
	selected := make(map[string]string)
	for _, term := range filter.Terms() {
		selected[term.Field.Key] = term.Value
	}

	controls := make([]filterControl, 0, len(domain.FilterableFields))
	for _, key := range domain.FilterableFields {
		field, _ := domain.LookupField(key)
		controls = append(controls, filterControl{
			Key:      key,
			Label:    field.Label,
			Options:  optionsFor(options, key),
			Selected: selected[key],
		})
	}
	return controls
}

func optionsFor(options *domain.FilterOptions, key string) []string {
	switch key {
	case domain.KeyPlatform:
		return options.Platforms
	case domain.KeyIntellectualProperty:
		return options.IntellectualProperties
	case domain.KeyCategory:
		return options.Categories
	case domain.KeyType:
		return options.Types
	case domain.KeyCollection:
		return options.Collections
	case domain.KeySeries:
		return options.Series
	case domain.KeyArtist:
		return options.Artists
	case domain.KeyRarity:
		return options.Rarities
	}
	return nil
}

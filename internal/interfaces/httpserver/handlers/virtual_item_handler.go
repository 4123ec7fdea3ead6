package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/infrastructure/metrics"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/itemcsv"
	"github.com/Usamahafiz8/nft-distribution-tool/internal/utils/platformerrors"
)

// VirtualItemHandler invokes domain logic for virtual item use cases and
// translates between the domain and the spreadsheet representation.
type VirtualItemHandler struct {
	service domain.Service
	log     zerolog.Logger
}

// NewVirtualItemHandler wires dependencies for virtual item routes.
func NewVirtualItemHandler(service domain.Service, log zerolog.Logger) *VirtualItemHandler {
	return &VirtualItemHandler{
		service: service,
		log:     log.With().Str("component", "virtual-item-handler").Logger(),
	}
}

func (h *VirtualItemHandler) Create(ctx context.Context, fields domain.Fields) (*domain.VirtualItem, error) {
	item, err := h.service.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	metrics.RecordItemCreated()
	h.log.Info().Str("item_id", item.ID).Msg("virtual item created")
	return item, nil
}

func (h *VirtualItemHandler) Get(ctx context.Context, id string) (*domain.VirtualItem, error) {
	return h.service.GetByID(ctx, id)
}

func (h *VirtualItemHandler) List(ctx context.Context, filter domain.Filter) ([]*domain.VirtualItem, error) {
	return h.service.List(ctx, filter)
}

func (h *VirtualItemHandler) ListPage(ctx context.Context, filter domain.Filter, page domain.PageRequest) (*domain.Page, error) {
	return h.service.ListPage(ctx, filter, page)
}

func (h *VirtualItemHandler) Update(ctx context.Context, id string, fields domain.Fields) (*domain.VirtualItem, error) {
	item, err := h.service.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	metrics.RecordItemUpdated()
	h.log.Info().Str("item_id", id).Msg("virtual item updated")
	return item, nil
}

func (h *VirtualItemHandler) Delete(ctx context.Context, id string) error {
	if err := h.service.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordItemDeleted()
	h.log.Info().Str("item_id", id).Msg("virtual item deleted")
	return nil
}

func (h *VirtualItemHandler) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	return h.service.FilterOptions(ctx)
}

func (h *VirtualItemHandler) Stats(ctx context.Context) (*domain.Stats, error) {
	return h.service.Stats(ctx)
}

// Export returns every item as a spreadsheet row, oldest first.
func (h *VirtualItemHandler) Export(ctx context.Context) ([]itemcsv.Row, error) {
	items, err := h.service.Export(ctx)
	if err != nil {
		return nil, err
	}
	return itemcsv.FromItems(items), nil
}

// ExportCSV streams the full catalog as CSV text.
func (h *VirtualItemHandler) ExportCSV(ctx context.Context, w io.Writer) error {
	items, err := h.service.Export(ctx)
	if err != nil {
		return err
	}
	if err := itemcsv.EncodeItems(w, items); err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeInternal,
			"failed to encode CSV export", err, "226dbc4a-8c29-43f8-a9a4-aa562ba09dd7")
	}
	return nil
}

// ImportRows creates one item per accepted row, in order.
func (h *VirtualItemHandler) ImportRows(ctx context.Context, rows []itemcsv.Row) (*domain.ImportResult, error) {
	result, err := h.service.Import(ctx, itemcsv.ToFieldsList(rows))
	if result != nil {
		metrics.RecordImport(len(result.Imported), len(result.Skipped))
	}
	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil {
		platformerrors.LogError(h.log, platformErr)
	}
	return result, err
}

// ImportCSV decodes raw spreadsheet text and imports its rows.
func (h *VirtualItemHandler) ImportCSV(ctx context.Context, text string) (*domain.ImportResult, error) {
	rows, err := itemcsv.Decode(text)
	if err != nil {
		if errors.Is(err, itemcsv.ErrNoHeaderRow) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
				err.Error(), err, "0232ef48-3738-4197-a46e-6147b464f2b3")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to parse CSV")
	}
	return h.ImportRows(ctx, rows)
}

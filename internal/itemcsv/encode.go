package itemcsv

import (
	"encoding/csv"
	"io"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
)

// Encode writes a header of schema labels followed by one record per row.
func Encode(w io.Writer, rows []Row) error {
	labels := domain.Labels()
	cw := csv.NewWriter(w)
	if err := cw.Write(labels); err != nil {
		return err
	}
	record := make([]string, len(labels))
	for _, row := range rows {
		for i, label := range labels {
			record[i] = row[label]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeItems writes items in the given order.
func EncodeItems(w io.Writer, items []*domain.VirtualItem) error {
	return Encode(w, FromItems(items))
}

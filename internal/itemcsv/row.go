// Package itemcsv converts between catalog spreadsheets and virtual items.
package itemcsv

import (
	"bytes"
	"encoding/json"
	"sort"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
)

// Row is one spreadsheet line keyed by column label.
type Row map[string]string


// ToFields maps labels onto item keys. Unknown labels are dropped.
func (r Row) ToFields() domain.Fields {
	fields := make(domain.Fields, len(r))
	for label, value := range r {
		if f, ok := domain.LookupLabel(label); ok {
			fields[f.Key] = value
		}
	}
	return fields
}

// FromItem builds a full row for an item.
func FromItem(item *domain.VirtualItem) Row {
	row := make(Row, len(domain.Schema()))
	for _, f := range domain.Schema() {
		row[f.Label], _ = item.Value(f.Key)
	}
	return row
}

// FromItems converts a slice of items.
func FromItems(items []*domain.VirtualItem) []Row {
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = FromItem(item)
	}
	return rows
}

// ToFieldsList converts rows for a bulk import.
func ToFieldsList(rows []Row) []domain.Fields {
	out := make([]domain.Fields, len(rows))
	for i, row := range rows {
		out[i] = row.ToFields()
	}
	return out
}

// orderedLabels lists the labels present in r: schema labels in schema
// order, then any others alphabetically.
func (r Row) orderedLabels() []string {
	labels := make([]string, 0, len(r))
	for _, label := range domain.Labels() {
		if _, ok := r[label]; ok {
			labels = append(labels, label)
		}
	}
	var extra []string
	for label := range r {
		if _, ok := domain.LookupLabel(label); !ok {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	return append(labels, extra...)
}

// MarshalJSON writes the keys in spreadsheet column order.
func (r Row) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range r.orderedLabels() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r[label])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the same scalar cell values as domain.Fields.
func (r *Row) UnmarshalJSON(data []byte) error {
	var fields domain.Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = Row(fields)
	return nil
}

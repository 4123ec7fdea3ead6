package itemcsv

import (
	"errors"
	"strings"
)

// ErrNoHeaderRow is returned when no line names both Platform and Title.
var ErrNoHeaderRow = errors.New("could not find header row with Platform and Title columns")

const bom = "\uFEFF"

// Decode reads a catalog spreadsheet export. Lines before the header are
// treated as preamble and dropped, as are blank lines after it. Fields are
// matched to header cells by position. The parser is line oriented, so
// quoted values cannot span lines.
func Decode(text string) ([]Row, error) {
	text = strings.TrimPrefix(text, bom)
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	headerAt := -1
	for i, line := range lines {
		if strings.Contains(line, "Platform") && strings.Contains(line, "Title") {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, ErrNoHeaderRow
	}

	// Header cells go through the quote-aware parser too: the exported
	// "Bonus Media URL (e.g., YouTube link)" label contains a comma.
	header := ParseLine(lines[headerAt])
	for i, cell := range header {
		header[i] = strings.TrimSpace(strings.ReplaceAll(cell, `"`, ""))
	}

	rows := []Row{}
	for _, line := range lines[headerAt+1:] {
		if isBlankLine(line) {
			continue
		}
		cells := ParseLine(line)
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			row[name] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlankLine(line string) bool {
	for _, cell := range strings.Split(line, ",") {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ParseLine splits one CSV line. A double quote toggles quoted mode, a
// doubled quote inside quoted mode is a literal quote, and commas only
// separate cells outside quotes. Cells are trimmed.
func ParseLine(line string) []string {
	var (
		cells   []string
		current strings.Builder
		quoted  bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"' && quoted && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			i++
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	return append(cells, strings.TrimSpace(current.String()))
}

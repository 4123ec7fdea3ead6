package itemcsv

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Usamahafiz8/nft-distribution-tool/internal/domain/virtualitem"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`a,b,c`, []string{"a", "b", "c"}},
		{` a , b ,`, []string{"a", "b", ""}},
		{`"x, y",z`, []string{"x, y", "z"}},
		{`"say ""hi""",2`, []string{`say "hi"`, "2"}},
		{`""`, []string{""}},
		{``, []string{""}},
		{`a"b"c,d`, []string{"abc", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLine(tt.line))
		})
	}
}

func TestDecodeSkipsPreambleAndBlankLines(t *testing.T) {
	text := "\uFEFFVirtual Items Sheet\r\n" +
		",,,\r\n" +
		"OPTIONAL,,,\r\n" +
		"\"Platform\", Title ,Category,Rarity\r\n" +
		"Roblox,\"Sword, Gold\",Weapon\r\n" +
		"\r\n" +
		" , , , \r\n" +
		"Fortnite,Cape,Wearable,Rare,extra\r\n"

	rows, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{"Platform": "Roblox", "Title": "Sword, Gold", "Category": "Weapon", "Rarity": ""}, rows[0])
	assert.Equal(t, Row{"Platform": "Fortnite", "Title": "Cape", "Category": "Wearable", "Rarity": "Rare"}, rows[1])
}

func TestDecodeRequiresHeader(t *testing.T) {
	_, err := Decode("Name,Description\nfoo,bar\n")
	assert.ErrorIs(t, err, ErrNoHeaderRow)

	_, err = Decode("")
	assert.ErrorIs(t, err, ErrNoHeaderRow)

	_, err = Decode("platform,title\n")
	assert.ErrorIs(t, err, ErrNoHeaderRow)
}

func TestDecodeHeaderOnly(t *testing.T) {
	rows, err := Decode("Platform,Title\n")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRowToFields(t *testing.T) {
	row := Row{"Platform": "Roblox", "Title": "Hat", "Sub-Type": "Mythic", "Unknown Column": "x"}
	assert.Equal(t, domain.Fields{"platform": "Roblox", "title": "Hat", "subType": "Mythic"}, row.ToFields())
}

func TestRoundTrip(t *testing.T) {
	item := &domain.VirtualItem{}
	for _, f := range domain.Schema() {
		item.SetValue(f.Key, "value of "+f.Key)
	}
	item.Title = `The "Best", Hat`
	item.Description = "commas, and quotes \"\" galore"
	item.Comments = ""

	var buf bytes.Buffer
	require.NoError(t, EncodeItems(&buf, []*domain.VirtualItem{item}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"Bonus Media URL (e.g., YouTube link)"`)

	rows, err := Decode("Exported catalog\n" + buf.String())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	fields := rows[0].ToFields()
	for _, f := range domain.Schema() {
		want, _ := item.Value(f.Key)
		assert.Equal(t, want, fields[f.Key], f.Key)
	}
}

func TestRowJSONKeepsColumnOrder(t *testing.T) {
	row := Row{"Title": "Hat", "zzz": "1", "Platform": "Roblox", "Comments": "c", "aaa": "2"}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"Platform":"Roblox","Title":"Hat","Comments":"c","aaa":"2","zzz":"1"}`, string(data))
}

func TestRowJSONAcceptsScalars(t *testing.T) {
	var rows []Row
	err := json.Unmarshal([]byte(`[{"Platform":"Roblox","Mint Supply":1000,"Include Serial #":true,"Rarity":null}]`), &rows)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"Platform": "Roblox", "Mint Supply": "1000", "Include Serial #": "true", "Rarity": ""}, rows[0])

	err = json.Unmarshal([]byte(`[{"Platform":{"nested":1}}]`), &rows)
	assert.Error(t, err)
}

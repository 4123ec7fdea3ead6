package virtualitem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaIsConsistent(t *testing.T) {
	keys := map[string]bool{}
	labels := map[string]bool{}
	columns := map[string]bool{}

	item := &VirtualItem{}
	for _, f := range Schema() {
		assert.False(t, keys[f.Key], "duplicate key %s", f.Key)
		assert.False(t, labels[f.Label], "duplicate label %s", f.Label)
		assert.False(t, columns[f.Column], "duplicate column %s", f.Column)
		keys[f.Key], labels[f.Label], columns[f.Column] = true, true, true

		assert.True(t, item.SetValue(f.Key, "v-"+f.Key), "no struct field for %s", f.Key)
	}
	assert.Len(t, keys, 44)

	for key, value := range item.Fields() {
		assert.Equal(t, "v-"+key, value)
	}
}

func TestLabelsKeepSpreadsheetOrder(t *testing.T) {
	labels := Labels()
	require.Len(t, labels, 44)
	assert.Equal(t, "Platform", labels[0])
	assert.Equal(t, "Title", labels[7])
	assert.Equal(t, "Transferabilty", labels[24])
	assert.Equal(t, "Comments", labels[43])
}

func TestLookup(t *testing.T) {
	f, ok := LookupLabel("Purchase Currency - 1")
	require.True(t, ok)
	assert.Equal(t, KeyPurchaseCurrency1, f.Key)
	assert.Equal(t, "purchase_currency1", f.Column)

	f, ok = LookupField(KeySet)
	require.True(t, ok)
	assert.Equal(t, "Set", f.Label)

	_, ok = LookupField("id")
	assert.False(t, ok)
	_, ok = LookupLabel("Transferability")
	assert.False(t, ok)
}

func TestGetSetUnknownKey(t *testing.T) {
	item := &VirtualItem{}
	assert.False(t, item.SetValue("createdAt", "x"))
	_, ok := item.Value("nope")
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	item := &VirtualItem{ID: "a", Title: "One"}
	c := item.Clone()
	c.Title = "Two"
	assert.Equal(t, "One", item.Title)

	var nilItem *VirtualItem
	assert.Nil(t, nilItem.Clone())
}

func TestFieldsKnownAndMissing(t *testing.T) {
	in := Fields{"id": "x", "createdAt": "y", "title": "T", "platform": "  "}
	known := in.Known()
	assert.Equal(t, Fields{"title": "T", "platform": "  "}, known)
	assert.Equal(t, []string{KeyPlatform, KeyCategory, KeyType}, known.Missing(RequiredFields))
}

package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed), doc)
	assert.Equal(t, "2.0", parsed.Swagger)
	assert.Equal(t, "Virtual Item Catalog API", parsed.Info.Title)

	for _, path := range []string{"/v1/virtual-items/import", "/v1/virtual-items/import/csv"} {
		responses := parsed.Paths[path]["post"].Responses
		assert.Contains(t, responses, "200", path)
		assert.NotContains(t, responses, "201", path)
	}
	assert.Contains(t, parsed.Paths["/v1/virtual-items"]["post"].Responses, "201")
}

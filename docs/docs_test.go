package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsIsValidJSON(t *testing.T) {
	var catalogue map[string]struct {
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(Endpoints(), &catalogue))

	for _, key := range []string{"GET /api", "GET /api/articles", "DELETE /api/comments/:id", "GET /api/users/:username"} {
		entry, ok := catalogue[key]
		if assert.True(t, ok, key) {
			assert.NotEmpty(t, entry.Description, key)
		}
	}
}

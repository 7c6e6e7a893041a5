// Package docs holds the endpoint catalogue served at GET /api.
package docs

import (
	_ "embed"
	"encoding/json"
)

//go:embed endpoints.json
var endpoints []byte

// Endpoints returns the catalogue as raw JSON.
func Endpoints() json.RawMessage {
	return json.RawMessage(endpoints)
}

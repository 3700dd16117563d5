// Package docs serves the static OpenAPI description of the API.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openapi []byte

// Handler writes the embedded OpenAPI document.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(openapi)
}

package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"newsapi/internal/utils/helpers"
)

//go:embed endpoints.json
var endpointsJSON []byte

// Endpoint describes one route in the GET /api listing.
type Endpoint struct {
	Description     string          `json:"description"`
	Queries         []string        `json:"queries,omitempty"`
	ExampleRequest  json.RawMessage `json:"exampleRequest,omitempty"`
	ExampleResponse json.RawMessage `json:"exampleResponse,omitempty"`
}

type APIHandler struct {
	endpoints map[string]Endpoint
}

// NewAPIHandler parses the embedded endpoint listing once.
func NewAPIHandler() (*APIHandler, error) {
	var eps map[string]Endpoint
	if err := json.Unmarshal(endpointsJSON, &eps); err != nil {
		return nil, err
	}
	return &APIHandler{endpoints: eps}, nil
}

// Describe
// @Summary      Describe the API
// @Description  Every endpoint keyed by "METHOD /path", with its queries and an example response.
// @Tags         api
// @Produce      json
// @Success      200 {object} map[string]map[string]handlers.Endpoint
// @Router       /api [get]
func (h *APIHandler) Describe(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]any{"api": h.endpoints})
}

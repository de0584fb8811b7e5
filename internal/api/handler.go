// Package api exposes the REST surface of the input collector flow: filename
// validation, geocoding, and the dashboard bundle.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/WiL-dev/econstruct/internal/flow"
	"github.com/WiL-dev/econstruct/internal/geocode"
	"github.com/WiL-dev/econstruct/internal/ingest"
	"github.com/WiL-dev/econstruct/internal/log"
)

type Handler struct {
	geocoder *geocode.Client
}

func New(geocoder *geocode.Client) *Handler {
	return &Handler{geocoder: geocoder}
}

// Router builds the API route table. The caller may attach further routes
// (WebSocket, static files) before serving.
func (h *Handler) Router() *httprouter.Router {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/api/health", h.health)
	router.HandlerFunc(http.MethodPost, "/api/code", h.codeFromFile)
	router.HandlerFunc(http.MethodGet, "/api/geocode", h.geocodeSearch)
	router.GET("/api/dashboard/:code", h.dashboard)
	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

type codeRequest struct {
	Filename string `json:"filename"`
}

type codeResponse struct {
	Code string `json:"code"`
}

func (h *Handler) codeFromFile(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	code, err := ingest.CodeFromFilename(req.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, codeResponse{Code: string(code)})
}

func (h *Handler) geocodeSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	coord, err := h.geocoder.Search(r.Context(), query)
	if err != nil {
		log.Ctx(r.Context()).Warn("geocode lookup failed", "query", query, "err", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, coord)
}

func (h *Handler) dashboard(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	// Normalization makes any code parameter valid.
	writeJSON(w, http.StatusOK, flow.Build(ps.ByName("code")))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

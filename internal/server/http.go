package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openlend/loanledger/internal/ledger"
)

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /v1/health) must include
// a valid Authorization: Bearer <token> header.
func (s *LedgerServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/assets", s.handleRegisterAsset)
	mux.HandleFunc("GET /v1/assets", s.handleListAssets)
	mux.HandleFunc("GET /v1/assets/{id}", s.handleGetAsset)
	mux.HandleFunc("POST /v1/assets/{id}/transfer", s.handleTransfer)
	mux.HandleFunc("POST /v1/assets/{id}/status", s.handleUpdateStatus)
	mux.HandleFunc("GET /v1/assets/{id}/ownership", s.handleGetOwnership)
	mux.HandleFunc("GET /v1/assets/{id}/history", s.handleGetHistory)
	mux.HandleFunc("GET /v1/assets/{id}/events", s.handleGetEvents)
	mux.HandleFunc("POST /v1/originators", s.handleAuthorizeOriginator)
	mux.HandleFunc("DELETE /v1/originators/{identity}", s.handleRevokeOriginator)
	mux.HandleFunc("GET /v1/originators", s.handleListOriginators)
	mux.HandleFunc("GET /v1/originators/{identity}", s.handleGetOriginator)
	mux.HandleFunc("GET /v1/health", s.handleHealth)
	return AuthMiddleware(authToken, mux)
}

// handleHealth handles GET /v1/health.
func (s *LedgerServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": Version})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps a ledger operation error to an HTTP status.
func writeDomainError(w http.ResponseWriter, err error) {
	var ie inputError
	var ce *ledger.ConsistencyError
	switch {
	case errors.As(err, &ie):
		writeError(w, http.StatusBadRequest, ie.Error())
	case errors.Is(err, ledger.ErrUnauthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ledger.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrDuplicateAsset):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidFraction),
		errors.Is(err, ledger.ErrInvalidTransfer):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrInsufficientOwnership),
		errors.Is(err, ledger.ErrAssetNotTradeable),
		errors.Is(err, ledger.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &ce):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

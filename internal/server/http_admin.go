package server

import (
	"encoding/json"
	"net/http"

	"github.com/openlend/loanledger/internal/model"
)

// handleAuthorizeOriginator handles POST /v1/originators.
func (s *LedgerServer) handleAuthorizeOriginator(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Caller   string `json:"caller"`
		Identity string `json:"identity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.authorizeOriginator(r.Context(), originatorInput{Caller: body.Caller, Identity: body.Identity}); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"identity": body.Identity})
}

// handleRevokeOriginator handles DELETE /v1/originators/{identity}.
func (s *LedgerServer) handleRevokeOriginator(w http.ResponseWriter, r *http.Request) {
	in := originatorInput{
		Caller:   r.URL.Query().Get("caller"),
		Identity: r.PathValue("identity"),
	}
	if err := s.revokeOriginator(r.Context(), in); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"identity": in.Identity})
}

// handleListOriginators handles GET /v1/originators.
func (s *LedgerServer) handleListOriginators(w http.ResponseWriter, r *http.Request) {
	originators, err := s.store.ListOriginators(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list originators")
		return
	}
	if originators == nil {
		originators = []*model.Originator{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"originators": originators})
}

// handleGetOriginator handles GET /v1/originators/{identity}. It reports
// whether the identity is currently authorized to register assets.
func (s *LedgerServer) handleGetOriginator(w http.ResponseWriter, r *http.Request) {
	identity := r.PathValue("identity")

	ok, err := s.store.IsOriginator(r.Context(), identity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check originator")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"identity":   identity,
		"authorized": ok,
	})
}

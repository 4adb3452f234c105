package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/openlend/loanledger/internal/model"
)

// handleRegisterAsset handles POST /v1/assets.
func (s *LedgerServer) handleRegisterAsset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Caller      string `json:"caller"`
		AssetID     string `json:"asset_id"`
		ExternalRef string `json:"external_ref"`
		TotalValue  int64  `json:"total_value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	asset, err := s.registerAsset(r.Context(), registerAssetInput{
		Caller:      body.Caller,
		AssetID:     body.AssetID,
		ExternalRef: body.ExternalRef,
		TotalValue:  body.TotalValue,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, asset)
}

// handleListAssets handles GET /v1/assets.
func (s *LedgerServer) handleListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.AssetFilter{
		Holder:     q.Get("holder"),
		Originator: q.Get("originator"),
	}
	if v := q.Get("status"); v != "" {
		for _, st := range strings.Split(v, ",") {
			status := model.Status(st)
			if !status.IsValid() {
				writeError(w, http.StatusBadRequest, "unknown status "+st)
				return
			}
			filter.Status = append(filter.Status, status)
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	assets, total, err := s.store.ListAssets(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}

	// Ensure assets is never null in JSON output.
	if assets == nil {
		assets = []*model.AssetRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"assets": assets,
		"total":  total,
	})
}

// handleGetAsset handles GET /v1/assets/{id}.
func (s *LedgerServer) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	asset, err := s.store.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

// handleTransfer handles POST /v1/assets/{id}/transfer.
func (s *LedgerServer) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Caller      string `json:"caller"`
		To          string `json:"to"`
		BasisPoints int64  `json:"basis_points"`
		Price       int64  `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	transfer, err := s.transferOwnership(r.Context(), transferInput{
		Caller:      body.Caller,
		AssetID:     r.PathValue("id"),
		To:          body.To,
		BasisPoints: body.BasisPoints,
		Price:       body.Price,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transfer)
}

// handleUpdateStatus handles POST /v1/assets/{id}/status.
func (s *LedgerServer) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Caller string `json:"caller"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	asset, err := s.updateStatus(r.Context(), updateStatusInput{
		Caller:  body.Caller,
		AssetID: r.PathValue("id"),
		Status:  model.Status(body.Status),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

// handleGetOwnership handles GET /v1/assets/{id}/ownership.
func (s *LedgerServer) handleGetOwnership(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	asset, err := s.store.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"asset_id":  asset.ID,
		"ownership": asset.Ownership,
	})
}

// handleGetHistory handles GET /v1/assets/{id}/history.
func (s *LedgerServer) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	asset, err := s.store.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}

	transfers, err := s.store.GetTransfers(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get transfers")
		return
	}
	if transfers == nil {
		transfers = []*model.TransferEvent{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"asset_id":  id,
		"transfers": transfers,
	})
}

// handleGetEvents handles GET /v1/assets/{id}/events.
func (s *LedgerServer) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	evts, err := s.store.GetEvents(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get events")
		return
	}
	if evts == nil {
		evts = []*model.Event{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": evts})
}

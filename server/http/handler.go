package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/supplyai/matchengine/internal/application"
	"github.com/supplyai/matchengine/internal/domain"
)

// maxBodyBytes bounds request bodies; candidate sets are JSON, not bulk
// uploads.
const maxBodyBytes = 16 << 20 // 16 MB

type handler struct {
	engine     *application.Engine
	supervisor *application.Supervisor
	logger     zerolog.Logger
}

// matchRequest is the POST /api/v1/match body. Candidates and request are
// loose JSON values; the engine performs shape validation itself so shape
// errors surface as typed 400s rather than decode failures.
type matchRequest struct {
	Candidates any `json:"candidates"`
	Request    any `json:"request"`
}

// rfqRequest is the POST /api/v1/rfq body.
type rfqRequest struct {
	Text       string          `json:"text"`
	Candidates []domain.Record `json:"candidates"`
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	results, err := h.engine.Rank(r.Context(), req.Candidates, req.Request)
	if err != nil {
		if errors.Is(err, domain.ErrCandidatesNotSequence) || errors.Is(err, domain.ErrRequestNotRecord) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("ranking failed")
		writeError(w, http.StatusInternalServerError, "ranking failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (h *handler) rfq(w http.ResponseWriter, r *http.Request) {
	if h.supervisor == nil {
		writeError(w, http.StatusServiceUnavailable, "rfq extraction is not configured")
		return
	}

	var req rfqRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	analysis := h.supervisor.ProcessOrder(r.Context(), req.Text, req.Candidates)
	status := http.StatusOK
	if analysis.Status == domain.StatusError {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, analysis)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mesa-bounty/internal/core/domain"
)

type problem struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrCampaignNotFound, http.StatusNotFound, "campaign_not_found"},
	{domain.ErrReferralCodeNotFound, http.StatusNotFound, "referral_code_not_found"},
	// Target reached is checked before not active: a completed campaign
	// rejects with both.
	{domain.ErrTargetReached, http.StatusBadRequest, "target_reached"},
	{domain.ErrBudgetInsufficient, http.StatusBadRequest, "budget_insufficient"},
	{domain.ErrCampaignNotActive, http.StatusBadRequest, "campaign_not_active"},
	{domain.ErrCampaignEnded, http.StatusBadRequest, "campaign_ended"},
	{domain.ErrInvalidAddress, http.StatusBadRequest, "invalid_address"},
	{domain.ErrFundingMismatch, http.StatusBadRequest, "funding_mismatch"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{domain.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{domain.ErrConcurrentUpdate, http.StatusConflict, "concurrent_update"},
	{domain.ErrReferralCodeExhausted, http.StatusServiceUnavailable, "referral_code_exhausted"},
}

// writeError maps a usecase error onto a status code and a JSON body.
// Unknown errors are logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			writeProblem(w, e.status, e.code, err.Error())
			return
		}
	}
	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	writeProblem(w, http.StatusInternalServerError, "internal", "internal error")
}

func writeProblem(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, problem{Error: msg, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// encoding should rarely fail once the header is out
	_ = json.NewEncoder(w).Encode(v)
}

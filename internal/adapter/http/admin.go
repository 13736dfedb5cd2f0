package httpadapter

import (
	"net/http"
	"strconv"
	"time"
)

type sweepResponse struct {
	Processed     int       `json:"processed"`
	CampaignIDs   []string  `json:"campaignIds"`
	CampaignNames []string  `json:"campaignNames"`
	Cutoff        time.Time `json:"cutoff"`
	Skipped       bool      `json:"skipped"`
}

// handleExpirySweep runs the expiry sweep immediately.
func (h *Handler) handleExpirySweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Expiry.Sweep(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ids := make([]string, 0, len(report.CampaignIDs))
	for _, id := range report.CampaignIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	names := report.CampaignNames
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, sweepResponse{
		Processed:     report.Processed,
		CampaignIDs:   ids,
		CampaignNames: names,
		Cutoff:        report.Cutoff,
		Skipped:       report.Skipped,
	})
}

func (h *Handler) handleDeadPayouts(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 || n > 1000 {
			writeProblem(w, http.StatusBadRequest, "invalid_input", "invalid limit")
			return
		}
		limit = n
	}
	dead, err := h.svc.Campaigns.DeadPayouts(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"payouts": dead})
}

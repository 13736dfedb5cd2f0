package httpadapter

import (
	"net/http"
	"strconv"

	"mesa-bounty/internal/core/port"
)

type joinRequest struct {
	Identity string `json:"identity" validate:"required,max=256"`
	Address  string `json:"address" validate:"required"`
}

type joinResponse struct {
	Status             port.JoinStatus `json:"status"`
	ReferralCode       string          `json:"referralCode"`
	CampaignID         string          `json:"campaignId"`
	CampaignName       string          `json:"campaignName"`
	ValuePerUserAmount int64           `json:"valuePerUserAmount"`
	TargetNumber       int64           `json:"targetNumber"`
	PublisherCount     int64           `json:"publisherCount"`
	RemainingBudget    int64           `json:"remainingBudget"`
}

// handleJoin enrolls a publisher. Joining twice returns the same code with
// status already_joined.
func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req joinRequest
	if err = h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Enrollment.Join(r.Context(), port.JoinInput{
		CampaignID: id,
		Identity:   req.Identity,
		Address:    req.Address,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, joinResponse{
		Status:             res.Status,
		ReferralCode:       res.ReferralCode,
		CampaignID:         strconv.FormatInt(id, 10),
		CampaignName:       res.CampaignName,
		ValuePerUserAmount: res.ValuePerUserAmount,
		TargetNumber:       res.TargetNumber,
		PublisherCount:     res.PublisherCount,
		RemainingBudget:    res.RemainingBudget,
	})
}

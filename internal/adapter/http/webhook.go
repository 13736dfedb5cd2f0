package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// referralWebhookRequest accepts the campaign id as a JSON number or string;
// snowflake ids exceed the precision of JavaScript clients.
type referralWebhookRequest struct {
	CampaignID   json.Number `json:"campaignId" validate:"required"`
	ReferralCode string      `json:"referralCode" validate:"required,max=64"`
}

type referralWebhookResponse struct {
	Status          string                `json:"status"`
	CampaignID      string                `json:"campaignId"`
	ReferralCode    string                `json:"referralCode"`
	PublisherCount  int64                 `json:"publisherCount"`
	RemainingBudget int64                 `json:"remainingBudget"`
	CampaignStatus  domain.CampaignStatus `json:"campaignStatus"`
	PayoutQueued    bool                  `json:"payoutQueued"`
}

func (h *Handler) handleReferralWebhook(w http.ResponseWriter, r *http.Request) {
	var req referralWebhookRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := strconv.ParseInt(req.CampaignID.String(), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "invalid_input", "invalid campaignId")
		return
	}

	res, err := h.svc.Referrals.Ingest(r.Context(), port.ReferralInput{CampaignID: id, ReferralCode: req.ReferralCode})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, referralWebhookResponse{
		Status:          "received",
		CampaignID:      strconv.FormatInt(res.CampaignID, 10),
		ReferralCode:    res.ReferralCode,
		PublisherCount:  res.PublisherCount,
		RemainingBudget: res.RemainingBudget,
		CampaignStatus:  res.CampaignStatus,
		PayoutQueued:    res.PayoutQueued,
	})
}

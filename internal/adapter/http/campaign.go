package httpadapter

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

type createCampaignRequest struct {
	Name               string    `json:"name" validate:"required,max=200"`
	OwnerID            string    `json:"ownerId" validate:"required"`
	FundingRef         string    `json:"fundingRef" validate:"required"`
	FundingAmount      int64     `json:"fundingAmount" validate:"gt=0"`
	TotalLiquidity     int64     `json:"totalLiquidity" validate:"gt=0"`
	ValuePerUserAmount int64     `json:"valuePerUserAmount" validate:"gt=0,ltefield=TotalLiquidity"`
	TargetNumber       int64     `json:"targetNumber" validate:"gt=0"`
	StartDate          time.Time `json:"startDate" validate:"required"`
	EndDate            time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
}

type publisherResponse struct {
	Identity      string    `json:"identity"`
	Address       string    `json:"address"`
	ReferralCode  string    `json:"referralCode"`
	ReferralCount int64     `json:"referralCount"`
	PaidOut       int64     `json:"paidOut"`
	Unpaid        int64     `json:"unpaid"`
	InFlight      bool      `json:"inFlight"`
	JoinedAt      time.Time `json:"joinedAt"`
}

type campaignResponse struct {
	CampaignID         string                `json:"campaignId"`
	Name               string                `json:"name"`
	OwnerID            string                `json:"ownerId,omitempty"`
	Status             domain.CampaignStatus `json:"status"`
	TotalLiquidity     int64                 `json:"totalLiquidity"`
	ValuePerUserAmount int64                 `json:"valuePerUserAmount"`
	Spent              int64                 `json:"spent"`
	Reserved           int64                 `json:"reserved"`
	RemainingBudget    int64                 `json:"remainingBudget"`
	TargetNumber       int64                 `json:"targetNumber"`
	PublisherCount     int64                 `json:"publisherCount"`
	StartDate          time.Time             `json:"startDate"`
	EndDate            time.Time             `json:"endDate"`
	Publishers         []publisherResponse   `json:"publishers,omitempty"`
}

// toCampaignResponse renders c. Publisher details are only included when
// withPublishers is set.
func toCampaignResponse(c *domain.Campaign, withPublishers bool) campaignResponse {
	resp := campaignResponse{
		CampaignID:         strconv.FormatInt(c.CampaignID, 10),
		Name:               c.Name,
		Status:             c.Status,
		TotalLiquidity:     c.TotalLiquidity,
		ValuePerUserAmount: c.ValuePerUserAmount,
		Spent:              c.Spent,
		Reserved:           c.Reserved,
		RemainingBudget:    c.RemainingBudget(),
		TargetNumber:       c.TargetNumber,
		PublisherCount:     c.PublisherCount,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
	}
	if !withPublishers {
		return resp
	}
	resp.OwnerID = c.OwnerID
	resp.Publishers = make([]publisherResponse, 0, len(c.Publishers))
	for _, p := range c.Publishers {
		resp.Publishers = append(resp.Publishers, publisherResponse{
			Identity:      p.Identity,
			Address:       p.Address,
			ReferralCode:  p.ReferralCode,
			ReferralCount: p.ReferralCount,
			PaidOut:       p.PaidOut,
			Unpaid:        p.Unpaid(c.ValuePerUserAmount),
			InFlight:      p.InFlight != nil,
			JoinedAt:      p.JoinedAt,
		})
	}
	return resp
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := h.decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Create(r.Context(), port.CreateCampaignInput{
		Name:               req.Name,
		OwnerID:            req.OwnerID,
		FundingRef:         req.FundingRef,
		FundingAmount:      req.FundingAmount,
		TotalLiquidity:     req.TotalLiquidity,
		ValuePerUserAmount: req.ValuePerUserAmount,
		TargetNumber:       req.TargetNumber,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(c, true))
}

func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Approve(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c, false))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(c, true))
}

// handleListCampaigns serves the marketplace. It lists active campaigns
// unless another status is requested, optionally narrowed to one owner.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.CampaignFilter{Status: domain.StatusActive, Limit: 100}
	if s := q.Get("status"); s != "" {
		filter.Status = domain.CampaignStatus(s)
	}
	filter.OwnerID = strings.TrimSpace(q.Get("ownerId"))
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 || n > 500 {
			writeProblem(w, http.StatusBadRequest, "invalid_input", "invalid limit")
			return
		}
		filter.Limit = n
	}

	campaigns, err := h.svc.Campaigns.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignResponse(&campaigns[i], false))
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": out})
}

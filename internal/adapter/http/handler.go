package httpadapter

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-bounty/internal/core/port"
)

// Services bundles the usecases served over HTTP.
type Services struct {
	Campaigns  port.CampaignUseCase
	Enrollment port.EnrollmentUseCase
	Referrals  port.ReferralUseCase
	Expiry     port.ExpiryUseCase
}

// Secrets holds the shared secrets guarding the webhook and admin routes.
// An empty AdminToken disables the admin routes.
type Secrets struct {
	WebhookSecret string
	AdminToken    string
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
type Handler struct {
	svc      Services
	secrets  Secrets
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. gatherer serves
// /metrics; nil falls back to the default registry.
func NewHandler(svc Services, secrets Secrets, gatherer prometheus.Gatherer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	h := &Handler{
		svc:      svc,
		secrets:  secrets,
		logger:   logger,
		validate: newValidator(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns/{id}/join", h.handleJoin)

		r.With(h.requireWebhookSecret).Post("/webhooks/referral", h.handleReferralWebhook)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Post("/campaigns/{id}/approve", h.handleApproveCampaign)
			r.Post("/admin/sweeps/expiry", h.handleExpirySweep)
			r.Get("/admin/payouts/dead", h.handleDeadPayouts)
		})
	})
	h.router = r
	return h
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Package metrics holds the Prometheus collectors of the bounty engine.
package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once     sync.Once
	registry *Metrics
)

// Metrics wraps the collectors tracking referral intake and payout health.
// Every method is safe to call on a nil receiver.
type Metrics struct {
	referrals     *prometheus.CounterVec
	enrollments   *prometheus.CounterVec
	payouts       *prometheus.CounterVec
	payoutAmount  prometheus.Counter
	payoutLatency prometheus.Histogram
	conflicts     *prometheus.CounterVec
	transitions   *prometheus.CounterVec
	outboxRelayed prometheus.Counter
	sweepRuns     *prometheus.CounterVec
	sweepExpired  prometheus.Counter
}

// Default returns the process wide registry, registering it on first use.
func Default() *Metrics {
	once.Do(func() {
		registry = New()
		registry.MustRegister(prometheus.DefaultRegisterer)
	})
	return registry
}

// New builds unregistered collectors.
func New() *Metrics {
	return &Metrics{
		referrals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "referrals",
			Name:      "events_total",
			Help:      "Referral events by outcome.",
		}, []string{"outcome"}),
		enrollments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "enrollment",
			Name:      "requests_total",
			Help:      "Publisher enrollments by outcome.",
		}, []string{"outcome"}),
		payouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "payouts",
			Name:      "jobs_total",
			Help:      "Handled payout jobs by outcome.",
		}, []string{"outcome"}),
		payoutAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "payouts",
			Name:      "settled_amount_total",
			Help:      "Sum of confirmed settlements in integer units.",
		}),
		payoutLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bounty",
			Subsystem: "payouts",
			Name:      "settlement_seconds",
			Help:      "Time spent waiting for the settlement network.",
			Buckets:   prometheus.DefBuckets,
		}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "store",
			Name:      "version_conflicts_total",
			Help:      "Conditional writes retried after a version conflict.",
		}, []string{"operation"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "campaigns",
			Name:      "transitions_total",
			Help:      "Campaign status transitions.",
		}, []string{"from", "to"}),
		outboxRelayed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "outbox",
			Name:      "relayed_total",
			Help:      "Payout jobs moved from campaign outboxes to the queue.",
		}),
		sweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "sweep",
			Name:      "runs_total",
			Help:      "Expiry sweep runs by outcome.",
		}, []string{"outcome"}),
		sweepExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bounty",
			Subsystem: "sweep",
			Name:      "expired_campaigns_total",
			Help:      "Campaigns closed by the expiry sweep.",
		}),
	}
}

// MustRegister registers every collector on reg.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	if m == nil || reg == nil {
		return
	}
	reg.MustRegister(
		m.referrals, m.enrollments, m.payouts, m.payoutAmount, m.payoutLatency,
		m.conflicts, m.transitions, m.outboxRelayed, m.sweepRuns, m.sweepExpired,
	)
}

func (m *Metrics) Referral(outcome string) {
	if m == nil {
		return
	}
	m.referrals.WithLabelValues(label(outcome)).Inc()
}

func (m *Metrics) Enrollment(outcome string) {
	if m == nil {
		return
	}
	m.enrollments.WithLabelValues(label(outcome)).Inc()
}

func (m *Metrics) Payout(outcome string) {
	if m == nil {
		return
	}
	m.payouts.WithLabelValues(label(outcome)).Inc()
}

// Settled records a confirmed settlement of amount units that took d.
func (m *Metrics) Settled(amount int64, d time.Duration) {
	if m == nil {
		return
	}
	m.payoutAmount.Add(float64(amount))
	m.payoutLatency.Observe(d.Seconds())
}

func (m *Metrics) Conflict(operation string) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(label(operation)).Inc()
}

func (m *Metrics) Transition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(label(from), label(to)).Inc()
}

func (m *Metrics) OutboxRelayed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.outboxRelayed.Add(float64(n))
}

func (m *Metrics) Sweep(outcome string, expired int) {
	if m == nil {
		return
	}
	m.sweepRuns.WithLabelValues(label(outcome)).Inc()
	if expired > 0 {
		m.sweepExpired.Add(float64(expired))
	}
}

func label(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "unspecified"
	}
	return v
}

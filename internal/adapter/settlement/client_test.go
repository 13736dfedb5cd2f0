package settlement

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

func TestTransferSendsIdempotencyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transfers", r.URL.Path)
		assert.Equal(t, "7:ABCD2345:1", r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req port.TransferRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(100), req.Amount)

		_ = json.NewEncoder(w).Encode(port.TransferReceipt{ID: "tx-1", Status: port.TransferConfirmed})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", time.Second)
	receipt, err := c.Transfer(context.Background(), port.TransferRequest{
		Reference: "7:ABCD2345:1", CampaignID: 7, Recipient: "addr", Amount: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", receipt.ID)
	assert.Equal(t, port.TransferConfirmed, receipt.Status)
}

func TestTransferClassifiesFailures(t *testing.T) {
	cases := map[string]struct {
		code int
		want error
	}{
		"server error": {http.StatusBadGateway, domain.ErrSettlementUnavailable},
		"throttled":    {http.StatusTooManyRequests, domain.ErrSettlementUnavailable},
		"bad request":  {http.StatusUnprocessableEntity, domain.ErrTransferRejected},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tc.code)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "", time.Second).Transfer(context.Background(), port.TransferRequest{Reference: "r"})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTransferUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := NewClient(srv.URL, "", time.Second).Transfer(context.Background(), port.TransferRequest{Reference: "r"})
	assert.ErrorIs(t, err, domain.ErrSettlementUnavailable)
}

func TestWaitForConfirmationPolls(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfers/tx-1", r.URL.Path)
		status := port.TransferPending
		if polls.Add(1) >= 3 {
			status = port.TransferConfirmed
		}
		_ = json.NewEncoder(w).Encode(port.TransferReceipt{ID: "tx-1", Status: status})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second, WithConfirmation(5*time.Millisecond, time.Second))
	require.NoError(t, c.WaitForConfirmation(context.Background(), "tx-1"))
	assert.Equal(t, int32(3), polls.Load())
}

func TestWaitForConfirmationFailedTransfer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(port.TransferReceipt{ID: "tx-1", Status: port.TransferFailed})
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "", time.Second).WaitForConfirmation(context.Background(), "tx-1")
	assert.ErrorIs(t, err, domain.ErrTransferRejected)
}

func TestWaitForConfirmationTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(port.TransferReceipt{ID: "tx-1", Status: port.TransferPending})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second, WithConfirmation(5*time.Millisecond, 30*time.Millisecond))
	err := c.WaitForConfirmation(context.Background(), "tx-1")
	assert.ErrorIs(t, err, domain.ErrSettlementUnavailable)
	assert.NotErrorIs(t, err, domain.ErrTransferRejected)
}

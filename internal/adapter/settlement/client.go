// Package settlement is the HTTP client of the external value-transfer
// network.
package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// Client talks to the settlement network over its REST API. Transfers are
// submitted with the settlement reference as Idempotency-Key, so replaying
// a request after a timeout never moves value twice.
type Client struct {
	baseURL         string
	token           string
	http            *http.Client
	confirmInterval time.Duration
	confirmTimeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithConfirmation sets the polling cadence and overall deadline used by
// WaitForConfirmation.
func WithConfirmation(interval, timeout time.Duration) Option {
	return func(cl *Client) {
		if interval > 0 {
			cl.confirmInterval = interval
		}
		if timeout > 0 {
			cl.confirmTimeout = timeout
		}
	}
}

func NewClient(baseURL, token string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		token:           token,
		http:            &http.Client{Timeout: timeout},
		confirmInterval: 2 * time.Second,
		confirmTimeout:  90 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transfer submits req and returns the network's receipt. A pending
// receipt must be confirmed with WaitForConfirmation.
func (c *Client) Transfer(ctx context.Context, req port.TransferRequest) (*port.TransferReceipt, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode transfer: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transfers", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.Reference)

	var receipt port.TransferReceipt
	if err = c.do(httpReq, &receipt); err != nil {
		return nil, fmt.Errorf("transfer %s: %w", req.Reference, err)
	}
	if receipt.Status == port.TransferFailed {
		return &receipt, fmt.Errorf("transfer %s: %w", req.Reference, domain.ErrTransferRejected)
	}
	return &receipt, nil
}

// WaitForConfirmation polls the transfer until it is confirmed or failed.
// Running out of time is transient: the transfer may still confirm and a
// retry with the same reference will observe it.
func (c *Client) WaitForConfirmation(ctx context.Context, transferID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.confirmInterval)
	defer ticker.Stop()
	for {
		status, err := c.status(ctx, transferID)
		if err != nil && !errors.Is(err, domain.ErrSettlementUnavailable) {
			return err
		}
		switch status {
		case port.TransferConfirmed:
			return nil
		case port.TransferFailed:
			return fmt.Errorf("transfer %s: %w", transferID, domain.ErrTransferRejected)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("transfer %s not confirmed: %w: %w", transferID, domain.ErrSettlementUnavailable, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) status(ctx context.Context, transferID string) (port.TransferStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transfers/"+url.PathEscape(transferID), nil)
	if err != nil {
		return "", err
	}
	var receipt port.TransferReceipt
	if err = c.do(httpReq, &receipt); err != nil {
		return "", err
	}
	return receipt.Status, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSettlementUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", domain.ErrSettlementUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", domain.ErrTransferRejected, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrSettlementUnavailable, err)
	}
	return nil
}

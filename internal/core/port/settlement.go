package port

import "context"

// TransferStatus is the state of a transfer on the settlement network.
type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferConfirmed TransferStatus = "confirmed"
	TransferFailed    TransferStatus = "failed"
)

// TransferRequest moves Amount units from the campaign to Recipient.
// Reference doubles as the idempotency key: repeating a request with the
// same reference never moves value twice.
type TransferRequest struct {
	Reference  string `json:"reference"`
	CampaignID int64  `json:"campaignId"`
	Recipient  string `json:"recipient"`
	Amount     int64  `json:"amount"`
}

// TransferReceipt is the network's answer to a transfer request.
type TransferReceipt struct {
	ID     string         `json:"id"`
	Status TransferStatus `json:"status"`
}

// SettlementNetwork is the external value-transfer network. Transient
// failures wrap domain.ErrSettlementUnavailable, definitive rejections wrap
// domain.ErrTransferRejected.
type SettlementNetwork interface {
	Transfer(ctx context.Context, req TransferRequest) (*TransferReceipt, error)
	// WaitForConfirmation blocks until the transfer is confirmed or failed.
	WaitForConfirmation(ctx context.Context, transferID string) error
}

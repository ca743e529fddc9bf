package checkout

import (
	"context"
	"time"
)

// Outcome is the terminal state of one payment attempt. The provider reports
// exactly one outcome per attempt; there is no pending state surfaced here.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailure   Outcome = "failure"
	OutcomeCancelled Outcome = "cancelled"
)

// LineItem is one display row on the provider's payment sheet. Amounts are in
// minor units of the request currency.
type LineItem struct {
	Name             string `json:"name"`
	AmountMinorUnits int64  `json:"amount_minor_units"`
}

// PaymentRequest describes one payment attempt handed to the provider.
type PaymentRequest struct {
	OrderRef         string        `json:"order_ref"`
	Currency         string        `json:"currency"`
	AmountMinorUnits int64         `json:"amount_minor_units"`
	LineItems        []LineItem    `json:"line_items"`
	SessionTimeout   time.Duration `json:"-"`
}

// PaymentResult is the provider's verdict. Message carries the provider's own
// wording for failures; it is surfaced to the buyer verbatim.
type PaymentResult struct {
	Outcome     Outcome `json:"outcome"`
	Message     string  `json:"message,omitempty"`
	ProviderRef string  `json:"provider_ref,omitempty"`
}

// PaymentProvider presents one payment session to the buyer and blocks until
// it resolves. An error means the provider could not even be reached; the
// attempt counts as not-made and may be retried.
type PaymentProvider interface {
	Present(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

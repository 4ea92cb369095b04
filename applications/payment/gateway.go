package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMissingToken is returned when a charge is attempted without a tokenized
// payment instrument.
var ErrMissingToken = errors.New("payment token required")

// ChargeRequest describes one synchronous charge attempt.
type ChargeRequest struct {
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Token       string `json:"token"`
	Reference   string `json:"reference"` // our ticket ID, echoed back by the provider
}

// Receipt is the provider's acknowledgement of a successful charge.
type Receipt struct {
	ProviderRef string `json:"provider_ref"`
}

// DeclineError is a structured charge failure: the provider answered, and
// the answer was no. Callers distinguish it from transport errors so the
// visitor sees the decline reason and can retry.
type DeclineError struct {
	Reason string
}

func (e *DeclineError) Error() string {
	return fmt.Sprintf("charge declined: %s", e.Reason)
}

// Gateway is the single capability the wizard needs from any payment
// provider. Card and ACH charges go through the same method; only the
// request contents differ.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}

// MockGateway approves everything except tokens carrying a "declined"
// marker. It stands in for the real provider in dev and tests.
type MockGateway struct{}

func (MockGateway) Charge(_ context.Context, req ChargeRequest) (*Receipt, error) {
	if req.Token == "" {
		return nil, ErrMissingToken
	}
	if req.Token == "tok_declined" {
		return nil, &DeclineError{Reason: "insufficient funds"}
	}
	return &Receipt{ProviderRef: "ch_" + uuid.New().String()}, nil
}

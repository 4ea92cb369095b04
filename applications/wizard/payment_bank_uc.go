package wizard

import (
	"context"
	"fmt"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/applications/payment"
	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/logger"
)

// PayBankACH charges a tokenized bank account. ACH funds have not cleared at
// charge time, so the order finalizes unpaid with status pending_settlement.
func (s *Service) PayBankACH(ctx context.Context, st *session.State, token string) (*order.Order, error) {
	if st.PendingOrder == nil {
		return nil, ErrNoPendingOrder
	}
	o := st.PendingOrder

	receipt, err := s.Gateway.Charge(ctx, payment.ChargeRequest{
		AmountCents: order.PriceCents(o.Client.Package),
		Currency:    "usd",
		Description: fmt.Sprintf("%s VIP Membership (ACH)", o.Client.Package),
		Token:       token,
		Reference:   o.TicketID,
	})
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[wizard] ACH charge failed for %s: %v", o.TicketID, err))
		return nil, err
	}

	o.Paid = false
	o.Status = order.StatusPendingSettlement
	o.PaymentInfo = &order.PaymentInfo{
		Method:    "bank_ach",
		PaymentID: receipt.ProviderRef,
	}
	if err := s.finalize(st, o); err != nil {
		return nil, err
	}
	return o, nil
}

// PayBankProof finalizes the order from a manual proof-of-transfer upload.
// Trust-on-submit: the order is marked paid right away, with no moderation
// status attached.
func (s *Service) PayBankProof(st *session.State, proofURL string) (*order.Order, error) {
	if st.PendingOrder == nil {
		return nil, ErrNoPendingOrder
	}
	o := st.PendingOrder

	o.Paid = true
	o.PaymentInfo = &order.PaymentInfo{
		Method:   "bank_transfer",
		ProofURL: proofURL,
	}
	if err := s.finalize(st, o); err != nil {
		return nil, err
	}
	return o, nil
}

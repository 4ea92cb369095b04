package wizard

import (
	"context"
	"fmt"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/applications/payment"
	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/logger"
)

// PayCard charges the full package price against a tokenized card. Success
// finalizes the order immediately as paid and verified; any failure leaves
// the pending order in the session so the visitor can resubmit.
func (s *Service) PayCard(ctx context.Context, st *session.State, token string) (*order.Order, error) {
	if st.PendingOrder == nil {
		return nil, ErrNoPendingOrder
	}
	o := st.PendingOrder

	receipt, err := s.Gateway.Charge(ctx, payment.ChargeRequest{
		AmountCents: order.PriceCents(o.Client.Package),
		Currency:    "usd",
		Description: fmt.Sprintf("%s VIP Membership", o.Client.Package),
		Token:       token,
		Reference:   o.TicketID,
	})
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[wizard] Card charge failed for %s: %v", o.TicketID, err))
		return nil, err
	}

	o.Paid = true
	o.Status = order.StatusVerified
	o.PaymentInfo = &order.PaymentInfo{
		Method:    "card",
		PaymentID: receipt.ProviderRef,
	}
	if err := s.finalize(st, o); err != nil {
		return nil, err
	}
	return o, nil
}

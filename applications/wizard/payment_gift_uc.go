package wizard

import (
	"fmt"

	"github.com/verifiedboiy/fanmeetzone/applications/notify"
	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/logger"
)

// PayGiftProof finalizes the order from a gift-card proof image. The order
// stays unpaid with status pending_verification until an admin approves it.
func (s *Service) PayGiftProof(st *session.State, proofURL string) (*order.Order, error) {
	if st.PendingOrder == nil {
		return nil, ErrNoPendingOrder
	}
	o := st.PendingOrder

	o.Status = order.StatusPendingVerification
	o.PaymentInfo = &order.PaymentInfo{
		Method:   "gift_card",
		ProofURL: proofURL,
	}
	if err := s.finalize(st, o); err != nil {
		return nil, err
	}

	// Best-effort heads-up to the moderator; the order is already persisted.
	if err := notify.SendProofSubmitted(s.AdminEmail, o.TicketID, o.Client.Email, "Gift Card",
		order.PriceCents(o.Client.Package)); err != nil {
		logger.Log.Warn(fmt.Sprintf("[wizard] Proof-submitted email failed for %s: %v", o.TicketID, err))
	}

	return o, nil
}

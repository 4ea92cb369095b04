package wizard

import (
	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/applications/session"
)

// CheckoutSummary is what the review step shows: the pending order, its
// price, and the tier's perk bundle (pure presentation data).
type CheckoutSummary struct {
	Order      order.Order      `json:"order"`
	PriceCents int              `json:"price_cents"`
	PriceUSD   int              `json:"price_usd"`
	Perks      order.PerkBundle `json:"perks"`
}

// Checkout computes the review for the pending order. Read-only: calling it
// repeatedly returns the same price for the same order.
func (s *Service) Checkout(st *session.State) (*CheckoutSummary, error) {
	if st.PendingOrder == nil {
		return nil, ErrNoPendingOrder
	}

	o := *st.PendingOrder
	cents := order.PriceCents(o.Client.Package)
	return &CheckoutSummary{
		Order:      o,
		PriceCents: cents,
		PriceUSD:   cents / 100,
		Perks:      order.Perks(o.Client.Package),
	}, nil
}

// PaymentOptions lists the available payment paths for the pending order.
// No state mutation.
func (s *Service) PaymentOptions(st *session.State) ([]string, error) {
	if st.PendingOrder == nil {
		return nil, ErrNoPendingOrder
	}
	return []string{"card", "bank", "gift"}, nil
}

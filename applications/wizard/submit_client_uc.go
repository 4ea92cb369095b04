package wizard

import (
	"fmt"
	"strings"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/logger"
)

// ClientParams is the raw intake form. Everything is free text; fields are
// trimmed but never format-validated here.
type ClientParams struct {
	ImageURL string
	FullName string
	Email    string
	Address  string
	City     string
	State    string
	Zip      string
	Country  string
	DOB      string
	Package  string
}

// CheckIntakeOpen reports whether the client intake step is reachable yet.
// Controllers run this before doing any work on the request body, so a
// visitor who never confirmed the passcode cannot leave side effects behind.
func (s *Service) CheckIntakeOpen(st *session.State) error {
	if !st.CelebLocked || st.Celebrity == nil {
		return ErrNotUnlocked
	}
	return nil
}

// SubmitClientInfo builds the pending order from the intake form. Requires
// the passcode lock; a fresh ticket ID is minted and the celebrity profile
// is copied by value into the order.
func (s *Service) SubmitClientInfo(st *session.State, p ClientParams) (*order.Order, error) {
	if err := s.CheckIntakeOpen(st); err != nil {
		return nil, err
	}

	client := order.ClientInfo{
		ImageURL: p.ImageURL,
		FullName: strings.TrimSpace(p.FullName),
		Email:    strings.TrimSpace(p.Email),
		Address:  strings.TrimSpace(p.Address),
		City:     strings.TrimSpace(p.City),
		State:    strings.TrimSpace(p.State),
		Zip:      strings.TrimSpace(p.Zip),
		Country:  strings.TrimSpace(p.Country),
		DOB:      strings.TrimSpace(p.DOB),
		Package:  order.NormalizePackage(strings.TrimSpace(p.Package)),
	}

	o := &order.Order{
		TicketID:  order.NewTicketID(),
		Celebrity: *st.Celebrity,
		Client:    client,
		Paid:      false,
		Status:    order.StatusUnset,
	}
	st.PendingOrder = o

	logger.Log.Info(fmt.Sprintf("[wizard] Pending order %s created for %q (package %s).",
		o.TicketID, client.FullName, client.Package))
	return o, nil
}

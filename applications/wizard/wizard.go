package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/applications/payment"
	"github.com/verifiedboiy/fanmeetzone/applications/session"
	"github.com/verifiedboiy/fanmeetzone/logger"
	"github.com/verifiedboiy/fanmeetzone/store"
)

// Guard errors. Controllers translate these into redirects to the earliest
// unmet wizard step; a guard violation is never a user-visible error.
var (
	ErrNoCelebrity    = errors.New("no celebrity profile in session")
	ErrNotUnlocked    = errors.New("passcode not confirmed")
	ErrNoPendingOrder = errors.New("no pending order in session")
)

// ErrWrongPasscode keeps the visitor on the passcode step with an inline
// error; session state is untouched so the same code can be retried.
var ErrWrongPasscode = errors.New("wrong passcode")

// Service drives the order wizard. Each use case reads and mutates the
// explicit session State; the record store is only touched at finalization.
type Service struct {
	Store      *store.RecordStore
	Gateway    payment.Gateway
	AdminEmail string
}

// finalize converts the session's pending order into a permanent record and
// clears it from the session. This happens exactly once per order, at
// whichever payment branch completes first.
func (s *Service) finalize(st *session.State, o *order.Order) error {
	o.CreatedAt = time.Now().UTC()
	if err := s.Store.Append(*o); err != nil {
		return fmt.Errorf("finalize order %s: %w", o.TicketID, err)
	}
	st.PendingOrder = nil
	logger.Log.Info(fmt.Sprintf("[wizard] Order %s finalized via %s (paid=%t, status=%q).",
		o.TicketID, o.PaymentInfo.Method, o.Paid, o.Status))
	return nil
}

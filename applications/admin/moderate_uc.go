package admin

import (
	"fmt"
	"sort"

	"github.com/verifiedboiy/fanmeetzone/applications/card"
	"github.com/verifiedboiy/fanmeetzone/applications/notify"
	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/logger"
	"github.com/verifiedboiy/fanmeetzone/store"
)

// Moderator mutates persisted orders directly, bypassing session state
// entirely. Every action works on a full snapshot loaded just before the
// mutation and persists a full rewrite.
type Moderator struct {
	Store         *store.RecordStore
	PublicBaseURL string
}

// ListRecords returns every persisted order, newest first.
func (m *Moderator) ListRecords() []order.Order {
	rows := m.Store.LoadAll()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows
}

// Verify approves the order: status=verified, paid=true. An unknown ticket
// is a silent no-op. On approval the client gets their membership card by
// email, best-effort.
func (m *Moderator) Verify(ticketID string) error {
	logger.Log.Info(fmt.Sprintf("[moderate-uc] Processing verification for ticket %s.", ticketID))

	rows := m.Store.LoadAll()
	var approved *order.Order
	for i := range rows {
		if rows[i].TicketID == ticketID {
			rows[i].Status = order.StatusVerified
			rows[i].Paid = true
			approved = &rows[i]
			break
		}
	}
	if err := m.Store.RewriteAll(rows); err != nil {
		return fmt.Errorf("persist verification: %w", err)
	}

	if approved == nil {
		logger.Log.Warn(fmt.Sprintf("[moderate-uc] Verify for unknown ticket %s, nothing changed.", ticketID))
		return nil
	}
	logger.Log.Info(fmt.Sprintf("[moderate-uc] ✅ Ticket %s marked verified.", ticketID))

	pdfBytes, err := card.GenerateMembershipPDF(*approved, m.PublicBaseURL)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[moderate-uc] Card PDF generation failed for %s: %v", ticketID, err))
	}
	if mailErr := notify.SendOrderVerified(approved.Client.Email, ticketID, pdfBytes); mailErr != nil {
		logger.Log.Warn(fmt.Sprintf("[moderate-uc] Verification email failed for %s: %v", ticketID, mailErr))
	}
	return nil
}

// Reject marks the order rejected and unpaid. Unknown tickets are a silent
// no-op.
func (m *Moderator) Reject(ticketID string) error {
	logger.Log.Info(fmt.Sprintf("[moderate-uc] Processing rejection for ticket %s.", ticketID))

	rows := m.Store.LoadAll()
	found := false
	for i := range rows {
		if rows[i].TicketID == ticketID {
			rows[i].Status = order.StatusRejected
			rows[i].Paid = false
			found = true
			break
		}
	}
	if err := m.Store.RewriteAll(rows); err != nil {
		return fmt.Errorf("persist rejection: %w", err)
	}
	if !found {
		logger.Log.Warn(fmt.Sprintf("[moderate-uc] Reject for unknown ticket %s, nothing changed.", ticketID))
	}
	return nil
}

// Delete removes the order entirely. Unknown tickets leave the store
// untouched.
func (m *Moderator) Delete(ticketID string) error {
	logger.Log.Info(fmt.Sprintf("[moderate-uc] Deleting ticket %s.", ticketID))
	if err := m.Store.DeleteByTicket(ticketID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

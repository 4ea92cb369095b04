package order

import (
	"crypto/rand"
	"time"
)

// Status tracks the moderation state of a finalized order. The zero value
// means no payment action has touched the order yet; it is omitted from JSON
// so records look exactly like the ones the store has always held.
type Status string

const (
	StatusUnset               Status = ""
	StatusPendingVerification Status = "pending_verification"
	StatusPendingSettlement   Status = "pending_settlement"
	StatusVerified            Status = "verified"
	StatusRejected            Status = "rejected"
)

// Celebrity is the profile created at the first wizard step. GenCode is
// generated once server-side and never changes afterwards; the passcode step
// compares user input against it verbatim.
type Celebrity struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	GenCode  string `json:"gen_code"`
}

// ClientInfo holds the intake form. All contact fields are free text,
// trimmed on submission but not validated beyond that.
type ClientInfo struct {
	ImageURL string `json:"image_url,omitempty"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	DOB      string `json:"dob"`
	Package  string `json:"package"`
}

// PaymentInfo records which payment path finalized the order, plus the
// path-specific reference.
type PaymentInfo struct {
	Method    string `json:"method"`
	ProofURL  string `json:"proof_url,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
}

// Order is the central entity. It lives in the visitor session until one of
// the payment paths finalizes it into the record store, after which the
// session copy is discarded and the store copy is the only one left.
type Order struct {
	TicketID    string       `json:"ticket_id"`
	Celebrity   Celebrity    `json:"celebrity"`
	Client      ClientInfo   `json:"client"`
	Paid        bool         `json:"paid"`
	Status      Status       `json:"status,omitempty"`
	PaymentInfo *PaymentInfo `json:"payment_info,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

const (
	ticketLen      = 9
	passcodeLen    = 4
	ticketAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digitAlphabet  = "0123456789"
)

// NewTicketID returns a 9-character uppercase alphanumeric ticket ID. It is
// the permanent external identifier of a finalized order; uniqueness is
// probabilistic, not enforced.
func NewTicketID() string {
	return randomFrom(ticketAlphabet, ticketLen)
}

// NewPasscode returns the 4-digit code the visitor must echo back to unlock
// the client intake step.
func NewPasscode() string {
	return randomFrom(digitAlphabet, passcodeLen)
}

func randomFrom(alphabet string, n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}

package notify

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/verifiedboiy/fanmeetzone/logger"
)

const resendAPI = "https://api.resend.com/emails"
const defaultFrom = "FanMeetZone <noreply@fanmeetzone.live>"

// ---- Resend payloads ----

type Attachment struct {
	Filename string `json:"filename"`
	// Resend expects base64-encoded content
	Content string `json:"content"`
}

type resendEmail struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	Html        string       `json:"html"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// single helper for sending (optionally with attachments)
func sendEmail(to, subject, htmlBody, textBody string, atts ...Attachment) error {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		logger.Log.Warn("[notify] Missing RESEND_API_KEY, mock email triggered.")
		fmt.Printf("\n--- MOCK EMAIL ---\nTo: %s\nSubject: %s\nBody:\n%s\nAttachments: %d\n-------------------\n",
			to, subject, htmlBody, len(atts))
		return nil
	}

	payload := resendEmail{
		From:        defaultFrom,
		To:          to,
		Subject:     subject,
		Html:        htmlBody,
		Text:        textBody,
		Attachments: atts,
	}

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", resendAPI, bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("Resend API error: %s", resp.Status)
	}

	logger.Log.Info(fmt.Sprintf("[notify] ✅ Email sent to %s via Resend.", to))
	return nil
}

// ---------- Public API ----------

// SendProofSubmitted tells the admin a proof-of-payment order landed and
// needs moderation.
func SendProofSubmitted(adminEmail, ticketID, clientEmail, method string, totalCents int) error {
	if adminEmail == "" {
		return nil
	}
	logger.Log.Info(fmt.Sprintf("[notify] Sending proof-submitted notice for %s", ticketID))
	html := fmt.Sprintf(`
		<h2>New Proof-of-Payment Order</h2>
		<p><b>Ticket:</b> %s</p>
		<p><b>Client:</b> %s</p>
		<p><b>Method:</b> %s</p>
		<p><b>Total:</b> $%.2f</p>
		<p>Status: <b style="color:#007bff;">Pending Verification</b></p>
	`, ticketID, clientEmail, method, float64(totalCents)/100)
	return sendEmail(adminEmail, "Proof uploaded for ticket "+ticketID, html,
		fmt.Sprintf("Ticket %s awaits verification.", ticketID))
}

// SendOrderVerified mails the client their approved membership card, PDF
// attached when generation succeeded.
func SendOrderVerified(toEmail, ticketID string, cardPDF []byte) error {
	if toEmail == "" {
		return nil
	}
	logger.Log.Info(fmt.Sprintf("[notify] Sending verification email for %s", ticketID))
	html := fmt.Sprintf(`
		<h2>🎉 Your VIP Membership is Verified</h2>
		<p>Your ticket <b>%s</b> has been approved.</p>
		<p>Your membership card is attached. Bring it to the event.</p>
	`, ticketID)

	var atts []Attachment
	if len(cardPDF) > 0 {
		atts = append(atts, Attachment{
			Filename: "membership_card.pdf",
			Content:  base64.StdEncoding.EncodeToString(cardPDF),
		})
	}
	return sendEmail(toEmail, "Your VIP membership card "+ticketID, html,
		"Ticket "+ticketID+" has been verified.", atts...)
}

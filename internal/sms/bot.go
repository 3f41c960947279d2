// internal/sms/bot.go
package sms

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/districtfive/survey-backend/internal/config"
	"github.com/districtfive/survey-backend/internal/model"
)

// Provider is the outbound messaging seam. The production implementation
// talks to Twilio; tests plug in a fake.
type Provider interface {
	Send(to, from, body string) (sid, status string, err error)
}

// Bot sends survey invitations and accumulates one record per attempt for
// the duration of a run.
type Bot struct {
	Provider   Provider
	FromNumber string
	SurveyURL  string
	sent       []model.SentMessageRecord
}

func NewBot(p Provider, cfg config.SMSConfig) *Bot {
	return &Bot{
		Provider:   p,
		FromNumber: cfg.FromNumber,
		SurveyURL:  cfg.SurveyURL,
	}
}

// FormatPhoneNumber converts input to E.164: all non-digits stripped, a US
// country code prepended when exactly 10 digits remain, then a leading "+".
// Any other digit count passes through with just the "+" prefix.
func FormatPhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) == 10 {
		digits = "1" + digits
	}

	return "+" + digits
}

// ComposeMessage builds the invitation, personalized when a name is known.
func (b *Bot) ComposeMessage(name string) string {
	greeting := "Hello!"
	if name != "" {
		greeting = fmt.Sprintf("Hello %s!", name)
	}

	return fmt.Sprintf(
		"%s\n\n"+
			"You're invited to participate in the District 5 Voter Survey for "+
			"Hyde Park, Mattapan, and Readville.\n\n"+
			"Your voice matters! Share your thoughts on important community issues.\n\n"+
			"Complete the survey here: %s\n\n"+
			"Thank you for your participation!",
		greeting, b.SurveyURL)
}

// SendOne sends to a single number. Provider failures never propagate: the
// outcome, success or failure, always comes back as a record and is added
// to the run log.
func (b *Bot) SendOne(phone, name string) model.SentMessageRecord {
	formatted := FormatPhoneNumber(phone)
	body := b.ComposeMessage(name)

	record := model.SentMessageRecord{
		Name:      name,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	sid, status, err := b.Provider.Send(formatted, b.FromNumber, body)
	if err != nil {
		record.Success = false
		record.To = phone
		record.Error = err.Error()
		log.Printf("✗ Failed to send SMS to %s: %v", phone, err)
	} else {
		record.Success = true
		record.To = formatted
		record.SID = sid
		record.Status = status
		log.Printf("✓ SMS sent to %s (SID: %s)", formatted, sid)
	}

	b.sent = append(b.sent, record)
	return record
}

// SendBulk processes recipients strictly sequentially, best-effort: a
// recipient without a phone number counts as failed without touching the
// provider, and individual failures never stop the run.
func (b *Bot) SendBulk(recipients []model.Recipient) model.BulkSendSummary {
	log.Printf("Sending survey invitations to %d recipients...", len(recipients))

	summary := model.BulkSendSummary{
		Total:   len(recipients),
		Details: []model.SentMessageRecord{},
	}

	for _, rcpt := range recipients {
		if rcpt.Phone == "" {
			log.Println("✗ Skipping recipient: missing phone number")
			summary.Failed++
			continue
		}

		record := b.SendOne(rcpt.Phone, rcpt.Name)
		summary.Details = append(summary.Details, record)

		if record.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	log.Println(strings.Repeat("=", 50))
	log.Println("Bulk SMS Send Summary:")
	log.Printf("Total: %d", summary.Total)
	log.Printf("Successful: %d", summary.Successful)
	log.Printf("Failed: %d", summary.Failed)
	log.Println(strings.Repeat("=", 50))

	return summary
}

// Sent returns the records accumulated so far in this run.
func (b *Bot) Sent() []model.SentMessageRecord {
	return b.sent
}

// SaveLog writes the accumulated records plus a run timestamp to filename,
// overwriting any existing file.
func (b *Bot) SaveLog(filename string) error {
	doc := struct {
		Timestamp string                    `json:"timestamp"`
		Messages  []model.SentMessageRecord `json:"messages"`
	}{
		Timestamp: time.Now().Format(time.RFC3339),
		Messages:  b.sent,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, out, 0o644); err != nil {
		return fmt.Errorf("failed to write log %s: %w", filename, err)
	}

	log.Printf("Log saved to %s", filename)
	return nil
}

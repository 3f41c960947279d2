// internal/sms/twilio.go
package sms

import (
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider sends through Twilio's Messages API. No timeout is layered
// on top of the SDK's default HTTP client.
type TwilioProvider struct {
	client *twilio.RestClient
}

func NewTwilioProvider(accountSID, authToken string) *TwilioProvider {
	return &TwilioProvider{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
	}
}

func (p *TwilioProvider) Send(to, from, body string) (string, string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	msg, err := p.client.Api.CreateMessage(params)
	if err != nil {
		return "", "", err
	}

	var sid, status string
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	if msg.Status != nil {
		status = *msg.Status
	}
	return sid, status, nil
}

var _ Provider = (*TwilioProvider)(nil)

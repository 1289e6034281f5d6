package notify

import (
	"regexp"

	"agronomy-services-api-server/config"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var phoneRecipient = regexp.MustCompile(`^\+?[0-9][0-9 -]{8,}$`)

// SMSChannel delivers intents as text messages through Twilio.
type SMSChannel struct {
	cfg    config.TwilioConfig
	client *twilio.RestClient
}

func NewSMSChannel(cfg config.TwilioConfig) *SMSChannel {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &SMSChannel{cfg: cfg, client: client}
}

func (c *SMSChannel) IsValid(recipient string) bool {
	return phoneRecipient.MatchString(recipient)
}

func (c *SMSChannel) Deliver(intent Intent) error {
	// SMS carries the subject line only; the full body is email-sized.
	subject, _ := Render(intent)

	params := &openapi.CreateMessageParams{}
	params.SetTo(intent.Recipient)
	params.SetFrom(c.cfg.FromNumber)
	params.SetBody(subject)

	_, err := c.client.Api.CreateMessage(params)
	return err
}

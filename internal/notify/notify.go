// Package notify delivers best-effort notifications over email and SMS.
// Delivery failures are logged and swallowed: a failed notification never
// changes the outcome of the operation that triggered it.
package notify

import (
	"agronomy-services-api-server/config"
	"agronomy-services-api-server/internal/logger"

	"go.uber.org/zap"
)

// Intent is a message to deliver: who to reach, which template to render and
// the values to render it with.
type Intent struct {
	Recipient string
	Template  string
	Data      map[string]string
}

// Channel delivers intents to one kind of recipient address.
type Channel interface {
	IsValid(recipient string) bool
	Deliver(intent Intent) error
}

// Dispatcher accepts intents for fire-and-forget delivery.
type Dispatcher interface {
	Send(intent Intent)
}

// ChannelDispatcher fans an intent out to the first channel that recognizes
// the recipient address.
type ChannelDispatcher struct {
	channels []Channel
}

// NewDispatcher builds a dispatcher from configuration. Channels whose
// provider credentials are absent are left out; with no channels configured
// every send is logged and dropped.
func NewDispatcher(cfg config.Config) *ChannelDispatcher {
	var channels []Channel
	if cfg.SMTP.Host != "" {
		channels = append(channels, NewEmailChannel(cfg.SMTP))
	}
	if cfg.Twilio.AccountSID != "" {
		channels = append(channels, NewSMSChannel(cfg.Twilio))
	}
	return &ChannelDispatcher{channels: channels}
}

// Send dispatches the intent in the background. It never blocks the caller on
// provider latency and never reports delivery errors back.
func (d *ChannelDispatcher) Send(intent Intent) {
	go d.deliver(intent)
}

func (d *ChannelDispatcher) deliver(intent Intent) {
	for _, ch := range d.channels {
		if !ch.IsValid(intent.Recipient) {
			continue
		}
		if err := ch.Deliver(intent); err != nil {
			logger.Error("notification delivery failed",
				zap.String("template", intent.Template),
				zap.String("recipient", intent.Recipient),
				zap.Error(err))
		}
		return
	}
	logger.Warn("no notification channel for recipient",
		zap.String("template", intent.Template),
		zap.String("recipient", intent.Recipient))
}

// NopDispatcher drops every intent. Used in tests.
type NopDispatcher struct{}

func (NopDispatcher) Send(intent Intent) {}

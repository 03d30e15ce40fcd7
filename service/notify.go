package service

import (
	"butce/models"

	"github.com/sirupsen/logrus"
)

// LocalizedText carries the two supported notification locales.
type LocalizedText struct {
	EN string `json:"en"`
	TR string `json:"tr"`
}

// For picks the variant for a user language, defaulting to Turkish.
func (t LocalizedText) For(lang string) string {
	if lang == models.LanguageEnglish {
		return t.EN
	}
	return t.TR
}

// Notifier delivers a localized message to a user. Delivery is
// best-effort: callers log failures and move on.
type Notifier interface {
	Send(user *models.User, title, body LocalizedText, data map[string]string) error
}

// Dispatcher routes a notification to the user's registered device, or
// falls back to email when no device is registered.
type Dispatcher struct {
	push  *PushService
	email *EmailService
	log   *logrus.Logger
}

// NewDispatcher creates a dispatcher. Either channel may be nil.
func NewDispatcher(push *PushService, email *EmailService, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{push: push, email: email, log: log}
}

// Send implements Notifier.
func (d *Dispatcher) Send(user *models.User, title, body LocalizedText, data map[string]string) error {
	if d.push != nil && d.push.Enabled() && user.PushToken != "" {
		return d.push.Send(user.PushToken, title.For(user.Language), body.For(user.Language), data)
	}
	if d.email != nil && d.email.Enabled() && user.Email != "" {
		return d.email.SendNotification(user.Email, title.For(user.Language), body.For(user.Language))
	}
	d.log.WithField("user_id", user.ID).Debug("no notification target registered")
	return errNoTarget
}

var errNoTarget = &deliveryError{msg: "no notification target"}

// deliveryError marks a failed best-effort delivery.
type deliveryError struct {
	msg string
}

func (e *deliveryError) Error() string { return e.msg }

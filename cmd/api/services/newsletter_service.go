package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"portfolio/eventbus"
	"portfolio/events"
)

var ErrInvalidEmail = errors.New("invalid email address")

// NewsletterService accepts signups. Nothing is stored; each signup is announced on the event bus.
type NewsletterService struct {
	bus eventbus.EventBus
}

func NewNewsletterService(bus eventbus.EventBus) *NewsletterService {
	return &NewsletterService{bus: bus}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	email, err := normalizeSubscriberEmail(email)
	if err != nil {
		return err
	}
	evt := events.NewNewsletterSubscribed(email)
	return publish(ctx, s.bus, evt.ID, evt)
}

// normalizeSubscriberEmail accepts a bare address with a dotted domain.
func normalizeSubscriberEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", ErrInvalidEmail
	}
	at := strings.LastIndexByte(raw, '@')
	if at < 1 || !strings.Contains(raw[at+1:], ".") {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(raw), nil
}

package notifier

import (
	"context"
	"time"
)

// Notifier уведомляет путешественника о подтвержденном бронировании
type Notifier struct {
	sender  Sender
	log     Logger
	timeout time.Duration
}

// New создает уведомитель. Без sender уведомления только логируются.
func New(sender Sender, log Logger) *Notifier {
	return &Notifier{sender: sender, log: log}
}

// WithTimeout ограничивает время отправки одного письма
func (n *Notifier) WithTimeout(d time.Duration) *Notifier {
	n.timeout = d
	return n
}

// NotifyConfirmed отправляет письмо о подтверждении
func (n *Notifier) NotifyConfirmed(ctx context.Context, c Confirmation) error {
	if c.RecipientEmail == "" {
		return ErrNoRecipient
	}

	subject, body, err := RenderConfirmation(c)
	if err != nil {
		return err
	}

	if n.sender == nil {
		n.log.Info("Notifier: disabled, skipping confirmation for booking id=%s", c.BookingID)
		return nil
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	if err := n.sender.Send(ctx, c.RecipientEmail, subject, body); err != nil {
		n.log.Error("Notifier: failed to send confirmation for booking id=%s: %v", c.BookingID, err)
		return err
	}

	n.log.Info("Notifier: confirmation sent for booking id=%s", c.BookingID)
	return nil
}

package notifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailConfig OAuth учетные данные отправителя
type GmailConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	From         string
}

// GmailSender отправляет письма через Gmail API
type GmailSender struct {
	service *gmail.Service
	from    string
}

// NewGmailSender создает отправителя с OAuth токеном из refresh token
func NewGmailSender(ctx context.Context, cfg GmailConfig, opts ...option.ClientOption) (*GmailSender, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}

	token := &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
		Expiry:       time.Now(), // Принудительное обновление
	}

	clientOpts := append([]option.ClientOption{option.WithTokenSource(oauthConfig.TokenSource(ctx, token))}, opts...)
	service, err := gmail.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create gmail service: %v", ErrSend, err)
	}

	return NewGmailSenderWithService(service, cfg.From), nil
}

// NewGmailSenderWithService создает отправителя поверх готового клиента Gmail
func NewGmailSenderWithService(service *gmail.Service, from string) *GmailSender {
	return &GmailSender{service: service, from: from}
}

// Send отправляет текстовое письмо
func (s *GmailSender) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return ErrNoRecipient
	}

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(buildMIME(s.from, to, subject, body))),
	}

	if _, err := s.service.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSend, to, err)
	}
	return nil
}

func buildMIME(from, to, subject, body string) string {
	var b strings.Builder
	if from != "" {
		b.WriteString("From: " + from + "\r\n")
	}
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}

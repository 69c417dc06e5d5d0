package notifier

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"text/template"
	"unicode"
)

const chatBaseURL = "https://wa.me/"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(
	`Hello {{.RecipientName}},

your booking {{.BookingID}}{{if .SubjectTitle}} for "{{.SubjectTitle}}"{{end}} is {{.Status}}.

Departure: {{.DepartureDate.Format "2006-01-02"}}
Travelers: {{.TravelerCount}}{{if gt .ChildCount 0}} ({{.ChildCount}} children){{end}}
Total: {{printf "%.2f" .TotalPrice}}
{{if .ShareURL}}
Invite your companions with this link:
{{.ShareURL}}
{{end}}{{if .ChatLink}}
Questions? Write to us: {{.ChatLink}}
{{end}}`))

// RenderConfirmation собирает тему и текст письма
func RenderConfirmation(c Confirmation) (string, string, error) {
	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, c); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	subject := fmt.Sprintf("Booking %s %s", c.BookingID, c.Status)
	return subject, body.String(), nil
}

// ChatLink строит ссылку на чат с агентством с предзаполненным текстом.
// Из телефона остаются только цифры, пустой телефон дает пустую ссылку.
func ChatLink(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}

	link := chatBaseURL + digits
	if text != "" {
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link
}

// BookingChatText текст сообщения агентству о бронировании
func BookingChatText(bookingID, name string) string {
	return fmt.Sprintf("Hello! I'm %s, booking %s", name, bookingID)
}

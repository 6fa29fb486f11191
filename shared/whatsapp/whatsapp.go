package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// Digits strips everything but digits from a phone number, which is the
// only form wa.me accepts.
func Digits(number string) string {
	var b strings.Builder

	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Link builds a wa.me deep link with the message percent-encoded as the
// text query parameter. An empty number yields an empty link.
func Link(number, message string) string {
	digits := Digits(number)
	if digits == "" {
		return ""
	}

	link := baseURL + digits
	if message != "" {
		// QueryEscape turns spaces into "+", which WhatsApp renders
		// literally; use %20 instead.
		encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
		link += "?text=" + encoded
	}

	return link
}

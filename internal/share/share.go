// Package share builds the outbound WhatsApp links the storefront exposes.
// Plain string formatting; the protocol belongs to WhatsApp.
package share

import (
	"fmt"
	"net/url"

	"monabazaar/internal/domain"
)

// Link returns a wa.me URL with the text pre-filled. An empty phone yields
// the recipient-less form the product share uses.
func Link(phone, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}

// ProductMessage is the canned share text for a product page.
func ProductMessage(p domain.Product) string {
	return fmt.Sprintf("Check out this %s from Mona Designers - %s", p.Name, p.Price)
}

// EnquiryMessage is the storefront's generic contact message.
func EnquiryMessage() string {
	return "Hi! I'm interested in your ethnic wear collection."
}

package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Opener hands a deep link to the visitor's browser. Implementations must not
// block; nothing is returned because a blocked popup is not recoverable here.
type Opener interface {
	Open(link string)
}

// LinkBuilder constructs click-to-chat links for a fixed destination
type LinkBuilder interface {
	DeepLink(message string) string
}

type linkBuilderImpl struct {
	host   string
	number string
}

// NewLinkBuilder creates a builder for https://<host>/<number>?text=...
func NewLinkBuilder(host, number string) LinkBuilder {
	return &linkBuilderImpl{
		host:   strings.Trim(host, "/"),
		number: digitsOnly(number),
	}
}

func (b *linkBuilderImpl) DeepLink(message string) string {
	return fmt.Sprintf("https://%s/%s?text=%s", b.host, b.number, EncodeComponent(message))
}

// EncodeComponent percent-encodes s as a query value with spaces written as
// %20 rather than "+", which chat clients decode like encodeURIComponent.
func EncodeComponent(s string) string {
	// QueryEscape already turns a literal "+" into %2B, so every "+" left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LinkRecorder is an Opener that keeps the last link it was asked to open.
// The HTTP layer uses it to turn the hand-off into a redirect.
type LinkRecorder struct {
	link string
}

func (r *LinkRecorder) Open(link string) {
	r.link = link
}

// Link returns the recorded link, or "" if Open was never called.
func (r *LinkRecorder) Link() string {
	return r.link
}

package whatsapp

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepLink(t *testing.T) {
	b := NewLinkBuilder("wa.me", "+55 (65) 99293-4536")

	link := b.DeepLink("Olá! Nome: Ana & Co\nDesafio: 100% manual + lento")

	assert.Equal(t,
		"https://wa.me/5565992934536?text=Ol%C3%A1%21%20Nome%3A%20Ana%20%26%20Co%0ADesafio%3A%20100%25%20manual%20%2B%20lento",
		link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Olá! Nome: Ana & Co\nDesafio: 100% manual + lento", u.Query().Get("text"))
}

func TestDeepLink_TrimsHostSlashes(t *testing.T) {
	b := NewLinkBuilder("api.whatsapp.com/", "5511")
	assert.Equal(t, "https://api.whatsapp.com/5511?text=oi", b.DeepLink("oi"))
}

func TestLinkRecorder(t *testing.T) {
	var r LinkRecorder
	assert.Empty(t, r.Link())

	r.Open("https://wa.me/1?text=a")
	r.Open("https://wa.me/1?text=b")
	assert.Equal(t, "https://wa.me/1?text=b", r.Link())
}

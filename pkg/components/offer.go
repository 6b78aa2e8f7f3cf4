package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/navarrastar/leadpage/pkg/services"
)

// OfferSection renders the limited-time offer with the countdown already
// filled in; landing.js keeps it ticking from data-deadline.
func OfferSection(remaining services.Remaining, deadlineUnixMillis int64) g.Node {
	return g.El("section",
		ID("oferta"),
		Class("section offer"),
		Div(
			Class("container"),
			revealAttrs(reveal(0)),
			Span(Class("badge"), g.Text("Oferta por tempo limitado")),
			H2(g.Text("Diagnóstico de IA gratuito para as próximas empresas")),
			P(g.Text("Agende agora e receba um plano de implementação personalizado, sem custo.")),
			Div(
				Class("countdown"),
				ID("countdown"),
				g.Attr("data-deadline", fmt.Sprintf("%d", deadlineUnixMillis)),
				countdownUnit("days", remaining.Days, "Dias"),
				countdownUnit("hours", remaining.Hours, "Horas"),
				countdownUnit("minutes", remaining.Minutes, "Min"),
				countdownUnit("seconds", remaining.Seconds, "Seg"),
			),
			A(Href("#contato"), Class("btn btn-primary"), g.Attr("data-track", "offer_cta"), g.Text("Garantir minha vaga")),
		),
	)
}

func countdownUnit(unit string, value int, label string) g.Node {
	return Div(
		Class("countdown-unit"),
		Span(Class("countdown-value"), g.Attr("data-unit", unit), g.Textf("%02d", value)),
		Span(Class("countdown-label"), g.Text(label)),
	)
}

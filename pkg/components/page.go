package components

import (
	g "maragu.dev/gomponents"

	"github.com/navarrastar/leadpage/pkg/services"
)

// LandingProps is everything needed to render the full landing page.
type LandingProps struct {
	Page           PageConfig
	Countdown      services.Remaining
	DeadlineUnixMs int64
	Contact        ContactProps
	Year           int
}

func LandingPage(props LandingProps) g.Node {
	return Layout(
		props.Page,
		Hero(),
		ProblemSection(),
		SolutionSection(),
		ResultsSection(),
		TestimonialsSection(),
		OfferSection(props.Countdown, props.DeadlineUnixMs),
		FAQSection(),
		ContactSection(props.Contact),
		PageFooter(props.Year),
	)
}

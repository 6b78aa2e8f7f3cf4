package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title         string
	Description   string
	MeasurementID string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Consultoria em IA | Automatize e escale seu negócio"
	}

	if config.Description == "" {
		config.Description = "Implementamos inteligência artificial no seu negócio em semanas, com resultados mensuráveis."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("pt-BR"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("/static/css/landing.css")),

				g.If(config.MeasurementID != "",
					Script(g.Attr("async"), Src("https://www.googletagmanager.com/gtag/js?id="+config.MeasurementID)),
				),
			),
			Body(
				g.Attr("data-measurement-id", config.MeasurementID),
				Main(g.Group(content)),

				Script(Src("/static/js/landing.js"), g.Attr("defer")),
			),
		),
	})
}

// revealAttrs marks a block for the one-shot scroll reveal in landing.js.
func revealAttrs(opts RevealSettings) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-reveal", ""),
		g.Attr("data-reveal-threshold", formatRatio(opts.Threshold)),
		g.Attr("data-reveal-margin", opts.RootMargin),
		g.Attr("data-reveal-delay", formatMillis(opts.DelayMillis)),
	})
}

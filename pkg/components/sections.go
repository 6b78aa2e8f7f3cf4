package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return g.El("section",
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-content"),
			revealAttrs(reveal(0)),
			Span(Class("badge"), g.Text("Consultoria em Inteligência Artificial")),
			H1(
				g.Text("Coloque a IA para trabalhar"),
				Br(),
				Span(Class("gradient-text"), g.Text("pelo seu negócio")),
			),
			P(
				Class("lead"),
				g.Text("Automatizamos atendimento, vendas e operação com agentes de IA sob medida. Menos trabalho manual, mais resultado."),
			),
			Div(
				Class("hero-actions"),
				A(Href("#contato"), Class("btn btn-primary"), g.Attr("data-track", "hero_cta"), g.Text("Quero um diagnóstico gratuito")),
				A(Href("#solucao"), Class("btn btn-ghost"), g.Text("Como funciona")),
			),
		),
	)
}

func ProblemSection() g.Node {
	return g.El("section",
		ID("problema"),
		Class("section"),
		Div(
			Class("container"),
			H2(revealAttrs(reveal(0)), g.Text("Sua empresa está perdendo tempo e dinheiro?")),
			Div(
				Class("grid grid-3"),
				g.Group(indexed(pains, func(i int, p Pain) g.Node {
					return Div(
						Class("card"),
						revealAttrs(reveal(time.Duration(i)*150*time.Millisecond)),
						H3(g.Text(p.Title)),
						P(g.Text(p.Description)),
					)
				})),
			),
		),
	)
}

func SolutionSection() g.Node {
	return g.El("section",
		ID("solucao"),
		Class("section section-alt"),
		Div(
			Class("container"),
			H2(revealAttrs(reveal(0)), g.Text("Como implementamos IA no seu negócio")),
			Div(
				Class("grid grid-3"),
				g.Group(indexed(steps, func(i int, s ProcessStep) g.Node {
					return Div(
						Class("card step"),
						revealAttrs(reveal(time.Duration(i)*150*time.Millisecond)),
						Span(Class("step-number"), g.Text(s.Number)),
						H3(g.Text(s.Title)),
						P(g.Text(s.Description)),
					)
				})),
			),
		),
	)
}

func ResultsSection() g.Node {
	return g.El("section",
		ID("resultados"),
		Class("section"),
		Div(
			Class("container"),
			H2(revealAttrs(reveal(0)), g.Text("Resultados que nossos clientes alcançam")),
			Div(
				Class("grid grid-4"),
				g.Group(g.Map(results, func(r Result) g.Node {
					return Div(
						Class("stat"),
						revealAttrs(reveal(0)),
						P(Class("stat-value"), g.Text(r.Value)),
						P(Class("stat-label"), g.Text(r.Label)),
					)
				})),
			),
		),
	)
}

func TestimonialsSection() g.Node {
	return g.El("section",
		ID("depoimentos"),
		Class("section section-alt"),
		Div(
			Class("container"),
			H2(revealAttrs(reveal(0)), g.Text("Quem já transformou a operação com IA")),
			Div(
				Class("grid grid-3"),
				g.Group(indexed(testimonials, func(i int, t Testimonial) g.Node {
					return g.El("figure",
						Class("card testimonial"),
						revealAttrs(reveal(time.Duration(i)*200*time.Millisecond)),
						g.El("blockquote", P(g.Textf("“%s”", t.Quote))),
						g.El("figcaption",
							g.El("strong", g.Text(t.Author)),
							Span(g.Textf("%s, %s", t.Role, t.Company)),
						),
					)
				})),
			),
		),
	)
}

func FAQSection() g.Node {
	return g.El("section",
		ID("faq"),
		Class("section"),
		Div(
			Class("container narrow"),
			H2(revealAttrs(reveal(0)), g.Text("Perguntas frequentes")),
			g.Group(g.Map(questions, func(q Question) g.Node {
				return g.El("details",
					Class("faq-item"),
					revealAttrs(reveal(0)),
					g.El("summary", g.Text(q.Question)),
					P(g.Text(q.Answer)),
				)
			})),
		),
	)
}

func PageFooter(year int) g.Node {
	return g.El("footer",
		Class("footer"),
		Div(
			Class("container"),
			P(g.Textf("© %d Consultoria em IA. Todos os direitos reservados.", year)),
			A(Href("#privacidade"), g.Text("Política de Privacidade")),
		),
	)
}

func indexed[T any](ts []T, cb func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(ts))
	for i, t := range ts {
		nodes = append(nodes, cb(i, t))
	}
	return nodes
}

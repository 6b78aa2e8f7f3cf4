package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/navarrastar/leadpage/pkg/models"
)

// ContactProps is the state of the contact form when rendered.
type ContactProps struct {
	Form         models.LeadForm
	Errors       models.ValidationErrors
	Notification *models.Notification
}

func ContactSection(props ContactProps) g.Node {
	return g.El("section",
		ID("contato"),
		Class("section section-alt"),
		Div(
			Class("container narrow"),
			revealAttrs(reveal(0)),
			H2(g.Text("Fale com um especialista")),
			P(g.Text("Preencha o formulário e continue a conversa direto no WhatsApp.")),
			toast(props.Notification),
			g.El("form",
				ID("contact-form"),
				Class("contact-form"),
				g.Attr("method", "post"),
				g.Attr("action", "/contact"),
				g.Attr("target", "_blank"),
				g.Attr("novalidate"),
				textField(models.FieldName, "Nome", "Seu nome completo", props.Form.Name, props.Errors),
				textField(models.FieldWhatsApp, "WhatsApp", "+55 65 92934536", props.Form.WhatsApp, props.Errors),
				textField(models.FieldCompany, "Empresa", "Nome da sua empresa", props.Form.Company, props.Errors),
				Div(
					Class("field"),
					Label(g.Attr("for", string(models.FieldChallenge)), g.Text("Qual o seu maior desafio hoje?")),
					g.El("textarea",
						ID(string(models.FieldChallenge)),
						Name(string(models.FieldChallenge)),
						g.Attr("rows", "4"),
						g.Attr("placeholder", "Conte rapidamente o que você quer resolver"),
						g.Text(props.Form.Challenge),
					),
				),
				Div(
					Class("field checkbox"),
					Input(
						Type("checkbox"),
						ID("privacyAccepted"),
						Name("privacyAccepted"),
						g.Attr("value", "true"),
						g.If(props.Form.PrivacyAccepted, g.Attr("checked")),
					),
					Label(
						g.Attr("for", "privacyAccepted"),
						g.Text("Li e aceito a "),
						A(Href("#privacidade"), g.Text("Política de Privacidade")),
					),
					fieldError(models.FieldPrivacyPolicy, props.Errors),
				),
				Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("Enviar e falar no WhatsApp")),
			),
		),
	)
}

func textField(field models.Field, label, placeholder, value string, errs models.ValidationErrors) g.Node {
	name := string(field)
	return Div(
		Class("field"),
		g.If(errs.Has(field), g.Attr("data-invalid", "")),
		Label(g.Attr("for", name), g.Text(label)),
		Input(
			Type("text"),
			ID(name),
			Name(name),
			g.Attr("placeholder", placeholder),
			g.Attr("value", value),
		),
		fieldError(field, errs),
	)
}

func fieldError(field models.Field, errs models.ValidationErrors) g.Node {
	msg, ok := errs[field]
	if !ok {
		return nil
	}
	return P(Class("field-error"), g.Attr("data-error-for", string(field)), g.Text(msg))
}

func toast(n *models.Notification) g.Node {
	if n == nil {
		return nil
	}
	return Div(
		Class("toast toast-"+string(n.Kind)),
		g.Attr("role", "status"),
		g.El("strong", g.Text(n.Title)),
		P(g.Text(n.Description)),
	)
}

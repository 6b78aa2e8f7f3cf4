package components

import (
	"strconv"
	"time"

	"github.com/navarrastar/leadpage/pkg/services"
)

// RevealSettings is the browser-side form of services.RevealOptions.
type RevealSettings struct {
	Threshold   float64
	RootMargin  string
	DelayMillis int64
}

// NewRevealSettings converts detector options for rendering.
func NewRevealSettings(opts services.RevealOptions) RevealSettings {
	return RevealSettings{
		Threshold:   opts.Threshold,
		RootMargin:  opts.RootMargin,
		DelayMillis: opts.Delay.Milliseconds(),
	}
}

func reveal(delay time.Duration) RevealSettings {
	return NewRevealSettings(services.NewRevealOptions(services.WithDelay(delay)))
}

func formatRatio(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatMillis(ms int64) string {
	return strconv.FormatInt(ms, 10)
}

type Pain struct {
	Title       string
	Description string
}

type ProcessStep struct {
	Number      string
	Title       string
	Description string
}

type Result struct {
	Value string
	Label string
}

type Testimonial struct {
	Quote   string
	Author  string
	Role    string
	Company string
}

type Question struct {
	Question string
	Answer   string
}

var pains = []Pain{
	{"Equipe presa em tarefas repetitivas", "Horas por semana gastas copiando dados, respondendo as mesmas perguntas e montando relatórios à mão."},
	{"Atendimento que não escala", "Leads esfriam esperando resposta e clientes abandonam a conversa fora do horário comercial."},
	{"Decisões no escuro", "Os dados existem, mas estão espalhados em planilhas e sistemas que não conversam entre si."},
}

var steps = []ProcessStep{
	{"01", "Diagnóstico", "Mapeamos seus processos e identificamos onde a IA gera retorno mais rápido."},
	{"02", "Implementação", "Construímos e integramos agentes e automações aos sistemas que você já usa."},
	{"03", "Acompanhamento", "Medimos resultados, ajustamos e treinamos sua equipe para tirar o máximo da solução."},
}

var results = []Result{
	{"70%", "menos tempo em tarefas operacionais"},
	{"3x", "mais leads respondidos em até 5 minutos"},
	{"24/7", "atendimento automatizado no WhatsApp"},
	{"30 dias", "do diagnóstico à primeira automação no ar"},
}

var testimonials = []Testimonial{
	{"Em um mês o agente de IA passou a responder 80% das dúvidas dos clientes. Minha equipe agora só cuida das vendas.", "Mariana Lopes", "Diretora Comercial", "Lopes Imóveis"},
	{"O diagnóstico mostrou gargalos que a gente nem enxergava. O retorno veio antes do previsto.", "Carlos Henrique", "CEO", "CH Logística"},
	{"Integraram tudo ao nosso ERP sem parar a operação. Os relatórios que levavam dias saem em minutos.", "Fernanda Prado", "Gerente de Operações", "Prado Alimentos"},
}

var questions = []Question{
	{"Preciso ter uma equipe técnica?", "Não. Cuidamos de toda a parte técnica e treinamos sua equipe para usar as soluções no dia a dia."},
	{"Quanto tempo leva para ver resultados?", "A maioria dos clientes tem a primeira automação funcionando em até 30 dias após o diagnóstico."},
	{"Meus dados ficam seguros?", "Sim. Trabalhamos com contratos de confidencialidade e seguimos a LGPD em todas as integrações."},
	{"Funciona para empresas pequenas?", "Sim. Começamos pelos processos de maior impacto, com investimento proporcional ao tamanho do negócio."},
}

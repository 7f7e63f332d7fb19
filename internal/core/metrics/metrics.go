// internal/core/metrics/metrics.go
//
// Funções puras de agregação sobre as coleções em memória. Nenhuma função
// altera seus argumentos nem lê relógio; o mesmo input produz sempre o mesmo
// output, o que permite recalcular os painéis a cada requisição.
package metrics

import (
	"math"
	"sort"
	"strings"

	"github.com/viniciusgf/painelcontabil/internal/domain"
)

// ClientSummary é o rollup anual do dataset financeiro de um cliente.
type ClientSummary struct {
	TotalReceita  float64 `json:"totalReceita"`
	TotalDespesa  float64 `json:"totalDespesa"`
	TotalLucro    float64 `json:"totalLucro"`
	TotalImpostos float64 `json:"totalImpostos"`
	MargemLucro   float64 `json:"margemLucro"`
	ReceitaTrend  float64 `json:"receitaTrend"`
}

// SummarizeFinancials totaliza o ano e calcula margem e tendência. Margem é 0
// quando não há receita; a tendência compara os dois últimos meses e é 0 com
// menos de dois registros.
func SummarizeFinancials(records []domain.FinancialRecord) ClientSummary {
	var s ClientSummary
	for _, r := range records {
		s.TotalReceita += r.Receita
		s.TotalDespesa += r.Despesa
		s.TotalImpostos += r.Impostos
	}
	s.TotalLucro = s.TotalReceita - s.TotalDespesa

	if s.TotalReceita > 0 {
		s.MargemLucro = round1(s.TotalLucro / s.TotalReceita * 100)
	}

	if n := len(records); n >= 2 {
		last, prev := records[n-1], records[n-2]
		if prev.Receita != 0 {
			s.ReceitaTrend = round1((last.Receita - prev.Receita) / prev.Receita * 100)
		}
	}
	return s
}

// DRERow é uma linha do DRE simplificado exibido por mês.
type DRERow struct {
	Month   string  `json:"month"`
	Receita float64 `json:"receita"`
	Custos  float64 `json:"custos"`
	Lucro   float64 `json:"lucro"`
	Margem  int     `json:"margem"`
}

func DRE(records []domain.FinancialRecord) []DRERow {
	rows := make([]DRERow, 0, len(records))
	for _, r := range records {
		margem := 0
		if r.Receita > 0 {
			margem = roundInt(r.Lucro / r.Receita * 100)
		}
		rows = append(rows, DRERow{
			Month:   r.Month,
			Receita: r.Receita,
			Custos:  r.Despesa,
			Lucro:   r.Lucro,
			Margem:  margem,
		})
	}
	return rows
}

// CashFlowRow compara contas a receber e a pagar em um mês.
type CashFlowRow struct {
	Month   string  `json:"month"`
	Receber float64 `json:"receber"`
	Pagar   float64 `json:"pagar"`
	Saldo   float64 `json:"saldo"`
}

func CashFlow(records []domain.FinancialRecord) []CashFlowRow {
	rows := make([]CashFlowRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, CashFlowRow{
			Month:   r.Month,
			Receber: r.ContasReceber,
			Pagar:   r.ContasPagar,
			Saldo:   r.ContasReceber - r.ContasPagar,
		})
	}
	return rows
}

// CostComposition decompõe o custo anual. Operacional é o que sobra da despesa
// depois da folha.
type CostComposition struct {
	Impostos      float64 `json:"impostos"`
	Folha         float64 `json:"folha"`
	Operacional   float64 `json:"operacional"`
	Investimentos float64 `json:"investimentos"`
}

func Costs(records []domain.FinancialRecord) CostComposition {
	var c CostComposition
	var despesa float64
	for _, r := range records {
		c.Impostos += r.Impostos
		c.Folha += r.FolhaPagamento
		c.Investimentos += r.Investimentos
		despesa += r.Despesa
	}
	c.Operacional = despesa - c.Folha
	return c
}

// TaxSummary particiona os tributos por status, com contagem e soma por fatia.
type TaxSummary struct {
	Total         float64 `json:"total"`
	PagoCount     int     `json:"pagoCount"`
	PagoValor     float64 `json:"pagoValor"`
	PendenteCount int     `json:"pendenteCount"`
	PendenteValor float64 `json:"pendenteValor"`
	AtrasadoCount int     `json:"atrasadoCount"`
	AtrasadoValor float64 `json:"atrasadoValor"`
	EmAbertoValor float64 `json:"emAbertoValor"`
}

func SummarizeTaxes(records []domain.TaxRecord) TaxSummary {
	var s TaxSummary
	for _, r := range records {
		s.Total += r.Valor
		switch r.Status {
		case domain.TaxPago:
			s.PagoCount++
			s.PagoValor += r.Valor
		case domain.TaxAtrasado:
			s.AtrasadoCount++
			s.AtrasadoValor += r.Valor
		default:
			s.PendenteCount++
			s.PendenteValor += r.Valor
		}
	}
	s.EmAbertoValor = s.PendenteValor + s.AtrasadoValor
	return s
}

// TaskOverview é o rollup de tarefas do escritório inteiro.
type TaskOverview struct {
	Total          int     `json:"total"`
	Concluidas     int     `json:"concluidas"`
	EmProgresso    int     `json:"emProgresso"`
	Pendentes      int     `json:"pendentes"`
	Atrasadas      int     `json:"atrasadas"`
	CompletionRate int     `json:"completionRate"`
	Efficiency     int     `json:"efficiency"`
	AvgEstimated   float64 `json:"avgEstimated"`
	AvgActual      float64 `json:"avgActual"`
}

// OverviewTasks particiona as tarefas nos quatro status e deriva taxa de
// conclusão e eficiência (estimado vs realizado, só sobre concluídas). As
// divisões são protegidas: coleção vazia resulta em 0, nunca em NaN.
func OverviewTasks(tasks []domain.Task) TaskOverview {
	var o TaskOverview
	o.Total = len(tasks)

	var sumEst, sumAct float64
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskConcluida:
			o.Concluidas++
			sumEst += t.EstimatedHours
			sumAct += t.ActualHours
		case domain.TaskEmProgresso:
			o.EmProgresso++
		case domain.TaskAtrasada:
			o.Atrasadas++
		default:
			o.Pendentes++
		}
	}

	if o.Total > 0 {
		o.CompletionRate = roundInt(float64(o.Concluidas) / float64(o.Total) * 100)
	}

	div := float64(o.Concluidas)
	if div == 0 {
		div = 1
	}
	o.AvgEstimated = sumEst / div
	o.AvgActual = sumAct / div

	denom := o.AvgActual
	if denom == 0 {
		denom = 1
	}
	o.Efficiency = roundInt(o.AvgEstimated / denom * 100)
	return o
}

// EmployeePerformance é a linha de ranking de um colaborador: dados cadastrais
// mais os derivados do mês corrente e os deltas contra o mês anterior.
type EmployeePerformance struct {
	domain.Employee
	CurrentTasks      int     `json:"currentTasks"`
	CompletedNow      int     `json:"completedNow"`
	TasksDelta        int     `json:"tasksDelta"`
	TimeDelta         float64 `json:"timeDelta"`
	ProductivityScore int     `json:"productivityScore"`
}

// ProductivityScore calcula round(concluídas / tempo médio * 10), com o tempo
// médio travado em no mínimo 1 para evitar divisão por zero.
func ProductivityScore(tasksCompleted int, avgTaskTime float64) int {
	if avgTaskTime == 0 {
		avgTaskTime = 1
	}
	return roundInt(float64(tasksCompleted) / avgTaskTime * 10)
}

// RankEmployees ordena por pontuação de produtividade decrescente; empates
// preservam a ordem original da coleção.
func RankEmployees(employees []domain.Employee, tasks []domain.Task) []EmployeePerformance {
	perf := make([]EmployeePerformance, 0, len(employees))
	for _, emp := range employees {
		p := EmployeePerformance{Employee: emp}
		for _, t := range tasks {
			if t.AssigneeID != emp.ID {
				continue
			}
			p.CurrentTasks++
			if t.Status == domain.TaskConcluida {
				p.CompletedNow++
			}
		}
		p.TasksDelta = emp.TasksCompleted - emp.TasksCompletedLastMonth
		p.TimeDelta = emp.AvgTaskTimeLastMonth - emp.AvgTaskTime
		p.ProductivityScore = ProductivityScore(emp.TasksCompleted, emp.AvgTaskTime)
		perf = append(perf, p)
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].ProductivityScore > perf[j].ProductivityScore
	})
	return perf
}

// CategoryCount agrupa tarefas por categoria, na ordem da primeira ocorrência.
type CategoryCount struct {
	Category  string `json:"category"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

func ByCategory(tasks []domain.Task) []CategoryCount {
	index := make(map[string]int)
	var counts []CategoryCount
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(counts)
			index[t.Category] = i
			counts = append(counts, CategoryCount{Category: t.Category})
		}
		counts[i].Total++
		if t.Status == domain.TaskConcluida {
			counts[i].Completed++
		}
	}
	return counts
}

// PriorityCount agrupa por prioridade, sempre na ordem fixa de exibição
// urgente, alta, media, baixa.
type PriorityCount struct {
	Priority  domain.TaskPriority `json:"priority"`
	Total     int                 `json:"total"`
	Completed int                 `json:"completed"`
}

func ByPriority(tasks []domain.Task) []PriorityCount {
	order := []domain.TaskPriority{
		domain.PriorityUrgente,
		domain.PriorityAlta,
		domain.PriorityMedia,
		domain.PriorityBaixa,
	}
	counts := make([]PriorityCount, len(order))
	for i, p := range order {
		counts[i].Priority = p
	}
	for _, t := range tasks {
		for i, p := range order {
			if t.Priority == p {
				counts[i].Total++
				if t.Status == domain.TaskConcluida {
					counts[i].Completed++
				}
				break
			}
		}
	}
	return counts
}

// Workload resume a carga de um colaborador para o gráfico de distribuição.
type Workload struct {
	Name        string  `json:"name"`
	Clientes    int     `json:"clientes"`
	TarefasMes  int     `json:"tarefasMes"`
	HorasMedias float64 `json:"horasMedias"`
}

func Workloads(employees []domain.Employee) []Workload {
	rows := make([]Workload, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, Workload{
			Name:        firstName(emp.Name),
			Clientes:    len(emp.Clients),
			TarefasMes:  emp.TasksCompleted,
			HorasMedias: emp.AvgTaskTime,
		})
	}
	return rows
}

// RadarRow são os cinco eixos do radar de competências, todos em escala 0-100.
type RadarRow struct {
	Name          string `json:"name"`
	Produtividade int    `json:"produtividade"`
	Velocidade    int    `json:"velocidade"`
	Qualidade     int    `json:"qualidade"`
	Volume        int    `json:"volume"`
	Clientes      int    `json:"clientes"`
}

func Radar(employees []domain.Employee) []RadarRow {
	rows := make([]RadarRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, RadarRow{
			Name:          firstName(emp.Name),
			Produtividade: ProductivityScore(emp.TasksCompleted, emp.AvgTaskTime),
			Velocidade:    roundInt(100 - emp.AvgTaskTime*15),
			Qualidade:     emp.Satisfaction,
			Volume:        clamp100(roundInt(float64(emp.TasksCompleted) * 1.5)),
			Clientes:      clamp100(len(emp.Clients) * 25),
		})
	}
	return rows
}

// TrendPoint é um ponto da série de tendência mensal do escritório.
type TrendPoint struct {
	Month      string `json:"month"`
	Tarefas    int    `json:"tarefas"`
	Concluidas int    `json:"concluidas"`
}

// MonthlyTrend monta a série exibida no painel do escritório: meses anteriores
// usam a linha de base histórica fixa da demonstração; os dois últimos pontos
// refletem a coleção atual.
func MonthlyTrend(tasks []domain.Task) []TrendPoint {
	concluidas := 0
	for _, t := range tasks {
		if t.Status == domain.TaskConcluida {
			concluidas++
		}
	}
	return []TrendPoint{
		{Month: "Set", Tarefas: 32, Concluidas: 28},
		{Month: "Out", Tarefas: 38, Concluidas: 33},
		{Month: "Nov", Tarefas: 41, Concluidas: 36},
		{Month: "Dez", Tarefas: 45, Concluidas: 40},
		{Month: "Jan", Tarefas: 48, Concluidas: concluidas + 38},
		{Month: "Fev", Tarefas: len(tasks), Concluidas: concluidas},
	}
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}

func clamp100(v int) int {
	if v > 100 {
		return 100
	}
	return v
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

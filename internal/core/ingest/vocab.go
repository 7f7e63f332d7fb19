package ingest

import "strings"

// Vocabulários de detecção de colunas. A classificação é por substring,
// caso-insensitiva, contra listas fixas em português e inglês; não há
// validação de esquema. A ordem dos padrões define a prioridade.
var (
	monthVocab         = []string{"mes", "mês", "month", "periodo"}
	receitaVocab       = []string{"receita", "faturamento", "revenue"}
	despesaVocab       = []string{"despesa", "custo", "expense"}
	impostosVocab      = []string{"imposto", "tax", "tributo"}
	folhaVocab         = []string{"folha", "payroll", "salario"}
	investimentosVocab = []string{"investimento", "investment"}
	emprestimosVocab   = []string{"emprestimo", "loan"}
	receberVocab       = []string{"receber", "receivable"}
	pagarVocab         = []string{"pagar", "payable"}

	tipoVocab       = []string{"tipo", "imposto", "tributo", "tax"}
	valorVocab      = []string{"valor", "value", "amount"}
	vencimentoVocab = []string{"vencimento", "due", "data"}
	statusVocab     = []string{"status"}
)

// findColumn devolve o primeiro cabeçalho que contém algum dos padrões.
func findColumn(headers []string, patterns []string) (string, bool) {
	for _, p := range patterns {
		for _, h := range headers {
			if strings.Contains(strings.ToLower(h), p) {
				return h, true
			}
		}
	}
	return "", false
}

// fieldNumber resolve o valor numérico de um campo lógico dentro de uma linha:
// o primeiro cabeçalho compatível com célula preenchida decide, mesmo que a
// célula não seja numérica (coerção total para 0).
func fieldNumber(headers []string, row Row, patterns []string) float64 {
	for _, p := range patterns {
		for _, h := range headers {
			if !strings.Contains(strings.ToLower(h), p) {
				continue
			}
			if cell, ok := row[h]; ok && cell.Kind != CellEmpty {
				return cell.Float()
			}
		}
	}
	return 0
}

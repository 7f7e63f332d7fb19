package state

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/viniciusgf/painelcontabil/internal/domain"
)

var demoMonths = []string{"Jan/25", "Fev/25", "Mar/25", "Abr/25", "Mai/25", "Jun/25", "Jul/25", "Ago/25", "Set/25", "Out/25", "Nov/25", "Dez/25"}

// demoFinancials gera um dataset de demonstração plausível para o cliente. A
// semente vem do próprio id, então o mesmo cliente produz sempre a mesma
// série; valores só precisam parecer reais, não estar corretos.
func demoFinancials(clientID string) domain.ClientFinancials {
	seed := seedFor(clientID)
	rng := rand.New(rand.NewSource(seed))

	records := make([]domain.FinancialRecord, 0, len(demoMonths))
	for i, month := range demoMonths {
		base := float64((int(uint64(seed)%9)+1)*1000 + i*200)
		receita := base + math.Round(rng.Float64()*5000+15000)
		despesa := math.Round(receita * (0.55 + rng.Float64()*0.2))
		records = append(records, domain.FinancialRecord{
			Month:          month,
			Receita:        receita,
			Despesa:        despesa,
			Lucro:          receita - despesa,
			Impostos:       math.Round(receita * (0.08 + rng.Float64()*0.07)),
			FolhaPagamento: math.Round(receita * (0.2 + rng.Float64()*0.1)),
			Investimentos:  math.Round(rng.Float64()*3000 + 500),
			Emprestimos:    math.Round(rng.Float64() * 2000),
			ContasReceber:  math.Round(receita * (0.1 + rng.Float64()*0.15)),
			ContasPagar:    math.Round(despesa * (0.1 + rng.Float64()*0.15)),
		})
	}

	bases := []struct {
		tipo string
		base float64
	}{
		{"IRPJ", 3500}, {"CSLL", 1800}, {"PIS", 900}, {"COFINS", 4200},
		{"ISS", 1500}, {"ICMS", 5600}, {"INSS", 3200}, {"FGTS", 2400},
	}
	statuses := []domain.TaxStatus{domain.TaxPago, domain.TaxPendente, domain.TaxAtrasado}

	taxes := make([]domain.TaxRecord, 0, len(bases))
	for i, b := range bases {
		taxes = append(taxes, domain.TaxRecord{
			Tipo:       b.tipo,
			Valor:      b.base + math.Round(rng.Float64()*1000),
			Vencimento: fmt.Sprintf("2026-02-%02d", 10+i*2),
			Status:     statuses[i%3],
		})
	}

	return domain.ClientFinancials{FinancialData: records, TaxData: taxes}
}

func seedFor(clientID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(clientID))
	return int64(h.Sum64())
}

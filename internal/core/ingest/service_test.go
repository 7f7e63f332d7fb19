package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/viniciusgf/painelcontabil/internal/domain"
	"github.com/xuri/excelize/v2"
)

func sheetFrom(name string, rows [][]string) Sheet {
	return buildSheet(name, rows)
}

func TestExtractFinancialPlanilhaMensal(t *testing.T) {
	sh := sheetFrom("Financeiro", [][]string{
		{"Mês", "Receita", "Despesa"},
		{"Jan/25", "1000", "600"},
	})

	records := extractFinancial([]Sheet{sh})
	if len(records) != 1 {
		t.Fatalf("esperava 1 registro, obteve %d", len(records))
	}

	r := records[0]
	if r.Month != "Jan/25" {
		t.Errorf("mês esperado Jan/25, obteve %q", r.Month)
	}
	if r.Receita != 1000 || r.Despesa != 600 {
		t.Errorf("receita/despesa esperadas 1000/600, obteve %v/%v", r.Receita, r.Despesa)
	}
	if r.Lucro != 400 {
		t.Errorf("lucro esperado 400, obteve %v", r.Lucro)
	}
	if r.Impostos != 0 || r.FolhaPagamento != 0 || r.Investimentos != 0 ||
		r.Emprestimos != 0 || r.ContasReceber != 0 || r.ContasPagar != 0 {
		t.Errorf("campos ausentes deveriam valer 0: %+v", r)
	}
}

func TestLucroSempreRecalculado(t *testing.T) {
	// Mesmo com coluna de lucro na planilha, o valor é recalculado.
	sh := sheetFrom("DRE", [][]string{
		{"Periodo", "Faturamento", "Custo", "Lucro"},
		{"Jan/25", "2000", "1500", "999"},
		{"Fev/25", "1000", "1800", "999"},
	})

	records := extractFinancial([]Sheet{sh})
	if len(records) != 2 {
		t.Fatalf("esperava 2 registros, obteve %d", len(records))
	}
	for _, r := range records {
		if r.Lucro != r.Receita-r.Despesa {
			t.Errorf("lucro %v difere de receita-despesa (%v)", r.Lucro, r.Receita-r.Despesa)
		}
	}
	if records[1].Lucro != -800 {
		t.Errorf("lucro pode ser negativo; esperava -800, obteve %v", records[1].Lucro)
	}
}

func TestExtractTax(t *testing.T) {
	sh := sheetFrom("Impostos", [][]string{
		{"Tipo", "Valor", "Status"},
		{"ICMS", "500", "Pago"},
		{"IRPJ", "3500", "Em atraso"},
		{"PIS", "abc", ""},
	})

	records := extractTax([]Sheet{sh})
	if len(records) != 3 {
		t.Fatalf("esperava 3 registros, obteve %d", len(records))
	}

	if records[0].Tipo != "ICMS" || records[0].Valor != 500 {
		t.Errorf("registro ICMS incorreto: %+v", records[0])
	}
	if records[0].Status != domain.TaxPago {
		t.Errorf("status esperado pago, obteve %s", records[0].Status)
	}
	if records[0].Vencimento != "" {
		t.Errorf("vencimento sem coluna deveria ser vazio, obteve %q", records[0].Vencimento)
	}
	if records[1].Status != domain.TaxAtrasado {
		t.Errorf("status esperado atrasado, obteve %s", records[1].Status)
	}
	if records[2].Status != domain.TaxPendente {
		t.Errorf("status sem match deveria ser pendente, obteve %s", records[2].Status)
	}
	if records[2].Valor != 0 {
		t.Errorf("valor não numérico deveria coagir para 0, obteve %v", records[2].Valor)
	}
}

func TestExtractSemAbasReconhecidas(t *testing.T) {
	t.Run("Nenhuma aba", func(t *testing.T) {
		if got := extractFinancial(nil); len(got) != 0 {
			t.Errorf("esperava vazio, obteve %d registros", len(got))
		}
		if got := extractTax(nil); len(got) != 0 {
			t.Errorf("esperava vazio, obteve %d registros", len(got))
		}
	})

	t.Run("Abas sem linhas", func(t *testing.T) {
		sheets := []Sheet{sheetFrom("Vazia", nil), sheetFrom("Outra", [][]string{{"", ""}})}
		if got := extractFinancial(sheets); len(got) != 0 {
			t.Errorf("esperava vazio, obteve %d registros", len(got))
		}
		if got := extractTax(sheets); len(got) != 0 {
			t.Errorf("esperava vazio, obteve %d registros", len(got))
		}
	})
}

func TestFallbackPosicional(t *testing.T) {
	sh := sheetFrom("Dados", [][]string{
		{"Rotulo", "V1", "V2", "V3"},
		{"Jan", "1000", "600", "150"},
		{"Fev", "texto", "900", "-50"},
	})

	records := extractFinancial([]Sheet{sh})
	if len(records) != 2 {
		t.Fatalf("esperava 2 registros, obteve %d", len(records))
	}

	if records[0].Month != "Jan" || records[0].Receita != 1000 || records[0].Despesa != 600 || records[0].Impostos != 150 {
		t.Errorf("atribuição posicional incorreta: %+v", records[0])
	}
	if records[0].Lucro != 400 {
		t.Errorf("lucro esperado 400, obteve %v", records[0].Lucro)
	}
	// Texto e números não positivos são filtrados antes da atribuição.
	if records[1].Receita != 900 || records[1].Despesa != 0 {
		t.Errorf("filtro de positivos incorreto: %+v", records[1])
	}
}

func TestFallbackLimita12Linhas(t *testing.T) {
	rows := [][]string{{"Rotulo", "Valor"}}
	for i := 0; i < 20; i++ {
		rows = append(rows, []string{"", "100"})
	}
	sh := sheetFrom("Dados", rows)

	records := extractFinancial([]Sheet{sh})
	if len(records) != 12 {
		t.Fatalf("fallback deveria limitar a 12 linhas, obteve %d", len(records))
	}
	if records[4].Month != "Mês 5" {
		t.Errorf("rótulo sintético esperado 'Mês 5', obteve %q", records[4].Month)
	}
}

func TestMesmaAbaServeAosDoisPapeis(t *testing.T) {
	// Cabeçalho com mês+receita e também tipo+valor: as duas extrações usam a aba.
	sh := sheetFrom("Geral", [][]string{
		{"Mes", "Receita", "Tipo", "Valor"},
		{"Jan/25", "1000", "ISS", "120"},
	})

	fin := extractFinancial([]Sheet{sh})
	tax := extractTax([]Sheet{sh})
	if len(fin) != 1 || len(tax) != 1 {
		t.Fatalf("esperava 1 registro de cada, obteve %d/%d", len(fin), len(tax))
	}
	if tax[0].Tipo != "ISS" || tax[0].Valor != 120 {
		t.Errorf("registro de imposto incorreto: %+v", tax[0])
	}
}

func TestParseWorkbookCSV(t *testing.T) {
	svc := NewService()

	csvData := "Mes;Receita;Despesa;Impostos\nJan/25;1.500,00;900;200\nFev/25;1800;1.000,50;250\n"
	pw, err := svc.ParseWorkbook(strings.NewReader(csvData), "dados.csv")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(pw.Sheets) != 1 || pw.Sheets[0].Name != "Planilha1" {
		t.Fatalf("esperava uma aba Planilha1, obteve %+v", pw.Sheets)
	}
	if len(pw.FinancialData) != 2 {
		t.Fatalf("esperava 2 registros financeiros, obteve %d", len(pw.FinancialData))
	}
	if pw.FinancialData[0].Receita != 1500 {
		t.Errorf("valor BRL '1.500,00' deveria virar 1500, obteve %v", pw.FinancialData[0].Receita)
	}
	if pw.FinancialData[1].Despesa != 1000.5 {
		t.Errorf("valor BRL '1.000,50' deveria virar 1000.5, obteve %v", pw.FinancialData[1].Despesa)
	}
	if len(pw.TaxData) != 0 {
		t.Errorf("sem aba de impostos esperava vazio, obteve %d", len(pw.TaxData))
	}
}

func TestParseWorkbookCSVVazio(t *testing.T) {
	svc := NewService()

	pw, err := svc.ParseWorkbook(strings.NewReader(""), "vazio.csv")
	if err != nil {
		t.Fatalf("arquivo vazio não deveria ser erro de decodificação: %v", err)
	}
	if len(pw.FinancialData) != 0 || len(pw.TaxData) != 0 {
		t.Errorf("esperava ([], []), obteve %d/%d", len(pw.FinancialData), len(pw.TaxData))
	}
}

func TestParseWorkbookExtensaoInvalida(t *testing.T) {
	svc := NewService()
	if _, err := svc.ParseWorkbook(strings.NewReader("x"), "dados.pdf"); err == nil {
		t.Fatal("esperava erro para extensão não suportada")
	}
}

func TestParseWorkbookXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Financeiro"); err != nil {
		t.Fatalf("erro ao renomear aba: %v", err)
	}
	finRows := [][]interface{}{
		{"Mês", "Receita", "Despesa"},
		{"Jan/25", 1000, 600},
		{"Fev/25", 1200, 700},
	}
	for i, row := range finRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Financeiro", cell, &row); err != nil {
			t.Fatalf("erro ao escrever linha: %v", err)
		}
	}

	if _, err := f.NewSheet("Impostos"); err != nil {
		t.Fatalf("erro ao criar aba: %v", err)
	}
	taxRows := [][]interface{}{
		{"Tipo", "Valor", "Vencimento", "Status"},
		{"ICMS", 500, "2026-02-10", "Pago"},
		{"COFINS", 4200, "2026-02-12", "Pendente"},
	}
	for i, row := range taxRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Impostos", cell, &row); err != nil {
			t.Fatalf("erro ao escrever linha: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("erro ao serializar workbook: %v", err)
	}

	svc := NewService()
	pw, err := svc.ParseWorkbook(bytes.NewReader(buf.Bytes()), "clientes.xlsx")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(pw.Sheets) != 2 {
		t.Fatalf("esperava 2 abas, obteve %d", len(pw.Sheets))
	}
	if len(pw.FinancialData) != 2 {
		t.Fatalf("esperava 2 registros financeiros, obteve %d", len(pw.FinancialData))
	}
	if pw.FinancialData[1].Lucro != 500 {
		t.Errorf("lucro de Fev/25 esperado 500, obteve %v", pw.FinancialData[1].Lucro)
	}
	if len(pw.TaxData) != 2 {
		t.Fatalf("esperava 2 registros de impostos, obteve %d", len(pw.TaxData))
	}
	if pw.TaxData[0].Status != domain.TaxPago || pw.TaxData[1].Status != domain.TaxPendente {
		t.Errorf("status incorretos: %+v", pw.TaxData)
	}
	if pw.TaxData[0].Vencimento != "2026-02-10" {
		t.Errorf("vencimento esperado 2026-02-10, obteve %q", pw.TaxData[0].Vencimento)
	}
}

func TestCellCoercao(t *testing.T) {
	cases := []struct {
		raw  string
		kind CellKind
		num  float64
	}{
		{"", CellEmpty, 0},
		{"  ", CellEmpty, 0},
		{"1000", CellNumber, 1000},
		{"1.234,56", CellNumber, 1234.56},
		{"3.5", CellNumber, 3.5},
		{"Jan/25", CellText, 0},
	}
	for _, tc := range cases {
		c := newCell(tc.raw)
		if c.Kind != tc.kind {
			t.Errorf("%q: kind esperado %v, obteve %v", tc.raw, tc.kind, c.Kind)
		}
		if c.Float() != tc.num {
			t.Errorf("%q: coerção esperada %v, obteve %v", tc.raw, tc.num, c.Float())
		}
	}
}

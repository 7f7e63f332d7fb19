package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/viniciusgf/painelcontabil/internal/domain"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ParsedWorkbook é o resultado da ingestão de um arquivo tabular: as abas
// decodificadas e as sequências tipadas extraídas por heurística. Sequências
// vazias não são erro; significam que nenhuma aba foi reconhecida.
type ParsedWorkbook struct {
	Sheets        []Sheet
	FinancialData []domain.FinancialRecord
	TaxData       []domain.TaxRecord
}

// Service define a interface do serviço de ingestão de planilhas.
type Service interface {
	ParseWorkbook(file io.Reader, filename string) (*ParsedWorkbook, error)
}

type service struct{}

// NewService cria uma nova instância do serviço de ingestão.
func NewService() Service {
	return &service{}
}

func (svc *service) ParseWorkbook(file io.Reader, filename string) (*ParsedWorkbook, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var sheets []Sheet
	var err error
	switch ext {
	case ".xlsx":
		sheets, err = svc.decodeXLSX(file)
	case ".xls":
		sheets, err = svc.decodeXLS(file)
	case ".csv":
		sheets, err = svc.decodeCSV(file)
	default:
		return nil, fmt.Errorf("formato de arquivo não suportado: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar arquivo: %w", err)
	}

	pw := &ParsedWorkbook{
		Sheets:        sheets,
		FinancialData: extractFinancial(sheets),
		TaxData:       extractTax(sheets),
	}
	if pw.FinancialData == nil {
		pw.FinancialData = []domain.FinancialRecord{}
	}
	if pw.TaxData == nil {
		pw.TaxData = []domain.TaxRecord{}
	}
	return pw, nil
}

func (svc *service) decodeXLSX(file io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		sheets = append(sheets, buildSheet(name, rows))
	}
	return sheets, nil
}

func (svc *service) decodeXLS(file io.Reader) ([]Sheet, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		// Muitos ".xls" recebidos são xlsx renomeados.
		if _, errX := excelize.OpenReader(bytes.NewReader(data)); errX == nil {
			return svc.decodeXLSX(bytes.NewReader(data))
		}
		return nil, err
	}

	var sheets []Sheet
	for _, sheet := range workbook.GetSheets() {
		var rows [][]string
		for _, row := range sheet.GetRows() {
			var cells []string
			for _, cell := range row.GetCols() {
				cells = append(cells, cell.GetString())
			}
			rows = append(rows, cells)
		}
		sheets = append(sheets, buildSheet(sheet.GetName(), rows))
	}
	return sheets, nil
}

func (svc *service) decodeCSV(file io.Reader) ([]Sheet, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		if decoded, _, errT := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data); errT == nil {
			data = decoded
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return []Sheet{buildSheet("Planilha1", records)}, nil
}

func sniffDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}
	if bytes.Count(line, []byte(",")) > bytes.Count(line, []byte(";")) {
		return ','
	}
	return ';'
}

// buildSheet converte a matriz bruta em linhas chaveadas por cabeçalho. A
// primeira linha não vazia vira o cabeçalho; colunas sem título recebem um
// nome sintético para não colidirem no mapa.
func buildSheet(name string, rows [][]string) Sheet {
	sh := Sheet{Name: name}

	start := 0
	for start < len(rows) && emptyRow(rows[start]) {
		start++
	}
	if start >= len(rows) {
		return sh
	}

	for i, h := range rows[start] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Coluna %d", i+1)
		}
		sh.Headers = append(sh.Headers, h)
	}

	for _, raw := range rows[start+1:] {
		if emptyRow(raw) {
			continue
		}
		row := make(Row, len(sh.Headers))
		for i, h := range sh.Headers {
			if i < len(raw) {
				row[h] = newCell(raw[i])
			} else {
				row[h] = Cell{}
			}
		}
		sh.Rows = append(sh.Rows, row)
	}
	return sh
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// extractFinancial seleciona a primeira aba com cara de demonstrativo mensal:
// uma coluna de mês/período e ao menos uma de receita ou despesa. O lucro é
// sempre recalculado, nunca lido da planilha.
func extractFinancial(sheets []Sheet) []domain.FinancialRecord {
	for _, sh := range sheets {
		if len(sh.Rows) == 0 {
			continue
		}
		monthHeader, hasMonth := findColumn(sh.Headers, monthVocab)
		_, hasReceita := findColumn(sh.Headers, receitaVocab)
		_, hasDespesa := findColumn(sh.Headers, despesaVocab)
		if !hasMonth || (!hasReceita && !hasDespesa) {
			continue
		}

		records := make([]domain.FinancialRecord, 0, len(sh.Rows))
		for _, row := range sh.Rows {
			receita := fieldNumber(sh.Headers, row, receitaVocab)
			despesa := fieldNumber(sh.Headers, row, despesaVocab)
			records = append(records, domain.FinancialRecord{
				Month:          row[monthHeader].String(),
				Receita:        receita,
				Despesa:        despesa,
				Lucro:          receita - despesa,
				Impostos:       fieldNumber(sh.Headers, row, impostosVocab),
				FolhaPagamento: fieldNumber(sh.Headers, row, folhaVocab),
				Investimentos:  fieldNumber(sh.Headers, row, investimentosVocab),
				Emprestimos:    fieldNumber(sh.Headers, row, emprestimosVocab),
				ContasReceber:  fieldNumber(sh.Headers, row, receberVocab),
				ContasPagar:    fieldNumber(sh.Headers, row, pagarVocab),
			})
		}
		return records
	}

	return fallbackFinancial(sheets)
}

// fallbackFinancial interpreta dados genéricos quando nenhuma aba casa com o
// vocabulário: a primeira coluna vira o rótulo do mês e os valores numéricos
// estritamente positivos das demais colunas são atribuídos posicionalmente.
func fallbackFinancial(sheets []Sheet) []domain.FinancialRecord {
	if len(sheets) == 0 || len(sheets[0].Rows) == 0 || len(sheets[0].Headers) == 0 {
		return nil
	}
	sh := sheets[0]

	limit := len(sh.Rows)
	if limit > 12 {
		limit = 12
	}

	records := make([]domain.FinancialRecord, 0, limit)
	for i := 0; i < limit; i++ {
		row := sh.Rows[i]

		var values []float64
		for _, h := range sh.Headers[1:] {
			if cell, ok := row[h]; ok && cell.Kind == CellNumber && cell.Number > 0 {
				values = append(values, cell.Number)
			}
		}
		at := func(idx int) float64 {
			if idx < len(values) {
				return values[idx]
			}
			return 0
		}

		month := row[sh.Headers[0]].String()
		if month == "" {
			month = fmt.Sprintf("Mês %d", i+1)
		}

		receita, despesa := at(0), at(1)
		records = append(records, domain.FinancialRecord{
			Month:          month,
			Receita:        receita,
			Despesa:        despesa,
			Lucro:          receita - despesa,
			Impostos:       at(2),
			FolhaPagamento: at(3),
			Investimentos:  at(4),
			Emprestimos:    at(5),
			ContasReceber:  at(6),
			ContasPagar:    at(7),
		})
	}
	return records
}

// extractTax varre as abas independentemente da detecção financeira: a mesma
// aba pode servir aos dois papéis.
func extractTax(sheets []Sheet) []domain.TaxRecord {
	for _, sh := range sheets {
		if len(sh.Rows) == 0 {
			continue
		}
		tipoHeader, hasTipo := findColumn(sh.Headers, tipoVocab)
		valorHeader, hasValor := findColumn(sh.Headers, valorVocab)
		if !hasTipo || !hasValor {
			continue
		}
		vencHeader, _ := findColumn(sh.Headers, vencimentoVocab)
		statusHeader, hasStatus := findColumn(sh.Headers, statusVocab)

		records := make([]domain.TaxRecord, 0, len(sh.Rows))
		for _, row := range sh.Rows {
			tipo := row[tipoHeader].String()
			if tipo == "" {
				tipo = "Outro"
			}

			status := domain.TaxPendente
			if hasStatus {
				s := strings.ToLower(row[statusHeader].String())
				switch {
				case strings.Contains(s, "pago") || strings.Contains(s, "paid"):
					status = domain.TaxPago
				case strings.Contains(s, "atras") || strings.Contains(s, "late"):
					status = domain.TaxAtrasado
				}
			}

			records = append(records, domain.TaxRecord{
				Tipo:       tipo,
				Valor:      row[valorHeader].Float(),
				Vencimento: row[vencHeader].String(),
				Status:     status,
			})
		}
		return records
	}
	return nil
}

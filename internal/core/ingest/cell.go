package ingest

import (
	"strconv"
	"strings"
)

// CellKind distingue os três estados possíveis de uma célula decodificada.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell é o valor de uma célula após a decodificação. Text preserva o conteúdo
// original; Number só é válido quando Kind == CellNumber.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Row mapeia cabeçalho de coluna (grafia original preservada) para célula.
type Row map[string]Cell

// Sheet é uma aba decodificada. Headers mantém a ordem das colunas, necessária
// para varreduras determinísticas e para o fallback posicional.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

func newCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{Kind: CellEmpty}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Kind: CellNumber, Text: s, Number: n}
	}
	if n, err := parseBRLNumber(s); err == nil {
		return Cell{Kind: CellNumber, Text: s, Number: n}
	}
	return Cell{Kind: CellText, Text: s}
}

// parseBRLNumber interpreta valores no formato brasileiro ("1.234,56").
func parseBRLNumber(val string) (float64, error) {
	s := strings.TrimSpace(val)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// Float é a coerção numérica total: células vazias ou textuais valem 0.
func (c Cell) Float() float64 {
	if c.Kind == CellNumber {
		return c.Number
	}
	return 0
}

// String devolve o conteúdo textual original da célula.
func (c Cell) String() string {
	return c.Text
}

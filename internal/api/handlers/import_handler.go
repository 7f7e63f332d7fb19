// internal/api/handlers/import_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viniciusgf/painelcontabil/internal/api/responses"
	"github.com/viniciusgf/painelcontabil/internal/core/ingest"
	"github.com/viniciusgf/painelcontabil/internal/core/state"
	"github.com/viniciusgf/painelcontabil/internal/domain"
)

type ImportHandler struct {
	store   *state.Store
	service ingest.Service
}

func NewImportHandler(store *state.Store, service ingest.Service) *ImportHandler {
	return &ImportHandler{store: store, service: service}
}

// HandleImport recebe a planilha multipart do cliente, extrai os dados
// financeiros e tributários e substitui o dataset do cliente em um passo.
// Quando nenhuma aba é reconhecida, o dataset atual é preservado e a resposta
// carrega um aviso em vez de erro.
func (h *ImportHandler) HandleImport(c *gin.Context) {
	clientID := c.Param("id")

	client, err := h.store.Client(clientID)
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Cliente não encontrado")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo da planilha não encontrado ou inválido")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir o arquivo enviado")
		return
	}
	defer file.Close()

	parsed, err := h.service.ParseWorkbook(file, fileHeader.Filename)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Erro ao processar arquivo. Verifique o formato.", err.Error())
		return
	}

	sheetNames := make([]string, 0, len(parsed.Sheets))
	for _, s := range parsed.Sheets {
		sheetNames = append(sheetNames, s.Name)
	}

	if len(parsed.FinancialData) == 0 && len(parsed.TaxData) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"aviso":  "Nenhuma coluna reconhecida na planilha; os dados atuais do cliente foram mantidos",
			"sheets": sheetNames,
		})
		return
	}

	dataset := domain.ClientFinancials{
		FinancialData: parsed.FinancialData,
		TaxData:       parsed.TaxData,
	}
	if err := h.store.SetClientFinancials(clientID, dataset); err != nil {
		responses.Error(c, http.StatusNotFound, "Cliente não encontrado")
		return
	}

	responses.Success(c, http.StatusOK,
		fmt.Sprintf("Dados importados para %q: %d registros financeiros, %d impostos",
			client.Name, len(parsed.FinancialData), len(parsed.TaxData)),
		gin.H{
			"sheets":        sheetNames,
			"financialData": parsed.FinancialData,
			"taxData":       parsed.TaxData,
		})
}

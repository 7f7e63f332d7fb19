// internal/api/handlers/client_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viniciusgf/painelcontabil/internal/api/responses"
	"github.com/viniciusgf/painelcontabil/internal/core/metrics"
	"github.com/viniciusgf/painelcontabil/internal/core/state"
	"github.com/viniciusgf/painelcontabil/internal/domain"
)

type ClientHandler struct {
	store *state.Store
}

func NewClientHandler(store *state.Store) *ClientHandler {
	return &ClientHandler{store: store}
}

// List devolve o cadastro, filtrado pelo parâmetro ?search quando presente.
func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SearchClients(c.Query("search")))
}

func (h *ClientHandler) Create(c *gin.Context) {
	var in state.NewClient
	if err := c.ShouldBindJSON(&in); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}

	client, err := h.store.AddClient(in)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Nome e CNPJ são obrigatórios")
		return
	}
	responses.Success(c, http.StatusCreated, fmt.Sprintf("Cliente %q adicionado com sucesso", client.Name), client)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.store.Client(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Cliente não encontrado")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Financials devolve o dataset bruto do cliente (importado ou de demonstração).
func (h *ClientHandler) Financials(c *gin.Context) {
	fin, err := h.store.ClientFinancials(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Cliente não encontrado")
		return
	}
	c.JSON(http.StatusOK, fin)
}

// Dashboard monta o painel completo do cliente: dados cadastrais, série
// financeira com os rollups derivados e as tarefas do cliente.
func (h *ClientHandler) Dashboard(c *gin.Context) {
	id := c.Param("id")

	client, err := h.store.Client(id)
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Cliente não encontrado")
		return
	}
	fin, err := h.store.ClientFinancials(id)
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Cliente não encontrado")
		return
	}

	tasks := h.store.Tasks()
	clientTasks := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ClientID == id {
			clientTasks = append(clientTasks, t)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"client":        client,
		"financialData": fin.FinancialData,
		"summary":       metrics.SummarizeFinancials(fin.FinancialData),
		"dre":           metrics.DRE(fin.FinancialData),
		"cashFlow":      metrics.CashFlow(fin.FinancialData),
		"costs":         metrics.Costs(fin.FinancialData),
		"taxData":       fin.TaxData,
		"taxSummary":    metrics.SummarizeTaxes(fin.TaxData),
		"tasks":         clientTasks,
	})
}

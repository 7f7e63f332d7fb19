// internal/api/handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viniciusgf/painelcontabil/internal/core/metrics"
	"github.com/viniciusgf/painelcontabil/internal/core/state"
	"github.com/viniciusgf/painelcontabil/internal/domain"
)

type DashboardHandler struct {
	store *state.Store
}

func NewDashboardHandler(store *state.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

func (h *DashboardHandler) Employees(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Employees())
}

// Office monta o painel do escritório: visão geral de tarefas, ranking de
// colaboradores, distribuição por categoria/prioridade, radar, carga de
// trabalho e a série de tendência mensal.
func (h *DashboardHandler) Office(c *gin.Context) {
	tasks := h.store.Tasks()
	employees := h.store.Employees()
	clients := h.store.Clients()

	ativos := 0
	for _, cl := range clients {
		if cl.Status == domain.ClientAtivo {
			ativos++
		}
	}

	atrasadas := make([]domain.Task, 0)
	for _, t := range tasks {
		if t.Status == domain.TaskAtrasada {
			atrasadas = append(atrasadas, t)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"overview":       metrics.OverviewTasks(tasks),
		"clientesAtivos": ativos,
		"clientesTotal":  len(clients),
		"performance":    metrics.RankEmployees(employees, tasks),
		"categorias":     metrics.ByCategory(tasks),
		"prioridades":    metrics.ByPriority(tasks),
		"radar":          metrics.Radar(employees),
		"carga":          metrics.Workloads(employees),
		"tendencia":      metrics.MonthlyTrend(tasks),
		"atrasadas":      atrasadas,
	})
}

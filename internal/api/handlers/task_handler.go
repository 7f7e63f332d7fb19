// internal/api/handlers/task_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viniciusgf/painelcontabil/internal/api/responses"
	"github.com/viniciusgf/painelcontabil/internal/core/state"
	"github.com/viniciusgf/painelcontabil/internal/domain"
)

type TaskHandler struct {
	store *state.Store
}

func NewTaskHandler(store *state.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

// List devolve as tarefas, filtradas por ?status quando informado ("todas"
// equivale a nenhum filtro, como nas abas do painel).
func (h *TaskHandler) List(c *gin.Context) {
	tasks := h.store.Tasks()

	status := c.Query("status")
	if status == "" || status == "todas" {
		c.JSON(http.StatusOK, tasks)
		return
	}

	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == domain.TaskStatus(status) {
			filtered = append(filtered, t)
		}
	}
	c.JSON(http.StatusOK, filtered)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var in state.NewTask
	if err := c.ShouldBindJSON(&in); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}

	task, err := h.store.AddTask(in)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Preencha todos os campos obrigatórios")
		return
	}
	responses.Success(c, http.StatusCreated, fmt.Sprintf("Tarefa %q criada com sucesso", task.Title), task)
}

// Update aplica uma atualização parcial; só os campos presentes no corpo
// são alterados.
func (h *TaskHandler) Update(c *gin.Context) {
	var upd domain.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}

	task, err := h.store.UpdateTask(c.Param("id"), upd)
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Tarefa não encontrada")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Advance move a tarefa para o próximo status do ciclo.
func (h *TaskHandler) Advance(c *gin.Context) {
	task, err := h.store.AdvanceTaskStatus(c.Param("id"))
	if err != nil {
		responses.Error(c, http.StatusNotFound, "Tarefa não encontrada")
		return
	}
	responses.Success(c, http.StatusOK, fmt.Sprintf("Tarefa movida para %q", task.Status), task)
}

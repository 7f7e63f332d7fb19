// internal/domain/models.go
package domain

// Status e prioridades usam o vocabulário em português exibido pelo painel.
type ClientStatus string

const (
	ClientAtivo   ClientStatus = "ativo"
	ClientInativo ClientStatus = "inativo"
)

type TaskStatus string

const (
	TaskPendente    TaskStatus = "pendente"
	TaskEmProgresso TaskStatus = "em_progresso"
	TaskConcluida   TaskStatus = "concluida"
	TaskAtrasada    TaskStatus = "atrasada"
)

type TaskPriority string

const (
	PriorityBaixa   TaskPriority = "baixa"
	PriorityMedia   TaskPriority = "media"
	PriorityAlta    TaskPriority = "alta"
	PriorityUrgente TaskPriority = "urgente"
)

type TaxStatus string

const (
	TaxPago     TaxStatus = "pago"
	TaxPendente TaxStatus = "pendente"
	TaxAtrasado TaxStatus = "atrasado"
)

// Client é uma empresa atendida pelo escritório.
type Client struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	CNPJ        string       `json:"cnpj"`
	Segment     string       `json:"segment"`
	Responsible string       `json:"responsible"`
	Status      ClientStatus `json:"status"`
	CreatedAt   string       `json:"createdAt"`
}

// FinancialRecord representa um mês de movimento financeiro do cliente.
// Lucro é sempre recalculado como Receita - Despesa, nunca lido de fora.
type FinancialRecord struct {
	Month          string  `json:"month"`
	Receita        float64 `json:"receita"`
	Despesa        float64 `json:"despesa"`
	Lucro          float64 `json:"lucro"`
	Impostos       float64 `json:"impostos"`
	FolhaPagamento float64 `json:"folhaPagamento"`
	Investimentos  float64 `json:"investimentos"`
	Emprestimos    float64 `json:"emprestimos"`
	ContasReceber  float64 `json:"contasReceber"`
	ContasPagar    float64 `json:"contasPagar"`
}

type TaxRecord struct {
	Tipo       string    `json:"tipo"`
	Valor      float64   `json:"valor"`
	Vencimento string    `json:"vencimento"`
	Status     TaxStatus `json:"status"`
}

// ClientFinancials é o dataset financeiro de um cliente (gerado ou importado).
type ClientFinancials struct {
	FinancialData []FinancialRecord `json:"financialData"`
	TaxData       []TaxRecord       `json:"taxData"`
}

type Employee struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Role                    string   `json:"role"`
	Avatar                  string   `json:"avatar"`
	Clients                 []string `json:"clients"`
	TasksCompleted          int      `json:"tasksCompleted"`
	TasksCompletedLastMonth int      `json:"tasksCompletedLastMonth"`
	AvgTaskTime             float64  `json:"avgTaskTime"`
	AvgTaskTimeLastMonth    float64  `json:"avgTaskTimeLastMonth"`
	Satisfaction            int      `json:"satisfaction"`
}

type Task struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	ClientID       string       `json:"clientId"`
	AssigneeID     string       `json:"assigneeId"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	DueDate        string       `json:"dueDate"`
	CompletedAt    string       `json:"completedAt,omitempty"`
	EstimatedHours float64      `json:"estimatedHours"`
	ActualHours    float64      `json:"actualHours,omitempty"`
	Category       string       `json:"category"`
}

// TaskUpdate descreve uma atualização parcial de tarefa; campos nil são mantidos.
type TaskUpdate struct {
	Title          *string       `json:"title"`
	ClientID       *string       `json:"clientId"`
	AssigneeID     *string       `json:"assigneeId"`
	Status         *TaskStatus   `json:"status"`
	Priority       *TaskPriority `json:"priority"`
	DueDate        *string       `json:"dueDate"`
	CompletedAt    *string       `json:"completedAt"`
	EstimatedHours *float64      `json:"estimatedHours"`
	ActualHours    *float64      `json:"actualHours"`
	Category       *string       `json:"category"`
}

// internal/core/state/store.go
package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"github.com/schollz/closestmatch"
	"github.com/viniciusgf/painelcontabil/internal/domain"
)

var (
	// ErrValidacao marca rejeições de entrada antes de qualquer mutação.
	ErrValidacao            = errors.New("dados inválidos")
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
	ErrTarefaNaoEncontrada  = errors.New("tarefa não encontrada")
)

// Store é o dono de todas as coleções em memória do painel. Toda mutação
// passa por um intent nomeado e troca a coleção afetada em um único passo sob
// o lock; leitores recebem cópias.
type Store struct {
	mu         sync.RWMutex
	clients    []domain.Client
	employees  []domain.Employee
	tasks      []domain.Task
	financials map[string]domain.ClientFinancials

	// datasets de demonstração gerados sob demanda, memoizados por cliente
	demoCache *cache.Cache

	now func() time.Time
}

// NewStore cria o estado da aplicação já semeado com os dados de demonstração.
func NewStore() *Store {
	return &Store{
		clients:    seedClients(),
		employees:  seedEmployees(),
		tasks:      seedTasks(),
		financials: make(map[string]domain.ClientFinancials),
		demoCache:  cache.New(cache.NoExpiration, 0),
		now:        time.Now,
	}
}

func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Client(nil), s.clients...)
}

func (s *Store) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Employee(nil), s.employees...)
}

func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Task(nil), s.tasks...)
}

func (s *Store) Client(id string) (domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Client{}, ErrClienteNaoEncontrado
}

// SearchClients filtra o cadastro por substring em nome, CNPJ ou segmento.
// Sem resultado exato, tenta uma busca aproximada pelo nome, no mesmo molde
// exato-primeiro/fuzzy-depois do casamento de plano de contas.
func (s *Store) SearchClients(query string) []domain.Client {
	all := s.Clients()
	q := strings.TrimSpace(query)
	if q == "" {
		return all
	}

	lower := strings.ToLower(q)
	var out []domain.Client
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(c.CNPJ, q) ||
			strings.Contains(strings.ToLower(c.Segment), lower) {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		return out
	}

	names := make([]string, len(all))
	byName := make(map[string]domain.Client, len(all))
	for i, c := range all {
		key := strings.ToLower(c.Name)
		names[i] = key
		byName[key] = c
	}
	if len(names) > 0 {
		cm := closestmatch.New(names, []int{3, 4})
		if match := cm.Closest(lower); match != "" {
			if c, ok := byName[match]; ok {
				return []domain.Client{c}
			}
		}
	}
	return []domain.Client{}
}

// NewClient são os campos aceitos no cadastro de cliente.
type NewClient struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	Segment     string `json:"segment"`
	Responsible string `json:"responsible"`
}

// AddClient valida e cadastra um cliente. Nome e CNPJ são obrigatórios; a
// rejeição acontece antes de qualquer mutação.
func (s *Store) AddClient(in NewClient) (domain.Client, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CNPJ) == "" {
		return domain.Client{}, fmt.Errorf("%w: nome e CNPJ são obrigatórios", ErrValidacao)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	responsible := strings.TrimSpace(in.Responsible)
	if responsible == "" && len(s.employees) > 0 {
		responsible = s.employees[0].ID
	}
	segment := strings.TrimSpace(in.Segment)
	if segment == "" {
		segment = "Geral"
	}

	c := domain.Client{
		ID:          "c" + uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		CNPJ:        strings.TrimSpace(in.CNPJ),
		Segment:     segment,
		Responsible: responsible,
		Status:      domain.ClientAtivo,
		CreatedAt:   s.now().Format("2006-01-02"),
	}
	s.clients = append(s.clients, c)
	return c, nil
}

// NewTask são os campos aceitos na criação de tarefa.
type NewTask struct {
	Title          string              `json:"title"`
	ClientID       string              `json:"clientId"`
	AssigneeID     string              `json:"assigneeId"`
	Priority       domain.TaskPriority `json:"priority"`
	DueDate        string              `json:"dueDate"`
	EstimatedHours float64             `json:"estimatedHours"`
	Category       string              `json:"category"`
}

// AddTask valida e cria uma tarefa com status pendente.
func (s *Store) AddTask(in NewTask) (domain.Task, error) {
	if strings.TrimSpace(in.Title) == "" || in.ClientID == "" || in.AssigneeID == "" {
		return domain.Task{}, fmt.Errorf("%w: preencha título, cliente e responsável", ErrValidacao)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Task{
		ID:             "t" + uuid.NewString(),
		Title:          strings.TrimSpace(in.Title),
		ClientID:       in.ClientID,
		AssigneeID:     in.AssigneeID,
		Status:         domain.TaskPendente,
		Priority:       in.Priority,
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		Category:       strings.TrimSpace(in.Category),
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedia
	}
	if t.DueDate == "" {
		t.DueDate = s.now().Format("2006-01-02")
	}
	if t.EstimatedHours == 0 {
		t.EstimatedHours = 4
	}
	if t.Category == "" {
		t.Category = "Geral"
	}

	s.tasks = append(s.tasks, t)
	return t, nil
}

// UpdateTask aplica uma atualização parcial; campos nil são preservados.
func (s *Store) UpdateTask(id string, upd domain.TaskUpdate) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := s.tasks[i]
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.ClientID != nil {
			t.ClientID = *upd.ClientID
		}
		if upd.AssigneeID != nil {
			t.AssigneeID = *upd.AssigneeID
		}
		if upd.Status != nil {
			t.Status = *upd.Status
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}
		if upd.DueDate != nil {
			t.DueDate = *upd.DueDate
		}
		if upd.CompletedAt != nil {
			t.CompletedAt = *upd.CompletedAt
		}
		if upd.EstimatedHours != nil {
			t.EstimatedHours = *upd.EstimatedHours
		}
		if upd.ActualHours != nil {
			t.ActualHours = *upd.ActualHours
		}
		if upd.Category != nil {
			t.Category = *upd.Category
		}
		s.tasks[i] = t
		return t, nil
	}
	return domain.Task{}, ErrTarefaNaoEncontrada
}

// AdvanceTaskStatus avança a tarefa no ciclo fixo pendente → em_progresso →
// concluida → pendente. Ao chegar em concluída, carimba a data de conclusão e
// registra 90% das horas estimadas como realizadas.
func (s *Store) AdvanceTaskStatus(id string) (domain.Task, error) {
	order := []domain.TaskStatus{domain.TaskPendente, domain.TaskEmProgresso, domain.TaskConcluida}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := s.tasks[i]

		current := -1
		for j, st := range order {
			if t.Status == st {
				current = j
				break
			}
		}
		// status fora do ciclo (atrasada) volta para pendente
		t.Status = order[(current+1)%len(order)]

		if t.Status == domain.TaskConcluida {
			t.CompletedAt = s.now().Format("2006-01-02")
			t.ActualHours = t.EstimatedHours * 0.9
		}
		s.tasks[i] = t
		return t, nil
	}
	return domain.Task{}, ErrTarefaNaoEncontrada
}

// SetClientFinancials substitui o dataset financeiro do cliente em um único
// passo. O lucro de cada registro é recalculado na entrada; a planilha nunca
// é a autoridade sobre ele.
func (s *Store) SetClientFinancials(clientID string, data domain.ClientFinancials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.clientExists(clientID) {
		return ErrClienteNaoEncontrado
	}

	records := append([]domain.FinancialRecord(nil), data.FinancialData...)
	for i := range records {
		records[i].Lucro = records[i].Receita - records[i].Despesa
	}

	s.financials[clientID] = domain.ClientFinancials{
		FinancialData: records,
		TaxData:       append([]domain.TaxRecord(nil), data.TaxData...),
	}
	return nil
}

// ClientFinancials devolve o dataset importado do cliente ou, na ausência de
// importação, o dataset de demonstração gerado a partir do id (memoizado).
func (s *Store) ClientFinancials(clientID string) (domain.ClientFinancials, error) {
	s.mu.RLock()
	stored, ok := s.financials[clientID]
	exists := s.clientExists(clientID)
	s.mu.RUnlock()

	if !exists {
		return domain.ClientFinancials{}, ErrClienteNaoEncontrado
	}
	if ok {
		return stored, nil
	}

	if v, found := s.demoCache.Get(clientID); found {
		return v.(domain.ClientFinancials), nil
	}
	generated := demoFinancials(clientID)
	s.demoCache.Set(clientID, generated, cache.NoExpiration)
	return generated, nil
}

func (s *Store) clientExists(id string) bool {
	for _, c := range s.clients {
		if c.ID == id {
			return true
		}
	}
	return false
}

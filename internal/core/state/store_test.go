package state

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/viniciusgf/painelcontabil/internal/domain"
)

func fixedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.now = func() time.Time {
		return time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)
	}
	return s
}

func TestAddClient(t *testing.T) {
	s := fixedStore(t)

	t.Run("Sem nome ou CNPJ", func(t *testing.T) {
		_, err := s.AddClient(NewClient{Name: "", CNPJ: "12.345.678/0001-90"})
		if !errors.Is(err, ErrValidacao) {
			t.Errorf("esperava ErrValidacao, obteve %v", err)
		}
		_, err = s.AddClient(NewClient{Name: "Empresa X", CNPJ: "  "})
		if !errors.Is(err, ErrValidacao) {
			t.Errorf("esperava ErrValidacao, obteve %v", err)
		}
		if len(s.Clients()) != 5 {
			t.Errorf("rejeição não pode criar entidade parcial; esperava 5 clientes, obteve %d", len(s.Clients()))
		}
	})

	t.Run("Com padrões preenchidos", func(t *testing.T) {
		c, err := s.AddClient(NewClient{Name: "Padaria Pão Quente", CNPJ: "67.890.123/0001-45"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if c.Segment != "Geral" {
			t.Errorf("segmento padrão esperado Geral, obteve %q", c.Segment)
		}
		if c.Responsible != "emp1" {
			t.Errorf("responsável padrão esperado emp1, obteve %q", c.Responsible)
		}
		if c.Status != domain.ClientAtivo {
			t.Errorf("status esperado ativo, obteve %s", c.Status)
		}
		if c.CreatedAt != "2026-02-18" {
			t.Errorf("data de criação esperada 2026-02-18, obteve %q", c.CreatedAt)
		}
		if len(s.Clients()) != 6 {
			t.Errorf("esperava 6 clientes, obteve %d", len(s.Clients()))
		}
	})
}

func TestAddTask(t *testing.T) {
	s := fixedStore(t)

	t.Run("Campos obrigatórios", func(t *testing.T) {
		_, err := s.AddTask(NewTask{Title: "Sem cliente", AssigneeID: "emp1"})
		if !errors.Is(err, ErrValidacao) {
			t.Errorf("esperava ErrValidacao, obteve %v", err)
		}
		if len(s.Tasks()) != 12 {
			t.Errorf("rejeição não pode criar tarefa; esperava 12, obteve %d", len(s.Tasks()))
		}
	})

	t.Run("Padrões", func(t *testing.T) {
		task, err := s.AddTask(NewTask{Title: "Conferir guias", ClientID: "c1", AssigneeID: "emp2"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if task.Status != domain.TaskPendente {
			t.Errorf("status inicial esperado pendente, obteve %s", task.Status)
		}
		if task.Priority != domain.PriorityMedia {
			t.Errorf("prioridade padrão esperada media, obteve %s", task.Priority)
		}
		if task.EstimatedHours != 4 {
			t.Errorf("estimativa padrão esperada 4h, obteve %v", task.EstimatedHours)
		}
		if task.DueDate != "2026-02-18" {
			t.Errorf("prazo padrão esperado hoje, obteve %q", task.DueDate)
		}
		if task.Category != "Geral" {
			t.Errorf("categoria padrão esperada Geral, obteve %q", task.Category)
		}
	})
}

func TestCicloDeStatus(t *testing.T) {
	s := fixedStore(t)

	task, err := s.AddTask(NewTask{Title: "Ciclo", ClientID: "c1", AssigneeID: "emp1", EstimatedHours: 10})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	task, err = s.AdvanceTaskStatus(task.ID)
	if err != nil || task.Status != domain.TaskEmProgresso {
		t.Fatalf("1º avanço deveria ir para em_progresso, obteve %s (%v)", task.Status, err)
	}

	task, _ = s.AdvanceTaskStatus(task.ID)
	if task.Status != domain.TaskConcluida {
		t.Fatalf("2º avanço deveria ir para concluida, obteve %s", task.Status)
	}
	if task.CompletedAt != "2026-02-18" {
		t.Errorf("conclusão deveria carimbar a data; obteve %q", task.CompletedAt)
	}
	if task.ActualHours != 9 {
		t.Errorf("horas realizadas deveriam ser 90%% das estimadas (9), obteve %v", task.ActualHours)
	}

	task, _ = s.AdvanceTaskStatus(task.ID)
	if task.Status != domain.TaskPendente {
		t.Fatalf("3º avanço deveria voltar para pendente, obteve %s", task.Status)
	}

	t.Run("Atrasada volta para pendente", func(t *testing.T) {
		// t5 está semeada como atrasada
		task, err := s.AdvanceTaskStatus("t5")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if task.Status != domain.TaskPendente {
			t.Errorf("status fora do ciclo deveria reiniciar em pendente, obteve %s", task.Status)
		}
	})

	t.Run("Tarefa inexistente", func(t *testing.T) {
		if _, err := s.AdvanceTaskStatus("nao-existe"); !errors.Is(err, ErrTarefaNaoEncontrada) {
			t.Errorf("esperava ErrTarefaNaoEncontrada, obteve %v", err)
		}
	})
}

func TestUpdateTaskParcial(t *testing.T) {
	s := fixedStore(t)

	titulo := "Novo título"
	horas := 6.5
	task, err := s.UpdateTask("t4", domain.TaskUpdate{Title: &titulo, EstimatedHours: &horas})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if task.Title != titulo || task.EstimatedHours != 6.5 {
		t.Errorf("campos atualizados incorretos: %+v", task)
	}
	if task.ClientID != "c4" || task.Status != domain.TaskPendente {
		t.Errorf("campos não informados deveriam ser preservados: %+v", task)
	}
}

func TestSetClientFinancials(t *testing.T) {
	s := fixedStore(t)

	data := domain.ClientFinancials{
		FinancialData: []domain.FinancialRecord{
			{Month: "Jan/25", Receita: 1000, Despesa: 600, Lucro: 12345},
		},
		TaxData: []domain.TaxRecord{{Tipo: "ISS", Valor: 120, Status: domain.TaxPendente}},
	}

	t.Run("Cliente inexistente", func(t *testing.T) {
		if err := s.SetClientFinancials("c999", data); !errors.Is(err, ErrClienteNaoEncontrado) {
			t.Errorf("esperava ErrClienteNaoEncontrado, obteve %v", err)
		}
	})

	t.Run("Substituição atômica e lucro recalculado", func(t *testing.T) {
		if err := s.SetClientFinancials("c1", data); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		got, err := s.ClientFinancials("c1")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(got.FinancialData) != 1 || len(got.TaxData) != 1 {
			t.Fatalf("dataset substituído incorreto: %+v", got)
		}
		if got.FinancialData[0].Lucro != 400 {
			t.Errorf("lucro deveria ser recalculado para 400, obteve %v", got.FinancialData[0].Lucro)
		}
	})
}

func TestClientFinancialsDemo(t *testing.T) {
	s := fixedStore(t)

	got, err := s.ClientFinancials("c2")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(got.FinancialData) != 12 {
		t.Fatalf("dataset de demonstração deveria ter 12 meses, obteve %d", len(got.FinancialData))
	}
	if len(got.TaxData) != 8 {
		t.Fatalf("dataset de demonstração deveria ter 8 tributos, obteve %d", len(got.TaxData))
	}
	for _, r := range got.FinancialData {
		if r.Lucro != r.Receita-r.Despesa {
			t.Errorf("lucro %v difere de receita-despesa em %s", r.Lucro, r.Month)
		}
		if r.Receita <= 0 || r.Despesa <= 0 {
			t.Errorf("valores gerados deveriam ser positivos: %+v", r)
		}
	}

	again, err := s.ClientFinancials("c2")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("dataset memoizado deveria ser estável entre leituras:\n%s", diff)
	}

	if _, err := s.ClientFinancials("c999"); !errors.Is(err, ErrClienteNaoEncontrado) {
		t.Errorf("esperava ErrClienteNaoEncontrado, obteve %v", err)
	}
}

func TestSearchClients(t *testing.T) {
	s := fixedStore(t)

	t.Run("Substring por nome", func(t *testing.T) {
		got := s.SearchClients("tech")
		if len(got) != 1 || got[0].ID != "c1" {
			t.Errorf("esperava apenas c1, obteve %+v", got)
		}
	})

	t.Run("Substring por segmento", func(t *testing.T) {
		got := s.SearchClients("Varejo")
		if len(got) != 1 || got[0].ID != "c5" {
			t.Errorf("esperava apenas c5, obteve %+v", got)
		}
	})

	t.Run("Busca vazia devolve todos", func(t *testing.T) {
		if got := s.SearchClients("  "); len(got) != 5 {
			t.Errorf("esperava 5 clientes, obteve %d", len(got))
		}
	})

	t.Run("Fuzzy com erro de digitação", func(t *testing.T) {
		got := s.SearchClients("tech solutons ltda")
		if len(got) != 1 || got[0].ID != "c1" {
			t.Errorf("busca aproximada deveria achar c1, obteve %+v", got)
		}
	})
}

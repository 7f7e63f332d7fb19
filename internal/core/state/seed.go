package state

import "github.com/viniciusgf/painelcontabil/internal/domain"

// Dados de demonstração do escritório. Ids fixos para que as referências
// cruzadas cliente↔colaborador↔tarefa fechem entre si.

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{
			ID: "emp1", Name: "Ana Silva", Role: "Contadora Sênior", Avatar: "AS",
			Clients:        []string{"c1", "c2", "c3"},
			TasksCompleted: 47, TasksCompletedLastMonth: 39,
			AvgTaskTime: 3.2, AvgTaskTimeLastMonth: 4.1,
			Satisfaction: 92,
		},
		{
			ID: "emp2", Name: "Carlos Mendes", Role: "Analista Fiscal", Avatar: "CM",
			Clients:        []string{"c2", "c4"},
			TasksCompleted: 38, TasksCompletedLastMonth: 35,
			AvgTaskTime: 2.8, AvgTaskTimeLastMonth: 3.0,
			Satisfaction: 88,
		},
		{
			ID: "emp3", Name: "Juliana Costa", Role: "Assistente Contábil", Avatar: "JC",
			Clients:        []string{"c1", "c5"},
			TasksCompleted: 52, TasksCompletedLastMonth: 44,
			AvgTaskTime: 2.1, AvgTaskTimeLastMonth: 2.5,
			Satisfaction: 95,
		},
		{
			ID: "emp4", Name: "Roberto Almeida", Role: "Contador Pleno", Avatar: "RA",
			Clients:        []string{"c3", "c4", "c5"},
			TasksCompleted: 41, TasksCompletedLastMonth: 43,
			AvgTaskTime: 3.5, AvgTaskTimeLastMonth: 3.3,
			Satisfaction: 78,
		},
		{
			ID: "emp5", Name: "Fernanda Lima", Role: "Analista de DP", Avatar: "FL",
			Clients:        []string{"c1", "c2", "c3", "c4", "c5"},
			TasksCompleted: 61, TasksCompletedLastMonth: 55,
			AvgTaskTime: 1.8, AvgTaskTimeLastMonth: 2.0,
			Satisfaction: 90,
		},
	}
}

func seedClients() []domain.Client {
	return []domain.Client{
		{ID: "c1", Name: "Tech Solutions Ltda", CNPJ: "12.345.678/0001-90", Segment: "Tecnologia", Responsible: "emp1", Status: domain.ClientAtivo, CreatedAt: "2024-01-15"},
		{ID: "c2", Name: "Restaurante Sabor & Arte", CNPJ: "23.456.789/0001-01", Segment: "Alimentação", Responsible: "emp2", Status: domain.ClientAtivo, CreatedAt: "2023-06-20"},
		{ID: "c3", Name: "Construções ABC S/A", CNPJ: "34.567.890/0001-12", Segment: "Construção", Responsible: "emp1", Status: domain.ClientAtivo, CreatedAt: "2023-03-10"},
		{ID: "c4", Name: "Clínica Saúde Plena", CNPJ: "45.678.901/0001-23", Segment: "Saúde", Responsible: "emp4", Status: domain.ClientAtivo, CreatedAt: "2024-05-01"},
		{ID: "c5", Name: "Loja Moda Express", CNPJ: "56.789.012/0001-34", Segment: "Varejo", Responsible: "emp3", Status: domain.ClientInativo, CreatedAt: "2022-11-08"},
	}
}

func seedTasks() []domain.Task {
	return []domain.Task{
		{ID: "t1", Title: "Fechamento mensal - Tech Solutions", ClientID: "c1", AssigneeID: "emp1", Status: domain.TaskConcluida, Priority: domain.PriorityAlta, DueDate: "2026-01-31", CompletedAt: "2026-01-29", EstimatedHours: 8, ActualHours: 6.5, Category: "Escrituração Contábil"},
		{ID: "t2", Title: "DCTF Janeiro - Restaurante", ClientID: "c2", AssigneeID: "emp2", Status: domain.TaskConcluida, Priority: domain.PriorityAlta, DueDate: "2026-02-15", CompletedAt: "2026-02-10", EstimatedHours: 4, ActualHours: 3.5, Category: "DCTF"},
		{ID: "t3", Title: "Folha de pagamento Fev - ABC", ClientID: "c3", AssigneeID: "emp5", Status: domain.TaskEmProgresso, Priority: domain.PriorityAlta, DueDate: "2026-02-05", EstimatedHours: 6, Category: "Folha de Pagamento"},
		{ID: "t4", Title: "Conciliação bancária - Clínica", ClientID: "c4", AssigneeID: "emp4", Status: domain.TaskPendente, Priority: domain.PriorityMedia, DueDate: "2026-02-10", EstimatedHours: 3, Category: "Conciliação Bancária"},
		{ID: "t5", Title: "SPED Fiscal - Tech Solutions", ClientID: "c1", AssigneeID: "emp2", Status: domain.TaskAtrasada, Priority: domain.PriorityUrgente, DueDate: "2026-01-25", EstimatedHours: 5, Category: "SPED"},
		{ID: "t6", Title: "Planejamento tributário - Moda Express", ClientID: "c5", AssigneeID: "emp3", Status: domain.TaskConcluida, Priority: domain.PriorityMedia, DueDate: "2026-01-20", CompletedAt: "2026-01-18", EstimatedHours: 10, ActualHours: 8, Category: "Planejamento Tributário"},
		{ID: "t7", Title: "Balancete Dez/25 - Restaurante", ClientID: "c2", AssigneeID: "emp1", Status: domain.TaskConcluida, Priority: domain.PriorityAlta, DueDate: "2026-01-15", CompletedAt: "2026-01-14", EstimatedHours: 5, ActualHours: 4.5, Category: "Balancete"},
		{ID: "t8", Title: "Declaração IR - Construções ABC", ClientID: "c3", AssigneeID: "emp4", Status: domain.TaskPendente, Priority: domain.PriorityAlta, DueDate: "2026-03-31", EstimatedHours: 12, Category: "Declaração IR"},
		{ID: "t9", Title: "Obrigações fiscais Jan - Clínica", ClientID: "c4", AssigneeID: "emp2", Status: domain.TaskConcluida, Priority: domain.PriorityAlta, DueDate: "2026-02-01", CompletedAt: "2026-01-30", EstimatedHours: 4, ActualHours: 3, Category: "Obrigações Fiscais"},
		{ID: "t10", Title: "Consultoria fiscal - Tech Solutions", ClientID: "c1", AssigneeID: "emp1", Status: domain.TaskEmProgresso, Priority: domain.PriorityMedia, DueDate: "2026-02-20", EstimatedHours: 6, Category: "Consultoria"},
		{ID: "t11", Title: "Escrituração contábil Fev - Restaurante", ClientID: "c2", AssigneeID: "emp3", Status: domain.TaskPendente, Priority: domain.PriorityAlta, DueDate: "2026-02-28", EstimatedHours: 7, Category: "Escrituração Contábil"},
		{ID: "t12", Title: "Folha de pagamento Fev - Clínica", ClientID: "c4", AssigneeID: "emp5", Status: domain.TaskEmProgresso, Priority: domain.PriorityAlta, DueDate: "2026-02-05", EstimatedHours: 5, Category: "Folha de Pagamento"},
	}
}

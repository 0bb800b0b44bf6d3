package domain

// ChecklistItemKind distingue cabeçalhos de fase de tarefas marcáveis
type ChecklistItemKind string

const (
	ChecklistPhase ChecklistItemKind = "phase"
	ChecklistTask  ChecklistItemKind = "task"
)

// ChecklistItem é uma linha do plano de lançamento. Completed só tem
// significado para tarefas; fases nunca carregam estado.
type ChecklistItem struct {
	Kind      ChecklistItemKind `json:"kind"`
	Text      string            `json:"text"`
	Completed bool              `json:"completed,omitempty"`
}

// ChecklistTemplate é um esboço reutilizável de plano de lançamento em texto
// plano: linhas com hífen viram tarefas, as demais viram fases.
type ChecklistTemplate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RawOutline string `json:"raw_outline"`
}

// ChecklistInstance é o plano de lançamento atribuído a uma oferta, com o
// progresso de conclusão por tarefa
type ChecklistInstance struct {
	TemplateName string           `json:"template_name"`
	Tasks        []*ChecklistItem `json:"tasks"`
}

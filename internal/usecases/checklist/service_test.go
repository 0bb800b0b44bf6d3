package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
)

const outline = `Fase 1: Investigación
- Analizar competencia
- Definir avatar

Fase 2: Creativos
- Grabar 5 videos`

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		rawOutline string
		validate   func(t *testing.T, items []*domain.ChecklistItem)
	}{
		{
			name:       "Esboço com fases e tarefas",
			rawOutline: outline,
			validate: func(t *testing.T, items []*domain.ChecklistItem) {
				assert.Len(t, items, 5)

				assert.Equal(t, domain.ChecklistPhase, items[0].Kind)
				assert.Equal(t, "Fase 1: Investigación", items[0].Text)

				assert.Equal(t, domain.ChecklistTask, items[1].Kind)
				assert.Equal(t, "Analizar competencia", items[1].Text)
				assert.False(t, items[1].Completed)

				assert.Equal(t, domain.ChecklistPhase, items[3].Kind)
				assert.Equal(t, domain.ChecklistTask, items[4].Kind)
				assert.Equal(t, "Grabar 5 videos", items[4].Text)
			},
		},
		{
			name:       "Linhas em branco e espaços são descartados",
			rawOutline: "\n\n  Fase única  \n\n-  Tarea con espacios  \n\n",
			validate: func(t *testing.T, items []*domain.ChecklistItem) {
				assert.Len(t, items, 2)
				assert.Equal(t, "Fase única", items[0].Text)
				assert.Equal(t, "Tarea con espacios", items[1].Text)
			},
		},
		{
			name:       "Esboço vazio rende lista vazia",
			rawOutline: "   \n  \n",
			validate: func(t *testing.T, items []*domain.ChecklistItem) {
				assert.Empty(t, items)
			},
		},
		{
			name:       "Esboço só com tarefas, sem fases",
			rawOutline: "- Uno\n- Dos",
			validate: func(t *testing.T, items []*domain.ChecklistItem) {
				assert.Len(t, items, 2)
				assert.Equal(t, domain.ChecklistTask, items[0].Kind)
				assert.Equal(t, domain.ChecklistTask, items[1].Kind)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Parse(tt.rawOutline))
		})
	}
}

func TestUnparseRoundTrip(t *testing.T) {
	items := Parse(outline)
	items[1].Completed = true

	reparsed := Parse(Unparse(items))

	// estrutura e textos sobrevivem; o progresso não é codificado no texto
	assert.Len(t, reparsed, len(items))
	for i := range items {
		assert.Equal(t, items[i].Kind, reparsed[i].Kind)
		assert.Equal(t, items[i].Text, reparsed[i].Text)
	}
	assert.False(t, reparsed[1].Completed)
}

func TestMergeOnEdit(t *testing.T) {
	oldItems := Parse(outline)
	oldItems[1].Completed = true // Analizar competencia
	oldItems[4].Completed = true // Grabar 5 videos

	edited := `Fase 1: Investigación
- Analizar competencia
- Definir avatar del cliente

Fase 2: Creativos
- Grabar 5 videos
- Editar videos`

	merged := MergeOnEdit(oldItems, edited)

	assert.Len(t, merged, 6)

	// texto idêntico preserva a conclusão
	assert.Equal(t, "Analizar competencia", merged[1].Text)
	assert.True(t, merged[1].Completed)
	assert.True(t, merged[4].Completed)

	// texto alterado em qualquer caractere recomeça não concluído
	assert.Equal(t, "Definir avatar del cliente", merged[2].Text)
	assert.False(t, merged[2].Completed)

	// tarefa nova nasce não concluída
	assert.Equal(t, "Editar videos", merged[5].Text)
	assert.False(t, merged[5].Completed)
}

func TestProgress(t *testing.T) {
	items := Parse(outline)
	items[1].Completed = true
	items[2].Completed = true

	completed, total := Progress(items)

	assert.Equal(t, 2, completed)
	assert.Equal(t, 3, total) // fases não contam
}

func TestProgressSemTarefas(t *testing.T) {
	completed, total := Progress(Parse("Solo una fase"))

	assert.Equal(t, 0, completed)
	assert.Equal(t, 0, total)
}

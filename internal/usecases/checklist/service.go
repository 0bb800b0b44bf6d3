// Package checklist converte o esboço em texto plano de um plano de
// lançamento em uma lista de fases e tarefas, e reconcilia edições do esboço
// preservando o progresso das tarefas cujo texto não mudou.
package checklist

import (
	"strings"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
)

// taskMarker é o prefixo que distingue tarefas de fases no esboço
const taskMarker = "-"

// Parse interpreta o esboço: linhas iniciadas por hífen viram tarefas (texto
// sem o marcador, não concluídas), demais linhas não vazias viram fases e
// linhas em branco são descartadas.
func Parse(rawOutline string) []*domain.ChecklistItem {
	var items []*domain.ChecklistItem

	for _, line := range strings.Split(strings.TrimSpace(rawOutline), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, taskMarker) {
			items = append(items, &domain.ChecklistItem{
				Kind: domain.ChecklistTask,
				Text: strings.TrimSpace(strings.TrimPrefix(line, taskMarker)),
			})
			continue
		}
		items = append(items, &domain.ChecklistItem{
			Kind: domain.ChecklistPhase,
			Text: line,
		})
	}

	return items
}

// Unparse é o inverso de Parse: fases saem como estão, tarefas recebem o
// marcador de volta. O estado de conclusão não é codificado no texto, então
// Parse(Unparse(x)) reproduz estrutura e textos mas não o progresso.
func Unparse(items []*domain.ChecklistItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item.Kind == domain.ChecklistTask {
			lines = append(lines, taskMarker+" "+item.Text)
			continue
		}
		lines = append(lines, item.Text)
	}
	return strings.Join(lines, "\n")
}

// MergeOnEdit reinterpreta o esboço editado e transporta a conclusão das
// tarefas antigas cujo texto coincide exatamente com uma tarefa nova. Textos
// alterados em qualquer caractere recomeçam como não concluídos — a
// correspondência é por igualdade estrita de texto, de propósito.
func MergeOnEdit(oldItems []*domain.ChecklistItem, newRawOutline string) []*domain.ChecklistItem {
	completedByText := make(map[string]bool)
	for _, item := range oldItems {
		if item.Kind == domain.ChecklistTask {
			completedByText[item.Text] = item.Completed
		}
	}

	merged := Parse(newRawOutline)
	for _, item := range merged {
		if item.Kind != domain.ChecklistTask {
			continue
		}
		if completed, ok := completedByText[item.Text]; ok {
			item.Completed = completed
		}
	}

	return merged
}

// Progress conta tarefas concluídas e totais; fases não contam
func Progress(items []*domain.ChecklistItem) (completed, total int) {
	for _, item := range items {
		if item.Kind != domain.ChecklistTask {
			continue
		}
		total++
		if item.Completed {
			completed++
		}
	}
	return completed, total
}

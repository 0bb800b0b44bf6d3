package offering

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/checklist"
)

// AssignChecklist instancia um modelo de checklist na oferta. Atribuir um
// novo modelo substitui o plano atual e zera o progresso.
func (s *Service) AssignChecklist(offerID, templateID string) (*domain.ChecklistInstance, error) {
	var instance *domain.ChecklistInstance
	err := s.mutate(func(snapshot *domain.Snapshot) error {
		offer, ok := snapshot.Offers[offerID]
		if !ok {
			return errors.Wrap(ErrOfferNotFound, offerID)
		}
		template, ok := snapshot.Templates[templateID]
		if !ok {
			return errors.Wrap(ErrTemplateNotFound, templateID)
		}

		instance = &domain.ChecklistInstance{
			TemplateName: template.Name,
			Tasks:        checklist.Parse(template.RawOutline),
		}
		offer.Checklist = instance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// EditChecklist reinterpreta o esboço editado do plano da oferta,
// preservando a conclusão das tarefas cujo texto não mudou
func (s *Service) EditChecklist(offerID, rawOutline string) (*domain.ChecklistInstance, error) {
	var instance *domain.ChecklistInstance
	err := s.mutateOffer(offerID, func(offer *domain.Offer) error {
		if offer.Checklist == nil {
			return errors.Wrap(ErrChecklistMissing, offerID)
		}
		offer.Checklist.Tasks = checklist.MergeOnEdit(offer.Checklist.Tasks, rawOutline)
		instance = offer.Checklist
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// ToggleChecklistTask alterna a conclusão de uma tarefa pelo índice na lista
// completa de linhas do plano. Fases não são marcáveis.
func (s *Service) ToggleChecklistTask(offerID string, taskIndex int) (*domain.ChecklistInstance, error) {
	var instance *domain.ChecklistInstance
	err := s.mutateOffer(offerID, func(offer *domain.Offer) error {
		if offer.Checklist == nil {
			return errors.Wrap(ErrChecklistMissing, offerID)
		}
		if taskIndex < 0 || taskIndex >= len(offer.Checklist.Tasks) {
			return errors.Wrap(ErrTaskOutOfRange, fmt.Sprintf("índice %d", taskIndex))
		}

		item := offer.Checklist.Tasks[taskIndex]
		if item.Kind != domain.ChecklistTask {
			return errors.Wrap(ErrInvalidRequest, "fases não são marcáveis")
		}
		item.Completed = !item.Completed
		instance = offer.Checklist
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// ChecklistProgress devolve o progresso do plano da oferta
func (s *Service) ChecklistProgress(offerID string) (completed, total int, err error) {
	err = s.viewOffer(offerID, func(offer *domain.Offer) error {
		if offer.Checklist == nil {
			return errors.Wrap(ErrChecklistMissing, offerID)
		}
		completed, total = checklist.Progress(offer.Checklist.Tasks)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return completed, total, nil
}

package offering

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/utils"
)

// CreateTemplate cadastra um modelo de checklist reutilizável
func (s *Service) CreateTemplate(name, rawOutline string) (*domain.ChecklistTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	template := &domain.ChecklistTemplate{
		ID:         id,
		Name:       name,
		RawOutline: rawOutline,
	}

	err = s.mutate(func(snapshot *domain.Snapshot) error {
		for _, existing := range snapshot.Templates {
			if strings.EqualFold(existing.Name, name) {
				return errors.Wrap(ErrDuplicateName, name)
			}
		}
		snapshot.Templates[template.ID] = template
		return nil
	})
	if err != nil {
		return nil, err
	}

	return template, nil
}

// ListTemplates lista os modelos em ordem alfabética
func (s *Service) ListTemplates() ([]*domain.ChecklistTemplate, error) {
	var templates []*domain.ChecklistTemplate
	err := s.view(func(snapshot *domain.Snapshot) error {
		templates = make([]*domain.ChecklistTemplate, 0, len(snapshot.Templates))
		for _, template := range snapshot.Templates {
			templates = append(templates, template)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})

	return templates, nil
}

// UpdateTemplate altera nome e/ou esboço de um modelo. Ofertas que já
// instanciaram o modelo não são afetadas; o vínculo é feito na atribuição.
func (s *Service) UpdateTemplate(templateID, name, rawOutline string) (*domain.ChecklistTemplate, error) {
	name = strings.TrimSpace(name)

	var template *domain.ChecklistTemplate
	err := s.mutate(func(snapshot *domain.Snapshot) error {
		current, ok := snapshot.Templates[templateID]
		if !ok {
			return errors.Wrap(ErrTemplateNotFound, templateID)
		}

		if name != "" && !strings.EqualFold(current.Name, name) {
			for _, existing := range snapshot.Templates {
				if existing.ID != templateID && strings.EqualFold(existing.Name, name) {
					return errors.Wrap(ErrDuplicateName, name)
				}
			}
			current.Name = name
		}
		if rawOutline != "" {
			current.RawOutline = rawOutline
		}

		template = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return template, nil
}

// DeleteTemplate remove um modelo do catálogo
func (s *Service) DeleteTemplate(templateID string) error {
	return s.mutate(func(snapshot *domain.Snapshot) error {
		if _, ok := snapshot.Templates[templateID]; !ok {
			return errors.Wrap(ErrTemplateNotFound, templateID)
		}
		delete(snapshot.Templates, templateID)
		return nil
	})
}

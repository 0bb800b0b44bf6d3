package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
)

type AssignChecklistRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
}

type EditChecklistRequest struct {
	RawOutline string `json:"raw_outline" validate:"required"`
}

type TemplateRequest struct {
	Name       string `json:"name" validate:"required"`
	RawOutline string `json:"raw_outline" validate:"required"`
}

type UpdateTemplateRequest struct {
	Name       string `json:"name"`
	RawOutline string `json:"raw_outline"`
}

func AssignChecklist(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssignChecklistRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		instance, err := service.AssignChecklist(offerID(r), req.TemplateID)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, instance)
	}
}

// EditChecklist reinterpreta o esboço do plano preservando o progresso das
// tarefas cujo texto não mudou
func EditChecklist(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EditChecklistRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		instance, err := service.EditChecklist(offerID(r), req.RawOutline)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, instance)
	}
}

func ToggleChecklistTask(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := httprouter.ParamsFromContext(r.Context()).ByName("task_index")
		taskIndex, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice de tarefa inválido", nil)
			return
		}

		instance, err := service.ToggleChecklistTask(offerID(r), taskIndex)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, instance)
	}
}

func GetChecklistProgress(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		completed, total, err := service.ChecklistProgress(offerID(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]int{
			"completed": completed,
			"total":     total,
		})
	}
}

func CreateTemplate(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TemplateRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		template, err := service.CreateTemplate(req.Name, req.RawOutline)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, template)
	}
}

func ListTemplates(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := service.ListTemplates()
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, templates)
	}
}

func UpdateTemplate(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := httprouter.ParamsFromContext(r.Context()).ByName("template_id")

		var req UpdateTemplateRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		template, err := service.UpdateTemplate(templateID, req.Name, req.RawOutline)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, template)
	}
}

func DeleteTemplate(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := httprouter.ParamsFromContext(r.Context()).ByName("template_id")

		if err := service.DeleteTemplate(templateID); err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Modelo removido",
		})
	}
}

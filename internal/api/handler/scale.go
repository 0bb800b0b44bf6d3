package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
)

type CreateCampaignRequest struct {
	Name             string  `json:"name" validate:"required"`
	BaseAd           string  `json:"base_ad" validate:"required"`
	Strategy         string  `json:"strategy" validate:"required,oneof=1-1-1 1-1-X 1-X-1 custom"`
	ReplicationCount int     `json:"replication_count" validate:"gte=0"`
	DailyBudget      float64 `json:"daily_budget" validate:"gte=0"`
}

type AddComponentRequest struct {
	Name string `json:"name" validate:"required"`
}

func campaignID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("campaign_id")
}

func CreateScaleCampaign(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCampaignRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		campaign, err := service.CreateScaleCampaign(offerID(r), offering.CreateCampaignInput{
			Name:             req.Name,
			BaseAd:           req.BaseAd,
			Strategy:         domain.ScaleStrategy(req.Strategy),
			ReplicationCount: req.ReplicationCount,
			DailyBudget:      req.DailyBudget,
		})
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

func AddScaleComponent(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddComponentRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		component, err := service.AddScaleComponent(offerID(r), campaignID(r), req.Name)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, component)
	}
}

func ToggleScaleComponent(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		componentName := httprouter.ParamsFromContext(r.Context()).ByName("component_name")

		component, err := service.ToggleScaleComponent(offerID(r), campaignID(r), componentName)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, component)
	}
}

func ToggleScaleCampaign(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaign, err := service.ToggleScaleCampaign(offerID(r), campaignID(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func AddScaleRecord(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		input, err := req.toRecordInput()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data em formato inválido", nil)
			return
		}

		record, err := service.AddScaleRecord(offerID(r), campaignID(r), input)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

func UpdateScaleRecord(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := recordIndex(w, r)
		if !ok {
			return
		}

		var req RecordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		input, err := req.toRecordInput()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data em formato inválido", nil)
			return
		}

		record, err := service.UpdateScaleRecord(offerID(r), campaignID(r), index, input)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func DeleteScaleRecord(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := recordIndex(w, r)
		if !ok {
			return
		}

		if err := service.DeleteScaleRecord(offerID(r), campaignID(r), index); err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Registro removido",
		})
	}
}

func GetCampaignRollup(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.CampaignRollup(offerID(r), campaignID(r), groupByParam(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/rollup"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/utils"
)

type AddTestingAdRequest struct {
	Name string `json:"name" validate:"required"`
}

type RecordRequest struct {
	Date               string         `json:"date" validate:"required,datetime=2006-01-02"`
	Entity             string         `json:"entity" validate:"required"`
	Investment         float64        `json:"investment" validate:"gte=0"`
	InitiatedCheckouts int            `json:"initiated_checkouts" validate:"gte=0"`
	SalesByAlias       map[string]int `json:"sales_by_alias"`
}

// toRecordInput converte o DTO validado na entrada do serviço
func (req RecordRequest) toRecordInput() (domain.RecordInput, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return domain.RecordInput{}, err
	}

	return domain.RecordInput{
		Date:               date,
		EntityLabel:        req.Entity,
		Investment:         req.Investment,
		InitiatedCheckouts: req.InitiatedCheckouts,
		SalesByAlias:       req.SalesByAlias,
	}, nil
}

// recordIndex extrai o índice do registro da URL
func recordIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice de registro inválido", nil)
		return 0, false
	}
	return index, true
}

// groupByParam lê o agrupamento da query string, com entidade como padrão
func groupByParam(r *http.Request) rollup.GroupBy {
	raw := r.URL.Query().Get("group_by")
	if raw == "" {
		return rollup.GroupByEntity
	}
	return rollup.GroupBy(raw)
}

func AddTestingAd(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddTestingAdRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		ad, err := service.AddTestingAd(offerID(r), req.Name)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ad)
	}
}

func ToggleTestingAd(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adName := httprouter.ParamsFromContext(r.Context()).ByName("ad_name")

		ad, err := service.ToggleTestingAd(offerID(r), adName)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ad)
	}
}

func AddTestingRecord(service offering.Manager) http.HandlerFunc {
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

		record, err := service.AddTestingRecord(offerID(r), input)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

func UpdateTestingRecord(service offering.Manager) http.HandlerFunc {
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

		record, err := service.UpdateTestingRecord(offerID(r), index, input)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func DeleteTestingRecord(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := recordIndex(w, r)
		if !ok {
			return
		}

		if err := service.DeleteTestingRecord(offerID(r), index); err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Registro removido",
		})
	}
}

// GetSuggestions devolve o veredicto de cada anúncio de testeo da oferta
func GetSuggestions(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verdicts, err := service.Suggestions(offerID(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, verdicts)
	}
}

func GetTestingRollup(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.TestingRollup(offerID(r), groupByParam(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

func GetFunnelRollup(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.FunnelRollup(offerID(r), groupByParam(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

func GetConsistency(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastDays := 7
		if raw := r.URL.Query().Get("last_days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro last_days inválido", nil)
				return
			}
			lastDays = parsed
		}

		calendar, err := service.Consistency(offerID(r), lastDays)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, calendar)
	}
}

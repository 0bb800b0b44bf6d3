package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
)

type AddFunnelItemRequest struct {
	Name  string  `json:"name" validate:"required"`
	Type  string  `json:"type" validate:"required,oneof=bump upsell downsell other"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

func AddFunnelItem(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddFunnelItemRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		item, err := service.AddFunnelItem(offerID(r), domain.FunnelItemType(req.Type), req.Name, req.Price)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, item)
	}
}

func ToggleFunnelItem(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := httprouter.ParamsFromContext(r.Context()).ByName("item_id")

		item, err := service.ToggleFunnelItem(offerID(r), itemID)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func GetFunnelVitals(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vitals, err := service.FunnelVitals(offerID(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, vitals)
	}
}

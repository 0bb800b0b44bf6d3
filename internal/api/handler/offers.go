package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
)

type CreateOfferRequest struct {
	Name           string  `json:"name" validate:"required"`
	FunnelType     string  `json:"funnel_type"`
	PrincipalPrice float64 `json:"principal_price" validate:"required,gt=0"`
	CommissionPP   float64 `json:"commission_pp" validate:"gte=0"`
	TargetCPA      float64 `json:"target_cpa" validate:"gte=0"`
}

type ChangeOfferStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type FinancialConfigRequest struct {
	CommissionPP *float64 `json:"commission_pp" validate:"omitempty,gte=0"`
	TargetCPA    *float64 `json:"target_cpa" validate:"omitempty,gte=0"`
}

func offerID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func CreateOffer(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOfferRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		offer, err := service.CreateOffer(offering.CreateOfferInput{
			Name:           req.Name,
			FunnelType:     req.FunnelType,
			PrincipalPrice: req.PrincipalPrice,
			CommissionPP:   req.CommissionPP,
			TargetCPA:      req.TargetCPA,
		})
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, offer)
	}
}

func ListOffers(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers, err := service.ListOffers()
		if err != nil {
			logrus.Error(err)
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, offers)
	}
}

func GetOffer(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offer, err := service.GetOffer(offerID(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, offer)
	}
}

func DeleteOffer(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteOffer(offerID(r)); err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Oferta removida",
		})
	}
}

func ChangeOfferStatus(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangeOfferStatusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		offer, err := service.ChangeOfferStatus(offerID(r), domain.OfferStatus(req.Status))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, offer)
	}
}

func UpdateFinancialConfig(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FinancialConfigRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		offer, err := service.UpdateFinancialConfig(offerID(r), req.CommissionPP, req.TargetCPA)
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, offer)
	}
}

func GetOfferSummary(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.OfferSummary(offerID(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func GetDashboard(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Dashboard()
		if err != nil {
			logrus.Error(err)
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

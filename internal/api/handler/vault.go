package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
)

type VaultEntryRequest struct {
	Name         string `json:"name" validate:"required"`
	OfferType    string `json:"offer_type"`
	AdLibraryURL string `json:"ad_library_url"`
	OfferURL     string `json:"offer_url"`
	Niche        string `json:"niche"`
	Language     string `json:"language"`
	ActiveAds    int    `json:"active_ads" validate:"gte=0"`
	Rating       int    `json:"rating" validate:"gte=0,lte=5"`
	WorthTesting string `json:"worth_testing"`
	Comments     string `json:"comments"`
}

type ChangeVaultStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func vaultEntryID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("entry_id")
}

func (req VaultEntryRequest) toInput() offering.VaultEntryInput {
	return offering.VaultEntryInput{
		Name:         req.Name,
		OfferType:    req.OfferType,
		AdLibraryURL: req.AdLibraryURL,
		OfferURL:     req.OfferURL,
		Niche:        req.Niche,
		Language:     req.Language,
		ActiveAds:    req.ActiveAds,
		Rating:       req.Rating,
		WorthTesting: req.WorthTesting,
		Comments:     req.Comments,
	}
}

// vaultFilterFromQuery monta o filtro da listagem a partir da query string:
// types e statuses separados por vírgula, hide_archived=true
func vaultFilterFromQuery(r *http.Request) domain.VaultFilter {
	filter := domain.VaultFilter{}

	if raw := r.URL.Query().Get("types"); raw != "" {
		filter.OfferTypes = strings.Split(raw, ",")
	}
	if raw := r.URL.Query().Get("statuses"); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, domain.VaultStatus(status))
		}
	}
	filter.HideArchived = r.URL.Query().Get("hide_archived") == "true"

	return filter
}

func CreateVaultEntry(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VaultEntryRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		entry, err := service.CreateVaultEntry(req.toInput())
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

func ListVault(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.ListVault(vaultFilterFromQuery(r))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func UpdateVaultEntry(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VaultEntryRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		entry, err := service.UpdateVaultEntry(vaultEntryID(r), req.toInput())
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

func ChangeVaultStatus(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangeVaultStatusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		entry, err := service.ChangeVaultStatus(vaultEntryID(r), domain.VaultStatus(req.Status))
		if err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

func DeleteVaultEntry(service offering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteVaultEntry(vaultEntryID(r)); err != nil {
			handleOfferingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Entrada removida",
		})
	}
}

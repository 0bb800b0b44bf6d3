package domain

import "strings"

// VaultEntry é uma oferta de mercado observada, registrada na bóveda de
// inteligência. Não participa do pipeline de métricas das ofertas próprias.
type VaultEntry struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	OfferType    string      `json:"offer_type"`
	AdLibraryURL string      `json:"ad_library_url,omitempty"`
	OfferURL     string      `json:"offer_url,omitempty"`
	Niche        string      `json:"niche,omitempty"`
	Language     string      `json:"language,omitempty"`
	ActiveAds    int         `json:"active_ads"`
	Rating       int         `json:"rating"`
	WorthTesting string      `json:"worth_testing"`
	Comments     string      `json:"comments,omitempty"`
	Status       VaultStatus `json:"status"`
	RegisteredAt string      `json:"registered_at"`
}

// RatingStars renderiza a calificação como estrelas, na borda de apresentação
func (e *VaultEntry) RatingStars() string {
	rating := e.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("⭐", rating) + strings.Repeat("☆", 5-rating)
}

// VaultFilter restringe a listagem da bóveda
type VaultFilter struct {
	OfferTypes   []string
	Statuses     []VaultStatus
	HideArchived bool
}

// Matches informa se a entrada passa pelo filtro
func (f VaultFilter) Matches(entry *VaultEntry) bool {
	if f.HideArchived && entry.Status == VaultArchived {
		return false
	}
	if len(f.OfferTypes) > 0 && !containsString(f.OfferTypes, entry.OfferType) {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if s == entry.Status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

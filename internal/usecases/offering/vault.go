package offering

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/utils"
)

// VaultEntryInput são os dados de uma oferta observada no mercado
type VaultEntryInput struct {
	Name         string
	OfferType    string
	AdLibraryURL string
	OfferURL     string
	Niche        string
	Language     string
	ActiveAds    int
	Rating       int
	WorthTesting string
	Comments     string
}

// CreateVaultEntry registra uma oferta observada na bóveda de inteligência
func (s *Service) CreateVaultEntry(input VaultEntryInput) (*domain.VaultEntry, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if input.ActiveAds < 0 {
		return nil, ErrInvalidCount
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, errors.Wrap(ErrInvalidRequest, "calificação deve estar entre 0 e 5")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	entry := &domain.VaultEntry{
		ID:           id,
		Name:         name,
		OfferType:    strings.TrimSpace(input.OfferType),
		AdLibraryURL: input.AdLibraryURL,
		OfferURL:     input.OfferURL,
		Niche:        input.Niche,
		Language:     input.Language,
		ActiveAds:    input.ActiveAds,
		Rating:       input.Rating,
		WorthTesting: input.WorthTesting,
		Comments:     input.Comments,
		Status:       domain.VaultIdea,
		RegisteredAt: time.Now().UTC().Format("2006-01-02"),
	}

	err = s.mutate(func(snapshot *domain.Snapshot) error {
		snapshot.Vault = append(snapshot.Vault, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ListVault lista as entradas da bóveda que passam pelo filtro, na ordem de
// registro
func (s *Service) ListVault(filter domain.VaultFilter) ([]*domain.VaultEntry, error) {
	var entries []*domain.VaultEntry
	err := s.view(func(snapshot *domain.Snapshot) error {
		entries = make([]*domain.VaultEntry, 0, len(snapshot.Vault))
		for _, entry := range snapshot.Vault {
			if filter.Matches(entry) {
				entries = append(entries, entry)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateVaultEntry substitui os dados editáveis de uma entrada, mantendo
// status e data de registro
func (s *Service) UpdateVaultEntry(entryID string, input VaultEntryInput) (*domain.VaultEntry, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if input.ActiveAds < 0 {
		return nil, ErrInvalidCount
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, errors.Wrap(ErrInvalidRequest, "calificação deve estar entre 0 e 5")
	}

	var entry *domain.VaultEntry
	err := s.mutate(func(snapshot *domain.Snapshot) error {
		entry = s.vaultByID(snapshot, entryID)
		if entry == nil {
			return errors.Wrap(ErrVaultNotFound, entryID)
		}

		entry.Name = name
		entry.OfferType = strings.TrimSpace(input.OfferType)
		entry.AdLibraryURL = input.AdLibraryURL
		entry.OfferURL = input.OfferURL
		entry.Niche = input.Niche
		entry.Language = input.Language
		entry.ActiveAds = input.ActiveAds
		entry.Rating = input.Rating
		entry.WorthTesting = input.WorthTesting
		entry.Comments = input.Comments
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ChangeVaultStatus move uma entrada da bóveda no seu ciclo de disposição
func (s *Service) ChangeVaultStatus(entryID string, status domain.VaultStatus) (*domain.VaultEntry, error) {
	if !status.Valid() {
		return nil, errors.Wrap(ErrInvalidStatus, string(status))
	}

	var entry *domain.VaultEntry
	err := s.mutate(func(snapshot *domain.Snapshot) error {
		entry = s.vaultByID(snapshot, entryID)
		if entry == nil {
			return errors.Wrap(ErrVaultNotFound, entryID)
		}
		entry.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteVaultEntry remove uma entrada da bóveda
func (s *Service) DeleteVaultEntry(entryID string) error {
	return s.mutate(func(snapshot *domain.Snapshot) error {
		for i, entry := range snapshot.Vault {
			if entry.ID == entryID {
				snapshot.Vault = append(snapshot.Vault[:i], snapshot.Vault[i+1:]...)
				return nil
			}
		}
		return errors.Wrap(ErrVaultNotFound, entryID)
	})
}

func (s *Service) vaultByID(snapshot *domain.Snapshot, entryID string) *domain.VaultEntry {
	for _, entry := range snapshot.Vault {
		if entry.ID == entryID {
			return entry
		}
	}
	return nil
}

// Package offering é o coração do centro de comando: mantém o snapshot do
// workspace em memória, aplica todas as mutações de ofertas sob um mutex e
// regrava o estado completo no repositório após cada mudança.
package offering

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/infrastructure/repository"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/config"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/classifying"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/rollup"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/log"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/utils"
)

// Manager expõe todas as operações do workspace de ofertas
type Manager interface {
	// Ofertas
	CreateOffer(input CreateOfferInput) (*domain.Offer, error)
	ListOffers() ([]*domain.Offer, error)
	GetOffer(offerID string) (*domain.Offer, error)
	DeleteOffer(offerID string) error
	ChangeOfferStatus(offerID string, status domain.OfferStatus) (*domain.Offer, error)
	UpdateFinancialConfig(offerID string, commissionPP, targetCPA *float64) (*domain.Offer, error)

	// Funil
	AddFunnelItem(offerID string, itemType domain.FunnelItemType, name string, price float64) (*domain.FunnelItem, error)
	ToggleFunnelItem(offerID, itemID string) (*domain.FunnelItem, error)

	// Testeo
	AddTestingAd(offerID, name string) (*domain.TestingAd, error)
	ToggleTestingAd(offerID, name string) (*domain.TestingAd, error)
	AddTestingRecord(offerID string, input domain.RecordInput) (*domain.DailyRecord, error)
	UpdateTestingRecord(offerID string, index int, input domain.RecordInput) (*domain.DailyRecord, error)
	DeleteTestingRecord(offerID string, index int) error

	// Escala
	CreateScaleCampaign(offerID string, input CreateCampaignInput) (*domain.ScaleCampaign, error)
	AddScaleComponent(offerID, campaignID, name string) (*domain.ScaleComponent, error)
	ToggleScaleComponent(offerID, campaignID, name string) (*domain.ScaleComponent, error)
	ToggleScaleCampaign(offerID, campaignID string) (*domain.ScaleCampaign, error)
	AddScaleRecord(offerID, campaignID string, input domain.RecordInput) (*domain.DailyRecord, error)
	UpdateScaleRecord(offerID, campaignID string, index int, input domain.RecordInput) (*domain.DailyRecord, error)
	DeleteScaleRecord(offerID, campaignID string, index int) error

	// Checklist e modelos
	AssignChecklist(offerID, templateID string) (*domain.ChecklistInstance, error)
	EditChecklist(offerID, rawOutline string) (*domain.ChecklistInstance, error)
	ToggleChecklistTask(offerID string, taskIndex int) (*domain.ChecklistInstance, error)
	ChecklistProgress(offerID string) (completed, total int, err error)
	CreateTemplate(name, rawOutline string) (*domain.ChecklistTemplate, error)
	ListTemplates() ([]*domain.ChecklistTemplate, error)
	UpdateTemplate(templateID, name, rawOutline string) (*domain.ChecklistTemplate, error)
	DeleteTemplate(templateID string) error

	// Bóveda
	CreateVaultEntry(input VaultEntryInput) (*domain.VaultEntry, error)
	ListVault(filter domain.VaultFilter) ([]*domain.VaultEntry, error)
	UpdateVaultEntry(entryID string, input VaultEntryInput) (*domain.VaultEntry, error)
	ChangeVaultStatus(entryID string, status domain.VaultStatus) (*domain.VaultEntry, error)
	DeleteVaultEntry(entryID string) error

	// Análise
	Suggestions(offerID string) (map[string]classifying.Verdict, error)
	TestingRollup(offerID string, groupBy rollup.GroupBy) ([]rollup.Row, error)
	CampaignRollup(offerID, campaignID string, groupBy rollup.GroupBy) ([]rollup.Row, error)
	FunnelRollup(offerID string, groupBy rollup.GroupBy) ([]rollup.Row, error)
	FunnelVitals(offerID string) (*rollup.FunnelVitals, error)
	Consistency(offerID string, lastDays int) (*rollup.ConsistencyCalendar, error)
	OfferSummary(offerID string) (*Summary, error)
	Dashboard() (*DashboardReport, error)

	// Backup
	BackupNow() error
}

// Service implementa Manager sobre um snapshot residente em memória
type Service struct {
	cfg         *config.Config
	repo        repository.WorkspaceRepository
	workspaceID string

	mu       sync.Mutex
	snapshot *domain.Snapshot
}

// CreateOfferInput são os dados de criação de uma oferta
type CreateOfferInput struct {
	Name           string
	FunnelType     string
	PrincipalPrice float64
	CommissionPP   float64
	TargetCPA      float64
}

func NewService(cfg *config.Config, repo repository.WorkspaceRepository) Manager {
	return &Service{
		cfg:         cfg,
		repo:        repo,
		workspaceID: cfg.Team.WorkspaceID,
	}
}

// ensureLoaded carrega o snapshot do repositório na primeira utilização,
// inicializando um workspace vazio quando ainda não existe. Deve ser chamado
// com o mutex adquirido.
func (s *Service) ensureLoaded() error {
	if s.snapshot != nil {
		return nil
	}

	snapshot, err := s.repo.Load(s.workspaceID)
	if err != nil {
		return NewOfferingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	if snapshot == nil {
		snapshot = domain.NewSnapshot()
		if err := s.repo.Save(s.workspaceID, snapshot); err != nil {
			return NewOfferingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
		}
		log.L.WithField("workspace_id", s.workspaceID).Info("Workspace inicializado vazio")
	}

	s.snapshot = snapshot
	return nil
}

// persist regrava o snapshot completo. Deve ser chamado com o mutex adquirido.
func (s *Service) persist() error {
	if err := s.repo.Save(s.workspaceID, s.snapshot); err != nil {
		return NewOfferingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return nil
}

// mutate executa fn sob o mutex e persiste o snapshot se fn não falhar
func (s *Service) mutate(fn func(snapshot *domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	if err := fn(s.snapshot); err != nil {
		return err
	}

	return s.persist()
}

// view executa fn sob o mutex sem persistir
func (s *Service) view(fn func(snapshot *domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	return fn(s.snapshot)
}

// mutateOffer resolve a oferta e executa fn sob o mutex, persistindo no final
func (s *Service) mutateOffer(offerID string, fn func(offer *domain.Offer) error) error {
	return s.mutate(func(snapshot *domain.Snapshot) error {
		offer, ok := snapshot.Offers[offerID]
		if !ok {
			return NewOfferingError(ErrOfferNotFound, apiErrors.ErrOfferNotFound, offerID, "")
		}
		return fn(offer)
	})
}

// viewOffer resolve a oferta e executa fn sob o mutex, sem persistir
func (s *Service) viewOffer(offerID string, fn func(offer *domain.Offer) error) error {
	return s.view(func(snapshot *domain.Snapshot) error {
		offer, ok := snapshot.Offers[offerID]
		if !ok {
			return NewOfferingError(ErrOfferNotFound, apiErrors.ErrOfferNotFound, offerID, "")
		}
		return fn(offer)
	})
}

func (s *Service) CreateOffer(input CreateOfferInput) (*domain.Offer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if input.PrincipalPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if input.CommissionPP < 0 || input.TargetCPA < 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "comissão e CPA alvo não podem ser negativos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	offer := &domain.Offer{
		ID:             id,
		Name:           name,
		FunnelType:     strings.TrimSpace(input.FunnelType),
		Status:         domain.OfferTesting,
		Funnel:         domain.NewFunnel(input.PrincipalPrice),
		TestingAds:     make([]*domain.TestingAd, 0),
		TestingRecords: make([]*domain.DailyRecord, 0),
		Scale:          make(map[string]*domain.ScaleCampaign),
		CommissionPP:   input.CommissionPP,
		TargetCPA:      input.TargetCPA,
		CreatedAt:      time.Now().UTC(),
	}

	err = s.mutate(func(snapshot *domain.Snapshot) error {
		for _, existing := range snapshot.Offers {
			if strings.EqualFold(existing.Name, name) {
				return errors.Wrap(ErrDuplicateName, name)
			}
		}
		snapshot.Offers[offer.ID] = offer
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"offer_id":   offer.ID,
		"offer_name": offer.Name,
	}).Info("Oferta criada")

	return offer, nil
}

func (s *Service) ListOffers() ([]*domain.Offer, error) {
	var offers []*domain.Offer
	err := s.view(func(snapshot *domain.Snapshot) error {
		offers = make([]*domain.Offer, 0, len(snapshot.Offers))
		for _, offer := range snapshot.Offers {
			offers = append(offers, offer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortOffersByCreation(offers)

	return offers, nil
}

// sortOffersByCreation ordena ofertas por criação, com desempate pelo nome
func sortOffersByCreation(offers []*domain.Offer) {
	sort.Slice(offers, func(i, j int) bool {
		if offers[i].CreatedAt.Equal(offers[j].CreatedAt) {
			return offers[i].Name < offers[j].Name
		}
		return offers[i].CreatedAt.Before(offers[j].CreatedAt)
	})
}

func (s *Service) GetOffer(offerID string) (*domain.Offer, error) {
	var offer *domain.Offer
	err := s.viewOffer(offerID, func(o *domain.Offer) error {
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *Service) DeleteOffer(offerID string) error {
	return s.mutate(func(snapshot *domain.Snapshot) error {
		if _, ok := snapshot.Offers[offerID]; !ok {
			return NewOfferingError(ErrOfferNotFound, apiErrors.ErrOfferNotFound, offerID, "")
		}
		delete(snapshot.Offers, offerID)
		return nil
	})
}

func (s *Service) ChangeOfferStatus(offerID string, status domain.OfferStatus) (*domain.Offer, error) {
	if !status.Valid() {
		return nil, errors.Wrap(ErrInvalidStatus, string(status))
	}

	var offer *domain.Offer
	err := s.mutateOffer(offerID, func(o *domain.Offer) error {
		o.Status = status
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"offer_id": offerID,
		"status":   string(status),
	}).Info("Status da oferta alterado")

	return offer, nil
}

// UpdateFinancialConfig altera comissão e/ou CPA alvo. Registros já gravados
// mantêm seus campos derivados; a nova comissão vale para os próximos
// registros e para as análises acumuladas.
func (s *Service) UpdateFinancialConfig(offerID string, commissionPP, targetCPA *float64) (*domain.Offer, error) {
	if commissionPP == nil && targetCPA == nil {
		return nil, errors.Wrap(ErrInvalidRequest, "nenhum campo para atualizar")
	}
	if commissionPP != nil && *commissionPP < 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "comissão não pode ser negativa")
	}
	if targetCPA != nil && *targetCPA < 0 {
		return nil, errors.Wrap(ErrInvalidRequest, "CPA alvo não pode ser negativo")
	}

	var offer *domain.Offer
	err := s.mutateOffer(offerID, func(o *domain.Offer) error {
		if commissionPP != nil {
			o.CommissionPP = *commissionPP
		}
		if targetCPA != nil {
			o.TargetCPA = *targetCPA
		}
		offer = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return offer, nil
}

// BackupNow copia o estado atual do workspace para a tabela de backups e
// remove os excedentes conforme a retenção configurada
func (s *Service) BackupNow() error {
	if err := s.repo.CopyToBackup(s.workspaceID); err != nil {
		return NewOfferingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	keep := s.cfg.SnapshotBackup.Retention
	if keep <= 0 {
		keep = 7
	}

	if err := s.repo.PruneBackups(s.workspaceID, keep); err != nil {
		return NewOfferingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return nil
}

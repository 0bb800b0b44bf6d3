package offering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/infrastructure/repository/mocks"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/config"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/log"
)

const testWorkspaceID = "infinity"

func init() {
	log.SetupTestLogger()
}

func testConfig() *config.Config {
	return &config.Config{
		Team:           config.Team{WorkspaceID: testWorkspaceID},
		SnapshotBackup: config.SnapshotBackup{Retention: 3},
	}
}

// newTestService cria o serviço sobre um snapshot pré-carregado, aceitando
// qualquer número de regravações
func newTestService(t *testing.T, snapshot *domain.Snapshot) Manager {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWorkspaceRepository(ctrl)
	repo.EXPECT().Load(testWorkspaceID).Return(snapshot, nil).AnyTimes()
	repo.EXPECT().Save(testWorkspaceID, gomock.Any()).Return(nil).AnyTimes()
	return NewService(testConfig(), repo)
}

// seedOffer monta uma oferta mínima com funil de preço principal 50
func seedOffer(id, name string) *domain.Offer {
	return &domain.Offer{
		ID:             id,
		Name:           name,
		Status:         domain.OfferTesting,
		Funnel:         domain.NewFunnel(50),
		TestingAds:     make([]*domain.TestingAd, 0),
		TestingRecords: make([]*domain.DailyRecord, 0),
		Scale:          make(map[string]*domain.ScaleCampaign),
		CreatedAt:      time.Now().UTC(),
	}
}

func seedSnapshot(offers ...*domain.Offer) *domain.Snapshot {
	snapshot := domain.NewSnapshot()
	for _, offer := range offers {
		snapshot.Offers[offer.ID] = offer
	}
	return snapshot
}

func recordInput(entity string, investment float64, sales map[string]int) domain.RecordInput {
	return domain.RecordInput{
		Date:         time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EntityLabel:  entity,
		Investment:   investment,
		SalesByAlias: sales,
	}
}

func TestEnsureLoadedInicializaWorkspaceVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWorkspaceRepository(ctrl)

	// workspace inexistente: bootstrap grava um snapshot vazio antes de operar
	repo.EXPECT().Load(testWorkspaceID).Return(nil, nil)
	repo.EXPECT().Save(testWorkspaceID, gomock.Any()).Return(nil)

	service := NewService(testConfig(), repo)

	offers, err := service.ListOffers()

	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestCreateOffer(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateOfferInput
		wantErr error
	}{
		{
			name:  "Oferta válida nasce em testeo com funil de um item",
			input: CreateOfferInput{Name: "Oferta Fitness", PrincipalPrice: 47, CommissionPP: 10, TargetCPA: 25},
		},
		{
			name:    "Nome vazio é rejeitado",
			input:   CreateOfferInput{Name: "   ", PrincipalPrice: 47},
			wantErr: ErrEmptyName,
		},
		{
			name:    "Preço principal zero é rejeitado",
			input:   CreateOfferInput{Name: "Oferta", PrincipalPrice: 0},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "Comissão negativa é rejeitada",
			input:   CreateOfferInput{Name: "Oferta", PrincipalPrice: 47, CommissionPP: -1},
			wantErr: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, seedSnapshot())

			offer, err := service.CreateOffer(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, offer.ID)
			assert.Equal(t, domain.OfferTesting, offer.Status)
			assert.Equal(t, 47.0, offer.Funnel.PrincipalPrice())
			assert.Len(t, offer.Funnel.Items, 1)
			assert.Equal(t, "PP", offer.Funnel.Items[0].Alias)
		})
	}
}

func TestCreateOfferNomeDuplicadoIgnoraCaixa(t *testing.T) {
	service := newTestService(t, seedSnapshot(seedOffer("of1", "Oferta Fitness")))

	_, err := service.CreateOffer(CreateOfferInput{Name: "OFERTA fitness", PrincipalPrice: 47})

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreateOfferNaoPersisteQuandoValidacaoFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWorkspaceRepository(ctrl)
	repo.EXPECT().Load(testWorkspaceID).Return(seedSnapshot(seedOffer("of1", "Oferta")), nil)
	// nenhum Save esperado: a validação de duplicado falha dentro da mutação
	service := NewService(testConfig(), repo)

	_, err := service.CreateOffer(CreateOfferInput{Name: "Oferta", PrincipalPrice: 47})

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestChangeOfferStatus(t *testing.T) {
	service := newTestService(t, seedSnapshot(seedOffer("of1", "Oferta")))

	offer, err := service.ChangeOfferStatus("of1", domain.OfferValidated)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferValidated, offer.Status)

	_, err = service.ChangeOfferStatus("of1", domain.OfferStatus("paused"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = service.ChangeOfferStatus("nope", domain.OfferTesting)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestOfferNotFoundCarregaContextoECodigo(t *testing.T) {
	service := newTestService(t, seedSnapshot())

	_, err := service.GetOffer("of-fantasma")

	var offeringErr *OfferingError
	require.ErrorAs(t, err, &offeringErr)
	assert.Equal(t, apiErrors.ErrOfferNotFound, offeringErr.Code)
	assert.Equal(t, "of-fantasma", offeringErr.OfferID)
	assert.ErrorIs(t, err, ErrOfferNotFound)
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsValidationError(err))
}

func TestUpdateFinancialConfig(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.CommissionPP = 10
	offer.TargetCPA = 20
	service := newTestService(t, seedSnapshot(offer))

	commission := 15.0
	updated, err := service.UpdateFinancialConfig("of1", &commission, nil)

	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.CommissionPP)
	assert.Equal(t, 20.0, updated.TargetCPA) // campo omitido não muda

	_, err = service.UpdateFinancialConfig("of1", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestAddFunnelItemSequenciaAliases(t *testing.T) {
	service := newTestService(t, seedSnapshot(seedOffer("of1", "Oferta")))

	bump, err := service.AddFunnelItem("of1", domain.ItemBump, "Garantía extendida", 20)
	require.NoError(t, err)
	assert.Equal(t, "B1", bump.Alias)

	up1, err := service.AddFunnelItem("of1", domain.ItemUpsell, "Curso avanzado", 100)
	require.NoError(t, err)
	assert.Equal(t, "U1", up1.Alias)

	up2, err := service.AddFunnelItem("of1", domain.ItemUpsell, "Mentoría", 300)
	require.NoError(t, err)
	assert.Equal(t, "U2", up2.Alias)

	_, err = service.AddFunnelItem("of1", domain.ItemPrincipal, "Outro principal", 50)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestToggleFunnelItem(t *testing.T) {
	service := newTestService(t, seedSnapshot(seedOffer("of1", "Oferta")))

	bump, err := service.AddFunnelItem("of1", domain.ItemBump, "Garantía", 20)
	require.NoError(t, err)

	toggled, err := service.ToggleFunnelItem("of1", bump.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemArchived, toggled.Status)

	// o produto principal não pode ser arquivado
	_, err = service.ToggleFunnelItem("of1", "principal")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestAddTestingRecord(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.CommissionPP = 10
	offer.TestingAds = []*domain.TestingAd{{Name: "AD-01", Status: domain.ComponentActive}}
	service := newTestService(t, seedSnapshot(offer))

	record, err := service.AddTestingRecord("of1", recordInput("AD-01", 100, map[string]int{"PP": 3}))

	require.NoError(t, err)
	assert.Equal(t, 150.0, record.GrossRevenue)
	assert.Equal(t, 120.0, record.NetRevenue) // 3 comissões de 10
	assert.InDelta(t, 1.2, record.NetROAS, 1e-9)

	stored, err := service.GetOffer("of1")
	require.NoError(t, err)
	assert.Len(t, stored.TestingRecords, 1)
}

func TestAddTestingRecordValidacoes(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.TestingAds = []*domain.TestingAd{{Name: "AD-01", Status: domain.ComponentActive}}

	tests := []struct {
		name    string
		input   domain.RecordInput
		wantErr error
	}{
		{
			name:    "Anúncio inexistente",
			input:   recordInput("AD-99", 100, map[string]int{"PP": 1}),
			wantErr: ErrAdNotFound,
		},
		{
			name:    "Alias fora do funil",
			input:   recordInput("AD-01", 100, map[string]int{"PP": 1, "U7": 1}),
			wantErr: ErrUnknownAlias,
		},
		{
			name:    "Inversão negativa",
			input:   recordInput("AD-01", -5, nil),
			wantErr: ErrInvalidInvestment,
		},
		{
			name:    "Data ausente",
			input:   domain.RecordInput{EntityLabel: "AD-01", Investment: 10},
			wantErr: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, seedSnapshot(offer))

			_, err := service.AddTestingRecord("of1", tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateTestingRecordIndiceForaDoIntervalo(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.TestingAds = []*domain.TestingAd{{Name: "AD-01", Status: domain.ComponentActive}}
	service := newTestService(t, seedSnapshot(offer))

	_, err := service.UpdateTestingRecord("of1", 0, recordInput("AD-01", 10, nil))
	assert.ErrorIs(t, err, ErrRecordOutOfRange)

	err = service.DeleteTestingRecord("of1", -1)
	assert.ErrorIs(t, err, ErrRecordOutOfRange)
}

func TestCreateScaleCampaign(t *testing.T) {
	tests := []struct {
		name           string
		input          CreateCampaignInput
		wantErr        error
		wantComponents []string
	}{
		{
			name:           "Estratégia 1-1-1 usa o próprio anúncio base",
			input:          CreateCampaignInput{Name: "CBO Base", BaseAd: "AD-01", Strategy: domain.StrategyOneToOne, DailyBudget: 100},
			wantComponents: []string{"AD-01"},
		},
		{
			name:           "Estratégia 1-1-X duplica o anúncio N vezes",
			input:          CreateCampaignInput{Name: "Duplicación Ads", BaseAd: "AD-01", Strategy: domain.StrategyOneToManyAds, ReplicationCount: 3, DailyBudget: 100},
			wantComponents: []string{"[AD 1] AD-01", "[AD 2] AD-01", "[AD 3] AD-01"},
		},
		{
			name:           "Estratégia 1-X-1 duplica conjuntos de anúncios",
			input:          CreateCampaignInput{Name: "Duplicación Conjuntos", BaseAd: "AD-01", Strategy: domain.StrategyOneToManySets, ReplicationCount: 2, DailyBudget: 100},
			wantComponents: []string{"Conjunto de Anuncios 1", "Conjunto de Anuncios 2"},
		},
		{
			name:    "Estratégia com duplicação exige contagem positiva",
			input:   CreateCampaignInput{Name: "Sin conteo", BaseAd: "AD-01", Strategy: domain.StrategyOneToManyAds},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "Estratégia desconhecida",
			input:   CreateCampaignInput{Name: "Rara", BaseAd: "AD-01", Strategy: domain.ScaleStrategy("2-2-2")},
			wantErr: ErrInvalidStrategy,
		},
		{
			name:    "Anúncio base precisa existir no testeo",
			input:   CreateCampaignInput{Name: "Base fantasma", BaseAd: "AD-99", Strategy: domain.StrategyOneToOne},
			wantErr: ErrAdNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := seedOffer("of1", "Oferta")
			offer.TestingAds = []*domain.TestingAd{{Name: "AD-01", Status: domain.ComponentActive}}
			service := newTestService(t, seedSnapshot(offer))

			campaign, err := service.CreateScaleCampaign("of1", tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.CampaignActive, campaign.Status)
			names := make([]string, 0, len(campaign.Components))
			for _, comp := range campaign.Components {
				names = append(names, comp.Name)
			}
			assert.Equal(t, tt.wantComponents, names)
		})
	}
}

func TestAddScaleRecordExigeComponenteExistente(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.TestingAds = []*domain.TestingAd{{Name: "AD-01", Status: domain.ComponentActive}}
	service := newTestService(t, seedSnapshot(offer))

	campaign, err := service.CreateScaleCampaign("of1", CreateCampaignInput{
		Name: "CBO", BaseAd: "AD-01", Strategy: domain.StrategyOneToOne, DailyBudget: 100,
	})
	require.NoError(t, err)

	record, err := service.AddScaleRecord("of1", campaign.ID, recordInput("AD-01", 200, map[string]int{"PP": 5}))
	require.NoError(t, err)
	assert.Equal(t, 250.0, record.GrossRevenue)

	_, err = service.AddScaleRecord("of1", campaign.ID, recordInput("Componente X", 10, nil))
	assert.ErrorIs(t, err, ErrComponentNotFound)

	_, err = service.AddScaleRecord("of1", "camp-fantasma", recordInput("AD-01", 10, nil))
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestToggleScaleComponentECampanha(t *testing.T) {
	offer := seedOffer("of1", "Oferta")
	offer.TestingAds = []*domain.TestingAd{{Name: "AD-01", Status: domain.ComponentActive}}
	service := newTestService(t, seedSnapshot(offer))

	campaign, err := service.CreateScaleCampaign("of1", CreateCampaignInput{
		Name: "CBO", BaseAd: "AD-01", Strategy: domain.StrategyOneToOne,
	})
	require.NoError(t, err)

	component, err := service.ToggleScaleComponent("of1", campaign.ID, "AD-01")
	require.NoError(t, err)
	assert.Equal(t, domain.ComponentInactive, component.Status)

	toggled, err := service.ToggleScaleCampaign("of1", campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignInactive, toggled.Status)
}

func TestChecklistFluxoCompleto(t *testing.T) {
	service := newTestService(t, seedSnapshot(seedOffer("of1", "Oferta")))

	template, err := service.CreateTemplate("Lanzamiento", "Fase 1\n- Tarea A\n- Tarea B")
	require.NoError(t, err)

	instance, err := service.AssignChecklist("of1", template.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lanzamiento", instance.TemplateName)
	assert.Len(t, instance.Tasks, 3)

	// índice 0 é fase, não marcável
	_, err = service.ToggleChecklistTask("of1", 0)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = service.ToggleChecklistTask("of1", 1)
	require.NoError(t, err)

	completed, total, err := service.ChecklistProgress("of1")
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, total)

	// edição preserva o progresso da tarefa de texto inalterado
	_, err = service.EditChecklist("of1", "Fase 1\n- Tarea A\n- Tarea C")
	require.NoError(t, err)

	completed, total, err = service.ChecklistProgress("of1")
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, total)

	_, err = service.ToggleChecklistTask("of1", 9)
	assert.ErrorIs(t, err, ErrTaskOutOfRange)
}

func TestChecklistSemPlanoAtribuido(t *testing.T) {
	service := newTestService(t, seedSnapshot(seedOffer("of1", "Oferta")))

	_, err := service.EditChecklist("of1", "- Tarea")
	assert.ErrorIs(t, err, ErrChecklistMissing)

	_, _, err = service.ChecklistProgress("of1")
	assert.ErrorIs(t, err, ErrChecklistMissing)
}

func TestTemplatesCRUD(t *testing.T) {
	service := newTestService(t, seedSnapshot())

	created, err := service.CreateTemplate("Lanzamiento", "- Tarea")
	require.NoError(t, err)

	_, err = service.CreateTemplate("LANZAMIENTO", "- Otra")
	assert.ErrorIs(t, err, ErrDuplicateName)

	updated, err := service.UpdateTemplate(created.ID, "Lanzamiento v2", "")
	require.NoError(t, err)
	assert.Equal(t, "Lanzamiento v2", updated.Name)
	assert.Equal(t, "- Tarea", updated.RawOutline) // esboço vazio não sobrescreve

	templates, err := service.ListTemplates()
	require.NoError(t, err)
	assert.Len(t, templates, 1)

	require.NoError(t, service.DeleteTemplate(created.ID))

	err = service.DeleteTemplate(created.ID)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestVaultCRUD(t *testing.T) {
	service := newTestService(t, seedSnapshot())

	entry, err := service.CreateVaultEntry(VaultEntryInput{
		Name: "Oferta espiada", OfferType: "VSL", Rating: 4, ActiveAds: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VaultIdea, entry.Status)
	assert.NotEmpty(t, entry.RegisteredAt)

	_, err = service.CreateVaultEntry(VaultEntryInput{Name: "Inválida", Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	moved, err := service.ChangeVaultStatus(entry.ID, domain.VaultModeling)
	require.NoError(t, err)
	assert.Equal(t, domain.VaultModeling, moved.Status)

	_, err = service.ChangeVaultStatus(entry.ID, domain.VaultStatus("winner"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := service.UpdateVaultEntry(entry.ID, VaultEntryInput{Name: "Oferta espiada v2", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "Oferta espiada v2", updated.Name)
	assert.Equal(t, domain.VaultModeling, updated.Status) // edição não toca o status

	require.NoError(t, service.DeleteVaultEntry(entry.ID))

	_, err = service.ChangeVaultStatus(entry.ID, domain.VaultTesting)
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestListVaultFiltra(t *testing.T) {
	service := newTestService(t, seedSnapshot())

	vsl, err := service.CreateVaultEntry(VaultEntryInput{Name: "VSL Fitness", OfferType: "VSL"})
	require.NoError(t, err)
	_, err = service.CreateVaultEntry(VaultEntryInput{Name: "Ecom Gadget", OfferType: "ecom"})
	require.NoError(t, err)
	archived, err := service.CreateVaultEntry(VaultEntryInput{Name: "Vieja", OfferType: "VSL"})
	require.NoError(t, err)
	_, err = service.ChangeVaultStatus(archived.ID, domain.VaultArchived)
	require.NoError(t, err)

	entries, err := service.ListVault(domain.VaultFilter{OfferTypes: []string{"VSL"}, HideArchived: true})

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, vsl.ID, entries[0].ID)
}

func TestBackupNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWorkspaceRepository(ctrl)

	repo.EXPECT().CopyToBackup(testWorkspaceID).Return(nil)
	repo.EXPECT().PruneBackups(testWorkspaceID, 3).Return(nil)

	service := NewService(testConfig(), repo)

	assert.NoError(t, service.BackupNow())
}

func TestBackupNowRetencaoPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWorkspaceRepository(ctrl)

	repo.EXPECT().CopyToBackup(testWorkspaceID).Return(nil)
	repo.EXPECT().PruneBackups(testWorkspaceID, 7).Return(nil)

	cfg := testConfig()
	cfg.SnapshotBackup.Retention = 0
	service := NewService(cfg, repo)

	assert.NoError(t, service.BackupNow())
}

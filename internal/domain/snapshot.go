package domain

// Snapshot é o estado completo de um workspace compartilhado. É carregado
// inteiro no início da sessão e sobrescrito inteiro a cada mutação — não há
// escrita parcial nem token de concorrência otimista; sessões concorrentes no
// mesmo workspace disputam em last-write-wins.
type Snapshot struct {
	Offers    map[string]*Offer             `json:"offers"`
	Vault     []*VaultEntry                 `json:"vault"`
	Templates map[string]*ChecklistTemplate `json:"templates"`
}

// NewSnapshot cria um snapshot vazio, usado no bootstrap do primeiro acesso
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Offers:    make(map[string]*Offer),
		Vault:     make([]*VaultEntry, 0),
		Templates: make(map[string]*ChecklistTemplate),
	}
}

// Normalize garante coleções não-nulas após desserialização de snapshots
// parciais ou antigos
func (s *Snapshot) Normalize() {
	if s.Offers == nil {
		s.Offers = make(map[string]*Offer)
	}
	if s.Vault == nil {
		s.Vault = make([]*VaultEntry, 0)
	}
	if s.Templates == nil {
		s.Templates = make(map[string]*ChecklistTemplate)
	}
	for _, offer := range s.Offers {
		if offer.Funnel == nil {
			offer.Funnel = &FunnelModel{}
		}
		if offer.TestingAds == nil {
			offer.TestingAds = make([]*TestingAd, 0)
		}
		if offer.TestingRecords == nil {
			offer.TestingRecords = make([]*DailyRecord, 0)
		}
		if offer.Scale == nil {
			offer.Scale = make(map[string]*ScaleCampaign)
		}
		for _, campaign := range offer.Scale {
			if campaign.Components == nil {
				campaign.Components = make([]*ScaleComponent, 0)
			}
			if campaign.Records == nil {
				campaign.Records = make([]*DailyRecord, 0)
			}
			if campaign.Status == "" {
				campaign.Status = CampaignActive
			}
		}
	}
	for _, entry := range s.Vault {
		if entry.Status == "" {
			entry.Status = VaultIdea
		}
	}
}

package domain

// OfferStatus representa o ciclo de vida de uma oferta
type OfferStatus string

const (
	OfferTesting   OfferStatus = "testing"
	OfferValidated OfferStatus = "validated"
	OfferArchived  OfferStatus = "archived"
)

// Label retorna o rótulo de exibição do status, usado apenas na borda de apresentação
func (s OfferStatus) Label() string {
	switch s {
	case OfferTesting:
		return "🧪 En Testeo"
	case OfferValidated:
		return "✅ Validada"
	case OfferArchived:
		return "🗄️ Archivada"
	}
	return string(s)
}

// Valid informa se o status pertence ao conjunto fechado de estados de oferta
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferTesting, OfferValidated, OfferArchived:
		return true
	}
	return false
}

// ItemStatus representa a ativação de um item do funil
type ItemStatus string

const (
	ItemActive   ItemStatus = "active"
	ItemArchived ItemStatus = "archived"
)

func (s ItemStatus) Label() string {
	if s == ItemActive {
		return "🟢 Activo"
	}
	return "📁 Archivado"
}

// ComponentStatus representa a ativação de um anúncio de testeo ou componente de escala
type ComponentStatus string

const (
	ComponentActive   ComponentStatus = "active"
	ComponentInactive ComponentStatus = "inactive"
)

func (s ComponentStatus) Label() string {
	if s == ComponentActive {
		return "🟢 Activo"
	}
	return "🔴 Inactivo"
}

// Toggle alterna entre ativo e inativo
func (s ComponentStatus) Toggle() ComponentStatus {
	if s == ComponentActive {
		return ComponentInactive
	}
	return ComponentActive
}

// CampaignStatus representa a ativação de uma campanha de escala
type CampaignStatus string

const (
	CampaignActive   CampaignStatus = "active"
	CampaignInactive CampaignStatus = "inactive"
)

func (s CampaignStatus) Label() string {
	if s == CampaignActive {
		return "🟢 Activa"
	}
	return "🔴 Inactiva"
}

func (s CampaignStatus) Toggle() CampaignStatus {
	if s == CampaignActive {
		return CampaignInactive
	}
	return CampaignActive
}

// VaultStatus representa a disposição de uma entrada da bóveda de inteligência
type VaultStatus string

const (
	VaultIdea     VaultStatus = "idea"
	VaultModeling VaultStatus = "modeling"
	VaultTesting  VaultStatus = "testing"
	VaultArchived VaultStatus = "archived"
)

func (s VaultStatus) Label() string {
	switch s {
	case VaultIdea:
		return "💡 Idea"
	case VaultModeling:
		return "⚙️ Modelando"
	case VaultTesting:
		return "🧪 En Pruebas"
	case VaultArchived:
		return "🗄️ Archivada"
	}
	return string(s)
}

func (s VaultStatus) Valid() bool {
	switch s {
	case VaultIdea, VaultModeling, VaultTesting, VaultArchived:
		return true
	}
	return false
}

// ScaleStrategy identifica a estrutura de duplicação de uma campanha de escala
type ScaleStrategy string

const (
	StrategyOneToOne      ScaleStrategy = "1-1-1"
	StrategyOneToManyAds  ScaleStrategy = "1-1-X"
	StrategyOneToManySets ScaleStrategy = "1-X-1"
	StrategyCustom        ScaleStrategy = "custom"
)

func (s ScaleStrategy) Valid() bool {
	switch s {
	case StrategyOneToOne, StrategyOneToManyAds, StrategyOneToManySets, StrategyCustom:
		return true
	}
	return false
}

// Replicates informa se a estratégia exige um número de duplicados
func (s ScaleStrategy) Replicates() bool {
	return s == StrategyOneToManyAds || s == StrategyOneToManySets
}

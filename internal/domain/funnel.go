package domain

// PrincipalAlias é o alias fixo do produto principal de toda oferta
const PrincipalAlias = "PP"

// FunnelItemType classifica os degraus monetizáveis do funil
type FunnelItemType string

const (
	ItemPrincipal FunnelItemType = "principal"
	ItemBump      FunnelItemType = "bump"
	ItemUpsell    FunnelItemType = "upsell"
	ItemDownsell  FunnelItemType = "downsell"
	ItemOther     FunnelItemType = "other"
)

// AliasLetter retorna a letra usada na composição do alias do item
func (t FunnelItemType) AliasLetter() string {
	switch t {
	case ItemBump:
		return "B"
	case ItemUpsell:
		return "U"
	case ItemDownsell:
		return "D"
	}
	return "E"
}

func (t FunnelItemType) Valid() bool {
	switch t {
	case ItemBump, ItemUpsell, ItemDownsell, ItemOther:
		return true
	}
	return false
}

// FunnelItem é um degrau monetizável do funil de uma oferta
type FunnelItem struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Type   FunnelItemType `json:"type"`
	Price  float64        `json:"price"`
	Alias  string         `json:"alias"`
	Status ItemStatus     `json:"status"`
}

// FunnelModel descreve o funil completo de uma oferta. O primeiro item é
// sempre o produto principal com alias fixo "PP"; os demais recebem alias
// letra-do-tipo + sequência 1-based por tipo.
type FunnelModel struct {
	Items []*FunnelItem `json:"items"`
}

// NewFunnel cria um funil contendo apenas o produto principal
func NewFunnel(principalPrice float64) *FunnelModel {
	return &FunnelModel{
		Items: []*FunnelItem{
			{
				ID:     "principal",
				Name:   "Producto Principal",
				Type:   ItemPrincipal,
				Price:  principalPrice,
				Alias:  PrincipalAlias,
				Status: ItemActive,
			},
		},
	}
}

// Principal retorna o produto principal do funil, nil se o funil estiver vazio
func (f *FunnelModel) Principal() *FunnelItem {
	for _, item := range f.Items {
		if item.Alias == PrincipalAlias {
			return item
		}
	}
	return nil
}

// PrincipalPrice retorna o preço do produto principal (0 se ausente)
func (f *FunnelModel) PrincipalPrice() float64 {
	if p := f.Principal(); p != nil {
		return p.Price
	}
	return 0
}

// ItemByID busca um item pelo identificador
func (f *FunnelModel) ItemByID(id string) *FunnelItem {
	for _, item := range f.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// ItemByAlias busca um item pelo alias (único dentro da oferta)
func (f *FunnelModel) ItemByAlias(alias string) *FunnelItem {
	for _, item := range f.Items {
		if item.Alias == alias {
			return item
		}
	}
	return nil
}

// CountByType conta os itens existentes de um tipo, usado para compor o
// próximo alias sequencial
func (f *FunnelModel) CountByType(t FunnelItemType) int {
	count := 0
	for _, item := range f.Items {
		if item.Type == t {
			count++
		}
	}
	return count
}

// ActiveItems retorna apenas os itens ativos, na ordem do funil
func (f *FunnelModel) ActiveItems() []*FunnelItem {
	active := make([]*FunnelItem, 0, len(f.Items))
	for _, item := range f.Items {
		if item.Status == ItemActive {
			active = append(active, item)
		}
	}
	return active
}

// Aliases retorna todos os aliases conhecidos, ativos ou arquivados. Itens
// arquivados continuam contribuindo para registros históricos.
func (f *FunnelModel) Aliases() []string {
	aliases := make([]string, 0, len(f.Items))
	for _, item := range f.Items {
		aliases = append(aliases, item.Alias)
	}
	return aliases
}

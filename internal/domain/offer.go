package domain

// Offer é um veículo disponível retornado pela pesquisa. Nunca é persistido.
type Offer struct {
	Name     string  `json:"nome"`
	Category string  `json:"categoria"`
	Price    float64 `json:"preco"` // Diária em reais
	Agency   string  `json:"locadora,omitempty"`
}

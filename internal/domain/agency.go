package domain

import (
	"time"
)

// Agency representa uma locadora de veículos (a Entidade persistida).
// O ID é gerado na criação e nunca muda; não há exclusão lógica.
type Agency struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Address   string    `json:"endereco"`
	Active    bool      `json:"ativa"`
	CreatedAt time.Time `json:"criadoEm"`
	UpdatedAt time.Time `json:"atualizadoEm"`
}

// AgencyInput é o payload esperado em POST e PUT /locadoras.
// Active é ponteiro para distinguir "ausente" de "false".
type AgencyInput struct {
	Name    string `json:"nome" example:"Econômico Rio"`
	Address string `json:"endereco" example:"Av. Atlântica, 1000"`
	Active  *bool  `json:"ativa,omitempty" example:"true"`
}

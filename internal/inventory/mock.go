// Package inventory simula a API de inventário de cada locadora.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"locadora/internal/domain"
	"locadora/internal/pkg/logger"
)

// Categorias fixas de veículos.
const (
	CategoryEconomy = "Econômico"
	CategorySedan   = "Sedan"
	CategorySUV     = "SUV"
)

// ErrUnavailable é retornado quando a política de falhas simula indisponibilidade.
var ErrUnavailable = errors.New("inventário da locadora indisponível")

var catalog = map[string][]domain.Offer{
	CategoryEconomy: {
		{Name: "Chevrolet Onix", Category: CategoryEconomy, Price: 120},
		{Name: "Fiat Mobi", Category: CategoryEconomy, Price: 110},
		{Name: "Hyundai HB20", Category: CategoryEconomy, Price: 125},
	},
	CategorySedan: {
		{Name: "Toyota Corolla", Category: CategorySedan, Price: 200},
		{Name: "Honda Civic", Category: CategorySedan, Price: 210},
		{Name: "Nissan Sentra", Category: CategorySedan, Price: 190},
	},
	CategorySUV: {
		{Name: "Jeep Compass", Category: CategorySUV, Price: 280},
		{Name: "Hyundai Creta", Category: CategorySUV, Price: 250},
		{Name: "Volkswagen T-Cross", Category: CategorySUV, Price: 240},
	},
}

// AgencyLookup é o que a fonte precisa do repositório para revalidar a locadora.
type AgencyLookup interface {
	GetAgencyByID(ctx context.Context, id string) (domain.Agency, error)
}

// MockSource responde com uma lista estática de ofertas por categoria.
type MockSource struct {
	agencies AgencyLookup
	delay    time.Duration
	faults   FaultPolicy
	logger   logger.Logger
}

// NewMockSource cria a fonte simulada. faults nil equivale a NoFaults.
func NewMockSource(agencies AgencyLookup, delay time.Duration, faults FaultPolicy, logger logger.Logger) *MockSource {
	if faults == nil {
		faults = NoFaults{}
	}
	return &MockSource{
		agencies: agencies,
		delay:    delay,
		faults:   faults,
		logger:   logger,
	}
}

// FetchOffers espera a latência simulada, confirma que a locadora ainda existe,
// classifica-a pelo nome e devolve as três ofertas da categoria.
func (m *MockSource) FetchOffers(ctx context.Context, agency domain.Agency) ([]domain.Offer, error) {
	m.logger.Debug("Consultando inventário simulado.", map[string]interface{}{"id": agency.ID, "nome": agency.Name})

	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}

	current, err := m.agencies.GetAgencyByID(ctx, agency.ID)
	if err != nil {
		return nil, fmt.Errorf("locadora %s não pôde ser revalidada: %w", agency.ID, err)
	}

	category := Classify(current.Name)

	if m.faults.ShouldFail() {
		m.logger.Warn("Falha simulada no inventário.", map[string]interface{}{"id": current.ID})
		return nil, ErrUnavailable
	}

	offers := make([]domain.Offer, 0, len(catalog[category]))
	for _, o := range catalog[category] {
		o.Agency = current.Name
		offers = append(offers, o)
	}

	m.logger.Debug("Inventário simulado respondeu.", map[string]interface{}{"id": current.ID, "categoria": category, "total": len(offers)})
	return offers, nil
}

// Classify escolhe a categoria pelo nome da locadora: "econ" vence "suv";
// sem nenhuma das palavras, Sedan.
func Classify(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "econ"):
		return CategoryEconomy
	case strings.Contains(lower, "suv"):
		return CategorySUV
	default:
		return CategorySedan
	}
}

package inventory

import (
	"math/rand"
	"sync"
	"time"
)

// FaultPolicy decide se uma consulta ao inventário deve falhar, simulando
// indisponibilidade do sistema da locadora.
type FaultPolicy interface {
	ShouldFail() bool
}

// FaultFunc adapta uma função comum para FaultPolicy. Útil em testes.
type FaultFunc func() bool

func (f FaultFunc) ShouldFail() bool { return f() }

// NoFaults nunca falha.
type NoFaults struct{}

func (NoFaults) ShouldFail() bool { return false }

// RandomFaults falha com probabilidade Rate. Com a mesma semente a sequência
// de falhas é reproduzível.
type RandomFaults struct {
	rate float64
	mu   sync.Mutex
	rng  *rand.Rand
}

// NewRandomFaults cria a política. seed == 0 usa o relógio como semente.
// rate é limitado ao intervalo [0, 1].
func NewRandomFaults(rate float64, seed int64) *RandomFaults {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	switch {
	case rate < 0:
		rate = 0
	case rate > 1:
		rate = 1
	}
	return &RandomFaults{rate: rate, rng: rand.New(rand.NewSource(seed))}
}

// Rate retorna a probabilidade de falha configurada.
func (p *RandomFaults) Rate() float64 { return p.rate }

func (p *RandomFaults) ShouldFail() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < p.rate
}

// Package idgen gera identificadores de locadora no formato
// "<unix millis>-<9 caracteres base36>".
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength = 9
)

var alphabetLen = big.NewInt(int64(len(alphabet)))

// New gera um ID a partir do instante atual. Não é globalmente único,
// apenas resistente a colisões na escala de um único arquivo de dados.
func New() string {
	return NewAt(time.Now())
}

// NewAt gera um ID usando o instante informado como prefixo.
func NewAt(t time.Time) string {
	return fmt.Sprintf("%d-%s", t.UnixMilli(), randomSuffix())
}

func randomSuffix() string {
	buf := make([]byte, suffixLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand só falha se o SO não tiver fonte de entropia.
			panic(fmt.Sprintf("idgen: falha ao ler entropia: %v", err))
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf)
}

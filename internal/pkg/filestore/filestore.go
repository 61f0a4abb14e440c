// Package filestore persiste a lista de locadoras em um único documento JSON.
//
// Todas as operações leem ou reescrevem o arquivo inteiro. Sequências de
// leitura-modificação-escrita passam por Update, que as serializa com um
// mutex do processo; escritores em outros processos não são coordenados.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"locadora/internal/domain"
	"locadora/internal/pkg/idgen"
	"locadora/internal/pkg/logger"
)

// Document é o formato do arquivo em disco: sempre um objeto com o array "locadoras".
type Document struct {
	Agencies []domain.Agency `json:"locadoras"`
}

// Store lê e grava o documento de locadoras em Path.
type Store struct {
	Path   string
	mu     sync.Mutex
	logger logger.Logger
}

// NewStore cria o Store para o arquivo informado. O arquivo não precisa existir.
func NewStore(path string, log logger.Logger) *Store {
	return &Store{Path: path, logger: log}
}

// Read retorna o documento atual. Arquivo ausente equivale a {"locadoras": []}.
func (s *Store) Read(ctx context.Context) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

// Write substitui o conteúdo do arquivo pelo documento informado.
func (s *Store) Write(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, doc)
}

// Update executa fn sobre o documento atual e grava o resultado, tudo sob o
// mesmo lock. Se fn retornar erro, nada é gravado e o erro é devolvido intacto.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(ctx, doc)
}

// GenerateID retorna um novo identificador de locadora (timestamp + sufixo aleatório).
func (s *Store) GenerateID() string {
	return idgen.New()
}

func (s *Store) read(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("Arquivo de dados ausente, usando lista vazia.", map[string]interface{}{"path": s.Path})
		return Document{Agencies: []domain.Agency{}}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("falha ao ler %s: %w", s.Path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("falha ao decodificar %s: %w", s.Path, err)
	}
	if doc.Agencies == nil {
		doc.Agencies = []domain.Agency{}
	}
	return doc, nil
}

func (s *Store) write(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc.Agencies == nil {
		doc.Agencies = []domain.Agency{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("falha ao codificar documento: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório %s: %w", dir, err)
	}

	// Grava em arquivo temporário no mesmo diretório e renomeia por cima do original.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("falha ao criar arquivo temporário: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("falha ao gravar arquivo temporário: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("falha ao fechar arquivo temporário: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("falha ao substituir %s: %w", s.Path, err)
	}

	s.logger.Debug("Arquivo de dados gravado.", map[string]interface{}{"path": s.Path, "total_locadoras": len(doc.Agencies)})
	return nil
}

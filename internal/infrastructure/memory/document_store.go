// Package memory implementa un DocumentStore en memoria para desarrollo local y tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/Colaboradores-api/internal/domain"
	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

type collection struct {
	order []string
	docs  map[string]map[string]any
}

// DocumentStore guarda documentos por colección preservando el orden de inserción.
type DocumentStore struct {
	mu   sync.RWMutex
	cols map[string]*collection
}

// NewDocumentStore construye un store vacío.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{cols: make(map[string]*collection)}
}

func (s *DocumentStore) col(name string) *collection {
	c, ok := s.cols[name]
	if !ok {
		c = &collection{docs: make(map[string]map[string]any)}
		s.cols[name] = c
	}
	return c
}

// Insert agrega un documento y devuelve la identidad generada.
func (s *DocumentStore) Insert(ctx context.Context, name string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	c := s.col(name)
	c.order = append(c.order, id)
	c.docs[id] = clone(data)
	return id, nil
}

// Get obtiene un documento por identidad.
func (s *DocumentStore) Get(ctx context.Context, name, id string) (*repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cols[name]
	if !ok {
		return nil, fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	data, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	return &repository.Document{ID: id, Data: clone(data)}, nil
}

// FindByField devuelve, en orden de inserción, los documentos cuyo campo es igual a value.
func (s *DocumentStore) FindByField(ctx context.Context, name, field, value string) ([]repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cols[name]
	if !ok {
		return nil, nil
	}
	var out []repository.Document
	for _, id := range c.order {
		if v, ok := c.docs[id][field].(string); ok && v == value {
			out = append(out, repository.Document{ID: id, Data: clone(c.docs[id])})
		}
	}
	return out, nil
}

// List devuelve todos los documentos de la colección.
func (s *DocumentStore) List(ctx context.Context, name string) ([]repository.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cols[name]
	if !ok {
		return nil, nil
	}
	out := make([]repository.Document, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, repository.Document{ID: id, Data: clone(c.docs[id])})
	}
	return out, nil
}

// Replace sobrescribe el documento completo.
func (s *DocumentStore) Replace(ctx context.Context, name, id string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cols[name]
	if !ok {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	if _, ok := c.docs[id]; !ok {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	c.docs[id] = clone(data)
	return nil
}

// Delete elimina el documento.
func (s *DocumentStore) Delete(ctx context.Context, name, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cols[name]
	if !ok {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	if _, ok := c.docs[id]; !ok {
		return fmt.Errorf("documento %s: %w", id, domain.ErrNotFound)
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

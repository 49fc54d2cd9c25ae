package repository

import "context"

// Document es un documento crudo del store junto con su identidad opaca.
type Document struct {
	ID   string
	Data map[string]any
}

// DocumentStore define el puerto hacia el servicio remoto de documentos.
// Cada llamada es un round trip: el core no mantiene caché.
//
// Get, Replace y Delete devuelven domain.ErrNotFound si la identidad no existe.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, data map[string]any) (string, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	FindByField(ctx context.Context, collection, field, value string) ([]Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
	Replace(ctx context.Context, collection, id string, data map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

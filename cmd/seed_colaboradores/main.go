// seed_colaboradores carga documentos de colaboradores desde un JSON (array de objetos)
// al document store configurado. Los documentos se insertan tal cual: admite nombres de
// campo canónicos o legados (nome, departamento, situacao).
//
// Uso: go run ./cmd/seed_colaboradores [ruta/colaboradores.json]
// Por defecto busca colaboradores.json en el directorio actual.
// Acepta archivos UTF-8 o ISO-8859-1 (exportaciones antiguas).
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Colaboradores-api/internal/domain/collaborator"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/docstore"
	"github.com/jhoicas/Colaboradores-api/pkg/config"
	"github.com/jhoicas/Colaboradores-api/pkg/logger"
)

func main() {
	path := "colaboradores.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	docs, err := readDocuments(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", path, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Store.Timeout*4)
	defer cancel()

	store, closeStore, err := docstore.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	for _, d := range docs {
		c := collaborator.Normalize(d)
		log.Debug().Str("email", c.Email).Str("status", c.Status).Msg("documento a cargar")
	}

	inserted, err := docstore.Import(ctx, store, cfg.Store.Collection, docs)
	log.Info().
		Str("collection", cfg.Store.Collection).
		Int("total", len(docs)).
		Int("inserted", inserted).
		Msg("carga finalizada")
	if err != nil {
		log.Error().Err(err).Msg("carga incompleta")
		closeStore()
		os.Exit(1)
	}
}

// readDocuments decodifica el array de documentos del archivo.
func readDocuments(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeDocuments(raw)
}

func decodeDocuments(raw []byte) ([]map[string]any, error) {
	var r io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	var docs []map[string]any
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decodificar JSON: %w", err)
	}
	for i, d := range docs {
		if d == nil {
			return nil, fmt.Errorf("documento %d vacío", i)
		}
	}
	return docs, nil
}

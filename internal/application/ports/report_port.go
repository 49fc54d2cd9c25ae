package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// ReportMeta datos de encabezado del reporte.
type ReportMeta struct {
	Title       string
	SortedBy    string
	Order       string
	GeneratedAt time.Time
}

// ReportGenerator puerto de salida para exportar el listado de colaboradores.
// La aplicación solo conoce este contrato; el adaptador concreto (Maroto, mock) vive en infraestructura.
type ReportGenerator interface {
	// GenerateCollaboratorReport recibe los registros ya ordenados y devuelve el documento.
	GenerateCollaboratorReport(ctx context.Context, meta ReportMeta, records []entity.Collaborator) ([]byte, error)
}

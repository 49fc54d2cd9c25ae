// Package pdf implementa la exportación del listado de colaboradores a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + orden aplicado  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total / Ativos / Inativos                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nome | Email | Departamento | Status                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Totales por departamento                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Colaboradores-api/internal/application/ports"
	"github.com/jhoicas/Colaboradores-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorActive   = &props.Color{Red: 27, Green: 128, Blue: 62}
	colorInactive = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateCollaboratorReport genera el PDF y devuelve sus bytes. Respeta el orden de records.
func (g *MarotoReportGenerator) GenerateCollaboratorReport(
	ctx context.Context,
	meta ports.ReportMeta,
	records []entity.Collaborator,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(meta.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(records))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(records)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(departmentRows(records)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + orden (izq) y fecha de generación (der).
func headerRow(meta ports.ReportMeta) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(meta.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Ordenado por %s (%s)", meta.SortedBy, meta.Order), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(meta.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: total, ativos e inativos.
func summaryRow(records []entity.Collaborator) core.Row {
	active := 0
	for _, r := range records {
		if r.IsActive() {
			active++
		}
	}
	cell := func(label string, n int, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	return row.New(13).Add(
		cell("Total", len(records), colorPrimary),
		cell("Ativos", active, colorActive),
		cell("Inativos", len(records)-active, colorInactive),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		}))
	}
	return row.New(8).Add(
		h("Nome", 4),
		h("Email", 4),
		h("Departamento", 2),
		h("Status", 2),
	)
}

// tableRows: una fila por colaborador.
func tableRows(records []entity.Collaborator) []core.Row {
	out := make([]core.Row, 0, len(records))
	for _, r := range records {
		statusColor := colorInactive
		if r.IsActive() {
			statusColor = colorActive
		}
		out = append(out, row.New(7).Add(
			col.New(4).Add(text.New(nonEmpty(r.Name, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(nonEmpty(r.Email, "—"), props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(nonEmpty(r.Department, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Status, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Color: statusColor})),
		))
	}
	return out
}

// departmentRows: conteo por departamento, alfabético.
func departmentRows(records []entity.Collaborator) []core.Row {
	counts := make(map[string]int)
	for _, r := range records {
		counts[nonEmpty(r.Department, "Sem departamento")]++
	}
	deps := make([]string, 0, len(counts))
	for d := range counts {
		deps = append(deps, d)
	}
	sort.Strings(deps)

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("POR DEPARTAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, d := range deps {
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(d, props.Text{Size: 8, Left: 2})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", counts[d]), props.Text{Size: 8, Align: align.Right})),
			col.New(7),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

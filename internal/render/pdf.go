package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// RenderPDF paginates the document and emits it as PDF bytes. Pages are
// materialized explicitly from the layout pass so the page count and the
// per-page footer numbering come from Paginate, not from the PDF engine's
// own overflow handling.
func RenderPDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(10).
		WithTopMargin(12).
		WithRightMargin(10).
		WithBottomMargin(10).
		Build()

	m := maroto.New(cfg)

	pages := Paginate(doc)
	for i, p := range pages {
		pg := page.New()
		for _, r := range p.Rows {
			pg.Add(buildPDFRow(r))
		}
		pg.Add(footerRow(doc, i+1, len(pages)))
		m.AddPages(pg)
	}

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating pdf: %w", err)
	}
	return rendered.GetBytes(), nil
}

func buildPDFRow(r Row) core.Row {
	cols := make([]core.Col, 0, len(r.Cells))
	for _, cell := range r.Cells {
		cols = append(cols, buildPDFCol(cell))
	}

	mr := row.New(r.Height).Add(cols...)
	if r.Fill != nil {
		mr.WithStyle(&props.Cell{BackgroundColor: pdfColor(r.Fill)})
	}
	return mr
}

func buildPDFCol(cell Cell) core.Col {
	if cell.Image != nil {
		return col.New(cell.Span).Add(
			image.NewFromBytes(cell.Image, extension.Png, props.Rect{
				Center:  false,
				Percent: 90,
			}),
		)
	}

	textProps := props.Text{
		Size:  cell.Size,
		Align: pdfAlign(cell.Align),
		Top:   1,
	}
	if cell.Bold {
		textProps.Style = fontstyle.Bold
	}
	if cell.Color != nil {
		textProps.Color = pdfColor(cell.Color)
	}
	return col.New(cell.Span).Add(text.New(cell.Text, textProps))
}

func footerRow(doc Document, pageNum, pageCount int) core.Row {
	return row.New(8).Add(
		text.NewCol(6, doc.SiteName, props.Text{Size: 7, Align: align.Left, Top: 3}),
		text.NewCol(6, fmt.Sprintf("Page %d of %d", pageNum, pageCount), props.Text{Size: 7, Align: align.Right, Top: 3}),
	)
}

func pdfAlign(a Align) align.Type {
	switch a {
	case AlignCenter:
		return align.Center
	case AlignRight:
		return align.Right
	default:
		return align.Left
	}
}

func pdfColor(c *RGB) *props.Color {
	return &props.Color{Red: c.R, Green: c.G, Blue: c.B}
}

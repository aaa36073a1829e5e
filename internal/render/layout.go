// Package render lays out report aggregates into fixed-schema tabular
// documents and emits them as PDF or spreadsheet bytes.
//
// Rendering is split into two stages: a pure layout pass over fully
// materialized inputs (logo bytes and data rows are resolved before this
// package is entered), then a backend walk that translates the laid-out
// pages into the target format. No I/O happens here.
package render

import "time"

// Grid width shared by both backends: cell spans are twelfths of the page,
// the layout never does per-cell x arithmetic.
const gridWidth = 12

// Page geometry for the paginated (PDF) target, in millimetres of usable
// vertical space after margins and the footer band.
const usablePageHeight = 250.0

// Align is the horizontal alignment of a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// RGB is a 24-bit color used for fills and text.
type RGB struct {
	R, G, B int
}

var (
	fillAltRow    = RGB{R: 240, G: 240, B: 240}
	fillHighlight = RGB{R: 255, G: 242, B: 204}
	fillHeader    = RGB{R: 217, G: 226, B: 243}
	colorCredit   = RGB{R: 0, G: 128, B: 0}
	colorDebit    = RGB{R: 192, G: 0, B: 0}
)

// RowKind classifies rows for pagination and the trailing-blank-page check.
type RowKind int

const (
	// KindBand is a header/summary/title row.
	KindBand RowKind = iota
	// KindTableHeader is a table's column header row.
	KindTableHeader
	// KindTableRow is a data row inside a table.
	KindTableRow
	// KindSpacer is vertical whitespace.
	KindSpacer
	// KindContinuation is the cheap header redrawn after a page break.
	KindContinuation
)

// Cell is one cell of a laid-out row. Span is in grid twelfths; spans of a
// row sum to the grid width.
type Cell struct {
	Text  string
	Span  int
	Align Align
	Bold  bool
	Size  float64
	Color *RGB
	Image []byte
}

// Row is one laid-out row. Data rows inside a table carry the table's
// header so a page break can redraw it before continuing.
type Row struct {
	Height float64
	Kind   RowKind
	Fill   *RGB
	Cells  []Cell

	tableHeader *Row
}

// Document is the format-independent logical report structure both backends
// express.
type Document struct {
	Title         string
	SiteName      string
	Currency      string
	CustomerLabel string
	Logo          []byte
	GeneratedAt   time.Time
	Rows          []Row
}

// Page is one physical page of the paginated target.
type Page struct {
	Rows []Row
}

// RenderCursor tracks the drawing position during pagination: the vertical
// offset consumed on the current page and the page index. It is threaded
// explicitly through the layout pass; the renderer holds no package-level
// position state.
type RenderCursor struct {
	Y    float64
	Page int
}

// Column describes one table column: title, grid span and alignment. The
// layout helper computes cell positions from these; callers never repeat
// offset arithmetic per cell.
type Column struct {
	Title string
	Span  int
	Align Align
}

// headerRow builds a table's column header row from its column spec.
func headerRow(cols []Column) Row {
	cells := make([]Cell, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, Cell{Text: c.Title, Span: c.Span, Align: c.Align, Bold: true, Size: 9})
	}
	fill := fillHeader
	return Row{Height: 7, Kind: KindTableHeader, Fill: &fill, Cells: cells}
}

// dataRow builds one table data row. values and colors are positional per
// column; alt toggles the alternating background.
func dataRow(cols []Column, values []string, colors []*RGB, alt bool, highlight bool) Row {
	cells := make([]Cell, 0, len(cols))
	for i, c := range cols {
		cell := Cell{Text: values[i], Span: c.Span, Align: c.Align, Size: 8}
		if colors != nil && colors[i] != nil {
			cell.Color = colors[i]
		}
		cells = append(cells, cell)
	}
	row := Row{Height: 6, Kind: KindTableRow, Cells: cells}
	if highlight {
		fill := fillHighlight
		row.Fill = &fill
	} else if alt {
		fill := fillAltRow
		row.Fill = &fill
	}
	return row
}

// table appends a header row plus data rows, linking each data row back to
// the header for page-break redraws.
func table(rows []Row, cols []Column, build func(emit func(values []string, colors []*RGB, highlight bool))) []Row {
	hdr := headerRow(cols)
	rows = append(rows, hdr)

	alt := false
	emit := func(values []string, colors []*RGB, highlight bool) {
		r := dataRow(cols, values, colors, alt, highlight)
		r.tableHeader = &hdr
		rows = append(rows, r)
		alt = !alt
	}
	build(emit)
	return rows
}

// continuationHeader is the cheap band redrawn at the top of every page
// after the first: site name and report title only, not the full company
// header.
func continuationHeader(doc Document) Row {
	return Row{
		Height: 10,
		Kind:   KindContinuation,
		Cells: []Cell{
			{Text: doc.SiteName, Span: 6, Align: AlignLeft, Bold: true, Size: 10},
			{Text: doc.Title + " (continued)", Span: 6, Align: AlignRight, Size: 9},
		},
	}
}

// Paginate splits a document's rows over physical pages, tracking the
// drawing position with an explicit cursor. Before any row, if the
// remaining vertical space is insufficient, a page break is emitted and the
// continuation header plus the in-progress table's column header row are
// redrawn. A trailing page holding nothing beyond carried-over headers is
// dropped after the pass.
func Paginate(doc Document) []Page {
	var cursor RenderCursor
	pages := []Page{{}}

	push := func(r Row) {
		pages[cursor.Page].Rows = append(pages[cursor.Page].Rows, r)
		cursor.Y += r.Height
	}

	for _, r := range doc.Rows {
		if cursor.Y+r.Height > usablePageHeight {
			cursor.Page++
			cursor.Y = 0
			pages = append(pages, Page{})

			push(continuationHeader(doc))
			if r.Kind == KindTableRow && r.tableHeader != nil {
				push(*r.tableHeader)
			}
		}
		push(r)
	}

	// An overflow caused purely by trailing spacers can leave a final page
	// with no content beyond the carried-over header; verify and trim it.
	if last := len(pages) - 1; last > 0 && pageIsBlank(pages[last]) {
		pages = pages[:last]
	}
	return pages
}

func pageIsBlank(p Page) bool {
	for _, r := range p.Rows {
		switch r.Kind {
		case KindContinuation, KindTableHeader, KindSpacer:
			continue
		default:
			return false
		}
	}
	return true
}

package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// RenderExcel emits the document as a single-sheet workbook. Spreadsheets
// have no physical pages, so the logical rows are written in order without
// the pagination pass; band cells spanning the full grid are merged across
// the table columns.
func RenderExcel(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	width := maxCellCount(doc)
	for c := 1; c <= width; c++ {
		name, _ := excelize.ColumnNumberToName(c)
		if err := f.SetColWidth(sheetName, name, name, 18); err != nil {
			return nil, fmt.Errorf("setting column width: %w", err)
		}
	}

	styles := newStyleCache(f)
	rowNo := 1
	for _, r := range doc.Rows {
		if r.Kind == KindSpacer {
			rowNo++
			continue
		}
		if err := writeExcelRow(f, styles, r, rowNo, width); err != nil {
			return nil, err
		}
		rowNo++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeExcelRow(f *excelize.File, styles *styleCache, r Row, rowNo, width int) error {
	// A lone full-width band cell merges across the table columns so titles
	// sit over the whole sheet.
	if len(r.Cells) == 1 && r.Cells[0].Span == gridWidth && width > 1 {
		start, _ := excelize.CoordinatesToCellName(1, rowNo)
		end, _ := excelize.CoordinatesToCellName(width, rowNo)
		if err := f.MergeCell(sheetName, start, end); err != nil {
			return fmt.Errorf("merging cells: %w", err)
		}
	}

	for i, cell := range r.Cells {
		if cell.Image != nil {
			continue
		}
		ref, err := excelize.CoordinatesToCellName(i+1, rowNo)
		if err != nil {
			return fmt.Errorf("resolving cell %d,%d: %w", i+1, rowNo, err)
		}
		if err := f.SetCellValue(sheetName, ref, cell.Text); err != nil {
			return fmt.Errorf("writing cell %s: %w", ref, err)
		}
		styleID, err := styles.get(cell, r.Fill)
		if err != nil {
			return err
		}
		if styleID != 0 {
			if err := f.SetCellStyle(sheetName, ref, ref, styleID); err != nil {
				return fmt.Errorf("styling cell %s: %w", ref, err)
			}
		}
	}
	return nil
}

// styleCache deduplicates excelize styles: workbooks cap the style table,
// and every data row would otherwise mint identical entries.
type styleCache struct {
	f     *excelize.File
	cache map[string]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, cache: make(map[string]int)}
}

func (s *styleCache) get(cell Cell, fill *RGB) (int, error) {
	if !cell.Bold && cell.Color == nil && fill == nil && cell.Align == AlignLeft {
		return 0, nil
	}

	key := fmt.Sprintf("%t|%v|%v|%d", cell.Bold, cell.Color, fill, cell.Align)
	if id, ok := s.cache[key]; ok {
		return id, nil
	}

	style := &excelize.Style{
		Font:      &excelize.Font{Bold: cell.Bold},
		Alignment: &excelize.Alignment{Horizontal: excelAlign(cell.Align), Vertical: "center"},
	}
	if cell.Color != nil {
		style.Font.Color = hexColor(cell.Color)
	}
	if fill != nil {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexColor(fill)}}
	}

	id, err := s.f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("creating style: %w", err)
	}
	s.cache[key] = id
	return id, nil
}

func maxCellCount(doc Document) int {
	n := 1
	for _, r := range doc.Rows {
		if len(r.Cells) > n {
			n = len(r.Cells)
		}
	}
	return n
}

func excelAlign(a Align) string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

func hexColor(c *RGB) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

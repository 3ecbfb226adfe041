package tui

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/dustin/go-humanize"
)

const maxColWidth = 24

// refreshAttrsFromCurrent rebuilds the table columns and rows from the loaded dataset.
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	// If there are no columns or rows, disable attributes view to avoid rendering panics
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, maxColWidth)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make(table.Row, len(tcols))
		row[0] = strconv.Itoa(i + 1)
		copy(row[1:], r)
		trows = append(trows, row)
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns the dataset's feature properties as (columns, rows).
// Files without attributes get a one-row summary instead.
func (m *Model) buildAttributes() ([]string, [][]string) {
	if len(m.data.Columns) > 0 {
		rows := make([][]string, 0, len(m.data.Properties))
		for _, props := range m.data.Properties {
			vals := make([]string, len(m.data.Columns))
			for i, k := range m.data.Columns {
				vals[i] = formatValue(props[k])
			}
			rows = append(rows, vals)
		}
		return m.data.Columns, rows
	}
	if m.selPath == "" || m.data.Empty() {
		// pasted WKT: no attributes available
		return nil, nil
	}
	s := m.data.Stats()
	cols := []string{"name", "path", "bbox", "points", "lines", "polygons", "vertices", "memory"}
	vals := []string{
		filepath.Base(m.selPath),
		m.selPath,
		fmt.Sprintf("[%.5f,%.5f,%.5f,%.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
		humanize.Comma(int64(s.Points)),
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Polygons)),
		humanize.Comma(int64(s.Vertices)),
		humanize.IBytes(uint64(s.Bytes)),
	}
	return cols, [][]string{vals}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}

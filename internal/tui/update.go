package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"goemap/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			_, _, _, h := m.layout()
			m.l.SetSize(sidebarWidth-2, h-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				m.renderPasted()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "d":
			m.opts.Decimate = !m.opts.Decimate
			m.status = fmt.Sprintf("decimate: %v", m.opts.Decimate)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				_, _, _, h := m.layout()
				m.l.SetSize(sidebarWidth-2, h-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			lon, lat, ok := m.inspectNearest()
			if ok {
				name := filepath.Base(m.selPath)
				if m.selPath == "" {
					name = "<unsaved>"
				}
				meta := []string{
					fmt.Sprintf("name: %s", name),
					fmt.Sprintf("path: %s", m.selPath),
					fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
					"counts: " + m.data.Stats().String(),
					fmt.Sprintf("nearest: lon=%.6f lat=%.6f", lon, lat),
					"crs: unknown", "datum: unknown",
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no feature nearby"
				m.status = m.inspectPopup
			}
		case "l":
			// toggle all layers
			all := m.showPoints && m.showLines && m.showPolys
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		x0, y0, w, h := m.layout()
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, h-2)
		}
		cx, cy := msg.X, msg.Y
		if cx >= x0 && cx < x0+w && cy >= y0 && cy < y0+h {
			m.hovering = true
			m.hoverCellX = cx - x0
			m.hoverCellY = cy - y0
			if lon, lat, ok := m.cellToLonLat(m.hoverCellX, m.hoverCellY, w, h); ok {
				m.hoverHasGeo = true
				m.hoverLon = lon
				m.hoverLat = lat
			} else {
				m.hoverHasGeo = false
			}
			m.hoverMicX, m.hoverMicY = m.nearestMicro(m.hoverCellX*2, m.hoverCellY*4, w, h)
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// renderPasted parses the textarea as WKT and shows it.
func (m *Model) renderPasted() {
	w := strings.TrimSpace(m.ta.Value())
	if w == "" {
		m.status = "paste: empty"
		return
	}
	d, err := geom.ParseWKTData(w, m.opts.Compression)
	if err != nil {
		m.log.Warn("pasted wkt rejected", zap.Error(err))
		m.status = "wkt error: " + err.Error()
		return
	}
	m.selPath = ""
	m.setData(d)
	m.status = "rendered WKT  " + d.Stats().String()
	m.pasteMode = false
	m.ta.Blur()
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

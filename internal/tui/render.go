package tui

import (
	"strings"

	"goemap/internal/pointarray"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

// resolution2 is the squared size of one braille dot in data units:
// consecutive vertices closer than that land on the same dot. It is zero
// when decimation is off.
func (m Model) resolution2(w, h int) float32 {
	if !m.opts.Decimate || !m.bbox.Valid() || w <= 1 || h <= 1 {
		return 0
	}
	dx := (m.bbox.MaxX - m.bbox.MinX) / (m.zoom * float64(2*w-1))
	dy := (m.bbox.MaxY - m.bbox.MinY) / (m.zoom * float64(4*h-1))
	r := min(dx, dy)
	return float32(r * r)
}

// project flattens pa into the staging buffer and maps what survives onto
// the micro grid.
func (m Model) project(pa pointarray.PointArray, w, h int, res2 float32) [][2]int {
	pa.ToArray(m.buf, res2)
	coords := m.buf.Coords()
	out := make([][2]int, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		mx, my, ok := m.screenXYMicro(float64(coords[i]), float64(coords[i+1]), w, h)
		if ok {
			out = append(out, [2]int{mx, my})
		}
	}
	return out
}

func (m Model) renderAsciiMap(w, h int) string {
	br := newBrailleBuf(w, h)
	res2 := m.resolution2(w, h)

	// Polygons: fill the outer ring, then draw every ring's edges.
	if m.showPolys {
		for _, poly := range m.polygons {
			for i, ring := range poly {
				mic := m.project(ring, w, h, res2)
				if len(mic) < 3 {
					if i == 0 {
						break
					}
					continue
				}
				if i == 0 {
					// holes are not cut out of the fill
					br.fillPolygon(mic)
				}
				br.drawRing(mic)
			}
		}
	}

	// Draw points only when dataset has no lines or polygons
	if m.showPoints && m.points != nil && len(m.lines) == 0 && len(m.polygons) == 0 && m.bbox.Valid() {
		for _, p := range m.project(m.points, w, h, res2) {
			br.setPixel(p[0], p[1])
		}
	}

	if m.showLines {
		for _, ls := range m.lines {
			br.drawPolyline(m.project(ls, w, h, res2))
		}
	}
	lines := br.toLines()

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps lon/lat to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(lon, lat float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// eachVertex walks every vertex of every layer with the iterator protocol.
func (m Model) eachVertex(fn func(p pointarray.Point)) {
	walk := func(pa pointarray.PointArray) {
		for it := pa.Iterator(0); it.HasNext(); {
			fn(pointarray.Next(it))
		}
	}
	if m.points != nil {
		walk(m.points)
	}
	for _, ls := range m.lines {
		walk(ls)
	}
	for _, poly := range m.polygons {
		for _, ring := range poly {
			walk(ring)
		}
	}
}

// nearestMicro returns the micro-grid position of the vertex closest to
// (hx, hy), or (hx, hy) itself when nothing projects.
func (m Model) nearestMicro(hx, hy, w, h int) (int, int) {
	best := 1<<31 - 1
	bx, by := hx, hy
	m.eachVertex(func(p pointarray.Point) {
		mx, my, ok := m.screenXYMicro(float64(p.X), float64(p.Y), w, h)
		if !ok {
			return
		}
		dx, dy := mx-hx, my-hy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
		}
	})
	return bx, by
}

// inspectNearest finds the vertex closest to the viewport center and returns lon/lat.
func (m Model) inspectNearest() (lon, lat float64, ok bool) {
	_, _, w, h := m.layout()
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	m.eachVertex(func(p pointarray.Point) {
		sx, sy, ok := m.screenXY(float64(p.X), float64(p.Y), w, h)
		if !ok {
			return
		}
		dx, dy := sx-cx, sy-cy
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			lon, lat = float64(p.X), float64(p.Y)
		}
	})
	if bestD == 1<<31-1 {
		return 0, 0, false
	}
	return lon, lat, true
}

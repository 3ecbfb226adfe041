package geom

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"goemap/internal/pointarray"
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether b has a positive extent on both axes, the only
// case the viewer can project.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Data is a loaded dataset ready for rendering. Every sequence is final:
// shared read-only and, when compression was requested, delta encoded.
type Data struct {
	// Points holds all standalone points as one sequence; nil if none.
	Points pointarray.PointArray
	Lines  []pointarray.PointArray
	// Polygons holds rings, first outer, following holes.
	Polygons [][]pointarray.PointArray
	BBox     BBox

	// Columns orders the keys of Properties for display.
	Columns    []string
	Properties []map[string]any
}

// Empty reports whether d holds no geometry.
func (d Data) Empty() bool {
	return d.Points == nil && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// NumPoints is the number of standalone points.
func (d Data) NumPoints() int {
	if d.Points == nil {
		return 0
	}
	return d.Points.Count()
}

// Stats summarizes a dataset.
type Stats struct {
	Points     int
	Lines      int
	Polygons   int
	Rings      int
	Vertices   int
	Compressed int // sequences held delta encoded
	Bytes      int // coordinate storage, borrowed buffers excluded
}

func (d Data) Stats() Stats {
	var s Stats
	add := func(pa pointarray.PointArray) {
		s.Vertices += pa.Count()
		s.Bytes += pointarray.Footprint(pa)
		if _, ok := pa.(*pointarray.Compressed); ok {
			s.Compressed++
		}
	}
	if d.Points != nil {
		s.Points = d.Points.Count()
		add(d.Points)
	}
	s.Lines = len(d.Lines)
	for _, ls := range d.Lines {
		add(ls)
	}
	s.Polygons = len(d.Polygons)
	for _, poly := range d.Polygons {
		s.Rings += len(poly)
		for _, ring := range poly {
			add(ring)
		}
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("pts=%s ls=%s poly=%s vertices=%s mem=%s",
		humanize.Comma(int64(s.Points)),
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Polygons)),
		humanize.Comma(int64(s.Vertices)),
		humanize.IBytes(uint64(s.Bytes)))
}

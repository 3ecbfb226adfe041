package geom

import (
	"sort"

	"github.com/pkg/errors"
	gogeom "github.com/twpayne/go-geom"

	"goemap/internal/pointarray"
)

// builder accumulates geometries into a Data. Standalone points are
// collected in one Growable; every line and ring is wrapped in place and
// finalized at the requested level.
type builder struct {
	level  pointarray.Compression
	points *pointarray.Growable
	bounds *gogeom.Bounds
	data   Data

	// pt aliases xy so raw coordinates extend bounds without allocating.
	xy [2]float64
	pt *gogeom.Point

	columns map[string]bool
}

func newBuilder(level pointarray.Compression) *builder {
	b := &builder{
		level:   level,
		points:  pointarray.NewGrowable(0),
		bounds:  gogeom.NewBounds(gogeom.XY),
		columns: map[string]bool{},
	}
	b.pt = gogeom.NewPointFlat(gogeom.XY, b.xy[:])
	return b
}

// addXY adds one standalone point.
func (b *builder) addXY(x, y float64) {
	b.points.Add(float32(x), float32(y))
	b.xy[0], b.xy[1] = x, y
	b.bounds.Extend(b.pt)
}

// addLine adds an open polyline given as interleaved x,y pairs.
func (b *builder) addLine(coords []float64) {
	b.addLineString(gogeom.NewLineStringFlat(gogeom.XY, coords))
}

func (b *builder) addLineString(ls *gogeom.LineString) {
	if ls.NumCoords() == 0 {
		return
	}
	b.data.Lines = append(b.data.Lines, pointarray.Adapt(ls).Final(b.level))
	b.bounds.Extend(ls)
}

func (b *builder) add(g gogeom.T) error {
	if g == nil {
		return nil
	}
	switch g := g.(type) {
	case *gogeom.Point:
		if !g.Empty() {
			b.addXY(g.X(), g.Y())
		}
		return nil
	case *gogeom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			if p := g.Point(i); !p.Empty() {
				b.addXY(p.X(), p.Y())
			}
		}
		return nil
	case *gogeom.LineString:
		b.addLineString(g)
		return nil
	case *gogeom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			b.addLineString(g.LineString(i))
		}
		return nil
	case *gogeom.Polygon:
		b.addPolygon(g)
		return nil
	case *gogeom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			b.addPolygon(g.Polygon(i))
		}
		return nil
	case *gogeom.GeometryCollection:
		for _, child := range g.Geoms() {
			if err := b.add(child); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Errorf("unsupported geometry %T", g)
}

func (b *builder) addPolygon(p *gogeom.Polygon) {
	var rings []pointarray.PointArray
	for i := 0; i < p.NumLinearRings(); i++ {
		ring := p.LinearRing(i)
		if ring.NumCoords() == 0 {
			continue
		}
		rings = append(rings, pointarray.Adapt(ring).Final(b.level))
	}
	if len(rings) > 0 {
		b.data.Polygons = append(b.data.Polygons, rings)
		b.bounds.Extend(p)
	}
}

// addProperties records one feature's attributes.
func (b *builder) addProperties(props map[string]any) {
	if props == nil {
		props = map[string]any{}
	}
	if b.columns != nil {
		for k := range props {
			if !b.columns[k] {
				b.columns[k] = true
				b.data.Columns = append(b.data.Columns, k)
			}
		}
	}
	b.data.Properties = append(b.data.Properties, props)
}

// finish finalizes the points and bounds. Columns are sorted unless the
// caller fixed their order with setColumns.
func (b *builder) finish() (Data, error) {
	if b.points.Count() > 0 {
		b.data.Points = b.points.Final(b.level)
	}
	if b.data.Empty() || b.bounds.IsEmpty() {
		return Data{}, errors.WithStack(ErrNoGeometry)
	}
	b.data.BBox = BBox{
		MinX: b.bounds.Min(0),
		MinY: b.bounds.Min(1),
		MaxX: b.bounds.Max(0),
		MaxY: b.bounds.Max(1),
	}
	if b.columns != nil {
		sort.Strings(b.data.Columns)
	}
	return b.data, nil
}

// setColumns fixes the display order of the attribute columns.
func (b *builder) setColumns(cols []string) {
	b.data.Columns = cols
	b.columns = nil
}

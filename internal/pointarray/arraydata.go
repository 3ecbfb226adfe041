package pointarray

import "github.com/pkg/errors"

// Curve marks the coordinate index where a non-line segment starts. For a
// QuadTo or CubicTo the index is that of its first control point.
type Curve struct {
	Index int
	Kind  PathElementKind
}

// ArrayData is a reusable staging buffer that containers flatten into.
// Only the first Len values of Array are meaningful.
type ArrayData struct {
	data   []float32
	length int
	curves []Curve

	// sequential CurveType lookup state
	cursor    int
	lastQuery int
}

// SetData replaces the contents. length must be even and fit in data.
func (a *ArrayData) SetData(data []float32, length int, curves []Curve) error {
	if length%2 != 0 || length < 0 || length > len(data) {
		return errors.Wrapf(ErrBadRange, "length %d of buffer %d", length, len(data))
	}
	a.data = data
	a.length = length
	a.curves = curves
	a.resetCursor()
	return nil
}

func (a *ArrayData) setFlat(data []float32, length int) {
	a.data = data
	a.length = length
	a.curves = a.curves[:0]
	a.resetCursor()
}

func (a *ArrayData) resetCursor() {
	a.cursor = 0
	a.lastQuery = 0
}

// Array returns the backing buffer, which may be longer than Len.
func (a *ArrayData) Array() []float32 { return a.data }

// Len returns the number of valid coordinates.
func (a *ArrayData) Len() int { return a.length }

// Coords returns the valid coordinates.
func (a *ArrayData) Coords() []float32 { return a.data[:a.length] }

// Curves returns the curve table.
func (a *ArrayData) Curves() []Curve {
	return a.curves[:len(a.curves):len(a.curves)]
}

// ensure grows the buffer to hold needed values, with 256 values of slack.
func (a *ArrayData) ensure(needed int) {
	if needed <= len(a.data) {
		return
	}
	nb := make([]float32, needed+256)
	copy(nb, a.data[:a.length])
	a.data = nb
}

func (a *ArrayData) put(p Point) {
	a.ensure(a.length + 2)
	a.data[a.length] = p.X
	a.data[a.length+1] = p.Y
	a.length += 2
}

// CurveType returns the segment kind that starts at coordinate index. It
// is MoveToKind at index 0 and LineToKind wherever the curve table has no
// entry. Indices must be queried in non-decreasing order between fills.
func (a *ArrayData) CurveType(index int) PathElementKind {
	if index < a.lastQuery {
		if debugChecks {
			panic("pointarray: CurveType queried out of order")
		}
		a.cursor = 0
	}
	a.lastQuery = index
	for a.cursor < len(a.curves) && a.curves[a.cursor].Index < index {
		a.cursor++
	}
	if a.cursor < len(a.curves) && a.curves[a.cursor].Index == index {
		return a.curves[a.cursor].Kind
	}
	if index == 0 {
		return MoveToKind
	}
	return LineToKind
}

// Extract drains the points from coordinate offset onwards into sink, the
// first as a move and the rest as lines, then truncates the buffer to
// offset.
func (a *ArrayData) Extract(offset int, sink PathSink) error {
	if offset%2 != 0 || offset < 0 || offset > a.length {
		return errors.Wrapf(ErrBadRange, "extract from %d of %d", offset, a.length)
	}
	for i := offset; i < a.length; i += 2 {
		p := Point{X: a.data[i], Y: a.data[i+1]}
		if i == offset {
			sink.MoveTo(p)
		} else {
			sink.LineTo(p)
		}
	}
	a.length = offset
	keep := 0
	for keep < len(a.curves) && a.curves[keep].Index < offset {
		keep++
	}
	a.curves = a.curves[:keep]
	a.resetCursor()
	return nil
}

// Append adds the points of an open outline. The outline must start with a
// single run of moves and must not close; leading moves collapse into one
// point. Non-line segments, and a move that does not land on index 0, are
// recorded in the curve table. On error the buffer is left unchanged.
func (a *ArrayData) Append(s Shape) error {
	length, ncurves := a.length, len(a.curves)
	fail := func(msg string) error {
		a.length = length
		a.curves = a.curves[:ncurves]
		return errors.Wrap(ErrIllegalPathState, msg)
	}
	moveAt := -1
	drawing := false
	for el := range s.PathElements() {
		switch el.Kind {
		case MoveToKind:
			if drawing {
				return fail("second move in outline")
			}
			if moveAt < 0 {
				moveAt = a.length
				if moveAt > 0 {
					a.curves = append(a.curves, Curve{Index: moveAt, Kind: MoveToKind})
				}
				a.put(el.P0)
			} else {
				a.data[moveAt] = el.P0.X
				a.data[moveAt+1] = el.P0.Y
			}
		case LineToKind, QuadToKind, CubicToKind:
			if moveAt < 0 {
				return fail("outline does not start with a move")
			}
			drawing = true
			if el.Kind != LineToKind {
				a.curves = append(a.curves, Curve{Index: a.length, Kind: el.Kind})
			}
			for _, p := range el.points() {
				a.put(p)
			}
		case ClosePathKind:
			return fail("outline closes")
		default:
			return fail("unknown path element " + el.Kind.String())
		}
	}
	a.resetCursor()
	return nil
}

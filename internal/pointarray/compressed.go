package pointarray

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// maxQuantiseAttempts bounds the scale search in encode.
	maxQuantiseAttempts = 16
	// compressedHeader approximates the fixed fields of a Compressed.
	compressedHeader = 56
)

// Compressed is an immutable, delta-encoded point sequence. Each point is
// stored as the signed byte difference between its quantised position and
// that of its predecessor:
//
//	x[i] = x0 + scaleX * (baseX + deltas[lower] + ... + deltas[lower+2i])
//
// and likewise for y. The whole-array reference point (x0, y0) is the
// first original point, so the first stored delta is always (0, 0).
// Windows share deltas and carry the quantised position reached just
// before their first point in baseX, baseY.
type Compressed struct {
	deltas []int8
	lower  int
	upper  int

	x0, y0         float32
	baseX, baseY   int
	scaleX, scaleY float64
}

// Compress encodes pa regardless of its size. Unlike Final it reports
// quantisation failure instead of falling back.
func Compress(pa PointArray) (*Compressed, error) {
	if pa == nil || pa.Count() == 0 {
		return nil, errors.Wrap(ErrBadRange, "nothing to compress")
	}
	switch a := pa.(type) {
	case *Compressed:
		return a, nil
	case *Flat:
		return encode(a.data, a.lower, a.upper)
	case *Growable:
		return encode(a.data, a.lower, a.upper)
	}
	data := Floats(pa)
	return encode(data, 0, len(data))
}

// compressOrKeep encodes [lower, upper) of data, falling back to keep() when
// quantisation fails so a bad vertex degrades instead of breaking a render.
func compressOrKeep(keep func() PointArray, data []float32, lower, upper int) PointArray {
	c, err := encode(data, lower, upper)
	if err != nil {
		Logger().Warn("keeping points uncompressed",
			zap.Int("points", (upper-lower)/2), zap.Error(err))
		return keep()
	}
	return c
}

type overflow int

const (
	fitted overflow = iota
	overMaxX
	underMinX
	overMaxY
	underMinY
)

func encode(data []float32, lower, upper int) (*Compressed, error) {
	if err := checkRange(len(data), lower, upper); err != nil {
		return nil, err
	}
	if upper == lower {
		return nil, errors.Wrap(ErrBadRange, "nothing to compress")
	}
	for i := lower; i < upper; i++ {
		if math32.IsNaN(data[i]) || math32.IsInf(data[i], 0) {
			return nil, errors.Wrapf(ErrArithmetic, "coordinate %d is %v", i-lower, data[i])
		}
	}

	var dxMin, dxMax, dyMin, dyMax float64
	for i := lower + 2; i < upper; i += 2 {
		dx := float64(data[i]) - float64(data[i-2])
		dy := float64(data[i+1]) - float64(data[i-1])
		dxMin, dxMax = min(dxMin, dx), max(dxMax, dx)
		dyMin, dyMax = min(dyMin, dy), max(dyMax, dy)
	}

	x0, y0 := data[lower], data[lower+1]
	out := make([]int8, upper-lower)
	var reduceMinX, reduceMaxX, reduceMinY, reduceMaxY int
	for attempt := 1; attempt <= maxQuantiseAttempts; attempt++ {
		sx := quantScale(dxMin, dxMax, reduceMinX, reduceMaxX)
		sy := quantScale(dyMin, dyMax, reduceMinY, reduceMaxY)
		switch quantise(out, data[lower:upper], x0, y0, sx, sy) {
		case overMaxX:
			reduceMaxX++
		case underMinX:
			reduceMinX++
		case overMaxY:
			reduceMaxY++
		case underMinY:
			reduceMinY++
		default:
			kept := dropRepeats(out)
			Logger().Debug("compressed points",
				zap.Int("points", (upper-lower)/2),
				zap.Int("kept", len(kept)/2),
				zap.Float64("scaleX", sx),
				zap.Float64("scaleY", sy),
				zap.Int("attempts", attempt))
			return &Compressed{
				deltas: kept,
				upper:  len(kept),
				x0:     x0,
				y0:     y0,
				scaleX: sx,
				scaleY: sy,
			}, nil
		}
	}
	return nil, errors.Wrapf(ErrArithmetic, "%d points after %d attempts", (upper-lower)/2, maxQuantiseAttempts)
}

// quantScale picks the step that maps the widest delta of an axis onto the
// signed byte range, shrunk by the number of earlier overflows on each side.
func quantScale(dmin, dmax float64, reduceMin, reduceMax int) float64 {
	s := max(dmax/float64(127-reduceMax), dmin/float64(-128+reduceMin))
	if !(s > 0) || math.IsInf(s, 0) {
		// every delta on this axis is zero
		return 1
	}
	return s
}

// quantise writes the byte deltas of coords into out and reports the first
// overflow it meets, checking x before y and the upper bound first.
func quantise(out []int8, coords []float32, x0, y0 float32, sx, sy float64) overflow {
	ox, oy := float64(x0), float64(y0)
	var px, py int
	for i := 0; i < len(coords); i += 2 {
		qx := int(math.Round((float64(coords[i]) - ox) / sx))
		qy := int(math.Round((float64(coords[i+1]) - oy) / sy))
		dx, dy := qx-px, qy-py
		switch {
		case dx > math.MaxInt8:
			return overMaxX
		case dx < math.MinInt8:
			return underMinX
		case dy > math.MaxInt8:
			return overMaxY
		case dy < math.MinInt8:
			return underMinY
		}
		out[i] = int8(dx)
		out[i+1] = int8(dy)
		px, py = qx, qy
	}
	return fitted
}

// dropRepeats removes (0, 0) deltas after the first pair: repeated vertices
// break consumers that expect consecutive points to differ.
func dropRepeats(deltas []int8) []int8 {
	m := 2
	for i := 2; i < len(deltas); i += 2 {
		if deltas[i] == 0 && deltas[i+1] == 0 {
			continue
		}
		deltas[m] = deltas[i]
		deltas[m+1] = deltas[i+1]
		m += 2
	}
	return deltas[:m:m]
}

func (c *Compressed) isPointArray() {}

// Scale returns the quantisation step of each axis.
func (c *Compressed) Scale() (sx, sy float64) { return c.scaleX, c.scaleY }

func (c *Compressed) at(qx, qy int) Point {
	return Point{
		X: float32(float64(c.x0) + float64(qx)*c.scaleX),
		Y: float32(float64(c.y0) + float64(qy)*c.scaleY),
	}
}

// prefix returns the quantised position reached just before coordinate end.
func (c *Compressed) prefix(end int) (qx, qy int) {
	qx, qy = c.baseX, c.baseY
	for i := c.lower; i < end; i += 2 {
		qx += int(c.deltas[i])
		qy += int(c.deltas[i+1])
	}
	return qx, qy
}

func (c *Compressed) Count() int { return (c.upper - c.lower) / 2 }

func (c *Compressed) FirstPoint() Point {
	return c.at(c.baseX+int(c.deltas[c.lower]), c.baseY+int(c.deltas[c.lower+1]))
}

func (c *Compressed) LastPoint() Point {
	return c.at(c.prefix(c.upper))
}

func (c *Compressed) Iterator(start int) Iterator {
	pos := c.lower + 2*start
	qx, qy := c.prefix(pos)
	return &compressedIterator{c: c, pos: pos, qx: qx, qy: qy}
}

// Subarray shares the delta buffer. Finding the new base position costs a
// pass over the skipped deltas.
func (c *Compressed) Subarray(lower, upper int) (PointArray, error) {
	if err := checkPoints(c.Count(), lower, upper); err != nil {
		return nil, err
	}
	switch {
	case lower == upper:
		return nil, nil
	case lower == 0 && upper == c.Count():
		return c, nil
	}
	w := *c
	w.lower = c.lower + 2*lower
	w.upper = c.lower + 2*upper
	w.baseX, w.baseY = c.prefix(w.lower)
	return &w, nil
}

func (c *Compressed) InsertAt(index int, src PointArray, reverse bool) (PointArray, error) {
	return growableFrom(Floats(c)).InsertAt(index, src, reverse)
}

func (c *Compressed) Reverse() (PointArray, error) {
	return growableFrom(Floats(c)).Reverse()
}

func (c *Compressed) Final(Compression) PointArray { return c }

func (c *Compressed) ToArray(dest *ArrayData, resolution2 float32) {
	d := newDecimator(dest, c.upper-c.lower, resolution2)
	qx, qy := c.baseX, c.baseY
	last := c.upper - 2
	for i := c.lower; i < c.upper; i += 2 {
		qx += int(c.deltas[i])
		qy += int(c.deltas[i+1])
		p := c.at(qx, qy)
		if resolution2 <= 0 || i == c.lower || i == last {
			d.emit(p.X, p.Y, i-c.lower)
		} else {
			d.offer(p.X, p.Y, i-c.lower)
		}
	}
	d.finish(dest)
}

type compressedIterator struct {
	c      *Compressed
	pos    int
	qx, qy int
	p      parity
}

func (it *compressedIterator) HasNext() bool { return it.pos < it.c.upper }

func (it *compressedIterator) NextX() float32 {
	it.p.x()
	it.qx += int(it.c.deltas[it.pos])
	return float32(float64(it.c.x0) + float64(it.qx)*it.c.scaleX)
}

func (it *compressedIterator) NextY() float32 {
	it.p.y()
	it.qy += int(it.c.deltas[it.pos+1])
	it.pos += 2
	return float32(float64(it.c.y0) + float64(it.qy)*it.c.scaleY)
}

func (it *compressedIterator) Clone() Iterator {
	c := *it
	return &c
}

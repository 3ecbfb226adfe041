package pointarray

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// CoordSequence is the least a foreign coordinate holder must offer.
// *geom.LineString and *geom.LinearRing satisfy it.
type CoordSequence interface {
	NumCoords() int
	Coord(i int) geom.Coord
}

// flatCoords is the zero-copy fast path go-geom geometries also provide.
type flatCoords interface {
	FlatCoords() []float64
	Stride() int
}

// Adapter exposes a foreign coordinate buffer as a read-only PointArray.
// Only the first two ordinates of each coordinate are used. The buffer is
// borrowed: it must stay unchanged for as long as the Adapter, or anything
// iterating it, is in use.
type Adapter struct {
	seq    CoordSequence
	flat   []float64
	stride int
	lower  int
	upper  int
}

var _ RandomAccess = (*Adapter)(nil)

// Adapt wraps seq without copying.
func Adapt(seq CoordSequence) *Adapter {
	a := &Adapter{seq: seq, upper: seq.NumCoords()}
	if fc, ok := seq.(flatCoords); ok && fc.Stride() >= 2 {
		a.flat, a.stride = fc.FlatCoords(), fc.Stride()
	}
	return a
}

func (a *Adapter) isPointArray() {}

func (a *Adapter) Count() int { return a.upper - a.lower }

func (a *Adapter) Value(index int) Point {
	i := a.lower + index
	if a.flat != nil {
		return Point{X: float32(a.flat[i*a.stride]), Y: float32(a.flat[i*a.stride+1])}
	}
	c := a.seq.Coord(i)
	return Point{X: float32(c.X()), Y: float32(c.Y())}
}

func (a *Adapter) FirstPoint() Point { return a.Value(0) }

func (a *Adapter) LastPoint() Point { return a.Value(a.Count() - 1) }

func (a *Adapter) Iterator(start int) Iterator {
	return &adapterIterator{a: a, pos: start}
}

func (a *Adapter) Subarray(lower, upper int) (PointArray, error) {
	if err := checkPoints(a.Count(), lower, upper); err != nil {
		return nil, err
	}
	switch {
	case lower == upper:
		return nil, nil
	case lower == 0 && upper == a.Count():
		return a, nil
	}
	w := *a
	w.lower = a.lower + lower
	w.upper = a.lower + upper
	return &w, nil
}

func (a *Adapter) InsertAt(int, PointArray, bool) (PointArray, error) {
	return nil, errors.Wrap(ErrUnsupported, "insert into borrowed coordinates")
}

func (a *Adapter) Reverse() (PointArray, error) {
	return nil, errors.Wrap(ErrUnsupported, "reverse borrowed coordinates")
}

// Final compresses when asked and the sequence is long enough; otherwise
// the Adapter is already immutable and is returned as is.
func (a *Adapter) Final(level Compression) PointArray {
	if level == DeltaByte && a.Count() >= minCompressPoints {
		data := Floats(a)
		return compressOrKeep(func() PointArray { return a }, data, 0, len(data))
	}
	return a
}

// ToArray decimates straight from the borrowed buffer.
func (a *Adapter) ToArray(dest *ArrayData, resolution2 float32) {
	n := a.Count()
	total := 2 * n
	if a.flat == nil {
		d := newDecimator(dest, total, resolution2)
		for i := 0; i < n; i++ {
			p := a.Value(i)
			if resolution2 <= 0 || i == 0 || i == n-1 {
				d.emit(p.X, p.Y, 2*i)
			} else {
				d.offer(p.X, p.Y, 2*i)
			}
		}
		d.finish(dest)
		return
	}
	if resolution2 <= 0 {
		buf := dest.data
		if len(buf) < total {
			buf = make([]float32, total)
		}
		for i, j := a.lower*a.stride, 0; j < total; i, j = i+a.stride, j+2 {
			buf[j] = float32(a.flat[i])
			buf[j+1] = float32(a.flat[i+1])
		}
		dest.setFlat(buf, total)
		return
	}
	d := newDecimator(dest, total, resolution2)
	for k := 0; k < n; k++ {
		i := (a.lower + k) * a.stride
		x, y := float32(a.flat[i]), float32(a.flat[i+1])
		if k == 0 || k == n-1 {
			d.emit(x, y, 2*k)
		} else {
			d.offer(x, y, 2*k)
		}
	}
	d.finish(dest)
}

type adapterIterator struct {
	a   *Adapter
	pos int
	p   parity
}

func (it *adapterIterator) HasNext() bool { return it.pos < it.a.Count() }

func (it *adapterIterator) NextX() float32 {
	it.p.x()
	return it.a.Value(it.pos).X
}

func (it *adapterIterator) NextY() float32 {
	it.p.y()
	y := it.a.Value(it.pos).Y
	it.pos++
	return y
}

func (it *adapterIterator) Clone() Iterator {
	c := *it
	return &c
}

package pointarray

import (
	"encoding/binary"
	"fmt"
	"math"

	farm "github.com/dgryski/go-farm"
)

// Compression selects the representation Final produces.
type Compression int

const (
	// NoCompression keeps float coordinates.
	NoCompression Compression = iota
	// DeltaByte quantises consecutive deltas into signed bytes.
	DeltaByte
)

// minCompressPoints is the smallest count Final will compress.
const minCompressPoints = 8

// PointArray is an ordered, finite sequence of 2D points.
//
// Point indices passed to Iterator, Subarray and InsertAt are relative to
// the array, not to any backing buffer.
type PointArray interface {
	// Count returns the number of points.
	Count() int
	FirstPoint() Point
	LastPoint() Point
	// Iterator returns a cursor positioned at point start.
	Iterator(start int) Iterator
	// Subarray returns points [lower, upper). The result is nil for an
	// empty range and the receiver for the full range; otherwise it shares
	// the receiver's storage.
	Subarray(lower, upper int) (PointArray, error)
	// InsertAt inserts the points of src before point index, in reverse
	// point order when reverse is set. Callers must use the returned array.
	InsertAt(index int, src PointArray, reverse bool) (PointArray, error)
	// Reverse reverses point order. Callers must use the returned array.
	Reverse() (PointArray, error)
	// Final returns an immutable form, compressed when level asks for it
	// and there are enough points.
	Final(level Compression) PointArray
	// ToArray flattens the points into dest. With resolution2 > 0 points
	// closer than sqrt(resolution2) to the last emitted point are dropped;
	// the first and last points are always kept.
	ToArray(dest *ArrayData, resolution2 float32)

	isPointArray()
}

// RandomAccess is implemented by representations with O(1) point lookup.
// Check for it with a type assertion before relying on it.
type RandomAccess interface {
	PointArray
	Value(index int) Point
}

// New wraps coords, interleaved x,y pairs, without copying. The caller must
// not modify coords afterwards.
func New(coords []float32) (*Flat, error) {
	return NewRange(coords, 0, len(coords))
}

// Copy returns a Flat over a private copy of coords.
func Copy(coords []float32) (*Flat, error) {
	if len(coords)%2 != 0 {
		return nil, checkRange(len(coords), 0, len(coords))
	}
	return New(append([]float32(nil), coords...))
}

// NewFinal wraps coords and finalizes them at level.
func NewFinal(coords []float32, level Compression) (PointArray, error) {
	f, err := New(coords)
	if err != nil {
		return nil, err
	}
	return f.Final(level), nil
}

// FromPoints copies pts into a Flat.
func FromPoints(pts ...Point) *Flat {
	data := make([]float32, 0, 2*len(pts))
	for _, p := range pts {
		data = append(data, p.X, p.Y)
	}
	return &Flat{data: data, upper: len(data)}
}

// Floats flattens pa at full resolution into a new slice of exactly
// 2*pa.Count() coordinates.
func Floats(pa PointArray) []float32 {
	n := 2 * pa.Count()
	dest := &ArrayData{data: make([]float32, n)}
	pa.ToArray(dest, 0)
	if dest.Len() != n {
		panic(fmt.Sprintf("pointarray: flattened %d coordinates, want %d", dest.Len(), n))
	}
	return dest.Array()[:n]
}

// Points reads every point of pa.
func Points(pa PointArray) []Point {
	out := make([]Point, 0, pa.Count())
	for it := pa.Iterator(0); it.HasNext(); {
		out = append(out, Next(it))
	}
	return out
}

// Equal reports whether a and b iterate the same points, bit for bit.
func Equal(a, b PointArray) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Count() != b.Count() {
		return false
	}
	ia, ib := a.Iterator(0), b.Iterator(0)
	for ia.HasNext() {
		if math.Float32bits(ia.NextX()) != math.Float32bits(ib.NextX()) {
			return false
		}
		if math.Float32bits(ia.NextY()) != math.Float32bits(ib.NextY()) {
			return false
		}
	}
	return true
}

// Hash fingerprints the point count and the first point. Arrays that are
// Equal hash alike.
func Hash(pa PointArray) uint64 {
	var buf [16]byte
	n := pa.Count()
	binary.LittleEndian.PutUint64(buf[:8], uint64(n))
	if n > 0 {
		p := pa.FirstPoint()
		binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(p.Y))
	}
	return farm.Fingerprint64(buf[:])
}

// Footprint returns the bytes of coordinate storage pa holds. Windows report
// their whole shared buffer; an Adapter borrows and reports zero.
func Footprint(pa PointArray) int {
	switch a := pa.(type) {
	case *Flat:
		return 4 * len(a.data)
	case *Growable:
		return 4 * len(a.data)
	case *Compressed:
		return len(a.deltas) + compressedHeader
	default:
		return 0
	}
}

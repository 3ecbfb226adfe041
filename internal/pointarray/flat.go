package pointarray

// Flat is an immutable run of interleaved coordinates over [lower, upper)
// of a possibly shared buffer.
type Flat struct {
	data  []float32
	lower int
	upper int
}

var _ RandomAccess = (*Flat)(nil)

// NewRange wraps the coordinate range [lower, upper) of data without
// copying.
func NewRange(data []float32, lower, upper int) (*Flat, error) {
	if err := checkRange(len(data), lower, upper); err != nil {
		return nil, err
	}
	return &Flat{data: data, lower: lower, upper: upper}, nil
}

func (f *Flat) isPointArray() {}

func (f *Flat) Count() int { return (f.upper - f.lower) / 2 }

func (f *Flat) FirstPoint() Point {
	return Point{X: f.data[f.lower], Y: f.data[f.lower+1]}
}

func (f *Flat) LastPoint() Point {
	return Point{X: f.data[f.upper-2], Y: f.data[f.upper-1]}
}

func (f *Flat) Value(index int) Point {
	i := f.lower + 2*index
	return Point{X: f.data[i], Y: f.data[i+1]}
}

func (f *Flat) Iterator(start int) Iterator {
	return &floatIterator{data: f.data, pos: f.lower + 2*start, end: f.upper}
}

func (f *Flat) Subarray(lower, upper int) (PointArray, error) {
	if err := checkPoints(f.Count(), lower, upper); err != nil {
		return nil, err
	}
	switch {
	case lower == upper:
		return nil, nil
	case lower == 0 && upper == f.Count():
		return f, nil
	}
	return &Flat{data: f.data, lower: f.lower + 2*lower, upper: f.lower + 2*upper}, nil
}

func (f *Flat) InsertAt(index int, src PointArray, reverse bool) (PointArray, error) {
	return f.toGrowable().InsertAt(index, src, reverse)
}

func (f *Flat) Reverse() (PointArray, error) {
	return f.toGrowable().Reverse()
}

func (f *Flat) Final(level Compression) PointArray {
	if level == DeltaByte && f.Count() >= minCompressPoints {
		return compressOrKeep(func() PointArray { return f }, f.data, f.lower, f.upper)
	}
	return f
}

func (f *Flat) ToArray(dest *ArrayData, resolution2 float32) {
	flattenFloats(dest, f.data, f.lower, f.upper, resolution2)
}

func (f *Flat) toGrowable() *Growable {
	return growableFrom(f.data[f.lower:f.upper])
}

package pointarray

// growSlack is the minimum number of spare coordinates added when a
// Growable reallocates.
const growSlack = 1024

// Growable is a mutable point sequence. Its active range [lower, upper)
// floats inside a private buffer so both prepends and appends usually find
// room without moving the whole sequence.
//
// A Growable has a single owner. Windows returned by Subarray, and the Flat
// returned by Final when no copy was needed, share its buffer and are
// invalidated by any later mutation.
type Growable struct {
	data  []float32
	lower int
	upper int
}

var _ RandomAccess = (*Growable)(nil)

// NewGrowable returns an empty Growable with room for capacity points, all
// of it after the (empty) active range.
func NewGrowable(capacity int) *Growable {
	return &Growable{data: make([]float32, 2*max(capacity, 0))}
}

func growableFrom(coords []float32) *Growable {
	data := append([]float32(nil), coords...)
	return &Growable{data: data, upper: len(data)}
}

func (g *Growable) isPointArray() {}

func (g *Growable) Count() int { return (g.upper - g.lower) / 2 }

func (g *Growable) FirstPoint() Point {
	return Point{X: g.data[g.lower], Y: g.data[g.lower+1]}
}

func (g *Growable) LastPoint() Point {
	return Point{X: g.data[g.upper-2], Y: g.data[g.upper-1]}
}

func (g *Growable) Value(index int) Point {
	i := g.lower + 2*index
	return Point{X: g.data[i], Y: g.data[i+1]}
}

func (g *Growable) Iterator(start int) Iterator {
	return &floatIterator{data: g.data, pos: g.lower + 2*start, end: g.upper}
}

func (g *Growable) Subarray(lower, upper int) (PointArray, error) {
	if err := checkPoints(g.Count(), lower, upper); err != nil {
		return nil, err
	}
	switch {
	case lower == upper:
		return nil, nil
	case lower == 0 && upper == g.Count():
		return g, nil
	}
	return &Flat{data: g.data, lower: g.lower + 2*lower, upper: g.lower + 2*upper}, nil
}

// Add appends one point.
func (g *Growable) Add(x, y float32) {
	pos := g.reserve(g.Count(), 2)
	g.data[pos] = x
	g.data[pos+1] = y
}

// InsertAt always mutates the receiver and returns it.
func (g *Growable) InsertAt(index int, src PointArray, reverse bool) (PointArray, error) {
	if err := checkPoints(g.Count(), index, index); err != nil {
		return nil, err
	}
	if src == nil || src.Count() == 0 {
		return g, nil
	}
	if g.aliases(src) {
		src = growableFrom(Floats(src))
	}
	n := 2 * src.Count()
	pos := g.reserve(index, n)
	if f, ok := src.(*Flat); ok && !reverse {
		copy(g.data[pos:pos+n], f.data[f.lower:f.upper])
		return g, nil
	}
	it := src.Iterator(0)
	if reverse {
		for i := pos + n - 2; it.HasNext(); i -= 2 {
			g.data[i] = it.NextX()
			g.data[i+1] = it.NextY()
		}
	} else {
		for i := pos; it.HasNext(); i += 2 {
			g.data[i] = it.NextX()
			g.data[i+1] = it.NextY()
		}
	}
	return g, nil
}

// aliases reports whether src reads from the receiver's buffer.
func (g *Growable) aliases(src PointArray) bool {
	var d []float32
	switch s := src.(type) {
	case *Growable:
		d = s.data
	case *Flat:
		d = s.data
	default:
		return false
	}
	return len(d) > 0 && len(g.data) > 0 && &d[0] == &g.data[0]
}

// reserve opens a gap of n coordinates before point index and returns the
// buffer position of the gap. Points before the middle move towards the
// front, the rest towards the back, so the fewest values are shifted.
func (g *Growable) reserve(index, n int) int {
	count := g.Count()
	pos := g.lower + 2*index
	if index < count/2 {
		if g.lower >= n {
			copy(g.data[g.lower-n:], g.data[g.lower:pos])
			g.lower -= n
			return pos - n
		}
	} else if len(g.data)-g.upper >= n {
		copy(g.data[pos+n:], g.data[pos:g.upper])
		g.upper += n
		return pos
	}

	// Out of room on the side we need. Polylines tend to grow from one end,
	// so most of the new slack goes where this insertion happened.
	active := g.upper - g.lower
	extra := max(growSlack, n)
	var left int
	switch {
	case index == count:
		left = 0
	case index == 0:
		left = extra
	case index < count/2:
		left = extra * 3 / 4
	default:
		left = extra / 4
	}
	left &^= 1
	head := pos - g.lower
	nd := make([]float32, active+n+extra)
	copy(nd[left:], g.data[g.lower:pos])
	copy(nd[left+head+n:], g.data[pos:g.upper])
	g.data = nd
	g.lower = left
	g.upper = left + active + n
	return left + head
}

// Reverse reverses the points in place and returns the receiver.
func (g *Growable) Reverse() (PointArray, error) {
	for i, j := g.lower, g.upper-2; i < j; i, j = i+2, j-2 {
		g.data[i], g.data[j] = g.data[j], g.data[i]
		g.data[i+1], g.data[j+1] = g.data[j+1], g.data[i+1]
	}
	return g, nil
}

func (g *Growable) Final(level Compression) PointArray {
	if level == DeltaByte && g.Count() >= minCompressPoints {
		return compressOrKeep(g.trimmed, g.data, g.lower, g.upper)
	}
	return g.trimmed().Final(level)
}

// trimmed returns a Flat over exactly the active range, sharing the buffer
// when the range already covers all of it.
func (g *Growable) trimmed() PointArray {
	if g.lower == 0 && g.upper == len(g.data) {
		return &Flat{data: g.data, upper: g.upper}
	}
	data := append([]float32(nil), g.data[g.lower:g.upper]...)
	return &Flat{data: data, upper: len(data)}
}

func (g *Growable) ToArray(dest *ArrayData, resolution2 float32) {
	flattenFloats(dest, g.data, g.lower, g.upper, resolution2)
}

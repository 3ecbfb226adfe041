package pointarray

// Point is a single vertex.
type Point struct {
	X float32
	Y float32
}

// Iterator is a forward-only cursor over the points of a PointArray.
//
// For every point the caller checks HasNext, then calls NextX and NextY
// exactly once each, in that order. NextX reads the current x without
// moving; NextY reads y and steps to the next point. Out-of-order calls are
// not detected unless the package is built with the pointarraydebug tag.
type Iterator interface {
	HasNext() bool
	NextX() float32
	NextY() float32
	// Clone returns an independent cursor at the same position.
	Clone() Iterator
}

// Next reads the current point and advances it.
func Next(it Iterator) Point {
	x := it.NextX()
	return Point{X: x, Y: it.NextY()}
}

// parity tracks the x-then-y discipline for the debug build.
type parity bool

func (p *parity) x() {
	if debugChecks {
		if *p {
			panic("pointarray: NextX called twice without NextY")
		}
		*p = true
	}
}

func (p *parity) y() {
	if debugChecks {
		if !*p {
			panic("pointarray: NextY called without NextX")
		}
		*p = false
	}
}

// floatIterator walks interleaved float32 coordinates.
type floatIterator struct {
	data []float32
	pos  int
	end  int
	p    parity
}

func (it *floatIterator) HasNext() bool { return it.pos < it.end }

func (it *floatIterator) NextX() float32 {
	it.p.x()
	return it.data[it.pos]
}

func (it *floatIterator) NextY() float32 {
	it.p.y()
	y := it.data[it.pos+1]
	it.pos += 2
	return y
}

func (it *floatIterator) Clone() Iterator {
	c := *it
	return &c
}

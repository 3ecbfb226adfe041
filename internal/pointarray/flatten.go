package pointarray

// predictSize estimates how long a flatten's output buffer must be. It
// extrapolates the output produced so far over the whole source, adds 12%
// and never returns less than 32 values past need. With no progress yet it
// guesses an eighth of the source.
func predictSize(srcProgress, dstProgress, total, need int) int {
	var size int
	if srcProgress == 0 {
		size = total / 8
	} else {
		size = int(int64(dstProgress) * int64(total) / int64(srcProgress))
		size += size * 12 / 100
	}
	if size < need+32 {
		size = need + 32
	}
	return size
}

// decimator writes flattened coordinates into a staging buffer.
type decimator struct {
	buf    []float32
	n      int
	total  int
	r2     float64
	lx, ly float64
}

func newDecimator(dest *ArrayData, total int, resolution2 float32) *decimator {
	return &decimator{buf: dest.data, total: total, r2: float64(resolution2)}
}

// emit appends (x, y) unconditionally. progress is the number of source
// coordinates consumed before this point.
func (d *decimator) emit(x, y float32, progress int) {
	if d.n+2 > len(d.buf) {
		nb := make([]float32, predictSize(progress, d.n, d.total, d.n+2))
		copy(nb, d.buf[:d.n])
		d.buf = nb
	}
	d.buf[d.n] = x
	d.buf[d.n+1] = y
	d.n += 2
	d.lx, d.ly = float64(x), float64(y)
}

// offer appends (x, y) unless it lies within the resolution of the last
// emitted point. Distances are taken in float64 so near-equal float32
// coordinates do not cancel to zero.
func (d *decimator) offer(x, y float32, progress int) {
	dx := float64(x) - d.lx
	dy := float64(y) - d.ly
	if dx*dx+dy*dy < d.r2 {
		return
	}
	d.emit(x, y, progress)
}

func (d *decimator) finish(dest *ArrayData) {
	dest.setFlat(d.buf, d.n)
}

// flattenFloats implements ToArray for interleaved float32 storage.
func flattenFloats(dest *ArrayData, data []float32, lower, upper int, resolution2 float32) {
	total := upper - lower
	if resolution2 <= 0 || total <= 4 {
		buf := dest.data
		if len(buf) < total {
			buf = make([]float32, total)
		}
		copy(buf, data[lower:upper])
		dest.setFlat(buf, total)
		return
	}
	d := newDecimator(dest, total, resolution2)
	d.emit(data[lower], data[lower+1], 0)
	last := upper - 2
	for i := lower + 2; i < last; i += 2 {
		d.offer(data[i], data[i+1], i-lower)
	}
	d.emit(data[last], data[last+1], last-lower)
	d.finish(dest)
}

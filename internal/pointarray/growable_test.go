package pointarray

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func reversed(p []Point) []Point {
	out := make([]Point, len(p))
	for i := range p {
		out[len(p)-1-i] = p[i]
	}
	return out
}

func TestGrowableInsertAt(t *testing.T) {
	srcCoords := []float32{100, 50, 101, 52, 103, 51}
	srcFlat, err := Copy(srcCoords)
	require.NoError(t, err)
	srcCompressed, err := Compress(srcFlat)
	require.NoError(t, err)
	sources := map[string]PointArray{
		"flat":       srcFlat,
		"compressed": srcCompressed,
		"adapter":    Adapt(geom.NewLineStringFlat(geom.XY, toFloat64(srcCoords))),
		"growable":   growableFrom(srcCoords),
	}

	for name, src := range sources {
		for _, index := range []int{0, 3, 5, 7, 10} {
			for _, reverse := range []bool{false, true} {
				t.Run(fmt.Sprintf("%s/%d/%t", name, index, reverse), func(t *testing.T) {
					base := diagonal(10)
					g := growableFrom(base)
					want := append([]Point(nil), pts(base[:2*index]...)...)
					ins := Points(src)
					if reverse {
						ins = reversed(ins)
					}
					want = append(want, ins...)
					want = append(want, pts(base[2*index:]...)...)

					got, err := g.InsertAt(index, src, reverse)
					require.NoError(t, err)
					assert.Same(t, g, got)
					assert.Equal(t, 13, got.Count())
					diff(t, want, Points(got))
				})
			}
		}
	}
}

func TestGrowableInsertRejectsBadIndex(t *testing.T) {
	g := growableFrom(diagonal(3))
	_, err := g.InsertAt(4, FromPoints(Point{1, 2}), false)
	require.ErrorIs(t, err, ErrBadRange)
	_, err = g.InsertAt(-1, FromPoints(Point{1, 2}), false)
	require.ErrorIs(t, err, ErrBadRange)

	same, err := g.InsertAt(1, nil, false)
	require.NoError(t, err)
	assert.Same(t, g, same)
	assert.Equal(t, 3, g.Count())
}

func TestGrowableSlackFollowsInsertions(t *testing.T) {
	g := NewGrowable(0)
	g.Add(1, 1)
	assert.Zero(t, g.lower, "appends keep the front tight")
	g.Add(2, 2)

	_, err := g.InsertAt(0, FromPoints(Point{0, 0}), false)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g.lower, growSlack-2, "prepends reserve room at the front")

	buf := &g.data[0]
	for i := 1; i <= 100; i++ {
		_, err := g.InsertAt(0, FromPoints(Point{float32(-i), float32(-i)}), false)
		require.NoError(t, err)
	}
	assert.Same(t, buf, &g.data[0], "front slack absorbs further prepends")
	assert.Equal(t, 103, g.Count())
	assert.Equal(t, Point{-100, -100}, g.FirstPoint())
	assert.Equal(t, Point{2, 2}, g.LastPoint())
}

func TestGrowableAddMany(t *testing.T) {
	g := NewGrowable(10)
	for i := 0; i < 3000; i++ {
		g.Add(float32(i), float32(-i))
	}
	require.Equal(t, 3000, g.Count())
	for i := 0; i < 3000; i += 499 {
		assert.Equal(t, Point{float32(i), float32(-i)}, g.Value(i))
	}
	assert.Equal(t, Point{2999, -2999}, g.LastPoint())
}

func TestGrowableReverse(t *testing.T) {
	for _, n := range []int{0, 1, 4, 7} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			g := growableFrom(diagonal(n))
			got, err := g.Reverse()
			require.NoError(t, err)
			assert.Same(t, g, got)
			diff(t, reversed(pts(diagonal(n)...)), Points(g))
		})
	}
}

func TestGrowableInsertSelf(t *testing.T) {
	g := growableFrom(diagonal(4))
	_, err := g.InsertAt(2, g, false)
	require.NoError(t, err)
	diff(t, pts(0, 0, 1, 1, 0, 0, 1, 1, 2, 2, 3, 3, 2, 2, 3, 3), Points(g))

	g = growableFrom(diagonal(4))
	w, err := g.Subarray(1, 3)
	require.NoError(t, err)
	_, err = g.InsertAt(0, w, true)
	require.NoError(t, err)
	diff(t, pts(2, 2, 1, 1, 0, 0, 1, 1, 2, 2, 3, 3), Points(g))
}

func TestGrowableFinal(t *testing.T) {
	g := growableFrom(diagonal(5))
	f, ok := g.Final(NoCompression).(*Flat)
	require.True(t, ok)
	assert.Same(t, &g.data[0], &f.data[0], "exact fit is shared")

	g.Add(5, 5)
	f, ok = g.Final(NoCompression).(*Flat)
	require.True(t, ok)
	assert.NotSame(t, &g.data[0], &f.data[0], "slack is trimmed by copying")
	assert.Len(t, f.data, 12)
	diff(t, Points(g), Points(f))

	g.Add(6, 6)
	g.Add(7, 7)
	c, ok := g.Final(DeltaByte).(*Compressed)
	require.True(t, ok)
	assert.Equal(t, 8, c.Count())
}

func TestFlatMutationCopies(t *testing.T) {
	coords := diagonal(4)
	f, err := New(coords)
	require.NoError(t, err)

	ins, err := f.InsertAt(4, FromPoints(Point{9, 9}), false)
	require.NoError(t, err)
	assert.IsType(t, &Growable{}, ins)
	diff(t, pts(0, 0, 1, 1, 2, 2, 3, 3, 9, 9), Points(ins))

	rev, err := f.Reverse()
	require.NoError(t, err)
	diff(t, pts(3, 3, 2, 2, 1, 1, 0, 0), Points(rev))

	diff(t, diagonal(4), coords)
	diff(t, pts(diagonal(4)...), Points(f))
}

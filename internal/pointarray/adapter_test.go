package pointarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

// coordSlice has no flat buffer, so Adapter falls back to Coord.
type coordSlice []geom.Coord

func (s coordSlice) NumCoords() int         { return len(s) }
func (s coordSlice) Coord(i int) geom.Coord { return s[i] }

func TestAdaptStrides(t *testing.T) {
	xyz := geom.NewLineStringFlat(geom.XYZ, []float64{1, 2, 100, 3, 4, 200, 5, 6, 300})
	xyzm := geom.NewLineStringFlat(geom.XYZM, []float64{1, 2, 100, -1, 3, 4, 200, -1, 5, 6, 300, -1})
	slow := coordSlice{{1, 2, 100}, {3, 4, 200}, {5, 6, 300}}

	for name, seq := range map[string]CoordSequence{"xyz": xyz, "xyzm": xyzm, "coords": slow} {
		t.Run(name, func(t *testing.T) {
			a := Adapt(seq)
			require.Equal(t, 3, a.Count())
			diff(t, pts(1, 2, 3, 4, 5, 6), Points(a))
			diff(t, []float32{1, 2, 3, 4, 5, 6}, Floats(a))
			assert.Equal(t, Point{3, 4}, a.Value(1))

			w, err := a.Subarray(1, 3)
			require.NoError(t, err)
			diff(t, pts(3, 4, 5, 6), Points(w))
			diff(t, []float32{3, 4, 5, 6}, Floats(w))
		})
	}
}

func TestAdapterIsReadOnly(t *testing.T) {
	ring := geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 0})
	a := Adapt(ring)

	_, err := a.InsertAt(0, FromPoints(Point{5, 5}), false)
	require.ErrorIs(t, err, ErrUnsupported)
	_, err = a.Reverse()
	require.ErrorIs(t, err, ErrUnsupported)

	// nothing was touched
	diff(t, []float64{0, 0, 1, 0, 1, 1, 0, 0}, ring.FlatCoords())
}

func TestAdapterFinal(t *testing.T) {
	short := Adapt(geom.NewLineStringFlat(geom.XY, toFloat64(diagonal(7))))
	assert.Same(t, short, short.Final(DeltaByte))

	long := Adapt(geom.NewLineStringFlat(geom.XY, toFloat64(diagonal(8))))
	assert.Same(t, long, long.Final(NoCompression))
	c, ok := long.Final(DeltaByte).(*Compressed)
	require.True(t, ok)
	assert.True(t, Equal(long, c))
}

func TestAdapterDecimatesLikeFlat(t *testing.T) {
	coords := make([]float32, 0, 200)
	for i := 0; i < 100; i++ {
		coords = append(coords, float32(i)*0.7, float32(i%4))
	}
	flat, err := New(coords)
	require.NoError(t, err)
	fast := Adapt(geom.NewLineStringFlat(geom.XY, toFloat64(coords)))
	slow := make(coordSlice, 0, 100)
	for i := 0; i < len(coords); i += 2 {
		slow = append(slow, geom.Coord{float64(coords[i]), float64(coords[i+1])})
	}

	for _, r2 := range []float32{0, 1, 9, 400} {
		var want, got, gotSlow ArrayData
		flat.ToArray(&want, r2)
		fast.ToArray(&got, r2)
		Adapt(slow).ToArray(&gotSlow, r2)
		diff(t, want.Coords(), got.Coords())
		diff(t, want.Coords(), gotSlow.Coords())
	}
}

package pointarray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// diagonal returns n points (i, i).
func diagonal(n int) []float32 {
	out := make([]float32, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, float32(i), float32(i))
	}
	return out
}

func pts(coords ...float32) []Point {
	out := make([]Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		out = append(out, Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func toFloat64(coords []float32) []float64 {
	out := make([]float64, len(coords))
	for i, c := range coords {
		out[i] = float64(c)
	}
	return out
}

// exactRepresentations returns every lossless representation of coords.
func exactRepresentations(t *testing.T, coords []float32) map[string]PointArray {
	t.Helper()
	flat, err := Copy(coords)
	require.NoError(t, err)

	padded := append(append([]float32{-1, -1, -2, -2}, coords...), 9, 9)
	window, err := NewRange(padded, 4, 4+len(coords))
	require.NoError(t, err)

	grow := NewGrowable(0)
	for i := 0; i < len(coords); i += 2 {
		grow.Add(coords[i], coords[i+1])
	}

	return map[string]PointArray{
		"flat":     flat,
		"window":   window,
		"growable": grow,
		"adapter":  Adapt(geom.NewLineStringFlat(geom.XY, toFloat64(coords))),
	}
}

// allRepresentations adds the compressed form, which for integer
// diagonals decodes exactly.
func allRepresentations(t *testing.T, coords []float32) map[string]PointArray {
	t.Helper()
	reps := exactRepresentations(t, coords)
	flat, err := Copy(coords)
	require.NoError(t, err)
	c, err := Compress(flat)
	require.NoError(t, err)
	reps["compressed"] = c
	return reps
}

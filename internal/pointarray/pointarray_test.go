package pointarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadRanges(t *testing.T) {
	data := diagonal(4)
	tests := []struct {
		name         string
		data         []float32
		lower, upper int
	}{
		{"odd buffer", data[:7], 0, 6},
		{"negative lower", data, -2, 4},
		{"upper past end", data, 0, 10},
		{"upper below lower", data, 4, 2},
		{"odd span", data, 0, 3},
		{"odd lower", data, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRange(tt.data, tt.lower, tt.upper)
			require.ErrorIs(t, err, ErrBadRange)
		})
	}

	_, err := Copy([]float32{1, 2, 3})
	require.ErrorIs(t, err, ErrBadRange)
}

func TestFloatsMatchesIteration(t *testing.T) {
	coords := diagonal(12)
	for name, pa := range allRepresentations(t, coords) {
		t.Run(name, func(t *testing.T) {
			diff(t, coords, Floats(pa))
			diff(t, pts(coords...), Points(pa))
			assert.Equal(t, Point{0, 0}, pa.FirstPoint())
			assert.Equal(t, Point{11, 11}, pa.LastPoint())
			assert.Equal(t, 12, pa.Count())
		})
	}
}

func TestSubarrayWholeIsIdentity(t *testing.T) {
	for name, pa := range allRepresentations(t, diagonal(9)) {
		t.Run(name, func(t *testing.T) {
			sub, err := pa.Subarray(0, pa.Count())
			require.NoError(t, err)
			assert.Same(t, pa, sub)
			assert.True(t, Equal(pa, sub))

			empty, err := pa.Subarray(3, 3)
			require.NoError(t, err)
			assert.Nil(t, empty)

			_, err = pa.Subarray(2, pa.Count()+1)
			require.ErrorIs(t, err, ErrBadRange)
		})
	}
}

func TestSubarrayWindows(t *testing.T) {
	coords := diagonal(10)
	for name, pa := range allRepresentations(t, coords) {
		t.Run(name, func(t *testing.T) {
			sub, err := pa.Subarray(2, 7)
			require.NoError(t, err)
			diff(t, pts(coords[4:14]...), Points(sub))
			assert.Equal(t, Point{2, 2}, sub.FirstPoint())
			assert.Equal(t, Point{6, 6}, sub.LastPoint())

			inner, err := sub.Subarray(1, 3)
			require.NoError(t, err)
			diff(t, pts(3, 3, 4, 4), Points(inner))

			it := sub.Iterator(3)
			require.True(t, it.HasNext())
			assert.Equal(t, Point{5, 5}, Next(it))
		})
	}
}

func TestEqualAndHash(t *testing.T) {
	reps := allRepresentations(t, diagonal(8))
	for name, pa := range reps {
		assert.True(t, Equal(reps["flat"], pa), name)
		assert.Equal(t, Hash(reps["flat"]), Hash(pa), name)
	}

	other := FromPoints(Point{0, 0}, Point{1, 1}, Point{2, 2.5})
	prefix, err := reps["flat"].Subarray(0, 3)
	require.NoError(t, err)
	assert.False(t, Equal(prefix, other))
	assert.False(t, Equal(reps["flat"], other))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, other))

	// bit patterns, not numeric equality
	negZero := FromPoints(Point{X: float32(negativeZero()), Y: 0})
	assert.False(t, Equal(FromPoints(Point{0, 0}), negZero))
}

func negativeZero() float64 {
	z := 0.0
	return -z
}

func TestRandomAccessCapability(t *testing.T) {
	for name, pa := range allRepresentations(t, diagonal(8)) {
		ra, ok := pa.(RandomAccess)
		if name == "compressed" {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, name)
		assert.Equal(t, Point{5, 5}, ra.Value(5), name)
	}
}

func TestIteratorClone(t *testing.T) {
	for name, pa := range allRepresentations(t, diagonal(6)) {
		t.Run(name, func(t *testing.T) {
			it := pa.Iterator(0)
			Next(it)
			Next(it)
			checkpoint := it.Clone()
			var first []Point
			for it.HasNext() {
				first = append(first, Next(it))
			}
			var second []Point
			for checkpoint.HasNext() {
				second = append(second, Next(checkpoint))
			}
			diff(t, pts(2, 2, 3, 3, 4, 4, 5, 5), first)
			diff(t, first, second)
		})
	}
}

func TestNewFinal(t *testing.T) {
	pa, err := NewFinal(diagonal(8), DeltaByte)
	require.NoError(t, err)
	assert.IsType(t, &Compressed{}, pa)

	pa, err = NewFinal(diagonal(7), DeltaByte)
	require.NoError(t, err)
	assert.IsType(t, &Flat{}, pa)

	_, err = NewFinal([]float32{1}, NoCompression)
	require.ErrorIs(t, err, ErrBadRange)
}

func TestFootprint(t *testing.T) {
	flat, err := New(diagonal(100))
	require.NoError(t, err)
	assert.Equal(t, 800, Footprint(flat))

	c := flat.Final(DeltaByte)
	assert.Equal(t, 200+compressedHeader, Footprint(c))
	assert.Less(t, Footprint(c), Footprint(flat))

	reps := exactRepresentations(t, diagonal(4))
	assert.Zero(t, Footprint(reps["adapter"]))
}

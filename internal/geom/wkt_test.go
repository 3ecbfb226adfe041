package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goemap/internal/pointarray"
)

func TestParseWKTData(t *testing.T) {
	tests := []struct {
		name                 string
		wkt                  string
		points, lines, polys int
		bbox                 BBox
	}{
		{"point", "POINT(1 2)", 1, 0, 0, BBox{1, 2, 1, 2}},
		{"multipoint", "MULTIPOINT((1 1),(3 4))", 2, 0, 0, BBox{1, 1, 3, 4}},
		{"linestring", "LINESTRING(0 0, 10 5, 20 0)", 0, 1, 0, BBox{0, 0, 20, 5}},
		{"polygon with hole", "POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 1))", 0, 0, 1, BBox{0, 0, 4, 4}},
		{"multilinestring", "MULTILINESTRING((0 0,1 1),(5 5,6 7))", 0, 2, 0, BBox{0, 0, 6, 7}},
		{"lowercase xyz", "linestring z (0 0 9, 2 3 9)", 0, 1, 0, BBox{0, 0, 2, 3}},
		{"collection", "GEOMETRYCOLLECTION(POINT(-1 -1),LINESTRING(0 0,1 1))", 1, 1, 0, BBox{-1, -1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseWKTData(tt.wkt, pointarray.NoCompression)
			require.NoError(t, err)
			assert.Equal(t, tt.points, d.NumPoints())
			assert.Len(t, d.Lines, tt.lines)
			assert.Len(t, d.Polygons, tt.polys)
			assert.Equal(t, tt.bbox, d.BBox)
		})
	}
}

func TestParseWKTDataRings(t *testing.T) {
	d, err := ParseWKTData("POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 1))", pointarray.NoCompression)
	require.NoError(t, err)
	require.Len(t, d.Polygons[0], 2)
	diff(t, [][2]float32{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}, points(d.Polygons[0][0]))
	diff(t, [][2]float32{{1, 1}, {2, 1}, {2, 2}, {1, 1}}, points(d.Polygons[0][1]))
}

func TestParseWKTDataCompression(t *testing.T) {
	const ls = "LINESTRING(0 0,1 2,2 1,3 3,4 2,5 5,6 1,7 7,8 0,9 9)"

	d, err := ParseWKTData(ls, pointarray.DeltaByte)
	require.NoError(t, err)
	assert.IsType(t, &pointarray.Compressed{}, d.Lines[0])

	d, err = ParseWKTData(ls, pointarray.NoCompression)
	require.NoError(t, err)
	assert.IsType(t, &pointarray.Adapter{}, d.Lines[0])
	assert.Equal(t, 10, d.Lines[0].Count())
}

func TestParseWKTDataErrors(t *testing.T) {
	_, err := ParseWKTData("   ", pointarray.NoCompression)
	require.ErrorIs(t, err, ErrNoGeometry)

	_, err = ParseWKTData("POINT EMPTY", pointarray.NoCompression)
	require.ErrorIs(t, err, ErrNoGeometry)

	_, err = ParseWKTData("CIRCLE(1 2)", pointarray.NoCompression)
	require.Error(t, err)

	_, err = LoadWKT(writeFile(t, "broken.wkt", "LINESTRING(0 0,"), pointarray.NoCompression)
	require.ErrorContains(t, err, "broken.wkt")
}

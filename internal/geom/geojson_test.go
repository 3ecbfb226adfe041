package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goemap/internal/pointarray"
)

const featureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "a", "pop": 12},
     "geometry": {"type": "Point", "coordinates": [10, 20]}},
    {"type": "Feature", "properties": {"road": "b"},
     "geometry": {"type": "LineString", "coordinates": [[0, 0], [5, 5], [10, 0]]}},
    {"type": "Feature", "properties": null,
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[0, 0], [2, 0], [2, 2], [0, 0]]],
       [[[5, 5], [6, 5], [6, 30], [5, 5]]]
     ]}},
    {"type": "Feature", "properties": {"name": "nothing"}, "geometry": null}
  ]
}`

func TestLoadGeoFeatureCollection(t *testing.T) {
	d, err := LoadGeo(writeFile(t, "fc.geojson", featureCollection), pointarray.NoCompression)
	require.NoError(t, err)

	diff(t, [][2]float32{{10, 20}}, points(d.Points))
	require.Len(t, d.Lines, 1)
	assert.Equal(t, 3, d.Lines[0].Count())
	require.Len(t, d.Polygons, 2)
	assert.Equal(t, BBox{0, 0, 10, 30}, d.BBox)

	diff(t, []string{"name", "pop", "road"}, d.Columns)
	require.Len(t, d.Properties, 4)
	assert.Equal(t, "a", d.Properties[0]["name"])
	assert.Equal(t, 12.0, d.Properties[0]["pop"])
	assert.Empty(t, d.Properties[2])
}

func TestParseGeoJSONShapes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		pts  int
		ls   int
	}{
		{"feature", `{"type":"Feature","properties":{},"geometry":{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}}`, 2, 0},
		{"bare geometry", `{"type":"LineString","coordinates":[[1,2],[3,4]]}`, 0, 1},
		{"collection", `{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,1]},{"type":"Point","coordinates":[2,3]}]}`, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseGeoJSON([]byte(tt.doc), pointarray.NoCompression)
			require.NoError(t, err)
			assert.Equal(t, tt.pts, d.NumPoints())
			assert.Len(t, d.Lines, tt.ls)
		})
	}
}

func TestParseGeoJSONErrors(t *testing.T) {
	_, err := ParseGeoJSON([]byte(`{"coordinates":[1,2]}`), pointarray.NoCompression)
	require.ErrorContains(t, err, "missing type")

	_, err = ParseGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`), pointarray.NoCompression)
	require.ErrorIs(t, err, ErrNoGeometry)

	_, err = ParseGeoJSON([]byte(`{"type":`), pointarray.NoCompression)
	require.Error(t, err)

	_, err = LoadGeo("/does/not/exist.geojson", pointarray.NoCompression)
	require.ErrorContains(t, err, "exist.geojson")
}

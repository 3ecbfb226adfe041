package geom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goemap/internal/pointarray"
)

const kmlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Folder>
      <Placemark>
        <name>summit</name>
        <Point><coordinates>8.5,47.25,1200</coordinates></Point>
      </Placemark>
      <Placemark>
        <name>trail</name>
        <LineString>
          <coordinates>
            8.0,47.0,0 8.5,47.5,0
            9.0,47.0,0 bogus
          </coordinates>
        </LineString>
      </Placemark>
    </Folder>
    <Placemark><name>empty</name></Placemark>
  </Document>
</kml>`

func TestReadKML(t *testing.T) {
	d, err := ReadKML(strings.NewReader(kmlDoc), pointarray.NoCompression)
	require.NoError(t, err)

	diff(t, [][2]float32{{8.5, 47.25}}, points(d.Points))
	require.Len(t, d.Lines, 1)
	diff(t, [][2]float32{{8, 47}, {8.5, 47.5}, {9, 47}}, points(d.Lines[0]))
	assert.Equal(t, BBox{8, 47, 9, 47.5}, d.BBox)

	diff(t, []string{"name"}, d.Columns)
	require.Len(t, d.Properties, 2)
	assert.Equal(t, "trail", d.Properties[1]["name"])
}

func TestReadKMLErrors(t *testing.T) {
	_, err := ReadKML(strings.NewReader(`<kml><Document></Document></kml>`), pointarray.NoCompression)
	require.ErrorIs(t, err, ErrNoGeometry)

	_, err = ReadKML(strings.NewReader(`<kml><Placemark>`), pointarray.NoCompression)
	require.Error(t, err)
}

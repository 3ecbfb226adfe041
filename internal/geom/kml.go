package geom

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"goemap/internal/pointarray"
)

type kmlGeometry struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Name       string       `xml:"name"`
	Point      *kmlGeometry `xml:"Point"`
	LineString *kmlGeometry `xml:"LineString"`
}

// LoadKML extracts Point and LineString placemarks at any depth of a KML
// file. KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string, level pointarray.Compression) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", path)
	}
	defer f.Close()
	d, err := ReadKML(f, level)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}

// ReadKML decodes KML from r.
func ReadKML(r io.Reader, level pointarray.Compression) (Data, error) {
	b := newBuilder(level)
	b.setColumns([]string{"name"})
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, errors.Wrap(err, "parse kml")
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return Data{}, errors.Wrap(err, "parse kml")
		}
		added := false
		if pm.Point != nil {
			coords := kmlCoords(pm.Point.Coordinates)
			for i := 0; i+1 < len(coords); i += 2 {
				b.addXY(coords[i], coords[i+1])
				added = true
			}
		}
		if pm.LineString != nil {
			if coords := kmlCoords(pm.LineString.Coordinates); len(coords) > 0 {
				b.addLine(coords)
				added = true
			}
		}
		if added {
			b.addProperties(map[string]any{"name": pm.Name})
		}
	}
	return b.finish()
}

// kmlCoords parses whitespace separated "lon,lat[,alt]" tuples into
// interleaved lon,lat pairs, skipping malformed tuples.
func kmlCoords(s string) []float64 {
	var out []float64
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, lon, lat)
	}
	return out
}

package geom

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"goemap/internal/pointarray"
)

// LoadGeo reads a GeoJSON file: a FeatureCollection, a single Feature or a
// bare geometry. Feature properties are kept, one map per feature.
func LoadGeo(path string, level pointarray.Compression) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", path)
	}
	d, err := ParseGeoJSON(raw, level)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}

// ParseGeoJSON decodes a GeoJSON document.
func ParseGeoJSON(raw []byte, level pointarray.Compression) (Data, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return Data{}, errors.Wrap(err, "parse geojson")
	}
	b := newBuilder(level)
	switch head.Type {
	case "":
		return Data{}, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(raw, &fc); err != nil {
			return Data{}, errors.Wrap(err, "parse geojson")
		}
		for _, f := range fc.Features {
			if err := b.addFeature(f); err != nil {
				return Data{}, err
			}
		}
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(raw, &f); err != nil {
			return Data{}, errors.Wrap(err, "parse geojson")
		}
		if err := b.addFeature(&f); err != nil {
			return Data{}, err
		}
	default:
		var g gogeom.T
		if err := geojson.Unmarshal(raw, &g); err != nil {
			return Data{}, errors.Wrap(err, "parse geojson")
		}
		if err := b.add(g); err != nil {
			return Data{}, err
		}
	}
	return b.finish()
}

func (b *builder) addFeature(f *geojson.Feature) error {
	if f == nil {
		return nil
	}
	if err := b.add(f.Geometry); err != nil {
		return errors.Wrapf(err, "feature %q", f.ID)
	}
	b.addProperties(f.Properties)
	return nil
}

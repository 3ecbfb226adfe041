package geom

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"goemap/internal/pointarray"
)

var (
	// ErrUnsupportedFormat reports a file extension no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNoGeometry reports input without a single usable coordinate.
	ErrNoGeometry = errors.New("no geometries found")
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".geojson", ".json", ".csv", ".kml", ".wkt"}

// Supported reports whether Load can read path.
func Supported(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// Load reads path with the loader its extension selects.
func Load(path string, level pointarray.Compression) (Data, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return LoadGeo(path, level)
	case ".csv":
		return LoadCSV(path, level)
	case ".kml":
		return LoadKML(path, level)
	case ".wkt":
		return LoadWKT(path, level)
	default:
		return Data{}, errors.Wrapf(ErrUnsupportedFormat, "%s: %q", path, ext)
	}
}

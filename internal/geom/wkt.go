package geom

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom/encoding/wkt"

	"goemap/internal/pointarray"
)

// ParseWKTData parses one WKT geometry of any type, including
// GEOMETRYCOLLECTION, finalizing its sequences at level.
func ParseWKTData(s string, level pointarray.Compression) (Data, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Data{}, errors.Wrap(ErrNoGeometry, "empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Data{}, errors.Wrap(err, "parse wkt")
	}
	b := newBuilder(level)
	if err := b.add(g); err != nil {
		return Data{}, err
	}
	return b.finish()
}

// LoadWKT reads a file holding a single WKT geometry.
func LoadWKT(path string, level pointarray.Compression) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", path)
	}
	d, err := ParseWKTData(string(raw), level)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}

package geom

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"goemap/internal/pointarray"
)

// LoadCSV reads a CSV with latitude/longitude columns and returns one point
// per valid row. Column detection: lat|latitude|y and
// lon|lng|long|longitude|x, case-insensitive. Every column of a valid row
// is kept as a string property.
func LoadCSV(path string, level pointarray.Compression) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", path)
	}
	defer f.Close()
	d, err := ReadCSV(f, level)
	if err != nil {
		return Data{}, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}

// ReadCSV reads CSV records from r.
func ReadCSV(r io.Reader, level pointarray.Compression) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return Data{}, errors.Wrap(ErrNoGeometry, "empty csv")
	}
	if err != nil {
		return Data{}, errors.Wrap(err, "parse csv")
	}
	idxLat, idxLon := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return Data{}, errors.New("csv: latitude/longitude columns not found")
	}

	b := newBuilder(level)
	b.setColumns(header)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, errors.Wrap(err, "parse csv")
		}
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		b.addXY(lon, lat)
		props := make(map[string]any, len(header))
		for i, h := range header {
			if i < len(row) {
				props[h] = row[i]
			}
		}
		b.addProperties(props)
	}
	return b.finish()
}

package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"goemap/internal/pointarray"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// writeFile writes content to name inside a fresh temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func points(pa pointarray.PointArray) [][2]float32 {
	var out [][2]float32
	for it := pa.Iterator(0); it.HasNext(); {
		p := pointarray.Next(it)
		out = append(out, [2]float32{p.X, p.Y})
	}
	return out
}

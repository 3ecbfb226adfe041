package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"

	"goemap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.log.Warn("read dir", zap.String("dir", m.cwd), zap.Error(err))
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a file of any supported format into the model.
func (m *Model) loadPath(p string) {
	start := time.Now()
	d, err := geom.Load(p, m.opts.Compression)
	if err != nil {
		m.log.Warn("load failed", zap.String("path", p), zap.Error(err))
		m.status = "load error: " + err.Error()
		return
	}
	s := d.Stats()
	m.log.Info("loaded",
		zap.String("path", p),
		zap.Int("points", s.Points),
		zap.Int("lines", s.Lines),
		zap.Int("polygons", s.Polygons),
		zap.Int("vertices", s.Vertices),
		zap.Int("compressed", s.Compressed),
		zap.Int("bytes", s.Bytes),
		zap.Duration("took", time.Since(start)))
	m.selPath = p
	m.setData(d)
	m.status = "loaded: " + filepath.Base(p) + "  " + s.String()
	// If attributes are currently shown, verify availability for the new dataset
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

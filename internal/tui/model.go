package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"goemap/internal/geom"
	"goemap/internal/pointarray"
)

// Options are the settings the viewer runs with.
type Options struct {
	// Compression is the level loaded geometry is finalized at.
	Compression pointarray.Compression
	// Decimate flattens with the size of one braille dot as resolution.
	Decimate bool
	Logger   *zap.Logger
}

type Model struct {
	opts Options
	log  *zap.Logger

	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data     geom.Data
	points   pointarray.PointArray
	bbox     geom.BBox
	lines    []pointarray.PointArray
	polygons [][]pointarray.PointArray

	// staging buffer every sequence is flattened into while drawing
	buf *pointarray.ArrayData

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := Model{
		opts:        opts,
		log:         opts.Logger.Named("tui"),
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "geomap ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		buf:         &pointarray.ArrayData{},
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (any geometry, including GEOMETRYCOLLECTION). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns will be inferred per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, opts Options) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setData replaces the dataset and resets the viewport, preferring
// polygons over lines over points for visibility.
func (m *Model) setData(d geom.Data) {
	m.data = d
	m.points, m.lines, m.polygons, m.bbox = d.Points, d.Lines, d.Polygons, d.BBox
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	m.showPolys = len(m.polygons) > 0
	m.showLines = len(m.lines) > 0 && !m.showPolys
	m.showPoints = m.points != nil && !m.showPolys
}

// layout returns the map area's origin and size in cells. View and the
// mouse handler must agree on it.
func (m Model) layout() (x, y, w, h int) {
	const headerHeight, footerHeight = 1, 2
	sbw := 0
	if m.showSidebar {
		sbw = sidebarWidth
		x = sidebarWidth + 1
	}
	w = max(10, max(10, m.width)-sbw-1)
	h = max(4, m.height-headerHeight-footerHeight)
	return x, headerHeight, w, h
}

const sidebarWidth = 28

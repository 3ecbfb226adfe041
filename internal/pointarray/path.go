package pointarray

import (
	"iter"
	"slices"
)

// PathElementKind identifies a path command. The same codes mark curve
// entries in an ArrayData.
type PathElementKind int

const (
	MoveToKind PathElementKind = iota + 1
	LineToKind
	QuadToKind
	CubicToKind
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "invalid"
	}
}

// PathElement is one command of an outline. MoveTo and LineTo use P0;
// QuadTo uses P0 (control) and P1; CubicTo uses P0, P1 (controls) and P2.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

// points returns the element's points in drawing order.
func (el PathElement) points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case QuadToKind:
		return []Point{el.P0, el.P1}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// Shape is an outline that ArrayData.Append can consume.
type Shape interface {
	PathElements() iter.Seq[PathElement]
}

// PathSink receives the points drained by ArrayData.Extract.
type PathSink interface {
	MoveTo(pt Point)
	LineTo(pt Point)
}

// Path is a sequence of path commands.
type Path []PathElement

var (
	_ Shape    = Path{}
	_ PathSink = (*Path)(nil)
)

func (p Path) PathElements() iter.Seq[PathElement] { return slices.Values(p) }

func (p *Path) MoveTo(pt Point) { *p = append(*p, PathElement{Kind: MoveToKind, P0: pt}) }

func (p *Path) LineTo(pt Point) { *p = append(*p, PathElement{Kind: LineToKind, P0: pt}) }

func (p *Path) QuadTo(p1, p2 Point) {
	*p = append(*p, PathElement{Kind: QuadToKind, P0: p1, P1: p2})
}

func (p *Path) CubicTo(p1, p2, p3 Point) {
	*p = append(*p, PathElement{Kind: CubicToKind, P0: p1, P1: p2, P2: p3})
}

func (p *Path) ClosePath() { *p = append(*p, PathElement{Kind: ClosePathKind}) }

package component

import "github.com/lixenwraith/bullet-hell/core"

// Shape is either an axis-aligned box or a polygon
// Box is anchored at its top-left corner; a polygon stores absolute vertices and Box is unused
type Shape struct {
	Box  core.Rect
	Poly core.Polygon
}

// BoxShape returns a box shape
func BoxShape(r core.Rect) Shape {
	return Shape{Box: r}
}

// PolyShape returns a polygon shape
func PolyShape(p core.Polygon) Shape {
	return Shape{Poly: p}
}

// IsPolygon reports whether the shape is a polygon
func (s Shape) IsPolygon() bool {
	return s.Poly != nil
}

// Bounds returns the collision box; min/max of the vertices for polygons
func (s Shape) Bounds() core.Rect {
	if s.Poly != nil {
		return s.Poly.Bounds()
	}
	return s.Box
}

// Center returns the box center or the polygon centroid
func (s Shape) Center() core.Point {
	if s.Poly != nil {
		return s.Poly.Centroid()
	}
	return s.Box.Center()
}

// Translate moves the shape by d
func (s *Shape) Translate(d core.Point) {
	if s.Poly != nil {
		s.Poly.Translate(d)
		return
	}
	s.Box = s.Box.Translate(d)
}

// CenterOn moves the shape so its center lies on c
func (s *Shape) CenterOn(c core.Point) {
	s.Translate(c.Sub(s.Center()))
}

// Clone returns a copy that shares no vertex storage
func (s Shape) Clone() Shape {
	return Shape{Box: s.Box, Poly: s.Poly.Clone()}
}

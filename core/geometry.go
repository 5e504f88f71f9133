package core

import "math"

// Point is a 2D position or vector in playfield pixels
type Point struct {
	X, Y float64
}

// Add returns p+q
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*s
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Len returns the Euclidean length of p
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Normalize returns the unit vector of p, or the zero vector when p has no length
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Rotate returns p rotated by angle radians around pivot
func (p Point) Rotate(pivot Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

// FromAngle returns the vector of the given length pointing at angle radians
func FromAngle(angle, length float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{cos * length, sin * length}
}

// Rect represents an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// RectAt returns a w×h rect centered at c
func RectAt(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Left, Right, Top and Bottom return the edges of the rect
func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the geometric center of the rect
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Translate returns the rect moved by d
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Inset returns the rect grown by m on every side (shrunk for negative m)
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Contains reports whether o lies entirely inside r
func (r Rect) Contains(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// Clamp returns o moved the minimum distance to lie inside r
// o larger than r is pinned to r's top-left
func (r Rect) Clamp(o Rect) Rect {
	o.X = Clamp(o.X, r.Left(), r.Right()-o.W)
	o.Y = Clamp(o.Y, r.Top(), r.Bottom()-o.H)
	return o
}

// Polygon is a closed shape given by absolute vertex coordinates
type Polygon []Point

// Bounds returns the axis-aligned bounding box of the vertices
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, v := range p[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Centroid returns the mean of the vertices
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var c Point
	for _, v := range p {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(p))
	return Point{c.X / n, c.Y / n}
}

// Translate moves every vertex by d in place
func (p Polygon) Translate(d Point) {
	for i := range p {
		p[i].X += d.X
		p[i].Y += d.Y
	}
}

// Rotate turns every vertex by angle radians around pivot in place
func (p Polygon) Rotate(pivot Point, angle float64) {
	for i := range p {
		p[i] = p[i].Rotate(pivot, angle)
	}
}

// Clone returns an independent copy of the polygon
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// ContainsPoint reports whether q lies inside the polygon, by ray casting
func (p Polygon) ContainsPoint(q Point) bool {
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > q.Y) != (b.Y > q.Y) && q.X < (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// RegularPolygon builds n vertices on a circle of radius r around c, first vertex at angle start
func RegularPolygon(c Point, r float64, n int, start float64) Polygon {
	out := make(Polygon, n)
	for i := range out {
		out[i] = c.Add(FromAngle(start+2*math.Pi*float64(i)/float64(n), r))
	}
	return out
}

// StarPolygon builds a star with the given number of points, alternating outer and inner radius
func StarPolygon(c Point, outer, inner float64, points int, start float64) Polygon {
	out := make(Polygon, 2*points)
	step := math.Pi / float64(points)
	for i := range out {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		out[i] = c.Add(FromAngle(start+step*float64(i), r))
	}
	return out
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

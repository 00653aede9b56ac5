// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgpath

import (
	"cogentcore.org/spotlight/math32"
)

// Polygon is a closed polyline in absolute coordinates.
type Polygon []math32.Vector2

// Flatten converts the path into one [Polygon] per subpath, approximating
// arcs with line segments that deviate from the arc by at most tol
// (0.25 if tol is not positive). Every subpath is treated as closed.
func Flatten(p Path, tol float32) []Polygon {
	if tol <= 0 {
		tol = 0.25
	}
	var polys []Polygon
	var cur Polygon
	var pos, start math32.Vector2

	end := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	lineTo := func(pt math32.Vector2) {
		if len(cur) == 0 {
			cur = append(cur, pos)
		}
		cur = append(cur, pt)
		pos = pt
	}

	for _, c := range p {
		a := c.Args
		var off math32.Vector2
		if c.Cmd.IsRel() {
			off = pos
		}
		switch c.Cmd.Abs() {
		case CmdM:
			end()
			pos = math32.Vec2(a[0], a[1]).Add(off)
			start = pos
			cur = Polygon{pos}
		case CmdL:
			lineTo(math32.Vec2(a[0], a[1]).Add(off))
		case CmdH:
			lineTo(math32.Vec2(a[0]+off.X, pos.Y))
		case CmdV:
			lineTo(math32.Vec2(pos.X, a[0]+off.Y))
		case CmdA:
			to := math32.Vec2(a[5], a[6]).Add(off)
			for _, pt := range Arc(pos, a[0], a[1], a[2], a[3] != 0, a[4] != 0, to, tol) {
				lineTo(pt)
			}
		case CmdZ:
			end()
			pos = start
		}
	}
	end()
	return polys
}

// Bounds returns the bounding box of all points of the given polygons.
func Bounds(polys []Polygon) math32.Box2 {
	b := math32.B2Empty()
	for _, pl := range polys {
		for _, pt := range pl {
			b.ExpandByPoint(pt)
		}
	}
	return b
}

// Area returns the signed area of the polygon, which is positive for
// clockwise polygons in a y-down coordinate system.
func (pl Polygon) Area() float32 {
	var a float32
	for i := range pl {
		p, q := pl[i], pl[(i+1)%len(pl)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Arc returns the points approximating the SVG elliptical arc from
// the start point to the end point, excluding the start point. A zero
// radius is a straight line, and radii too small to reach the end
// point are scaled up.
func Arc(from math32.Vector2, rx, ry, rotDeg float32, large, sweep bool, to math32.Vector2, tol float32) []math32.Vector2 {
	if from == to {
		return nil
	}
	rx, ry = math32.Abs(rx), math32.Abs(ry)
	if rx == 0 || ry == 0 {
		return []math32.Vector2{to}
	}
	phi := math32.DegToRad(rotDeg)
	sinp, cosp := math32.Sin(phi), math32.Cos(phi)

	// endpoint to center parameterization
	d := from.Sub(to).MulScalar(0.5)
	x1 := cosp*d.X + sinp*d.Y
	y1 := -sinp*d.X + cosp*d.Y
	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		s := math32.Sqrt(l)
		rx *= s
		ry *= s
	}
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := float32(0)
	if den > 0 && num > 0 {
		coef = math32.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	mid := from.Add(to).MulScalar(0.5)
	c := math32.Vec2(cosp*cx1-sinp*cy1+mid.X, sinp*cx1+cosp*cy1+mid.Y)

	theta := angle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := angle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math32.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math32.Pi
	}

	// segments so that the sagitta of each is within tol
	r := math32.Max(rx, ry)
	step := float32(math32.Pi / 2)
	if tol < r {
		step = 2 * math32.Acos(1-tol/r)
	}
	n := max(int(math32.Ceil(math32.Abs(delta)/step)), 1)

	pts := make([]math32.Vector2, 0, n)
	for i := 1; i < n; i++ {
		t := theta + delta*float32(i)/float32(n)
		ex, ey := rx*math32.Cos(t), ry*math32.Sin(t)
		pts = append(pts, math32.Vec2(cosp*ex-sinp*ey+c.X, sinp*ex+cosp*ey+c.Y))
	}
	return append(pts, to)
}

// angle returns the signed angle from vector u to vector v.
func angle(ux, uy, vx, vy float32) float32 {
	return math32.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

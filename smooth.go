package ribbon

import "math"

// SmoothPasses is the number of SmoothList passes applied by Build.
// Each pass maps m points to 2m-1, so a gap between two control points
// spans 2^SmoothPasses smoothed segments.
const SmoothPasses = 3

// collinearLimit bounds |dot(r1,r2)^2 - |r1|^2|r2|^2|, the squared area of
// the parallelogram spanned by a corner. Below it the circumcircle is
// ill-conditioned and the plain chord midpoints are used.
const collinearLimit = 1e-3

// SmoothList rounds the interior corners of a polyline. It inserts one point
// between every pair of neighbours, so m input points yield 2m-1 output
// points, and the original points are kept at the even indices. The first
// and last points pass through unchanged.
//
// Each inserted point starts as the chord midpoint and is pushed radially
// onto the circle through the corner it belongs to. A chord shared by two
// corners receives the average of both candidates.
//
// Lists with fewer than 3 points have no interior corner and are returned as
// a copy.
func SmoothList(points []Vec3) []Vec3 {
	m := len(points)
	if m < 3 {
		out := make([]Vec3, m)
		copy(out, points)
		return out
	}

	out := make([]Vec3, 0, 2*m-1)
	out = append(out, points[0])

	var outgoing Vec3
	for i := 1; i < m-1; i++ {
		p12, p23 := roundCorner(points[i-1], points[i], points[i+1])
		if i > 1 {
			p12 = p12.Lerp(outgoing, 0.5)
		}
		out = append(out, p12, points[i])
		outgoing = p23
	}

	return append(out, outgoing, points[m-1])
}

// roundCorner returns the smoothed midpoints of the chords p1-p2 and p2-p3.
func roundCorner(p1, p2, p3 Vec3) (p12, p23 Vec3) {
	r1 := p1.Sub(p2)
	r2 := p3.Sub(p2)
	p12 = p2.Add(r1.Mul(0.5))
	p23 = p2.Add(r2.Mul(0.5))

	dot := r1.Dot(r2)
	l1 := r1.LengthSq()
	l2 := r2.LengthSq()
	det := dot*dot - l1*l2
	if math.Abs(det) < collinearLimit {
		return p12, p23
	}

	// Circumcenter c = p2 + a*r1 + b*r2 with |c-p1| = |c-p2| = |c-p3|.
	a := l2 * (l1 - dot) / (-2 * det)
	b := l1 * (l2 - dot) / (-2 * det)
	center := p2.Add(r1.Mul(a)).Add(r2.Mul(b))
	radius := center.Distance(p2)

	return projectOnCircle(p12, center, radius), projectOnCircle(p23, center, radius)
}

// projectOnCircle moves p along the ray from center through p to distance
// radius. A point at the center is returned unchanged.
func projectOnCircle(p, center Vec3, radius float64) Vec3 {
	v := p.Sub(center)
	if v.IsZero() {
		return p
	}
	return center.Add(v.Normalize().Mul(radius))
}

// smoothPasses applies SmoothList n times.
func smoothPasses(points []Vec3, n int) []Vec3 {
	for range n {
		points = SmoothList(points)
	}
	return points
}

package ribbon

// MinResidues is the smallest number of usable residues Build accepts.
const MinResidues = 4

// controlPoints derives the coarse centerline and its paired torsion points
// from n alpha-carbon and oxygen positions. It returns n+1 pairs: one for
// each gap between consecutive alpha carbons, including the gaps to the two
// extrapolated end points.
//
// Both input slices must have the same length of at least MinResidues.
func controlPoints(ca, o []Vec3) (ctrl, tors []Vec3) {
	n := len(ca)
	ca = extendEnds(ca)
	o = extendEnds(o)

	ctrl = make([]Vec3, 0, n+1)
	tors = make([]Vec3, 0, n+1)

	var prevD Vec3
	for i := 1; i < len(ca); i++ {
		a := ca[i].Sub(ca[i-1])
		normal := a.Cross(o[i-1].Sub(ca[i-1]))
		d := normal.Cross(a)
		// Keep the width axis on the same side as the previous gap, otherwise
		// the ribbon flips over between alternating carbonyls in a strand.
		if prevD.Dot(d) < 0 {
			d = d.Neg()
		}
		d = d.Normalize()
		prevD = d

		p := ca[i-1].Midpoint(ca[i])
		ctrl = append(ctrl, p)
		tors = append(tors, p.Add(d))
	}
	return ctrl, tors
}

// extendEnds returns a copy of pts with one linearly extrapolated point added
// before the first and after the last element.
func extendEnds(pts []Vec3) []Vec3 {
	n := len(pts)
	out := make([]Vec3, 0, n+2)
	out = append(out, pts[0].Lerp(pts[1], -1))
	out = append(out, pts...)
	out = append(out, pts[n-2].Lerp(pts[n-1], 2))
	return out
}

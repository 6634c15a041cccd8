package ribbon

// SamplesPerResidue is the number of curve samples returned per residue.
// Windows of neighbouring residues share their boundary sample.
const SamplesPerResidue = 9

// residueStride is the distance in smoothed points between the first samples
// of two consecutive residues.
const residueStride = SamplesPerResidue - 1

// Sample is one point of the smoothed backbone with its local frame.
// Tangent, Normal and Torsion are unit vectors and mutually perpendicular.
// Torsion is the ribbon's width axis, Normal its thickness axis.
type Sample struct {
	Point   Vec3
	Tangent Vec3
	Normal  Vec3
	Torsion Vec3
}

// Backbone is the sample window of a single residue.
type Backbone [SamplesPerResidue]Sample

// Points returns the sample positions.
func (b *Backbone) Points() [SamplesPerResidue]Vec3 {
	var pts [SamplesPerResidue]Vec3
	for i := range b {
		pts[i] = b[i].Point
	}
	return pts
}

// Normals returns the sample normals.
func (b *Backbone) Normals() [SamplesPerResidue]Vec3 {
	var ns [SamplesPerResidue]Vec3
	for i := range b {
		ns[i] = b[i].Normal
	}
	return ns
}

// Torsions returns the sample torsion (width) vectors.
func (b *Backbone) Torsions() [SamplesPerResidue]Vec3 {
	var ts [SamplesPerResidue]Vec3
	for i := range b {
		ts[i] = b[i].Torsion
	}
	return ts
}

// CalculateBackboneVectors computes the frame at point p from the next curve
// point and the paired torsion point. The returned vectors are normalized.
//
// The torsion point only needs to lie off the tangent line: the final torsion
// vector is re-orthogonalized against the tangent.
func CalculateBackboneVectors(p, next, torsionPoint Vec3) (tangent, normal, torsion Vec3) {
	t := next.Sub(p)
	normal = t.Cross(torsionPoint.Sub(p))
	torsion = normal.Cross(t)
	return t.Normalize(), normal.Normalize(), torsion.Normalize()
}

// sampleAt computes the sample at smoothed index i using i+1 as the tangent
// neighbour.
func sampleAt(points, tors []Vec3, i int) Sample {
	tangent, normal, torsion := CalculateBackboneVectors(points[i], points[i+1], tors[i])
	return Sample{Point: points[i], Tangent: tangent, Normal: normal, Torsion: torsion}
}

package ribbon

import (
	"math"
	"testing"
)

// straightChain returns n turn residues with CA at (i,0,0) and O at (i,1,0).
func straightChain(n int) Chain {
	c := Chain{ID: "S"}
	for i := range n {
		x := float64(i)
		c.Residues = append(c.Residues, Residue{
			Name: "GLY",
			Seq:  i + 1,
			Atoms: []Atom{
				{Name: AlphaCarbonName, Pos: V3(x, 0, 0)},
				{Name: OxygenName, Pos: V3(x, 1, 0)},
			},
		})
	}
	return c
}

// pleatedStrand returns alpha-carbon and oxygen positions of an idealised
// beta strand whose carbonyls alternate sides.
func pleatedStrand(n int) (ca, o []Vec3) {
	for i := range n {
		side := 1.0
		if i%2 == 1 {
			side = -1
		}
		c := V3(3.3*float64(i), 0, 0.9*side)
		ca = append(ca, c)
		o = append(o, c.Add(V3(0.6, 1.24*side, 0)))
	}
	return ca, o
}

// helixTrace returns alpha-carbon and oxygen positions of an idealised
// alpha helix along +X.
func helixTrace(n int) (ca, o []Vec3) {
	const turn = 100 * math.Pi / 180
	for i := range n {
		f := float64(i)
		cos, sin := math.Cos(f*turn), math.Sin(f*turn)
		c := V3(1.5*f, 2.3*cos, 2.3*sin)
		ca = append(ca, c)
		o = append(o, c.Add(V3(1.24, 0.3*cos, 0.3*sin)))
	}
	return ca, o
}

func assertVecNear(t *testing.T, name string, got, want Vec3, eps float64) {
	t.Helper()
	if !got.Approx(want, eps) {
		t.Errorf("%s = %v, want %v (eps %g)", name, got, want, eps)
	}
}

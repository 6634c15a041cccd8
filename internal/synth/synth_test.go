package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gogpu/ribbon"
)

func TestChainLengthAndTags(t *testing.T) {
	c := Chain("A", H(4), T(2), E(3))
	if len(c.Residues) != 9 {
		t.Fatalf("len(Residues) = %d, want 9", len(c.Residues))
	}
	want := []ribbon.SecondaryStructure{
		ribbon.Helix, ribbon.Helix, ribbon.Helix, ribbon.Helix,
		ribbon.Undefined, ribbon.Undefined,
		ribbon.Sheet, ribbon.Sheet, ribbon.Sheet,
	}
	got := Structures(c)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("residue %d structure = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChainSpanJoinDistance(t *testing.T) {
	c := Chain("A", H(3), E(3))
	last, _ := c.Residues[2].AlphaCarbon()
	next, _ := c.Residues[3].AlphaCarbon()
	if d := last.Distance(next); math.Abs(d-caDistance) > 1e-9 {
		t.Errorf("CA distance across span join = %v, want %v", d, caDistance)
	}
}

func TestChainHasBackboneAtoms(t *testing.T) {
	c := Chain("A", T(2), H(5), E(4))
	for i := range c.Residues {
		r := &c.Residues[i]
		if _, ok := r.AlphaCarbon(); !ok {
			t.Errorf("residue %d has no CA", i)
		}
		if _, ok := r.Oxygen(); !ok {
			t.Errorf("residue %d has no O", i)
		}
	}
}

func TestStraight(t *testing.T) {
	c := Straight("S", 5, ribbon.Undefined)
	for i := range c.Residues {
		ca, _ := c.Residues[i].AlphaCarbon()
		o, _ := c.Residues[i].Oxygen()
		if ca != ribbon.V3(float64(i), 0, 0) {
			t.Errorf("CA[%d] = %v", i, ca)
		}
		if o.Sub(ca) != ribbon.V3(0, 1, 0) {
			t.Errorf("O[%d]-CA[%d] = %v, want (0,1,0)", i, i, o.Sub(ca))
		}
	}
}

func TestRandomLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 4, 17, 60} {
		if got := len(Random(rng, "R", n).Residues); got != n {
			t.Errorf("Random(%d) has %d residues", n, got)
		}
	}
}

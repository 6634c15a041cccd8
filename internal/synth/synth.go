// Package synth generates idealised protein backbones.
//
// The coordinates follow textbook geometry (3.8 Å CA-CA distance, 100° and
// 1.5 Å rise per helix residue, pleated strands with alternating carbonyls)
// closely enough to exercise the ribbon builder without reading structure
// files.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gogpu/ribbon"
)

// Geometry constants in Ångström and radians.
const (
	caDistance  = 3.8
	helixRadius = 2.3
	helixRise   = 1.5
	helixTurn   = 100 * math.Pi / 180
	strandRise  = 3.3
	strandPleat = 0.9
	carbonylLen = 1.24
)

// Span is a run of residues of one secondary structure.
type Span struct {
	Structure ribbon.SecondaryStructure
	Length    int
}

// H, E and T are shorthands for helix, strand and turn spans.
func H(n int) Span { return Span{Structure: ribbon.Helix, Length: n} }
func E(n int) Span { return Span{Structure: ribbon.Sheet, Length: n} }
func T(n int) Span { return Span{Structure: ribbon.Undefined, Length: n} }

// Chain lays out the spans one after another along the +X axis.
func Chain(id string, spans ...Span) ribbon.Chain {
	c := ribbon.Chain{ID: id}
	var cursor ribbon.Vec3
	for _, span := range spans {
		ca, o := spanGeometry(span)
		if len(ca) == 0 {
			continue
		}
		shift := cursor.Sub(ca[0])
		if len(c.Residues) > 0 {
			shift = shift.Add(ribbon.V3(caDistance, 0, 0))
		}
		for i := range ca {
			c.Residues = append(c.Residues, residue(len(c.Residues)+1, span.Structure,
				ca[i].Add(shift), o[i].Add(shift)))
		}
		cursor = c.Residues[len(c.Residues)-1].Atoms[0].Pos
	}
	return c
}

// Straight returns n residues with alpha carbons at (i, 0, 0) and oxygens
// at (i, 1, 0), all of the given structure.
func Straight(id string, n int, s ribbon.SecondaryStructure) ribbon.Chain {
	c := ribbon.Chain{ID: id}
	for i := range n {
		x := float64(i)
		c.Residues = append(c.Residues, residue(i+1, s, ribbon.V3(x, 0, 0), ribbon.V3(x, 1, 0)))
	}
	return c
}

// Random returns a chain of n residues made of random spans of 1 to 8
// residues each.
func Random(rng *rand.Rand, id string, n int) ribbon.Chain {
	structures := []ribbon.SecondaryStructure{ribbon.Undefined, ribbon.Helix, ribbon.Sheet}
	var spans []Span
	for left := n; left > 0; {
		l := min(1+rng.Intn(8), left)
		spans = append(spans, Span{Structure: structures[rng.Intn(len(structures))], Length: l})
		left -= l
	}
	return Chain(id, spans...)
}

// Structures returns the structure tags of a chain in order.
func Structures(c ribbon.Chain) []ribbon.SecondaryStructure {
	out := make([]ribbon.SecondaryStructure, len(c.Residues))
	for i := range c.Residues {
		out[i] = c.Residues[i].Structure
	}
	return out
}

func residue(seq int, s ribbon.SecondaryStructure, ca, o ribbon.Vec3) ribbon.Residue {
	return ribbon.Residue{
		Name:      fmt.Sprintf("GLY%d", seq),
		Seq:       seq,
		Structure: s,
		Atoms: []ribbon.Atom{
			{Name: ribbon.AlphaCarbonName, Pos: ca},
			{Name: ribbon.OxygenName, Pos: o},
		},
	}
}

// spanGeometry returns alpha-carbon and oxygen positions of a span in local
// coordinates starting near the origin and running along +X.
func spanGeometry(s Span) (ca, o []ribbon.Vec3) {
	ca = make([]ribbon.Vec3, s.Length)
	o = make([]ribbon.Vec3, s.Length)
	for i := range s.Length {
		f := float64(i)
		switch s.Structure {
		case ribbon.Helix:
			cos, sin := math.Cos(f*helixTurn), math.Sin(f*helixTurn)
			ca[i] = ribbon.V3(f*helixRise, helixRadius*cos, helixRadius*sin)
			// Helix carbonyls point along the axis towards the C terminus.
			o[i] = ca[i].Add(ribbon.V3(carbonylLen, 0.3*cos, 0.3*sin))
		case ribbon.Sheet:
			side := 1.0
			if i%2 == 1 {
				side = -1
			}
			ca[i] = ribbon.V3(f*strandRise, 0, side*strandPleat)
			// Strand carbonyls alternate sides in the sheet plane.
			o[i] = ca[i].Add(ribbon.V3(0.6, side*carbonylLen, 0))
		default:
			ca[i] = ribbon.V3(f*caDistance*0.9, 0.8*math.Sin(f*0.9), 0.6*math.Cos(f*0.7))
			o[i] = ca[i].Add(ribbon.V3(0.4, carbonylLen*math.Cos(f*0.5), carbonylLen*math.Sin(f*0.5)))
		}
	}
	return ca, o
}

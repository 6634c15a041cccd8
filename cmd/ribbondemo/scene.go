package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/ribbon"
	"github.com/gogpu/ribbon/internal/style"
	"github.com/gogpu/ribbon/internal/synth"
)

// parseChain turns a span list such as "T3 H14 T4 E6" into a synthetic
// chain. H is helix, E is strand and T is turn.
func parseChain(id, spec string) (ribbon.Chain, error) {
	var spans []synth.Span
	fields := strings.FieldsFunc(spec, func(r rune) bool { return unicode.IsSpace(r) || r == '-' })
	for _, f := range fields {
		if len(f) < 2 {
			return ribbon.Chain{}, fmt.Errorf("chain %s: bad span %q", id, f)
		}
		n, err := strconv.Atoi(f[1:])
		if err != nil || n <= 0 {
			return ribbon.Chain{}, fmt.Errorf("chain %s: bad span length in %q", id, f)
		}
		switch unicode.ToUpper(rune(f[0])) {
		case 'H':
			spans = append(spans, synth.H(n))
		case 'E':
			spans = append(spans, synth.E(n))
		case 'T':
			spans = append(spans, synth.T(n))
		default:
			return ribbon.Chain{}, fmt.Errorf("chain %s: unknown structure %q", id, f[:1])
		}
	}
	return synth.Chain(id, spans...), nil
}

// camera is an orthographic view: rotation followed by scale and offset.
type camera struct {
	rot    f64.Mat3
	scale  float64
	offset [2]float64
}

// rotation returns the row-major matrix for a yaw about Y followed by a
// pitch about X, both in degrees.
func rotation(yawDeg, pitchDeg float64) f64.Mat3 {
	y := yawDeg * math.Pi / 180
	p := pitchDeg * math.Pi / 180
	cy, sy := math.Cos(y), math.Sin(y)
	cp, sp := math.Cos(p), math.Sin(p)
	return f64.Mat3{
		cy, 0, sy,
		sp * sy, cp, -sp * cy,
		-cp * sy, sp, cp * cy,
	}
}

func rotate(m f64.Mat3, v ribbon.Vec3) ribbon.Vec3 {
	return ribbon.Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// project maps a model point to image coordinates and view depth. Larger
// depth is closer to the viewer.
func (c *camera) project(v ribbon.Vec3) (x, y, depth float64) {
	r := rotate(c.rot, v)
	return r.X*c.scale + c.offset[0], -r.Y*c.scale + c.offset[1], r.Z
}

// fit chooses scale and offset so that all points fill the image with a
// margin of the given fraction on each side.
func fit(rot f64.Mat3, pts []ribbon.Vec3, width, height int, margin float64) camera {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		r := rotate(rot, p)
		minX, maxX = math.Min(minX, r.X), math.Max(maxX, r.X)
		minY, maxY = math.Min(minY, r.Y), math.Max(maxY, r.Y)
	}

	w, h := float64(width), float64(height)
	spanX := math.Max(maxX-minX, 1e-6)
	spanY := math.Max(maxY-minY, 1e-6)
	scale := math.Min(w*(1-2*margin)/spanX, h*(1-2*margin)/spanY)
	return camera{
		rot:   rot,
		scale: scale,
		offset: [2]float64{
			w/2 - scale*(minX+maxX)/2,
			h/2 + scale*(minY+maxY)/2,
		},
	}
}

// quad is one ribbon face between two consecutive backbone samples.
type quad struct {
	corners [4]ribbon.Vec3
	normal  ribbon.Vec3
	color   style.RGB
	depth   float64
}

// ribbonQuads extrudes a flat ribbon along every residue of a curve.
// Strands that end a segment get an arrowhead that tapers from the arrow
// width to a point over the residue.
func ribbonQuads(c *ribbon.Curve, st *style.Style) ([]quad, error) {
	var quads []quad
	for _, id := range c.Residues() {
		bb, err := c.Backbone(id)
		if err != nil {
			return nil, err
		}
		ss, err := c.Structure(id)
		if err != nil {
			return nil, err
		}
		part := st.For(ss)
		arrow := ss == ribbon.Sheet && c.IsStructureEnd(id)

		halfWidth := func(k int) float64 {
			w := part.Width / 2
			if arrow {
				t := float64(k) / float64(ribbon.SamplesPerResidue-1)
				w *= part.Arrow * (1 - t)
			}
			return w
		}

		for k := 0; k < ribbon.SamplesPerResidue-1; k++ {
			a, b := bb[k], bb[k+1]
			wa, wb := halfWidth(k), halfWidth(k+1)
			quads = append(quads, quad{
				corners: [4]ribbon.Vec3{
					a.Point.Add(a.Torsion.Mul(wa)),
					b.Point.Add(b.Torsion.Mul(wb)),
					b.Point.Sub(b.Torsion.Mul(wb)),
					a.Point.Sub(a.Torsion.Mul(wa)),
				},
				normal: a.Normal,
				color:  part.Color,
			})
		}
	}
	return quads, nil
}

// sortByDepth orders quads back to front for the painter's algorithm.
func sortByDepth(quads []quad, cam *camera) {
	for i := range quads {
		var d float64
		for _, p := range quads[i].corners {
			_, _, z := cam.project(p)
			d += z
		}
		quads[i].depth = d / 4
	}
	sort.SliceStable(quads, func(i, j int) bool { return quads[i].depth < quads[j].depth })
}

// shade scales a color by how directly the face points at the viewer.
func shade(c style.RGB, normal ribbon.Vec3, rot f64.Mat3) style.RGB {
	n := rotate(rot, normal)
	k := 0.35 + 0.65*math.Abs(n.Z)
	return style.RGB{c[0] * k, c[1] * k, c[2] * k}
}

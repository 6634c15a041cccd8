package ribbon

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSmoothListCount(t *testing.T) {
	for m := 3; m <= 12; m++ {
		ca, _ := helixTrace(m)
		if got := len(SmoothList(ca)); got != 2*m-1 {
			t.Errorf("len(SmoothList(%d points)) = %d, want %d", m, got, 2*m-1)
		}
	}
}

func TestSmoothListKeepsOriginalPoints(t *testing.T) {
	ca, _ := helixTrace(9)
	out := SmoothList(ca)
	for i, p := range ca {
		if out[2*i] != p {
			t.Errorf("out[%d] = %v, want original %v", 2*i, out[2*i], p)
		}
	}
}

func TestSmoothListShortInput(t *testing.T) {
	tests := []struct {
		name string
		in   []Vec3
	}{
		{"empty", nil},
		{"one", []Vec3{V3(1, 2, 3)}},
		{"two", []Vec3{V3(0, 0, 0), V3(1, 0, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := SmoothList(tt.in)
			if diff := cmp.Diff(tt.in, out, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("SmoothList mismatch (-want +got):\n%s", diff)
			}
			if len(tt.in) > 0 && &out[0] == &tt.in[0] {
				t.Error("SmoothList returned the input slice, want a copy")
			}
		})
	}
}

func TestSmoothListCollinearUsesMidpoints(t *testing.T) {
	in := []Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(3, 0, 0), V3(4, 0, 0)}
	want := []Vec3{
		V3(0, 0, 0), V3(0.5, 0, 0), V3(1, 0, 0), V3(2, 0, 0),
		V3(3, 0, 0), V3(3.5, 0, 0), V3(4, 0, 0),
	}
	if diff := cmp.Diff(want, SmoothList(in), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("SmoothList mismatch (-want +got):\n%s", diff)
	}
}

func TestSmoothListRoundsOntoCircle(t *testing.T) {
	const radius = 10.0
	center := V3(1, -2, 3)
	at := func(deg float64) Vec3 {
		rad := deg * math.Pi / 180
		return center.Add(V3(radius*math.Cos(rad), radius*math.Sin(rad), 0))
	}

	in := []Vec3{at(0), at(60), at(120), at(180)}
	want := []Vec3{at(0), at(30), at(60), at(90), at(120), at(150), at(180)}

	if diff := cmp.Diff(want, SmoothList(in), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("SmoothList mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundCornerNearlyCollinear(t *testing.T) {
	// |det| is about 4e-6, well below the collinear limit.
	p1, p2, p3 := V3(-1, 0, 0), V3(0, 1e-3, 0), V3(1, 0, 0)
	p12, p23 := roundCorner(p1, p2, p3)
	assertVecNear(t, "p12", p12, p2.Midpoint(p1), 1e-15)
	assertVecNear(t, "p23", p23, p2.Midpoint(p3), 1e-15)
}

func TestRoundCornerRightAngle(t *testing.T) {
	// Circle through (1,0), (0,0), (0,1) has center (0.5,0.5).
	p12, p23 := roundCorner(V3(1, 0, 0), V3(0, 0, 0), V3(0, 1, 0))
	r := math.Sqrt(0.5)
	assertVecNear(t, "p12", p12, V3(0.5, 0.5-r, 0), 1e-12)
	assertVecNear(t, "p23", p23, V3(0.5-r, 0.5, 0), 1e-12)
}

func TestProjectOnCircleAtCenter(t *testing.T) {
	c := V3(1, 1, 1)
	if got := projectOnCircle(c, c, 5); got != c {
		t.Errorf("projectOnCircle(center) = %v, want %v", got, c)
	}
}

func TestSmoothPassesCount(t *testing.T) {
	ca, _ := helixTrace(6)
	out := smoothPasses(ca, SmoothPasses)
	want := (len(ca)-1)*(1<<SmoothPasses) + 1
	if len(out) != want {
		t.Errorf("len = %d, want %d", len(out), want)
	}
}

func BenchmarkSmoothList(b *testing.B) {
	ca, _ := helixTrace(300)
	b.ReportAllocs()
	for b.Loop() {
		_ = SmoothList(ca)
	}
}

package ribbon_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/ribbon"
)

func ExampleBuild() {
	chain := ribbon.Chain{ID: "A"}
	for i := range 5 {
		x := float64(i)
		chain.Residues = append(chain.Residues, ribbon.Residue{
			Name: "ALA",
			Seq:  i + 1,
			Atoms: []ribbon.Atom{
				{Name: "CA", Pos: ribbon.V3(x, 0, 0)},
				{Name: "O", Pos: ribbon.V3(x, 1, 0)},
			},
		})
	}

	curve, err := ribbon.Build(chain)
	if err != nil {
		fmt.Println(err)
		return
	}

	bb, _ := curve.Backbone(2)
	s := bb[0]
	fmt.Printf("samples: %d\n", len(bb))
	fmt.Printf("point: (%.3f, %.3f, %.3f)\n", s.Point.X, s.Point.Y, s.Point.Z)
	fmt.Printf("tangent: (%.1f, %.1f, %.1f)\n", s.Tangent.X, s.Tangent.Y, s.Tangent.Z)
	fmt.Printf("width axis: (%.1f, %.1f, %.1f)\n", s.Torsion.X, s.Torsion.Y, s.Torsion.Z)
	fmt.Println("begin:", curve.IsStructureBegin(0), "end:", curve.IsStructureEnd(4))
	// Output:
	// samples: 9
	// point: (1.500, 0.000, 0.000)
	// tangent: (1.0, 0.0, 0.0)
	// width axis: (0.0, 1.0, 0.0)
	// begin: true end: true
}

func ExampleBuild_insufficient() {
	_, err := ribbon.Build(ribbon.Chain{ID: "B"})
	fmt.Println(errors.Is(err, ribbon.ErrInsufficientResidues))
	// Output: true
}

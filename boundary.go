package ribbon

// Segment is a maximal run of consecutive curve residues sharing one
// secondary structure. First and Last are inclusive.
type Segment struct {
	Structure   SecondaryStructure
	First, Last ResidueID
}

// Boundary reports whether a residue starts and/or ends a structure segment.
// Neighbours are taken in chain order among the residues of the curve; the
// first and last of them always start and end a segment.
func (c *Curve) Boundary(id ResidueID) (begin, end bool, err error) {
	slot, err := c.slot(id)
	if err != nil {
		return false, false, err
	}
	s := c.structure[slot]
	begin = slot == 0 || c.structure[slot-1] != s
	end = slot == len(c.structure)-1 || c.structure[slot+1] != s
	return begin, end, nil
}

// IsStructureBegin reports whether the residue starts a structure segment.
// It panics if the residue has no backbone geometry or c was not built;
// use Boundary to get an error instead.
func (c *Curve) IsStructureBegin(id ResidueID) bool {
	begin, _, err := c.Boundary(id)
	if err != nil {
		panic(err)
	}
	return begin
}

// IsStructureEnd reports whether the residue ends a structure segment.
// It panics under the same conditions as IsStructureBegin.
func (c *Curve) IsStructureEnd(id ResidueID) bool {
	_, end, err := c.Boundary(id)
	if err != nil {
		panic(err)
	}
	return end
}

// Segments returns the structure segments of the curve in chain order.
func (c *Curve) Segments() []Segment {
	if !c.IsSuccessful() {
		return nil
	}
	var segs []Segment
	for slot, s := range c.structure {
		if slot == 0 || c.structure[slot-1] != s {
			segs = append(segs, Segment{Structure: s, First: c.ids[slot]})
		}
		segs[len(segs)-1].Last = c.ids[slot]
	}
	return segs
}

package ribbon

import "fmt"

// Curve is the smoothed backbone of one chain.
//
// A Curve is immutable once Build returns it and may be queried from
// multiple goroutines. Residues are addressed by their ResidueID in the
// source chain; internally each usable residue owns a dense slot and all
// geometry lives in flat arrays indexed by slot.
type Curve struct {
	chainID  string
	revision uint64

	// slots maps ResidueID to slot, -1 for residues without backbone atoms.
	slots []int32
	// ids maps slot back to ResidueID.
	ids       []ResidueID
	structure []SecondaryStructure

	// points and tors are the smoothed centerline and torsion points.
	// They always have the same length: residueStride*len(ids) + 1.
	points []Vec3
	tors   []Vec3
}

// Build computes the ribbon curve for a chain snapshot.
//
// Residues missing a CA or O atom are left out of the curve. If fewer than
// MinResidues remain, Build returns a nil Curve and an error wrapping
// ErrInsufficientResidues; there is no partial result.
func Build(chain Chain) (*Curve, error) {
	log := Logger()

	c := &Curve{
		chainID:  chain.ID,
		revision: chain.Revision,
		slots:    make([]int32, len(chain.Residues)),
	}
	ca := make([]Vec3, 0, len(chain.Residues))
	o := make([]Vec3, 0, len(chain.Residues))

	for i := range chain.Residues {
		r := &chain.Residues[i]
		caPos, okCA := r.AlphaCarbon()
		oPos, okO := r.Oxygen()
		if !okCA || !okO {
			c.slots[i] = -1
			log.Debug("ribbon: residue without backbone skipped",
				"chain", chain.ID, "residue", i, "name", r.Name, "seq", r.Seq)
			continue
		}
		c.slots[i] = int32(len(c.ids))
		c.ids = append(c.ids, ResidueID(i))
		c.structure = append(c.structure, r.Structure)
		ca = append(ca, caPos)
		o = append(o, oPos)
	}

	if len(c.ids) < MinResidues {
		log.Debug("ribbon: chain too short for a curve",
			"chain", chain.ID, "usable", len(c.ids), "residues", len(chain.Residues))
		return nil, fmt.Errorf("%w: chain %q has %d, need %d",
			ErrInsufficientResidues, chain.ID, len(c.ids), MinResidues)
	}

	ctrl, tors := controlPoints(ca, o)
	c.points = smoothPasses(ctrl, SmoothPasses)
	c.tors = smoothPasses(tors, SmoothPasses)

	log.Debug("ribbon: curve built",
		"chain", chain.ID, "revision", chain.Revision,
		"residues", len(c.ids), "controls", len(ctrl), "samples", len(c.points))
	return c, nil
}

// IsSuccessful reports whether c holds a built curve. It is safe to call on
// the nil Curve returned by a failed Build.
func (c *Curve) IsSuccessful() bool {
	return c != nil && len(c.points) > 0
}

// ChainID returns the ID of the source chain.
func (c *Curve) ChainID() string { return c.chainID }

// Revision returns the revision of the source chain snapshot.
func (c *Curve) Revision() uint64 { return c.revision }

// Len returns the number of residues with backbone geometry.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Residues returns the IDs of all residues with backbone geometry in chain
// order.
func (c *Curve) Residues() []ResidueID {
	if c == nil {
		return nil
	}
	out := make([]ResidueID, len(c.ids))
	copy(out, c.ids)
	return out
}

// Contains reports whether the residue has backbone geometry.
func (c *Curve) Contains(id ResidueID) bool {
	_, err := c.slot(id)
	return err == nil
}

// Structure returns the secondary structure recorded for a residue.
func (c *Curve) Structure(id ResidueID) (SecondaryStructure, error) {
	slot, err := c.slot(id)
	if err != nil {
		return Undefined, err
	}
	return c.structure[slot], nil
}

// Points returns a copy of the smoothed centerline.
func (c *Curve) Points() []Vec3 {
	if c == nil {
		return nil
	}
	out := make([]Vec3, len(c.points))
	copy(out, c.points)
	return out
}

// Torsions returns a copy of the smoothed torsion points, index-aligned with
// Points.
func (c *Curve) Torsions() []Vec3 {
	if c == nil {
		return nil
	}
	out := make([]Vec3, len(c.tors))
	copy(out, c.tors)
	return out
}

// Backbone returns the SamplesPerResidue samples covering a residue.
//
// The last sample of a residue is the first sample of the next one. At the
// very end of the curve there is no following point to take a tangent from,
// so the final sample repeats the frame of the one before it.
func (c *Curve) Backbone(id ResidueID) (Backbone, error) {
	var b Backbone
	slot, err := c.slot(id)
	if err != nil {
		return b, err
	}

	first := slot * residueStride
	for k := range residueStride {
		b[k] = sampleAt(c.points, c.tors, first+k)
	}

	end := first + residueStride
	if end == len(c.points)-1 {
		s := b[residueStride-1]
		s.Point = c.points[end]
		b[residueStride] = s
	} else {
		b[residueStride] = sampleAt(c.points, c.tors, end)
	}
	return b, nil
}

// slot resolves a residue to its dense index.
func (c *Curve) slot(id ResidueID) (int, error) {
	if !c.IsSuccessful() {
		return 0, ErrNotBuilt
	}
	if id < 0 || int(id) >= len(c.slots) || c.slots[id] < 0 {
		return 0, fmt.Errorf("%w: %d in chain %q", ErrUnknownResidue, id, c.chainID)
	}
	return int(c.slots[id]), nil
}

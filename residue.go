package ribbon

// SecondaryStructure classifies the local fold of a residue.
type SecondaryStructure uint8

const (
	// Undefined marks residues outside helices and sheets. They are drawn as
	// turns (thin tubes) in cartoon rendering.
	Undefined SecondaryStructure = iota
	// Helix marks residues in an alpha helix.
	Helix
	// Sheet marks residues in a beta strand.
	Sheet
)

// String returns the lower-case name of the classification.
func (s SecondaryStructure) String() string {
	switch s {
	case Helix:
		return "helix"
	case Sheet:
		return "sheet"
	default:
		return "turn"
	}
}

// Backbone atom names used for curve construction.
const (
	AlphaCarbonName = "CA"
	OxygenName      = "O"
)

// Atom is a named atom position.
type Atom struct {
	Name string
	Pos  Vec3
}

// Residue is one amino-acid residue of a chain.
type Residue struct {
	// Name is the three-letter residue code, e.g. "ALA".
	Name string
	// Seq is the author sequence number. It is informational only;
	// ordering is given by the position in Chain.Residues.
	Seq       int
	Structure SecondaryStructure
	Atoms     []Atom
}

// Atom returns the position of the first atom with the given name.
func (r *Residue) Atom(name string) (Vec3, bool) {
	for i := range r.Atoms {
		if r.Atoms[i].Name == name {
			return r.Atoms[i].Pos, true
		}
	}
	return Vec3{}, false
}

// AlphaCarbon returns the position of the CA atom.
func (r *Residue) AlphaCarbon() (Vec3, bool) {
	return r.Atom(AlphaCarbonName)
}

// Oxygen returns the position of the carbonyl O atom.
func (r *Residue) Oxygen() (Vec3, bool) {
	return r.Atom(OxygenName)
}

// Chain is an ordered snapshot of residues.
//
// A Chain must not be mutated while Build runs. Owners that change residues
// bump Revision and rebuild; a Curve never follows changes of its source.
type Chain struct {
	ID       string
	Revision uint64
	Residues []Residue
}

// ResidueID identifies a residue by its position in Chain.Residues.
type ResidueID int

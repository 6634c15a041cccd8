package ribbon

import "errors"

var (
	// ErrInsufficientResidues is returned by Build when a chain has fewer than
	// MinResidues residues carrying both a CA and an O atom.
	ErrInsufficientResidues = errors.New("ribbon: insufficient backbone residues")

	// ErrUnknownResidue reports a query for a residue that has no backbone
	// geometry in the curve: it was out of range or lacked a required atom.
	ErrUnknownResidue = errors.New("ribbon: residue not in curve")

	// ErrNotBuilt reports a query on a curve whose build was unsuccessful.
	ErrNotBuilt = errors.New("ribbon: curve not built")
)

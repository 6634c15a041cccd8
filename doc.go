// Package ribbon computes the backbone curve used for cartoon rendering of
// protein chains.
//
// # Overview
//
// A cartoon draws each chain as a ribbon that follows its alpha carbons:
// flat arrows for beta strands, wide coils for helices and thin tubes for
// everything else. All three shapes are extruded along the same curve. This
// package builds that curve and the local frame at each of its points; the
// cross-section extrusion, capping and shading belong to the caller.
//
// # Quick Start
//
//	curve, err := ribbon.Build(chain)
//	if err != nil {
//	    // errors.Is(err, ribbon.ErrInsufficientResidues): skip this chain
//	}
//	for _, id := range curve.Residues() {
//	    bb, _ := curve.Backbone(id)
//	    capStart := curve.IsStructureBegin(id)
//	    capEnd := curve.IsStructureEnd(id)
//	    // extrude bb ...
//	}
//
// # Algorithm
//
// Build runs in three stages:
//
//  1. One control point is placed between each pair of consecutive alpha
//     carbons, together with a torsion point one Ångström away along the
//     direction in the peptide plane that is perpendicular to the chain.
//     The torsion direction is flipped whenever it would point against the
//     previous one, so the ribbon never turns over between residues.
//  2. Both point lists are smoothed by SmoothList, SmoothPasses times.
//     Every pass inserts a point on each chord, pushed out onto the circle
//     through the neighbouring corner.
//  3. Each residue is mapped to a window of SamplesPerResidue points of the
//     smoothed curve and a frame is computed for each of them with
//     CalculateBackboneVectors.
//
// # Residue Identity
//
// Residues are addressed by their index in Chain.Residues (ResidueID).
// Residues lacking a CA or O atom get no geometry; querying them returns
// ErrUnknownResidue. A Curve never changes after Build: rebuild it when the
// chain changes. The cache package keeps built curves keyed by chain ID and
// revision.
//
// # Concurrency
//
// Build is pure and synchronous. A built Curve is read-only and safe for
// concurrent use. BuildAll builds independent chains in parallel.
package ribbon

package engine

import "github.com/MaierG74/cutlist/internal/model"

// allowedOrientations implements the grain policy. A sheet's grain runs
// along its length axis by convention, so grain "length" pins the part
// unrotated, "width" forces the 90 degree rotation, and "any" permits
// both. Unknown or empty grain values behave as "any".
func allowedOrientations(g model.Grain) (normal, rotated bool) {
	switch g {
	case model.GrainLength:
		return true, false
	case model.GrainWidth:
		return false, true
	default:
		return true, true
	}
}

// orientedDims returns the placed (w, h) of a unit for the given
// orientation: w runs along the sheet length axis.
func orientedDims(u model.PartUnit, rot bool) (w, h float64) {
	if rot {
		return u.Width, u.Length
	}
	return u.Length, u.Width
}

// preferredOrientation picks the orientation a packer should try first
// for a unit: the single grain-permitted one, or landscape (longer edge
// along the sheet length) for unconstrained parts, which keeps strips
// short and leftover bands wide.
func preferredOrientation(u model.PartUnit) bool {
	normal, rotated := allowedOrientations(u.Grain)
	if normal && !rotated {
		return false
	}
	if rotated && !normal {
		return true
	}
	return u.Width > u.Length
}

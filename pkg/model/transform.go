package model

// Transform is the placement an instance applies to its definition:
// a row-major 4x4 affine matrix with a unit tag.
//
// Transforms are plain values. Chains accumulated during traversal are
// copied at every branch point, so holding on to a yielded chain is safe.
type Transform struct {
	Matrix [16]float64 `json:"matrix"`
	Units  string      `json:"units,omitempty"`
}

// Identity returns the identity placement.
func Identity() Transform {
	return Transform{Matrix: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Translation returns a placement offsetting by (x, y, z).
func Translation(x, y, z float64) Transform {
	t := Identity()
	t.Matrix[3] = x
	t.Matrix[7] = y
	t.Matrix[11] = z
	return t
}

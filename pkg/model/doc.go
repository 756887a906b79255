// Package model defines the design-model graph types consumed by the
// traversal and rules packages: the generic Node, its instance variant
// (a node placing a shared definition at a transformed location), and the
// Transform placement value.
//
// All node data is read-only input for this module. Accessors resolve
// absent attributes to documented defaults instead of returning errors,
// and structural predicates (container, instance, leaf) are derived from
// the data rather than stored tags.
package model

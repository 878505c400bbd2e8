// Package kernel implements the geometry engine behind the public dataset
// facade: cell taxonomy and decomposition tables, implicit-function clipping,
// marching-tetrahedra iso-extraction, segment chaining and connected
// components, and the low-level geometric predicates these need.
//
// The kernel deliberately knows nothing about named attribute arrays or
// dataset variants. Topological results are expressed in terms of the input
// vertex indices plus parametric edge points (see PointMap), so the facade
// layer owns all array interpolation and name bookkeeping.
package kernel

// Package fractal builds recursive solids (Menger sponge, Sierpinski
// tetrahedron, nested torus rings) as an immutable arena of nodes.
//
// A tree is produced in a single breadth-first pass: every depth level is a
// contiguous range of the arena and the children of a node are contiguous
// too, so renderers can reveal the solid level by level by walking index
// ranges instead of following pointers.
package fractal

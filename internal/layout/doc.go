// Package layout computes positioned box trees for wireframe documents.
//
// It implements six layout algorithms (vertical and horizontal stacks, grid
// with spanning, dock, canvas, and scroll) over float64 SVG-space geometry.
// The main entry point is [Calculate], which walks an AST node depth-first
// and returns a transient [BoxNode] tree; boxes are recomputed per render and
// never cached.
//
// Sizes fall back to per-control defaults, and text extents use an
// average-character-width heuristic rather than font metrics. That is an
// intentional approximation: the output is a mockup, not typography.
package layout

// Package pointfield generates procedural point clouds: a spiral "galaxy"
// of branches with radial color gradient, and a uniform scatter field.
//
// Generation is pure. Randomness comes from an injected RandomSource, so
// identical parameters and identically seeded sources produce bit-identical
// buffers.
package pointfield

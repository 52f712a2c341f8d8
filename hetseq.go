// Package hetseq holds the module version. The sequences themselves live in
// the list (heap-linked) and array (inline, fixed capacity) packages; their
// layout is described by package shape.
package hetseq

// Version of the module.
const Version = "0.1.0"

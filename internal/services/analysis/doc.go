// Package analysis runs the sequence pipeline: validation, weight,
// fragmentation, structure prediction and motif scanning.
//
// A Service carries its length ceiling explicitly; there is no package
// state, so services with different ceilings can coexist.
package analysis

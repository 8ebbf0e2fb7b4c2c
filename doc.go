// Package densemat is a reusable dense-matrix primitive for Go callers that
// build their own linear algebra on top.
//
// What is in it?
//
//	A single package, matrix/, with:
//		• Dense: fixed-shape, mutable-content row-major float64 matrix
//		• Bounds-checked element access and deep copies
//		• Addition, subtraction, multiplication, each into a new matrix
//		• Exact equality plus a value hash that agrees with it
//		• Explicit copy or borrow construction over caller data
//		• gonum interop for when you outgrow it
//
// What is NOT in it?
//
//	Determinant, inverse, transpose, decompositions, sparse storage,
//	broadcasting, tolerance-based comparison, parallel kernels. Use gonum.
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	B, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//	C, _ := A.Multiply(B) // [[19, 22], [43, 50]]
//
//	go get github.com/katalvlaran/densemat
package densemat

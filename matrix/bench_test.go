// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkB bool
	sinkU uint64
)

func benchPair(b *testing.B, n int, s1, s2 int64) (*matrix.Dense, *matrix.Dense) {
	b.Helper()
	A := MustDense(b, n, n)
	B := MustDense(b, n, n)
	RandomFill(b, A, s1)
	RandomFill(b, B, s2)

	return A, B
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchPair(b, n, 1337, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchPair(b, n, 11, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sub(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchPair(b, n, 5, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul_Fallback(b *testing.B) {
	b.ReportAllocs()
	n := benchSizes[0]
	A, B := benchPair(b, n, 7, 8)
	wrapped := hide{A}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Mul(wrapped, B)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, _ := benchPair(b, n, 9, 10)
			C := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = matrix.Equal(A, C)
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, _ := benchPair(b, n, 12, 13)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkU = A.Hash()
			}
		})
	}
}

// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/clonemaze/gridgraph"
	"github.com/katalvlaran/clonemaze/prim_kruskal"
)

// BenchmarkKruskal measures a fully open 60×60 maze.
func BenchmarkKruskal(b *testing.B) {
	g := randomGrid(60, 60, 100, 50, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the same maze, rooted at the top-left corner.
func BenchmarkPrim(b *testing.B) {
	g := randomGrid(60, 60, 100, 50, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, gridgraph.C(0, 0))
	}
}

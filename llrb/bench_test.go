package llrb_test

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/mikenye/tangotree/llrb"
)

func BenchmarkLLRB_Insert(b *testing.B) {
	root := llrb.Nil()
	i := 0
	for b.Loop() {
		root = llrb.Insert(root, i)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_Insert(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	i := 0
	for b.Loop() {
		tree.Put(i, struct{}{})
		i++
	}
}

func BenchmarkLLRB_SearchDelete(b *testing.B) {
	root := llrb.Nil()
	for i := 0; i <= 100_000; i++ {
		root = llrb.Insert(root, i)
	}
	i := 0
	for b.Loop() {
		root = llrb.Remove(root, i)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_SearchDelete(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for i := 0; i <= 100_000; i++ {
		tree.Put(i, struct{}{})
	}
	i := 0
	for b.Loop() {
		tree.Remove(i)
		i++
	}
}

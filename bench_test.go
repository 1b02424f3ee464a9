package rcslice

import (
	"bytes"
	"testing"
)

func benchView() *View[byte] {
	return NewView[byte](NewVector(bytes.Repeat([]byte("x"), 4096)), All())
}

func BenchmarkViewRefFree(b *testing.B) {
	v := benchView()
	defer v.Free()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Ref().Free()
	}
}

func BenchmarkLocalViewRefFree(b *testing.B) {
	v := NewLocalView[byte](NewVector(bytes.Repeat([]byte("x"), 4096)), All())
	defer v.Free()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Ref().Free()
	}
}

func BenchmarkViewData(b *testing.B) {
	v := benchView()
	defer v.Free()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Data()
	}
}

func BenchmarkViewCopy(b *testing.B) {
	v := benchView()
	defer v.Free()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Copy()
	}
}

func BenchmarkSplitAt(b *testing.B) {
	v := benchView()
	defer v.Free()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		left, right := v.SplitAt(2048)
		left.Free()
		right.Free()
	}
}

func BenchmarkSum64(b *testing.B) {
	v := benchView()
	defer v.Free()
	b.ReportAllocs()
	b.SetBytes(int64(v.Len()))
	for i := 0; i < b.N; i++ {
		_ = Sum64(v)
	}
}

func BenchmarkPooledBytes(b *testing.B) {
	pool := DefaultBufferPool()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := PooledBytes(pool, 4096)
		v.Free()
	}
}

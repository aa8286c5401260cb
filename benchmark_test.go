package pixsort

import (
	"fmt"
	"testing"
)

func benchmarkPixmap(w, h int) *Pixmap {
	return randomPixmap(w, h, 1234)
}

func BenchmarkSort(b *testing.B) {
	src := benchmarkPixmap(512, 512)
	for _, mode := range []Mode{ModeWhite, ModeBlack, ModeBright, ModeDark} {
		b.Run(mode.String(), func(b *testing.B) {
			cfg := DefaultConfig(mode)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Sort(src, cfg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSortWorkers(b *testing.B) {
	src := benchmarkPixmap(1024, 1024)
	cfg := DefaultConfig(ModeBright)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers-%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Sort(src, cfg, WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPack(b *testing.B) {
	src := benchmarkPixmap(512, 512)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		packed := make([]int32, src.width*src.height)
		for i := range packed {
			d := src.data[i*4:]
			packed[i] = Pack(d[0], d[1], d[2])
		}
	}
}

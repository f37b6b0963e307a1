package recursive

import (
	"fmt"
	"testing"
)

func benchCoeffs(order int) (num, den []float32) {
	num = make([]float32, order+1)
	den = make([]float32, order+1)
	den[0] = 1
	for i := range num {
		num[i] = 1.0 / float32(order+1)
	}
	return num, den
}

func BenchmarkProcessSample(b *testing.B) {
	for _, order := range []int{1, 4, 16, 64} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			num, den := benchCoeffs(order)
			f, err := New(num, den)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			x := float32(1)
			for b.Loop() {
				x = f.ProcessSample(x)
			}
			_ = x
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, order := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			num, den := benchCoeffs(order)
			f, err := New(num, den)
			if err != nil {
				b.Fatal(err)
			}

			buf := make([]float32, 1024)
			for i := range buf {
				buf[i] = float32(i) * 0.001
			}

			b.SetBytes(1024 * 4)
			b.ReportAllocs()
			for b.Loop() {
				f.ProcessBlock(buf)
			}
		})
	}
}

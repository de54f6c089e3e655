// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"Zero", 0, 0},
		{"FullScalePositive", 1, math.MaxInt16},
		{"FullScaleNegative", -1, -math.MaxInt16},
		{"Half", 0.5, 16383},
		{"NegativeHalf", -0.5, -16383},
		{"Quiet", 0.001, 32},
		{"ClampsAboveOne", 1.5, math.MaxInt16},
		{"ClampsBelowMinusOne", -1.5, -math.MaxInt16},
		{"ClampsFarOutOfRange", 100, math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			// ±1 tolerance for rounding
			if diff := int(got) - int(tt.want); diff > 1 || diff < -1 {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_SymmetricAndMonotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1)
	for f := float32(-0.99); f <= 1; f += 0.01 {
		cur := Float32ToInt16(f)
		if cur < prev {
			t.Fatalf("Float32ToInt16(%v) = %v, below previous %v", f, cur, prev)
		}
		prev = cur

		if f > 0 {
			if pos, neg := Float32ToInt16(f), Float32ToInt16(-f); pos+neg != 0 {
				t.Errorf("asymmetric: Float32ToInt16(±%v) = %v, %v", f, pos, neg)
			}
		}
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})
	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	// One second of mono audio at 8kHz
	in := make([]float32, 8000)
	out := make([]int16, 8000)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		for i := range in {
			out[i] = Float32ToInt16(in[i])
		}
	}
}

package picker

import (
	"math"
	"testing"
)

func TestSmoothstepCoverage(t *testing.T) {
	tests := []struct {
		name string
		sdf  float64
		want float64
	}{
		{"fully inside", -2.0, 1.0},
		{"fully outside", 2.0, 0.0},
		{"at center", 0.0, 0.5},
		{"at inner edge", -antialiasWidth, 1.0},
		{"at outer edge", antialiasWidth, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := smoothstepCoverage(tt.sdf)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("smoothstepCoverage(%f) = %f, want %f", tt.sdf, got, tt.want)
			}
		})
	}
}

func TestSmoothstepCoverageMonotonic(t *testing.T) {
	// Coverage must be monotonically decreasing as sdf increases.
	prev := 1.0
	for sdf := -1.5; sdf <= 1.5; sdf += 0.01 {
		curr := smoothstepCoverage(sdf)
		if curr > prev+1e-10 {
			t.Errorf("coverage increased at sdf=%f: prev=%f, curr=%f", sdf, prev, curr)
		}
		prev = curr
	}
}

func TestSDFRRect(t *testing.T) {
	r := RectWH(0, 0, 10, 10)

	tests := []struct {
		name    string
		p       Point
		corner  float64
		wantMin float64
		wantMax float64
	}{
		{"center", Pt(5, 5), 0, -5.01, -4.99},
		{"on edge midpoint", Pt(5, 0), 0, -0.01, 0.01},
		{"outside right", Pt(15, 5), 0, 4.99, 5.01},
		{"outside corner", Pt(15, 15), 0, 7.07, 7.08},
		{"edge midpoint with corner", Pt(5, 0), 2, -0.01, 0.01},
		{"sharp corner cut off", Pt(10, 10), 2, 0.8, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sdfRRect(tt.p, r, tt.corner)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("sdfRRect(%v, corner=%v) = %f, want [%f, %f]", tt.p, tt.corner, got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestStrokeCircleRasterizes(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.Clear(Black)
	strokeCircle(pm, Circle{Center: Pt(10.5, 10.5), Radius: 4}, 2, White)

	// Pixel (14, 10) is centered exactly on the ring.
	if got := pm.RGBA8At(14, 10); got != [4]uint8{255, 255, 255, 255} {
		t.Errorf("ring pixel = %v, want pure white", got)
	}
	// The circle interior and the far corner stay untouched.
	if got := pm.RGBA8At(10, 10); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("center pixel = %v, want black", got)
	}
	if got := pm.RGBA8At(0, 0); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("corner pixel = %v, want black", got)
	}
}

func TestStrokeRectRasterizes(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.Clear(Black)
	strokeRect(pm, NewRect(Pt(2.5, 2.5), Pt(17.5, 17.5)), 0, 2, White)

	// Pixel (10, 2) is centered exactly on the top edge.
	if got := pm.RGBA8At(10, 2); got != [4]uint8{255, 255, 255, 255} {
		t.Errorf("edge pixel = %v, want pure white", got)
	}
	if got := pm.RGBA8At(10, 10); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("interior pixel = %v, want black", got)
	}
	if got := pm.RGBA8At(10, 0); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("outside pixel = %v, want black", got)
	}
}

func TestStrokeClipsToPixmap(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	// Shapes hanging off every side must clip, not panic.
	strokeCircle(pm, Circle{Center: Pt(0, 0), Radius: 5}, 2, White)
	strokeCircle(pm, Circle{Center: Pt(12, 12), Radius: 5}, 2, White)
	strokeRect(pm, RectWH(-5, -5, 30, 30), 1, 2, White)

	if got := pm.RGBA8At(5, 5); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("center pixel = %v, want black", got)
	}
}

func BenchmarkSDFRRect(b *testing.B) {
	r := RectWH(2, 30.5, 12, 3)
	b.ReportAllocs()
	for b.Loop() {
		_ = sdfRRect(Pt(8.5, 30.5), r, 0.5)
	}
}

func BenchmarkStrokeCircle(b *testing.B) {
	pm := NewPixmap(64, 64)
	c := Circle{Center: Pt(32, 32), Radius: 4.5}
	b.ReportAllocs()
	for b.Loop() {
		strokeCircle(pm, c, 2, White)
	}
}

package wlshm

import (
	"image"
	"testing"
)

// TestRectRegion verifies construction from a single rectangle.
func TestRectRegion(t *testing.T) {
	rg := RectRegion(image.Rect(10, 20, 30, 40))
	if rg.Empty() {
		t.Fatal("region from non-empty rect should not be empty")
	}
	if got := rg.NumRects(); got != 1 {
		t.Errorf("NumRects = %d, want 1", got)
	}
	if got, want := rg.Bounds(), image.Rect(10, 20, 30, 40); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}

	if !RectRegion(image.Rectangle{}).Empty() {
		t.Error("region from empty rect should be empty")
	}
}

// TestSizeRegion verifies the full-surface region helper.
func TestSizeRegion(t *testing.T) {
	rg := SizeRegion(image.Pt(800, 600))
	if got, want := rg.Bounds(), image.Rect(0, 0, 800, 600); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	if got := rg.Area(); got != 800*600 {
		t.Errorf("Area = %d, want %d", got, 800*600)
	}
}

// TestRegionUnion verifies that Union extends coverage without mutating the
// receiver.
func TestRegionUnion(t *testing.T) {
	a := RectRegion(image.Rect(0, 0, 10, 10))
	b := a.Union(image.Rect(20, 20, 30, 30))

	if got := a.NumRects(); got != 1 {
		t.Errorf("receiver mutated: NumRects = %d, want 1", got)
	}
	if got := b.NumRects(); got != 2 {
		t.Errorf("union NumRects = %d, want 2", got)
	}
	if got, want := b.Bounds(), image.Rect(0, 0, 30, 30); got != want {
		t.Errorf("union Bounds = %v, want %v", got, want)
	}

	// Empty rects are ignored.
	if got := a.Union(image.Rectangle{}).NumRects(); got != 1 {
		t.Errorf("union with empty rect: NumRects = %d, want 1", got)
	}
}

// TestRegionSub exercises the rectangle-set difference used to compute
// copy-forward regions.
func TestRegionSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Region
		wantArea int
	}{
		{
			name:     "disjoint",
			a:        RectRegion(image.Rect(0, 0, 100, 100)),
			b:        RectRegion(image.Rect(100, 0, 200, 100)),
			wantArea: 100 * 100,
		},
		{
			name:     "identical",
			a:        RectRegion(image.Rect(0, 0, 100, 100)),
			b:        RectRegion(image.Rect(0, 0, 100, 100)),
			wantArea: 0,
		},
		{
			name:     "contained hole",
			a:        RectRegion(image.Rect(0, 0, 100, 100)),
			b:        RectRegion(image.Rect(25, 25, 75, 75)),
			wantArea: 100*100 - 50*50,
		},
		{
			name:     "partial overlap",
			a:        RectRegion(image.Rect(0, 0, 100, 100)),
			b:        RectRegion(image.Rect(50, 50, 150, 150)),
			wantArea: 100*100 - 50*50,
		},
		{
			name:     "subtracting superset",
			a:        RectRegion(image.Rect(25, 25, 75, 75)),
			b:        RectRegion(image.Rect(0, 0, 100, 100)),
			wantArea: 0,
		},
		{
			name: "multi-rect subtrahend",
			a:    RectRegion(image.Rect(0, 0, 100, 100)),
			b: RectRegion(image.Rect(0, 0, 50, 100)).
				Union(image.Rect(50, 0, 100, 50)),
			wantArea: 50 * 50,
		},
		{
			name:     "empty minuend",
			a:        Region{},
			b:        RectRegion(image.Rect(0, 0, 10, 10)),
			wantArea: 0,
		},
		{
			name:     "empty subtrahend",
			a:        RectRegion(image.Rect(0, 0, 10, 10)),
			b:        Region{},
			wantArea: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Sub(tt.b)
			if got.Area() != tt.wantArea {
				t.Errorf("Sub area = %d, want %d", got.Area(), tt.wantArea)
			}
			// The difference must be disjoint from the subtrahend.
			for _, r := range got.Rects() {
				for _, s := range tt.b.Rects() {
					if !r.Intersect(s).Empty() {
						t.Errorf("result rect %v overlaps subtracted rect %v", r, s)
					}
				}
			}
			// And contained in the minuend.
			for _, r := range got.Rects() {
				if r.Union(tt.a.Bounds()) != tt.a.Bounds() {
					t.Errorf("result rect %v outside minuend bounds %v", r, tt.a.Bounds())
				}
			}
		})
	}
}

// TestRegionSub_Disjointness verifies that Sub produces non-overlapping
// rectangles, so Area is exact and copy-forward never copies a pixel twice.
func TestRegionSub_Disjointness(t *testing.T) {
	a := RectRegion(image.Rect(0, 0, 100, 100))
	b := RectRegion(image.Rect(40, 40, 60, 60))
	got := a.Sub(b)

	rects := got.Rects()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if !rects[i].Intersect(rects[j]).Empty() {
				t.Errorf("result rects %v and %v overlap", rects[i], rects[j])
			}
		}
	}
}

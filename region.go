package wlshm

import "image"

// Region is a damage region: a set of pixel rectangles that changed since
// the last presented frame. The zero value is the empty region.
//
// Region is a value type; operations return new regions and never mutate
// their receiver, so regions can be captured by deferred-commit callbacks
// without copying.
type Region struct {
	rects []image.Rectangle
}

// RectRegion returns a region covering the single rectangle r.
func RectRegion(r image.Rectangle) Region {
	r = r.Canon()
	if r.Empty() {
		return Region{}
	}
	return Region{rects: []image.Rectangle{r}}
}

// SizeRegion returns a region covering (0,0)-(size.X,size.Y).
func SizeRegion(size image.Point) Region {
	return RectRegion(image.Rectangle{Max: size})
}

// Empty reports whether the region contains no pixels.
func (rg Region) Empty() bool {
	return len(rg.rects) == 0
}

// NumRects returns the number of rectangles in the region.
func (rg Region) NumRects() int {
	return len(rg.rects)
}

// Rects returns the region's rectangles. The caller must not modify the
// returned slice.
func (rg Region) Rects() []image.Rectangle {
	return rg.rects
}

// Bounds returns the smallest rectangle enclosing the whole region.
func (rg Region) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, r := range rg.rects {
		b = b.Union(r)
	}
	return b
}

// Union returns the region extended to also cover r. Overlapping input
// rectangles are kept as-is; the region is a cover, not a partition.
func (rg Region) Union(r image.Rectangle) Region {
	r = r.Canon()
	if r.Empty() {
		return rg
	}
	rects := make([]image.Rectangle, len(rg.rects), len(rg.rects)+1)
	copy(rects, rg.rects)
	return Region{rects: append(rects, r)}
}

// Sub returns the set difference rg minus other.
func (rg Region) Sub(other Region) Region {
	pieces := rg.rects
	for _, s := range other.rects {
		var next []image.Rectangle
		for _, p := range pieces {
			next = appendRectDifference(next, p, s)
		}
		pieces = next
	}
	if len(pieces) == 0 {
		return Region{}
	}
	out := make([]image.Rectangle, len(pieces))
	copy(out, pieces)
	return Region{rects: out}
}

// Area returns the total pixel count of the region. Only meaningful for
// regions whose rectangles do not overlap, such as the result of Sub.
func (rg Region) Area() int {
	a := 0
	for _, r := range rg.rects {
		a += r.Dx() * r.Dy()
	}
	return a
}

// appendRectDifference appends r minus s to dst as up to four disjoint
// rectangles: the bands above and below the intersection at full width, and
// the left and right remainders beside it.
func appendRectDifference(dst []image.Rectangle, r, s image.Rectangle) []image.Rectangle {
	i := r.Intersect(s)
	if i.Empty() {
		if !r.Empty() {
			dst = append(dst, r)
		}
		return dst
	}
	if top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, i.Min.Y); !top.Empty() {
		dst = append(dst, top)
	}
	if bottom := image.Rect(r.Min.X, i.Max.Y, r.Max.X, r.Max.Y); !bottom.Empty() {
		dst = append(dst, bottom)
	}
	if left := image.Rect(r.Min.X, i.Min.Y, i.Min.X, i.Max.Y); !left.Empty() {
		dst = append(dst, left)
	}
	if right := image.Rect(i.Max.X, i.Min.Y, r.Max.X, i.Max.Y); !right.Empty() {
		dst = append(dst, right)
	}
	return dst
}

package collision

import "math"

// Body is anything positioned on the playfield with an opacity mask.
// Origin is the top-left corner of the sprite box.
type Body interface {
	Origin() (x, y float64)
	Mask() *Mask
}

// Collide reports whether the opaque pixels of a and b overlap at their
// current positions. Touching bounding boxes alone never collide.
func Collide(a, b Body) bool {
	ma, mb := a.Mask(), b.Mask()
	if ma == nil || mb == nil {
		return false
	}
	ax, ay := a.Origin()
	bx, by := b.Origin()
	dx := int(math.Floor(bx)) - int(math.Floor(ax))
	dy := int(math.Floor(by)) - int(math.Floor(ay))
	_, ok := ma.Overlap(mb, dx, dy)
	return ok
}

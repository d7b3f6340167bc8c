package collision

// Collidable is anything with a top-left screen position and a hit mask.
type Collidable interface {
	Position() (x, y int)
	HitMask() *Mask
}

// Collide reports whether the opaque pixels of a and b overlap at their
// current positions. The result is symmetric: Collide(a, b) == Collide(b, a).
func Collide(a, b Collidable) bool {
	ax, ay := a.Position()
	bx, by := b.Position()
	return a.HitMask().Overlap(b.HitMask(), bx-ax, by-ay)
}

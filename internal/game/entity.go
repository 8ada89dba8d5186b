package game

// Entity is the capability set shared by everything that moves and
// collides on the field. Bounds is the logical hitbox; it never depends
// on how the entity is drawn.
type Entity interface {
	Bounds() RectF
	Alive() bool
	Kill()
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Spider)(nil)
	_ Entity = (*Projectile)(nil)
)

// removeDead compacts s in place, dropping entities that are no longer alive.
func removeDead[E Entity](s []E) []E {
	out := s[:0]
	for _, e := range s {
		if e.Alive() {
			out = append(out, e)
		}
	}
	clear(s[len(out):])
	return out
}

package game

import (
	"time"

	"github.com/solarlune/resolv"
)

// The broad-phase space is shifted by collisionPad so that everything in
// the spawn ring maps to non-negative cell coordinates.
const (
	collisionPad  = 128
	collisionCell = 32
)

var (
	tagPlayer     = resolv.NewTag("player")
	tagSpider     = resolv.NewTag("spider")
	tagProjectile = resolv.NewTag("projectile")
	tagBlood      = resolv.NewTag("blood")
)

// collisionArea is the field region covered by the broad phase.
var collisionArea = RectF{
	X0: -collisionPad, Y0: -collisionPad,
	X1: FieldWidth + collisionPad, Y1: FieldHeight + collisionPad,
}

// Collider resolves contacts between entity groups. Candidates come from a
// resolv grid, are confirmed with strict AABB overlap and, when FinePhase
// is set, with per-pixel elliptical masks.
type Collider struct {
	FinePhase bool

	space *resolv.Space
	live  []resolv.IShape
	owner map[resolv.IShape]int
	masks map[[2]int]*Mask
}

func NewCollider(finePhase bool) *Collider {
	w := int(collisionArea.W())
	h := int(collisionArea.H())
	return &Collider{
		FinePhase: finePhase,
		space:     resolv.NewSpace(w, h, collisionCell, collisionCell),
		owner:     make(map[resolv.IShape]int),
		masks:     make(map[[2]int]*Mask),
	}
}

// place adds a tagged rectangle for r to the space. Rectangles outside the
// covered area are not placed; nothing hittable can reach there.
func (c *Collider) place(r RectF, tag resolv.Tags, idx int) resolv.IShape {
	if !collisionArea.Contains(r) {
		return nil
	}
	var sh resolv.IShape = resolv.NewRectangleTopLeft(r.X0+collisionPad, r.Y0+collisionPad, r.W(), r.H())
	sh.Tags().Set(tag)
	c.space.Add(sh)
	c.live = append(c.live, sh)
	c.owner[sh] = idx
	return sh
}

func (c *Collider) reset() {
	for _, sh := range c.live {
		c.space.Remove(sh)
	}
	c.live = c.live[:0]
	clear(c.owner)
}

func (c *Collider) mask(r RectF) *Mask {
	key := [2]int{int(r.W()), int(r.H())}
	m, ok := c.masks[key]
	if !ok {
		m = EllipseMask(key[0], key[1])
		c.masks[key] = m
	}
	return m
}

// confirm is the narrow phase for one candidate pair.
func (c *Collider) confirm(a, b RectF) bool {
	if !a.Intersects(b) {
		return false
	}
	if !c.FinePhase {
		return true
	}
	return c.mask(a).Overlap(a, c.mask(b), b)
}

// candidates runs the broad phase for sh against every shape carrying tag
// and calls fn with the owner index of each; fn returns false to stop.
// The grid query only narrows the set: containment is not an edge
// crossing, so pairs are decided by confirm rather than resolv's SAT test.
func (c *Collider) candidates(sh resolv.IShape, tag resolv.Tags, fn func(idx int) bool) {
	if sh == nil {
		return
	}
	done := false
	sh.SelectTouchingCells(1).FilterShapes().ByTags(tag).ForEach(func(other resolv.IShape) bool {
		if done {
			return false
		}
		if idx, ok := c.owner[other]; ok && !fn(idx) {
			done = true
		}
		return !done
	})
}

// ResolvePlayerVsEnemies damages the player if any live spider touches it.
// Spiders survive the contact. It reports whether a heart was lost.
func (c *Collider) ResolvePlayerVsEnemies(p *Player, spiders []*Spider, now time.Duration) bool {
	if p == nil || len(spiders) == 0 {
		return false
	}
	defer c.reset()

	for i, s := range spiders {
		if s.Alive() {
			c.place(s.Bounds(), tagSpider, i)
		}
	}
	pb := p.Bounds()
	touched := false
	c.candidates(c.place(pb, tagPlayer, -1), tagSpider, func(idx int) bool {
		if c.confirm(pb, spiders[idx].Bounds()) {
			touched = true
			return false
		}
		return true
	})
	if !touched {
		return false
	}
	return p.TakeDamage(now)
}

// ResolveProjectilesVsEnemies kills every overlapping projectile/spider
// pair. A projectile keeps going through the spiders it overlaps this
// tick; a spider already killed earlier in the pass is skipped. It
// returns the number of spiders destroyed.
func (c *Collider) ResolveProjectilesVsEnemies(projectiles []*Projectile, spiders []*Spider) int {
	if len(projectiles) == 0 || len(spiders) == 0 {
		return 0
	}
	defer c.reset()

	for i, s := range spiders {
		if s.Alive() {
			c.place(s.Bounds(), tagSpider, i)
		}
	}
	kills := 0
	for i, pr := range projectiles {
		if !pr.Alive() {
			continue
		}
		pb := pr.Bounds()
		hit := false
		c.candidates(c.place(pb, tagProjectile, i), tagSpider, func(idx int) bool {
			s := spiders[idx]
			if s.Alive() && c.confirm(pb, s.Bounds()) {
				s.Kill()
				kills++
				hit = true
			}
			return true
		})
		if hit {
			pr.Kill()
		}
	}
	return kills
}

// ResolvePlayerVsBlood refreshes the player's blood trail when standing on
// a blood splat. It reports whether any splat was touched.
func (c *Collider) ResolvePlayerVsBlood(p *Player, fx *EffectSystem) bool {
	if p == nil || fx == nil || fx.Len() == 0 {
		return false
	}
	defer c.reset()

	placed := 0
	for i, e := range fx.E {
		if e.Kind == EffectBloodSplat {
			c.place(e.Bounds(), tagBlood, i)
			placed++
		}
	}
	if placed == 0 {
		return false
	}
	pb := p.Bounds()
	touched := false
	c.candidates(c.place(pb, tagPlayer, -1), tagBlood, func(idx int) bool {
		if pb.Intersects(fx.E[idx].Bounds()) {
			touched = true
			return false
		}
		return true
	})
	if touched {
		p.SteppedInBlood()
	}
	return touched
}

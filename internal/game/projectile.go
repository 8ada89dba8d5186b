package game

import "math"

// ProjectileBounds is the region a projectile's centre may occupy. It
// reaches ProjectileMargin pixels past every edge of the field.
var ProjectileBounds = RectF{
	X0: -ProjectileMargin, Y0: -ProjectileMargin,
	X1: FieldWidth + ProjectileMargin, Y1: FieldHeight + ProjectileMargin,
}

// Projectile flies in a straight line at a velocity fixed when fired.
type Projectile struct {
	Pos    Vec2
	Center Vec2
	Vel    Vec2
	Origin Vec2

	dead bool
}

// NewProjectile fires from origin toward aim. The aim point only sets the
// heading; there is no homing.
func NewProjectile(origin, aim Vec2) *Projectile {
	a := aim.Sub(origin).Angle()
	return &Projectile{
		Pos:    origin,
		Center: origin.Rounded(),
		Vel:    Vec2{X: ProjectileSpeed * math.Cos(a), Y: ProjectileSpeed * math.Sin(a)},
		Origin: origin,
	}
}

func (p *Projectile) Bounds() RectF {
	return RectFromCenter(p.Center, ProjectileSize, ProjectileSize)
}

func (p *Projectile) Alive() bool { return !p.dead }
func (p *Projectile) Kill()       { p.dead = true }

// Tick accumulates position in floating point and snaps the hitbox centre
// to the rounded position. Leaving ProjectileBounds kills the projectile.
func (p *Projectile) Tick() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Center = p.Pos.Rounded()
	if !ProjectileBounds.ContainsPoint(p.Center) {
		p.dead = true
	}
}

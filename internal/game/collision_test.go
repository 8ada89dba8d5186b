package game

import (
	"testing"
	"time"
)

func TestCollisionEmptySets(t *testing.T) {
	c := NewCollider(false)
	p := NewPlayer()
	if c.ResolvePlayerVsEnemies(p, nil, 0) {
		t.Errorf("player hurt with no spiders")
	}
	if got := c.ResolveProjectilesVsEnemies(nil, []*Spider{NewSpider(SpiderAdult, p.Pos)}); got != 0 {
		t.Errorf("kills = %d with no projectiles", got)
	}
	if got := c.ResolveProjectilesVsEnemies([]*Projectile{NewProjectile(p.Pos, Vec2{})}, nil); got != 0 {
		t.Errorf("kills = %d with no spiders", got)
	}
	if c.ResolvePlayerVsBlood(p, NewEffectSystem(4)) {
		t.Errorf("blood touched with no effects")
	}
}

func TestPlayerVsEnemies(t *testing.T) {
	c := NewCollider(false)
	p := NewPlayer()
	far := NewSpider(SpiderAdult, Vec2{X: 100, Y: 100})
	near := NewSpider(SpiderAdult, p.Pos.Add(Vec2{X: 20, Y: 0}))

	if c.ResolvePlayerVsEnemies(p, []*Spider{far}, 0) {
		t.Fatalf("hurt by a distant spider")
	}
	if !c.ResolvePlayerVsEnemies(p, []*Spider{far, near}, 0) {
		t.Fatalf("overlapping spider did no damage")
	}
	if !near.Alive() {
		t.Errorf("spider destroyed by touching the player")
	}
	if got, want := p.Hearts.Current, PlayerMaxHearts-1; got != want {
		t.Errorf("hearts = %d, want %d", got, want)
	}
	if c.ResolvePlayerVsEnemies(p, []*Spider{near}, 100*time.Millisecond) {
		t.Errorf("damage applied during invulnerability")
	}
}

func TestPlayerVsEnemiesTouchingEdge(t *testing.T) {
	c := NewCollider(false)
	p := NewPlayer()
	s := NewSpider(SpiderAdult, p.Pos.Add(Vec2{X: 32, Y: 0}))
	if c.ResolvePlayerVsEnemies(p, []*Spider{s}, 0) {
		t.Errorf("edge contact counted as a hit")
	}
}

func TestProjectilesVsEnemies(t *testing.T) {
	c := NewCollider(false)
	a := NewSpider(SpiderAdult, Vec2{X: 300, Y: 200})
	b := NewSpider(SpiderBaby, Vec2{X: 310, Y: 205})
	miss := NewSpider(SpiderAdult, Vec2{X: 600, Y: 200})
	pr := NewProjectile(Vec2{X: 305, Y: 200}, Vec2{X: 900, Y: 200})

	kills := c.ResolveProjectilesVsEnemies([]*Projectile{pr}, []*Spider{a, b, miss})
	if kills != 2 {
		t.Fatalf("kills = %d, want 2", kills)
	}
	if a.Alive() || b.Alive() {
		t.Errorf("overlapping spiders survived")
	}
	if !miss.Alive() {
		t.Errorf("distant spider killed")
	}
	if pr.Alive() {
		t.Errorf("projectile survived a hit")
	}
}

func TestProjectilesSkipDeadSpiders(t *testing.T) {
	c := NewCollider(false)
	s := NewSpider(SpiderAdult, Vec2{X: 300, Y: 200})
	p1 := NewProjectile(Vec2{X: 300, Y: 200}, Vec2{X: 900, Y: 200})
	p2 := NewProjectile(Vec2{X: 302, Y: 200}, Vec2{X: 900, Y: 200})

	if kills := c.ResolveProjectilesVsEnemies([]*Projectile{p1, p2}, []*Spider{s}); kills != 1 {
		t.Fatalf("kills = %d, want 1", kills)
	}
	if p1.Alive() {
		t.Errorf("first projectile survived")
	}
	if !p2.Alive() {
		t.Errorf("second projectile spent on an already dead spider")
	}
}

func TestContainedOverlaps(t *testing.T) {
	centre := Vec2{X: 300, Y: 200}
	tests := []struct {
		name string
		kind SpiderKind
		off  Vec2
	}{
		{"projectile centred on adult", SpiderAdult, Vec2{}},
		{"projectile inside baby", SpiderBaby, Vec2{X: 2, Y: 1}},
		{"projectile inside adult", SpiderAdult, Vec2{X: -6, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpider(tt.kind, centre)
			pr := NewProjectile(centre.Add(tt.off), Vec2{X: 900, Y: 200})
			if kills := NewCollider(false).ResolveProjectilesVsEnemies([]*Projectile{pr}, []*Spider{s}); kills != 1 {
				t.Fatalf("kills = %d, want 1", kills)
			}
			if s.Alive() || pr.Alive() {
				t.Errorf("spider alive %v, projectile alive %v, want both dead", s.Alive(), pr.Alive())
			}
		})
	}

	t.Run("spider centred on player", func(t *testing.T) {
		p := NewPlayer()
		s := NewSpider(SpiderBaby, p.Pos)
		if !NewCollider(false).ResolvePlayerVsEnemies(p, []*Spider{s}, 0) {
			t.Fatalf("concentric spider did no damage")
		}
		if got, want := p.Hearts.Current, PlayerMaxHearts-1; got != want {
			t.Errorf("hearts = %d, want %d", got, want)
		}
	})

	t.Run("player inside splat", func(t *testing.T) {
		p := NewPlayer()
		fx := NewEffectSystem(4)
		fx.Add(Effect{Kind: EffectBloodSplat, Pos: p.Pos.Add(Vec2{X: 3, Y: -2})})
		if !NewCollider(false).ResolvePlayerVsBlood(p, fx) {
			t.Fatalf("player standing inside a splat not detected")
		}
		if !p.HasBloodTrail() {
			t.Errorf("blood trail not set")
		}
	})
}

func TestColliderReusable(t *testing.T) {
	c := NewCollider(false)
	s := NewSpider(SpiderAdult, Vec2{X: 300, Y: 200})
	pr := NewProjectile(Vec2{X: 600, Y: 200}, Vec2{X: 900, Y: 200})
	for i := 0; i < 3; i++ {
		if kills := c.ResolveProjectilesVsEnemies([]*Projectile{pr}, []*Spider{s}); kills != 0 {
			t.Fatalf("pass %d: stale shapes produced %d kills", i, kills)
		}
	}
	if len(c.live) != 0 || len(c.owner) != 0 {
		t.Errorf("shapes left behind: %d live, %d owners", len(c.live), len(c.owner))
	}
}

func TestFinePhaseRejectsCornerContact(t *testing.T) {
	p := NewPlayer()
	corner := NewSpider(SpiderAdult, p.Pos.Add(Vec2{X: 30, Y: 30}))

	if !NewCollider(false).ResolvePlayerVsEnemies(NewPlayer(), []*Spider{corner}, 0) {
		t.Fatalf("box overlap not detected without fine phase")
	}
	if NewCollider(true).ResolvePlayerVsEnemies(p, []*Spider{corner}, 0) {
		t.Errorf("fine phase accepted a corner-only overlap")
	}

	centre := NewSpider(SpiderAdult, p.Pos.Add(Vec2{X: 10, Y: 0}))
	if !NewCollider(true).ResolvePlayerVsEnemies(p, []*Spider{centre}, 0) {
		t.Errorf("fine phase rejected a solid overlap")
	}
}

func TestPlayerVsBlood(t *testing.T) {
	c := NewCollider(false)
	p := NewPlayer()
	fx := NewEffectSystem(8)
	fx.Add(Effect{Kind: EffectBloodSplash, Pos: p.Pos})
	if c.ResolvePlayerVsBlood(p, fx) {
		t.Fatalf("a splash counted as a splat")
	}
	fx.Add(Effect{Kind: EffectBloodSplat, Pos: p.Pos.Add(Vec2{X: 10, Y: 10})})
	if !c.ResolvePlayerVsBlood(p, fx) {
		t.Fatalf("splat under the player not detected")
	}
	if !p.HasBloodTrail() {
		t.Errorf("blood trail not set")
	}
}

func TestEllipseMask(t *testing.T) {
	m := EllipseMask(32, 32)
	if !m.At(16, 16) {
		t.Errorf("centre not opaque")
	}
	if m.At(0, 0) || m.At(31, 31) {
		t.Errorf("corner opaque")
	}
	if m.At(-1, 5) || m.At(32, 5) {
		t.Errorf("out of range reported opaque")
	}
}

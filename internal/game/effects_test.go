package game

import "testing"

func TestEffectLifetimes(t *testing.T) {
	cases := []struct {
		kind EffectKind
		want int
	}{
		{EffectBloodSplash, SplashTicks},
		{EffectBloodSplat, SplatTicks},
		{EffectFootprint, FootprintTicks},
	}
	for _, tc := range cases {
		fx := NewEffectSystem(4)
		fx.Add(Effect{Kind: tc.kind})
		ticks := 0
		for fx.Len() > 0 {
			fx.Tick()
			ticks++
			if ticks > 1000 {
				t.Fatalf("kind %d never expired", tc.kind)
			}
		}
		if ticks != tc.want {
			t.Errorf("kind %d lived %d ticks, want %d", tc.kind, ticks, tc.want)
		}
	}
}

func TestEffectTickAgesEveryEffect(t *testing.T) {
	fx := NewEffectSystem(8)
	fx.Add(Effect{Kind: EffectBloodSplash, Age: SplashTicks - 1})
	fx.Add(Effect{Kind: EffectBloodSplat})
	fx.Add(Effect{Kind: EffectFootprint})
	fx.Tick()
	if fx.Len() != 2 {
		t.Fatalf("len = %d, want 2", fx.Len())
	}
	for _, e := range fx.E {
		if e.Age != 1 {
			t.Errorf("kind %d age = %d, want 1", e.Kind, e.Age)
		}
	}
}

func TestSplatFades(t *testing.T) {
	e := Effect{Kind: EffectBloodSplat}
	if got := e.Opacity(); got != 255 {
		t.Errorf("fresh opacity = %d, want 255", got)
	}
	e.Age = 100
	if got := e.Opacity(); got != 155 {
		t.Errorf("opacity at 100 = %d, want 155", got)
	}
}

func TestSplashFrames(t *testing.T) {
	e := Effect{Kind: EffectBloodSplash}
	seen := map[int]bool{}
	for e.Age = 0; e.Age < SplashTicks; e.Age++ {
		seen[e.Frame()] = true
	}
	if len(seen) != SplashFrames {
		t.Errorf("frames used = %d, want %d", len(seen), SplashFrames)
	}
}

func TestEffectOverwriteWhenFull(t *testing.T) {
	fx := NewEffectSystem(2)
	fx.Add(Effect{Kind: EffectFootprint, Pos: Vec2{X: 1}})
	fx.Add(Effect{Kind: EffectFootprint, Pos: Vec2{X: 2}})
	fx.Add(Effect{Kind: EffectFootprint, Pos: Vec2{X: 3}})
	if fx.Len() != 2 {
		t.Fatalf("len = %d, want 2", fx.Len())
	}
	if fx.E[0].Pos.X != 3 {
		t.Errorf("oldest slot holds %v, want 3", fx.E[0].Pos.X)
	}
}

func TestEffectOverwriteEvictsOldestAfterReorder(t *testing.T) {
	fx := NewEffectSystem(3)
	fx.Add(Effect{Kind: EffectFootprint, Pos: Vec2{X: 1}})
	fx.Add(Effect{Kind: EffectBloodSplat, Pos: Vec2{X: 2}})
	fx.Add(Effect{Kind: EffectBloodSplat, Pos: Vec2{X: 3}})
	for range FootprintTicks {
		fx.Tick()
	}
	if fx.Len() != 2 {
		t.Fatalf("len = %d after the footprint expired, want 2", fx.Len())
	}

	fx.Add(Effect{Kind: EffectBloodSplat, Pos: Vec2{X: 4}})
	fx.Add(Effect{Kind: EffectBloodSplat, Pos: Vec2{X: 5}})

	got := map[float64]bool{}
	for _, e := range fx.E {
		got[e.Pos.X] = true
	}
	for x, want := range map[float64]bool{2: false, 3: true, 4: true, 5: true} {
		if got[x] != want {
			t.Errorf("effect %v present = %v, want %v", x, got[x], want)
		}
	}
}

package game

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingAsset is returned when a provider has no set by that name.
var ErrMissingAsset = errors.New("asset set not found")

// Logical sprite sets. Right-facing player frames are the left frames
// mirrored at draw time.
const (
	SetPlayerFrontIdle   = "player/front/idle"
	SetPlayerFrontWalk   = "player/front/walk"
	SetPlayerFrontRun    = "player/front/run"
	SetPlayerBackIdle    = "player/back/idle"
	SetPlayerBackWalk    = "player/back/walk"
	SetPlayerBackRun     = "player/back/run"
	SetPlayerLeftIdle    = "player/left/idle"
	SetPlayerLeftWalk    = "player/left/walk"
	SetPlayerLeftRun     = "player/left/run"
	SetSpiderAdultIdle   = "spider/adult/idle"
	SetSpiderAdultAttack = "spider/adult/attack"
	SetSpiderBabyIdle    = "spider/baby/idle"
	SetSpiderBabyAttack  = "spider/baby/attack"
	SetBloodSplash       = "effects/blood_splash"
	SetBloodSplat        = "effects/blood_splat"
	SetFootprint         = "effects/footprint"
	SetFireball          = "weapons/fireball"
	SetHeart             = "hud/heart"
	SetStaminaIcon       = "hud/stamina"
	SetMenuBackground    = "menu/background"
)

// FrameSet describes one animation strip: how many frames it holds and
// the size of each frame in field pixels.
type FrameSet struct {
	Name   string
	Frames int
	W, H   int
}

func (f FrameSet) Len() int { return f.Frames }

// Strips is a set of resolved FrameSets keyed by name.
type Strips map[string]FrameSet

// Len is the frame count of the named strip, or fallback when the strip
// is unknown or empty.
func (s Strips) Len(name string, fallback int) int {
	if n := s[name].Len(); n > 0 {
		return n
	}
	return fallback
}

// AssetProvider resolves logical sprite sets by name.
type AssetProvider interface {
	ImageSet(name string) (FrameSet, error)
}

// PlayerSet returns the set name for a facing and animation state.
func PlayerSet(f Facing, a AnimState) string {
	dir := "front"
	switch f {
	case FacingBack:
		dir = "back"
	case FacingLeft, FacingRight:
		dir = "left"
	}
	state := "idle"
	switch a {
	case AnimWalk:
		state = "walk"
	case AnimRun:
		state = "run"
	}
	return "player/" + dir + "/" + state
}

// SpiderSet returns the set name for a spider's current strip.
func SpiderSet(s *Spider) string {
	if s.Attacking {
		return spiderTable[s.Kind].AttackSet
	}
	return spiderTable[s.Kind].IdleSet
}

// requiredSets lists every set the simulation indexes into, with the
// minimum frame count its frame counters assume.
func requiredSets() map[string]int {
	req := map[string]int{
		SetBloodSplash:    SplashFrames,
		SetBloodSplat:     1,
		SetFootprint:      1,
		SetFireball:       1,
		SetHeart:          HeartFrames,
		SetStaminaIcon:    1,
		SetMenuBackground: 1,
	}
	for _, f := range []Facing{FacingFront, FacingBack, FacingLeft} {
		for a := AnimIdle; a < AnimStateCount; a++ {
			req[PlayerSet(f, a)] = PlayerAnimFrames
		}
	}
	for _, st := range spiderTable {
		req[st.IdleSet] = st.IdleFrames
		req[st.AttackSet] = st.AttackFrames
	}
	return req
}

// ResolveAssets looks up every required set and fails on the first one
// that is missing or too short.
func ResolveAssets(p AssetProvider) (Strips, error) {
	req := requiredSets()
	names := make([]string, 0, len(req))
	for name := range req {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Strips, len(req))
	for _, name := range names {
		set, err := p.ImageSet(name)
		if err != nil {
			return nil, fmt.Errorf("resolve asset %q: %w", name, err)
		}
		if set.Len() < req[name] {
			return nil, fmt.Errorf("resolve asset %q: have %d frames, need %d", name, set.Len(), req[name])
		}
		out[name] = set
	}
	return out, nil
}

// ProceduralAssets is the built-in manifest. Every set is drawn by the
// frontends from its name and frame index, so nothing is loaded from disk.
type ProceduralAssets struct {
	sets map[string]FrameSet
}

func NewProceduralAssets() *ProceduralAssets {
	sets := make(map[string]FrameSet)
	add := func(name string, frames, w, h int) {
		sets[name] = FrameSet{Name: name, Frames: frames, W: w, H: h}
	}
	for _, f := range []Facing{FacingFront, FacingBack, FacingLeft} {
		for a := AnimIdle; a < AnimStateCount; a++ {
			add(PlayerSet(f, a), PlayerAnimFrames, 32, 32)
		}
	}
	for k, st := range spiderTable {
		sz := int(st.Size * 2)
		if SpiderKind(k) == SpiderBaby {
			sz = int(st.Size)
		}
		add(st.IdleSet, st.IdleFrames, sz, sz)
		add(st.AttackSet, st.AttackFrames, sz, sz)
	}
	add(SetBloodSplash, SplashFrames, SplashSize, SplashSize)
	add(SetBloodSplat, 1, SplatSize, SplatSize)
	add(SetFootprint, 1, FootprintSize, FootprintSize)
	add(SetFireball, 1, ProjectileSize, ProjectileSize)
	add(SetHeart, HeartFrames, HeartSize, HeartSize)
	add(SetStaminaIcon, 1, 8, StaminaHeight)
	add(SetMenuBackground, 1, FieldWidth, FieldHeight)
	return &ProceduralAssets{sets: sets}
}

func (a *ProceduralAssets) ImageSet(name string) (FrameSet, error) {
	set, ok := a.sets[name]
	if !ok {
		return FrameSet{}, fmt.Errorf("%w: %q", ErrMissingAsset, name)
	}
	return set, nil
}
